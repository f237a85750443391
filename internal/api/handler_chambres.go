package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-backend/internal/model"
)

// GetChambres handles the GET /chambres request.
func (h *Handler) GetChambres(c *gin.Context) {
	chambres, err := h.chambres.RetrieveAllChambres(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to retrieve chambres", err)
		return
	}
	c.JSON(http.StatusOK, chambres)
}

// AddChambre handles the POST /chambres request. A body with idChambre replaces that room.
func (h *Handler) AddChambre(c *gin.Context) {
	var req model.Chambre
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.chambres.AddChambre(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "Failed to save chambre", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetChambre handles the GET /chambres/{id} request.
func (h *Handler) GetChambre(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	chambre, err := h.chambres.RetrieveChambre(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "Failed to retrieve chambre", err)
		return
	}
	if chambre == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chambre not found"})
		return
	}
	c.JSON(http.StatusOK, chambre)
}
