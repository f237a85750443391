package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-backend/internal/model"
)

// GetUniversites handles the GET /universites request.
func (h *Handler) GetUniversites(c *gin.Context) {
	universites, err := h.universites.RetrieveAllUniversites(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to retrieve universites", err)
		return
	}
	c.JSON(http.StatusOK, universites)
}

// AddUniversite handles the POST /universites request.
func (h *Handler) AddUniversite(c *gin.Context) {
	var req model.Universite
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.universites.AddUniversite(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "Failed to save universite", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetUniversite handles the GET /universites/{id} request.
func (h *Handler) GetUniversite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	universite, err := h.universites.RetrieveUniversite(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "Failed to retrieve universite", err)
		return
	}
	if universite == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "universite not found"})
		return
	}
	c.JSON(http.StatusOK, universite)
}
