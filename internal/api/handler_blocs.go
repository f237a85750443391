package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housing-backend/internal/model"
)

// GetBlocs handles the GET /blocs request.
func (h *Handler) GetBlocs(c *gin.Context) {
	blocs, err := h.blocs.RetrieveAllBlocs(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to retrieve blocs", err)
		return
	}
	c.JSON(http.StatusOK, blocs)
}

// AddOrUpdateBloc handles the POST /blocs request: the bloc is saved, then each
// of its chambres is linked to it and saved.
func (h *Handler) AddOrUpdateBloc(c *gin.Context) {
	var req model.Bloc
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.blocs.AddOrUpdate(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "Failed to save bloc", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetBloc handles the GET /blocs/{id} request.
func (h *Handler) GetBloc(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	bloc, err := h.blocs.RetrieveBloc(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "Failed to retrieve bloc", err)
		return
	}
	if bloc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bloc not found"})
		return
	}
	c.JSON(http.StatusOK, bloc)
}
