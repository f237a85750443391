package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"housing-backend/internal/mw"
)

// parseID reads a positive numeric path parameter, answering 400 when it is not one.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// internalError logs err with the request ID and answers 500 with a public message.
func (h *Handler) internalError(c *gin.Context, publicMessage string, err error) {
	h.log.WithFields(logrus.Fields{
		"request_id": mw.RequestIDFrom(c),
		"path":       c.FullPath(),
	}).WithError(err).Error(publicMessage)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": publicMessage})
}
