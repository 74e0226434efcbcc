package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dealdesk/internal/services"
)

// writeError maps service errors to a status and logs under tag, e.g. "[deal][update]".
func writeError(c *gin.Context, log *zap.Logger, tag string, err error) {
	var verr *services.ValidationError
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &verr):
		log.Info(tag+"[invalid]", zap.Strings("fields", verr.Fields))
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields, "reasons": verr.Reasons})
	case errors.As(err, &nf):
		log.Info(tag+"[404]", zap.String("id", nf.ID))
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	default:
		log.Error(tag+"[err]", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindJSON decodes the body into dst and answers 400 on failure.
func bindJSON(c *gin.Context, log *zap.Logger, tag string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Info(tag+"[bind][err]", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
