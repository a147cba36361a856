package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "verde/internal/errors"
	"verde/internal/logger"
)

// ErrorHandler returns a Gin middleware that logs every error attached to
// the context with c.Error. When the handler has not written a response, the
// last error is rendered as the JSON error body. Internal causes are logged
// and never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return errorHandler(logger.Named("errors"))
}

func errorHandler(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			logError(log, c, e.Err)
		}
		if c.Writer.Written() {
			return
		}

		appErr := apperrors.From(c.Errors.Last().Err)
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

func logError(log *zap.SugaredLogger, c *gin.Context, err error) {
	fields := []interface{}{
		"request_id", RequestID(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}

	var appErr *apperrors.AppError
	switch {
	case !errors.As(err, &appErr):
		log.Errorw("unexpected error", append(fields, "error", err.Error())...)
	case appErr.Internal != nil:
		log.Errorw("app error", append(fields, "code", appErr.Code, "internal", appErr.Internal.Error())...)
	default:
		log.Debugw("request rejected", append(fields, "code", appErr.Code, "message", appErr.Message)...)
	}
}
