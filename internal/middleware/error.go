package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// NotFoundMessage is returned for every unmatched route
	NotFoundMessage = "Sorry, the route you tried to access was not found."
	// InternalErrorMessage is returned for every unhandled fault; details stay in the log
	InternalErrorMessage = "An internal server error occurred. Please try again later."
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler renders errors attached with c.Error as the generic 500.
// Handlers that already wrote a response are left alone.
func ErrorHandler(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			log.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, e.Err)
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: InternalErrorMessage})
	}
}

// Recovery turns handler panics into the generic 500
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		log.Errorf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: InternalErrorMessage})
	})
}

// NotFound answers unmatched routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: NotFoundMessage})
}
