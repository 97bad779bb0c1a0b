package resp

import (
	"net/http"

	"github.com/Chandu5342/RestaurntBackend/pkg/apperr"
	"github.com/gin-gonic/gin"
)

// Message renders the {message} body every failure (and a couple of
// successes) uses.
func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}

func BadRequest(c *gin.Context, msg string) { Message(c, http.StatusBadRequest, msg) }
func Unauthorized(c *gin.Context, msg string) {
	Message(c, http.StatusUnauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) { Message(c, http.StatusForbidden, msg) }
func NotFound(c *gin.Context, msg string)  { Message(c, http.StatusNotFound, msg) }
func ServerError(c *gin.Context, msg string) {
	Message(c, http.StatusInternalServerError, msg)
}

// Error translates a service error into its HTTP rendering. Conflicts
// render as 400 like plain validation failures.
func Error(c *gin.Context, err error) {
	msg := apperr.MessageOf(err)
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		BadRequest(c, msg)
	case apperr.KindUnauthorized:
		Unauthorized(c, msg)
	case apperr.KindForbidden:
		Forbidden(c, msg)
	case apperr.KindNotFound:
		NotFound(c, msg)
	default:
		ServerError(c, msg)
	}
}
