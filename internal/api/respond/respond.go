// Package respond writes the portal's JSON error bodies.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recharge-portal/internal/contract"
)

// Error aborts with {"message": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, contract.ErrorBody{Message: msg})
}

// Field aborts with a 400 naming the offending field.
func Field(c *gin.Context, field, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, contract.ErrorBody{Message: msg, Field: field})
}

// Invalid turns a validation error into a 400.
func Invalid(c *gin.Context, err error) {
	if fe, ok := contract.AsFieldError(err); ok {
		Field(c, fe.Field, fe.Message)
		return
	}
	Error(c, http.StatusBadRequest, contract.MsgInvalidInput)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, contract.MsgUnauthorized)
}

// Internal logs err and answers with the generic 500 body.
func Internal(c *gin.Context, op string, err error) {
	slog.ErrorContext(c.Request.Context(), "request failed",
		"op", op,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	Error(c, http.StatusInternalServerError, contract.MsgInternal)
}

// Bind parses and validates the JSON body into dst. On failure it writes the 400
// and returns false.
func Bind(c *gin.Context, dst any) bool {
	if err := contract.ParseReader(c.Request.Body, dst); err != nil {
		Invalid(c, err)
		return false
	}
	return true
}

// BindQuery is Bind for query-string inputs.
func BindQuery(c *gin.Context, dst contract.QueryInput) bool {
	if err := contract.ParseQuery(c.Request.URL.Query(), dst); err != nil {
		Invalid(c, err)
		return false
	}
	return true
}
