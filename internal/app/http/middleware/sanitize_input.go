package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"recharge-portal/internal/api/respond"
	"recharge-portal/internal/contract"
)

// SanitizeAndCleanInputMiddleware strips markup from every top-level string of a
// JSON object body. The remaining text is stored as typed, not entity-escaped.
// Non-string values pass through untouched.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, contract.MsgInvalidJSON)
			return
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(buf, &body); err != nil {
			respond.Error(c, http.StatusBadRequest, contract.MsgInvalidJSON)
			return
		}

		for k, raw := range body {
			if len(raw) == 0 || raw[0] != '"' {
				continue
			}
			var str string
			if err := json.Unmarshal(raw, &str); err != nil {
				continue
			}
			clean, _ := json.Marshal(html.UnescapeString(policy.Sanitize(str)))
			body[k] = clean
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
