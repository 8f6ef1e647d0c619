package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/internal/sanitize"
)

// maxBodyBytes caps how much request body the sanitizer will buffer.
const maxBodyBytes = 10 << 20 // 10mb, matching the JSON body limit

// SanitizeJSON rewrites JSON request bodies with operator keys dropped and
// string fields stripped of markup, before any handler binds them. Bodies
// that fail to parse pass through untouched; binding rejects them later.
func SanitizeJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || !isJSONRequest(c) {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			c.Next()
			return
		}

		var decoded any
		if err := json.Unmarshal(body, &decoded); err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		cleaned, err := json.Marshal(sanitize.CleanValue(decoded))
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(cleaned))
		c.Request.ContentLength = int64(len(cleaned))
		c.Next()
	}
}

func isJSONRequest(c *gin.Context) bool {
	switch c.Request.Method {
	case "POST", "PUT", "PATCH":
		return strings.Contains(c.ContentType(), "application/json")
	}
	return false
}
