package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently unwraps gzip encoded request bodies.
// Any other non-identity encoding is refused with 415.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(strings.TrimSpace(c.GetHeader("Content-Encoding")))
		switch {
		case encoding == "" || encoding == "identity":
			c.Next()
			return
		case !strings.Contains(encoding, "gzip"):
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"message": "unsupported content encoding: " + encoding})
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}

// OmitEncodingWithoutBody drops the Content-Encoding header a response
// compressor announced when the handler wrote no body, as with 204 replies.
// It must run inside the compressor.
func OmitEncodingWithoutBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if !c.Writer.Written() {
			c.Writer.Header().Del("Content-Encoding")
		}
	}
}
