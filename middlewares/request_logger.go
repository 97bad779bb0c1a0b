package middlewares

import (
	"bytes"
	"io"
	"log"
	"strings"
	"time"

	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/repository"
	"github.com/Chandu5342/RestaurntBackend/utils"

	"github.com/gin-gonic/gin"
)

const maxLoggedBody = 4 << 10

// RequestLogger records every request after its response is written.
// The row is persisted off the request goroutine and its own failure is
// swallowed; it can never fail or delay the response.
func RequestLogger(logs *repository.LogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var body string
		if strings.HasPrefix(c.ContentType(), "application/json") && c.Request.Body != nil {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody))
			if err == nil {
				body = string(raw)
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), c.Request.Body))
			}
		}

		c.Next()

		row := entity.Log{
			Method:         c.Request.Method,
			Route:          c.Request.URL.RequestURI(),
			Status:         c.Writer.Status(),
			RequestBody:    body,
			ResponseTimeMs: time.Since(start).Milliseconds(),
		}
		if id := utils.CurrentUserID(c); id != 0 {
			row.UserID = &id
		}

		go func() {
			if err := logs.Create(&row); err != nil {
				log.Println("failed to write request log:", err)
			}
		}()
	}
}
