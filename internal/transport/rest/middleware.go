package rest

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/config"
	"github.com/grajto/vocab-trainer/pkg/ctxutil"
)

const (
	headerRequestID = "X-Request-ID"
	headerUserID    = "X-User-ID"
)

// RequestID ensures every request carries a request ID, generating one when
// the client did not send it. The ID is echoed back in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := ctxutil.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// Identity resolves the acting user from the X-User-ID header and stores it
// in the request context. Requests without a valid user ID are rejected.
//
// The header is a stand-in for a real authentication layer; swapping it for
// token verification only changes this middleware.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(headerUserID)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "missing " + headerUserID + " header"})
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid " + headerUserID + " header"})
			return
		}

		ctx := ctxutil.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestLogger logs one line per request with method, path, status and
// latency. Server errors log at error level, client errors at warn.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if id := ctxutil.RequestIDFromCtx(c.Request.Context()); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}
		if userID, ok := ctxutil.UserIDFromCtx(c.Request.Context()); ok {
			attrs = append(attrs, slog.String("user_id", userID.String()))
		}

		switch {
		case status >= 500:
			log.Error("http request", attrs...)
		case status >= 400:
			log.Warn("http request", attrs...)
		default:
			log.Info("http request", attrs...)
		}
	}
}

// CORS builds the CORS middleware from configuration. An allowed-origins
// value of "*" switches to allow-all mode, which the cors package requires
// to be set explicitly.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     splitCSV(cfg.AllowedMethods),
		AllowHeaders:     splitCSV(cfg.AllowedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}

	origins := splitCSV(cfg.AllowedOrigins)
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		// allow-all and credentials are mutually exclusive
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}

	return cors.New(corsCfg)
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
