// Package rest wires the HTTP API: routing, middleware, and handlers
// translating between JSON requests and the service layer.
package rest

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/grajto/vocab-trainer/internal/config"
)

// RouterConfig carries everything the router needs. Nil handlers are
// skipped, which keeps partial wiring possible in tests.
type RouterConfig struct {
	Logger *slog.Logger
	CORS   config.CORSConfig

	HealthHandler *HealthHandler
	DeckHandler   *DeckHandler
	StudyHandler  *StudyHandler
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	if cfg.Logger != nil {
		r.Use(RequestLogger(cfg.Logger))
	}
	r.Use(CORS(cfg.CORS))

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Healthz)
	}

	api := r.Group("/api")
	api.Use(Identity())
	{
		if cfg.DeckHandler != nil {
			api.GET("/decks", cfg.DeckHandler.ListDecks)
			api.POST("/decks", cfg.DeckHandler.CreateDeck)
			api.PUT("/decks/:id", cfg.DeckHandler.UpdateDeck)
			api.DELETE("/decks/:id", cfg.DeckHandler.DeleteDeck)

			api.GET("/decks/:id/cards", cfg.DeckHandler.ListCards)
			api.POST("/decks/:id/cards", cfg.DeckHandler.CreateCard)
			api.PUT("/cards/:id", cfg.DeckHandler.UpdateCard)
			api.DELETE("/cards/:id", cfg.DeckHandler.DeleteCard)
		}

		if cfg.StudyHandler != nil {
			api.POST("/sessions", cfg.StudyHandler.StartSession)
			api.POST("/answers", cfg.StudyHandler.SubmitAnswer)
			api.GET("/dashboard", cfg.StudyHandler.Dashboard)
			api.GET("/cards/:id/history", cfg.StudyHandler.CardHistory)
		}
	}

	return r
}
