// Package server exposes the analysis pipeline and word collection over a
// JSON REST API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tweetlex/tweetlex/internal/analysis"
	"github.com/tweetlex/tweetlex/internal/notion"
	"github.com/tweetlex/tweetlex/internal/settings"
	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// Server wires the HTTP handlers into a gin engine.
type Server struct {
	engine *gin.Engine
}

// New builds the router with CORS and JWT auth applied to all API routes.
func New(
	jwtSecret string,
	allowedOrigins []string,
	service *analysis.Service,
	words vocabulary.Repository,
	settingsRepo settings.Repository,
	syncer notion.Syncer,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(CORSMiddleware(allowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	analyze := newAnalyzeHandler(service)
	word := newWordHandler(words, syncer)
	userSettings := newSettingsHandler(settingsRepo)

	api := engine.Group("/api")
	api.Use(AuthMiddleware(jwtSecret))
	{
		api.POST("/tweets/analyze", analyze.Analyze)

		api.GET("/words", word.List)
		api.POST("/words/save", word.Save)
		api.DELETE("/words/batch", word.DeleteBatch)
		api.GET("/words/:id", word.Get)
		api.PATCH("/words/:id", word.Update)
		api.DELETE("/words/:id", word.Delete)

		api.GET("/settings", userSettings.Get)
		api.PATCH("/settings", userSettings.Update)
	}

	return &Server{engine: engine}
}

// Handler returns the http.Handler for ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.engine
}
