// Package router assembles the Gin engine and route table.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "disaster_backend/internal/feature/auth/transport/handler"
	chathandler "disaster_backend/internal/feature/chatbot/transport/handler"
	disasterhandler "disaster_backend/internal/feature/disasterinfo/transport/handler"
	soshandler "disaster_backend/internal/feature/sos/transport/handler"
	"disaster_backend/internal/platform/http/handler"
	"disaster_backend/internal/platform/http/middleware"
)

// NewRouter builds the route table. staticDir holds the prebuilt front-end
// assets; unknown paths fall back to its index.html.
func NewRouter(auth *authhandler.AuthHandler, sos *soshandler.SOSHandler,
	disaster *disasterhandler.DisasterHandler, chat *chathandler.ChatHandler,
	staticDir string) *gin.Engine {
	r := gin.Default()

	// The front-end calls the API from other origins during development
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Read-only disaster dataset, loaded once at startup
	r.GET("/api/disaster_data", disaster.Data)
	r.GET("/api/disaster_info/:type", disaster.Info)

	// All POST endpoints require a JSON body
	jsonOnly := r.Group("/", middleware.RequireJSON())
	{
		jsonOnly.POST("/api/signup", auth.Signup)
		jsonOnly.POST("/api/login", auth.Login)
		jsonOnly.POST("/api/sos", sos.Submit)
		jsonOnly.POST("/chat", chat.Chat)
	}

	// Everything else is the static front-end, with index.html as the fallback
	// for client-side routes.
	r.NoRoute(staticFallback(staticDir))

	return r
}

// staticFallback serves files from staticDir and falls back to index.html for
// paths that do not exist on disk.
func staticFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		rel := strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/")
		target := filepath.Join(staticDir, rel)
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			c.File(target)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
