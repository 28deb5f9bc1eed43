package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xinyujieHong/CSEN174-Project/internal/config"
)

// StartHTTPServer boots the REST API and mounts all provided
// registrars under /api. Public routes (signup/signin) skip the auth
// middleware; everything else requires a bearer token.
func StartHTTPServer(cfg *config.Config, registrars ...Registrar) error {
	if cfg.App.ENV != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	authed := api.Group("")
	authed.Use(AuthMiddleware(cfg.Auth.JWTSecret))

	for _, reg := range registrars {
		reg.Register(api, authed)
	}

	addr := fmt.Sprintf("%s:%s", cfg.HTTP.Host, cfg.HTTP.Port)
	return r.Run(addr)
}
