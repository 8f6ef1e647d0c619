package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/internal/config"
	httpx "github.com/Heisenberg-Vader/Auction-Website/internal/http"
	"github.com/Heisenberg-Vader/Auction-Website/internal/http/handlers"
	"github.com/Heisenberg-Vader/Auction-Website/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.VerifySvc, cfg.FrontendURL, cfg.SessionTTL)
	authMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, authMW, c.Limiter, cfg.CORSOrigins)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
