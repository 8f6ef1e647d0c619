package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
	"github.com/Heisenberg-Vader/Auction-Website/internal/http/handlers"
	"github.com/Heisenberg-Vader/Auction-Website/internal/http/middleware"
	"github.com/Heisenberg-Vader/Auction-Website/internal/infrastructure/ratelimit"
)

// BuildRouter assembles the middleware chain and route table. Order matters:
// requests are rate limited before anything else runs, bodies are sanitized
// before any handler binds them, and CSRF guards every state-changing route
// except login and registration.
func BuildRouter(ah *handlers.AuthHandlers, authmw *middleware.AuthMW, limiter domain.RateLimiter, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", middleware.CsrfHeaderName},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.RateLimit(limiter, ratelimit.PolicyGeneral))
	r.Use(middleware.SanitizeJSON())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/csrf-token", ah.CsrfToken)
	r.GET("/verify", ah.Verify)

	r.POST("/register", middleware.RateLimit(limiter, ratelimit.PolicyAuth), ah.Register)
	r.POST("/login", middleware.RateLimit(limiter, ratelimit.PolicyAuth), ah.Login)

	session := r.Group("/").Use(authmw.WithSession(), middleware.CSRF())
	session.GET("/me", ah.Me)
	session.POST("/logout", ah.Logout)

	return r
}
