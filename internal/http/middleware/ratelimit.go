package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// RateLimit gates requests through the named policy, keyed by client IP.
// A limiter backend outage fails open: availability of login outranks
// strict limiting.
func RateLimit(limiter domain.RateLimiter, policy string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := limiter.Allow(c.Request.Context(), c.ClientIP(), policy)
		if err != nil {
			if errors.Is(err, domain.ErrRateLimited) {
				c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please try again later."})
				c.Abort()
				return
			}
			log.Printf("rate limiter unavailable (policy=%s): %v", policy, err)
		}
		c.Next()
	}
}
