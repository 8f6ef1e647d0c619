package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
	"github.com/Heisenberg-Vader/Auction-Website/internal/config"
	"github.com/Heisenberg-Vader/Auction-Website/internal/infrastructure/auth"
	"github.com/Heisenberg-Vader/Auction-Website/internal/infrastructure/database"
	"github.com/Heisenberg-Vader/Auction-Website/internal/infrastructure/notifications"
	"github.com/Heisenberg-Vader/Auction-Website/internal/infrastructure/ratelimit"
	"github.com/Heisenberg-Vader/Auction-Website/internal/infrastructure/repositories"
	"github.com/Heisenberg-Vader/Auction-Website/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	AccountRepo domain.AccountRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Mailer      domain.Mailer
	Limiter     domain.RateLimiter
	VerifySvc   domain.VerificationService
	AuthSvc     domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initServices()
	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initServices() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer)
	c.Mailer = notifications.NewSMTPService(notifications.SMTPConfig{
		Host:          c.Config.SMTPHost,
		Port:          c.Config.SMTPPort,
		Username:      c.Config.SMTPUsername,
		Password:      c.Config.SMTPPassword,
		From:          c.Config.SMTPFrom,
		VerifyURLBase: c.Config.VerifyURL,
	})
	c.Limiter = ratelimit.NewRedisLimiter(c.RedisClient, map[string]ratelimit.Policy{
		ratelimit.PolicyGeneral: {Window: c.Config.RateLimitGeneral.Window, Max: c.Config.RateLimitGeneral.Max},
		ratelimit.PolicyAuth:    {Window: c.Config.RateLimitAuth.Window, Max: c.Config.RateLimitAuth.Max},
	})

	c.VerifySvc = services.NewVerificationService(c.AccountRepo, c.Mailer)
	c.AuthSvc = services.NewAuthService(c.AccountRepo, c.PasswordSvc, c.TokenSvc, c.VerifySvc, services.AuthConfig{
		SessionTTL:       c.Config.SessionTTL,
		LockoutThreshold: c.Config.LockoutThreshold,
		LockoutDuration:  c.Config.LockoutDuration,
	})
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
