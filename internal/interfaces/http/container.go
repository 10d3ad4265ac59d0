package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"crewhub/internal/infrastructure/auth"
	"crewhub/internal/infrastructure/cache"
	"crewhub/internal/infrastructure/config"
	"crewhub/internal/infrastructure/email"
	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/infrastructure/ratelimit"
	"crewhub/internal/infrastructure/scheduler"
	"crewhub/internal/infrastructure/storage"
	"crewhub/internal/interfaces/http/middleware"
	sharedDB "crewhub/internal/shared/db"
	"crewhub/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases, handlers and
// middleware together, and owns the background scheduler lifecycle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Infrastructure services shared across use cases
	jwtSvc         *auth.JWTService
	tokenService   *jwtServiceAdapter
	passwordHasher *auth.BcryptPasswordHasher
	txManager      *sharedDB.TransactionManager
	emailService   *email.SMTPEmailService
	fileStorage    *storage.S3FileStorage
	catalogCache   *cache.RedisPlanCatalogCache
	enforcer       *permission.Enforcer

	// Middleware
	authMW       *middleware.AuthMiddleware
	permissionMW *middleware.PermissionMiddleware
	rateLimitMW  *middleware.RateLimitMiddleware

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer builds the full dependency graph. The order matters:
// infrastructure first, then repositories, use cases, handlers and
// finally the route table.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initUseCases()
	c.initHandlers()
	c.initMiddleware()

	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	c.setupEngine()
	c.registerRoutes()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	c.jwtSvc = auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.cfg.Auth.JWT.RefreshExpDays,
	)
	c.tokenService = &jwtServiceAdapter{JWTService: c.jwtSvc}
	c.passwordHasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.txManager = sharedDB.NewTransactionManager(c.db)

	inviteBaseURL := c.cfg.Email.InviteURL
	if inviteBaseURL == "" {
		inviteBaseURL = c.cfg.Server.BaseURL
	}
	c.emailService = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     inviteBaseURL,
	})

	fileStorage, err := storage.NewS3FileStorage(ctx, storage.S3Config{
		Region:          c.cfg.Storage.Region,
		Bucket:          c.cfg.Storage.Bucket,
		AccessKeyID:     c.cfg.Storage.AccessKeyID,
		SecretAccessKey: c.cfg.Storage.SecretAccessKey,
		Endpoint:        c.cfg.Storage.Endpoint,
		PublicBaseURL:   c.cfg.Storage.PublicBaseURL,
	}, c.log)
	if err != nil {
		return fmt.Errorf("failed to init file storage: %w", err)
	}
	c.fileStorage = fileStorage

	c.catalogCache = cache.NewRedisPlanCatalogCache(c.redis, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Permission.ModelPath, c.log)
	if err != nil {
		return fmt.Errorf("failed to init permission enforcer: %w", err)
	}
	if err := permission.InitPolicies(enforcer.Casbin(), c.log); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

func (c *Container) initMiddleware() {
	c.authMW = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.user, c.log)
	c.permissionMW = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.rateLimitMW = middleware.NewRateLimitMiddleware(ratelimit.NewRedisRateLimiter(c.redis), c.log)
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to init scheduler: %w", err)
	}
	if err := manager.RegisterBillingJobs(c.ucs.generateInvoices); err != nil {
		return fmt.Errorf("failed to register billing jobs: %w", err)
	}
	c.schedulerManager = manager
	return nil
}

// Engine exposes the configured gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartBackground launches the scheduled jobs.
func (c *Container) StartBackground() {
	c.schedulerManager.Start()
}

// Shutdown stops background jobs and closes shared connections.
func (c *Container) Shutdown(ctx context.Context) error {
	if err := c.schedulerManager.Stop(); err != nil {
		c.log.Errorw("failed to stop scheduler", "error", err)
	}
	if err := c.redis.Close(); err != nil {
		c.log.Errorw("failed to close redis client", "error", err)
	}
	return nil
}
