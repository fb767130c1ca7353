package app

import (
	"context"
	"fmt"

	"ansh-apparels/config"
	"ansh-apparels/libs"
	"ansh-apparels/middleware"
	"ansh-apparels/repositories"
	"ansh-apparels/routes"
	"ansh-apparels/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App owns every long-lived resource of the process.
type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
}

// Stores are the storage backends the services run on. Images and Notifier
// are optional and stay nil when not configured.
type Stores struct {
	Users    services.UserStore
	Sessions services.SessionStore
	Products services.ProductStore
	Carts    services.CartStore
	Contacts services.ContactStore
	Bucket   services.BlobBucket
	Images   services.ImageHost
	Cache    services.ProductCache
	Notifier services.ContactNotifier
}

func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := config.RunMigrations(cfg); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	rdb := config.ConnectRedis(ctx, cfg.RedisURL)

	stores := Stores{
		Users:    repositories.NewUserRepository(pool),
		Sessions: repositories.NewSessionRepository(pool),
		Products: repositories.NewProductRepository(pool),
		Carts:    repositories.NewCartRepository(pool),
		Contacts: repositories.NewContactRepository(pool),
		Bucket:   libs.NewBucket(pool),
		Cache:    libs.NewRedisCache(rdb),
	}

	if cfg.CloudinaryURL != "" {
		host, err := libs.NewCloudinaryHost(cfg.CloudinaryURL)
		if err != nil {
			log.Warn().Err(err).Msg("cloudinary disabled, storing uploads in the database")
		} else {
			stores.Images = host
			log.Info().Msg("cloudinary image hosting enabled")
		}
	}

	if cfg.SMTP.Enabled() {
		stores.Notifier = libs.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From, cfg.AdminEmails)
		log.Info().Str("host", cfg.SMTP.Host).Msg("contact notifications enabled")
	}

	return &App{
		Config: cfg,
		Router: NewRouter(cfg, NewServices(cfg, stores)),
		DB:     pool,
		Redis:  rdb,
	}, nil
}

func NewServices(cfg *config.Config, st Stores) routes.Services {
	tokens := libs.NewTokenIssuer(cfg.JWTSecret)
	policy := services.AdminPolicy{Emails: cfg.AdminEmails, InviteCode: cfg.AdminInviteCode}
	files := services.NewFileService(st.Bucket, st.Images, cfg.MaxUploadSize)

	return routes.Services{
		Auth:       services.NewAuthService(st.Users, st.Sessions, tokens, policy),
		Users:      services.NewUserService(st.Users),
		Products:   services.NewProductService(st.Products, st.Cache, files),
		Carts:      services.NewCartService(st.Carts),
		Contacts:   services.NewContactService(st.Contacts, st.Notifier),
		Files:      files,
		Production: cfg.IsProduction(),
	}
}

func NewRouter(cfg *config.Config, svc routes.Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logging())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(gin.Recovery())

	routes.SetupRoutes(router, svc)
	return router
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
	if a.DB != nil {
		a.DB.Close()
		log.Info().Msg("database pool closed")
	}
}
