// Package provider wires repositories, stores, and services into one
// dependency container handed to the HTTP layer.
package provider

import (
	"gorm.io/gorm"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/kvstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/localstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/queue"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
)

// Container carries every service the handlers need.
type Container struct {
	Cfg *config.Config

	KV    kvstore.Store
	Local *localstore.Store

	Catalog    *service.CatalogService
	Categories *service.CategoryService
	Cart       *service.CartService
	Banners    *service.BannerService
	Auth       *service.AuthService
	AdminAuth  *service.AdminAuthService
	Captcha    *service.CaptchaService
	Orders     *service.OrderService

	Queue *queue.Client
}

// New builds the container. Redis backs the kvstore and queue when enabled;
// otherwise everything runs on in-process stores, which is the default for
// single-node deployments.
func New(cfg *config.Config, db *gorm.DB) (*Container, error) {
	var kv kvstore.Store
	if cfg.Redis.Enabled {
		redisKV, err := kvstore.NewRedisStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		kv = redisKV
		logger.Infow("kvstore_backend", "backend", "redis")
	} else {
		kv = kvstore.NewMemoryStore()
		logger.Infow("kvstore_backend", "backend", "memory")
	}

	local := localstore.New(kv)

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		queueClient = queue.NewClient(&cfg.Queue)
	}

	catalog := service.NewCatalogService(repository.NewProductRepository(db), local)
	cart := service.NewCartService(repository.NewCartRepository(db), catalog)

	var notifier service.OrderNotifier
	if queueClient != nil {
		notifier = queueClient
	}

	return &Container{
		Cfg:        cfg,
		KV:         kv,
		Local:      local,
		Catalog:    catalog,
		Categories: service.NewCategoryService(repository.NewCategoryRepository(db), local),
		Cart:       cart,
		Banners:    service.NewBannerService(repository.NewBannerRepository(db)),
		Auth: service.NewAuthService(
			repository.NewUserRepository(db),
			repository.NewResetCodeRepository(db),
			cfg.UserJWT,
			cfg.Security.PasswordPolicy,
		),
		AdminAuth: service.NewAdminAuthService(repository.NewAdminRepository(db), cfg.JWT),
		Captcha:   service.NewCaptchaService(cfg.Captcha),
		Orders:    service.NewOrderService(repository.NewOrderRepository(db), cart, notifier),
		Queue:     queueClient,
	}, nil
}

// Close releases container-held resources.
func (c *Container) Close() {
	if c.Queue != nil {
		c.Queue.Close()
	}
}
