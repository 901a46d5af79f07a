package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/xiebiao/marketplace/internal/application/catalog"
	"github.com/xiebiao/marketplace/internal/application/contact"
	"github.com/xiebiao/marketplace/internal/infrastructure/config"
	"github.com/xiebiao/marketplace/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/marketplace/pkg/jwt"
)

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

func provideCartStore(client *goredis.Client) *redis.CartStore {
	return redis.NewCartStore(client)
}

func provideCatalogOptions(cfg *config.Config) catalog.Options {
	return catalog.Options{
		PageSize:       cfg.Catalog.PageSize,
		SellerPageSize: cfg.Catalog.SellerPageSize,
	}
}

func provideContactOptions(cfg *config.Config) contact.Options {
	return contact.Options{
		From:    cfg.Mail.From,
		Timeout: cfg.Mail.Timeout,
	}
}
