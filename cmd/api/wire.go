//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/marketplace/internal/application/catalog"
	"github.com/xiebiao/marketplace/internal/application/contact"
	appproduct "github.com/xiebiao/marketplace/internal/application/product"
	appreview "github.com/xiebiao/marketplace/internal/application/review"
	appuser "github.com/xiebiao/marketplace/internal/application/user"
	"github.com/xiebiao/marketplace/internal/domain/cart"
	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/review"
	"github.com/xiebiao/marketplace/internal/domain/user"
	"github.com/xiebiao/marketplace/internal/infrastructure/config"
	"github.com/xiebiao/marketplace/internal/infrastructure/notify"
	"github.com/xiebiao/marketplace/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/marketplace/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/marketplace/internal/interface/http/handler"
	"github.com/xiebiao/marketplace/internal/interface/http/middleware"
	"github.com/xiebiao/marketplace/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、邮件通知
var infrastructureSet = wire.NewSet(
	mysql.NewDB,
	redis.NewClient,
	notify.NewMailer,
	provideSessionStore,
	provideCartStore,
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
	wire.Bind(new(cart.Checker), new(*redis.CartStore)),
)

var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewCategoryRepository,
	mysql.NewProductRepository,
	mysql.NewVariationRepository,
	mysql.NewReviewRepository,
	mysql.NewMessageRepository,
	mysql.NewTxManager,
	wire.Bind(new(appproduct.TxManager), new(*mysql.TxManager)),
)

var domainSet = wire.NewSet(
	user.NewService,
	product.NewService,
	review.NewService,
)

var applicationSet = wire.NewSet(
	provideJWTManager,
	provideCatalogOptions,
	provideContactOptions,
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	catalog.NewStoreListUseCase,
	catalog.NewSearchUseCase,
	catalog.NewSellerProfileUseCase,
	catalog.NewCategoryUseCase,
	appproduct.NewProductDetailUseCase,
	appproduct.NewCreateProductUseCase,
	appproduct.NewUpdateProductUseCase,
	appproduct.NewDeleteProductUseCase,
	appproduct.NewModerateProductUseCase,
	appproduct.NewVariationUseCase,
	appreview.NewReviewUseCase,
	contact.NewContactSellerUseCase,
	contact.NewGetMessageUseCase,
)

var interfaceSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewStoreHandler,
	handler.NewReviewHandler,
	handler.NewSellerHandler,
	handler.NewProductHandler,
	handler.NewAdminHandler,
	middleware.NewAuthMiddleware,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按依赖的逆序关闭邮件发布者、Redis、数据库
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
