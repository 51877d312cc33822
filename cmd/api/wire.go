//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 使用方式：
// Step 1: 维护本文件中的Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如NewCartRepository）
// - Injector: 声明最终要构造的目标类型（*gin.Engine）
// - wire.Bind: 把接口绑定到具体实现

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appcart "github.com/xiebiao/pizzeria/internal/application/cart"
	appcatalog "github.com/xiebiao/pizzeria/internal/application/catalog"
	apporder "github.com/xiebiao/pizzeria/internal/application/order"
	appuser "github.com/xiebiao/pizzeria/internal/application/user"
	"github.com/xiebiao/pizzeria/internal/domain/catalog"
	"github.com/xiebiao/pizzeria/internal/domain/user"
	"github.com/xiebiao/pizzeria/internal/infrastructure/config"
	"github.com/xiebiao/pizzeria/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/pizzeria/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/pizzeria/internal/interface/http/handler"
	"github.com/xiebiao/pizzeria/internal/interface/http/middleware"
	"github.com/xiebiao/pizzeria/pkg/jwt"
	"github.com/xiebiao/pizzeria/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,     // 用户仓储
	mysql.NewCustomerRepository, // 顾客仓储
	mysql.NewCatalogRepository,  // 目录仓储
	mysql.NewCartRepository,     // 购物车仓储
	mysql.NewOrderRepository,    // 订单仓储
	mysql.NewTxManager,          // 事务管理器
	// 各应用层包以本地接口消费事务管理器
	wire.Bind(new(appuser.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appcart.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(apporder.TxManager), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,    // 用户领域服务
	catalog.NewService, // 目录领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,      // 注册用例
	appuser.NewLoginUseCase,         // 登录用例
	appuser.NewLogoutUseCase,        // 登出用例
	appuser.NewGetProfileUseCase,    // 查询资料用例
	appuser.NewUpdateProfileUseCase, // 更新资料用例

	appcatalog.NewListPizzasUseCase, // 披萨列表用例
	appcatalog.NewGetPizzaUseCase,   // 披萨详情用例
	appcatalog.NewGetSidebarUseCase, // 侧边栏用例

	appcart.NewGetCartUseCase,    // 查询购物车用例
	appcart.NewAddItemUseCase,    // 加购用例
	appcart.NewChangeQtyUseCase,  // 修改数量用例
	appcart.NewRemoveItemUseCase, // 移除条目用例

	apporder.NewCheckoutUseCase,     // 结算用例
	apporder.NewGetOrderUseCase,     // 订单详情用例
	apporder.NewListOrdersUseCase,   // 订单历史用例
	apporder.NewUpdateStatusUseCase, // 状态流转用例

	providePublisher, // 订单事件发布器(可关闭)
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,                // JWT管理器（需要从config提取参数）
	provideSessionStore,              // Session存储
	redis.NewCatalogCache,            // 目录缓存
	middleware.NewAuthMiddleware,     // 认证中间件
	middleware.NewCustomerMiddleware, // 顾客解析中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,    // 用户处理器
	handler.NewCatalogHandler, // 菜单处理器
	handler.NewCartHandler,    // 购物车处理器
	handler.NewOrderHandler,   // 订单处理器
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// providePublisher 从配置创建事件发布器,MQ未启用时返回nil
func providePublisher(cfg *config.Config) (apporder.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
	customerMiddleware *middleware.CustomerMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())

	// 路由注册与main.go共用同一份声明(含/ping、/metrics、/swagger)
	registerRoutes(r, userHandler, catalogHandler, cartHandler, orderHandler, authMiddleware, customerMiddleware)

	return r
}

// InitializeApp 初始化整个应用
// Wire会按依赖链的正确顺序生成所有构造函数的调用代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
