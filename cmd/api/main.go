package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	"github.com/xiebiao/pizzeria/pkg/metrics"
	"github.com/xiebiao/pizzeria/pkg/mq"
	"github.com/xiebiao/pizzeria/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入,与wire.go中的Provider声明保持一致
// (运行 wire gen ./cmd/api 可生成等价的wire_gen.go)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 初始化事件发布器(可选)
	var publisher apporder.EventPublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer p.Close()
		publisher = p
		fmt.Println("✓ RabbitMQ连接成功")
	}

	// 6. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	catalogRepo := mysql.NewCatalogRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	catalogCache := redis.NewCatalogCache(redisClient, cfg)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	catalogService := catalog.NewService(catalogRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService, customerRepo, txManager)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	getProfileUseCase := appuser.NewGetProfileUseCase(userRepo, customerRepo)
	updateProfileUseCase := appuser.NewUpdateProfileUseCase(userRepo, customerRepo, txManager)

	listPizzasUseCase := appcatalog.NewListPizzasUseCase(catalogService)
	getPizzaUseCase := appcatalog.NewGetPizzaUseCase(catalogService, catalogCache)
	sidebarUseCase := appcatalog.NewGetSidebarUseCase(catalogService, catalogCache)

	getCartUseCase := appcart.NewGetCartUseCase(cartRepo, catalogRepo)
	addItemUseCase := appcart.NewAddItemUseCase(cartRepo, catalogRepo, txManager)
	changeQtyUseCase := appcart.NewChangeQtyUseCase(cartRepo, catalogRepo, txManager)
	removeItemUseCase := appcart.NewRemoveItemUseCase(cartRepo, catalogRepo, txManager)

	checkoutUseCase := apporder.NewCheckoutUseCase(cartRepo, orderRepo, txManager, publisher)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo, cartRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	updateStatusUseCase := apporder.NewUpdateStatusUseCase(orderRepo, txManager)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, getProfileUseCase, updateProfileUseCase)
	catalogHandler := handler.NewCatalogHandler(listPizzasUseCase, getPizzaUseCase, sidebarUseCase)
	cartHandler := handler.NewCartHandler(getCartUseCase, addItemUseCase, changeQtyUseCase, removeItemUseCase)
	orderHandler := handler.NewOrderHandler(checkoutUseCase, getOrderUseCase, listOrdersUseCase, updateStatusUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)
	customerMiddleware := middleware.NewCustomerMiddleware(customerRepo)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 8. 注册路由
	registerRoutes(r, userHandler, catalogHandler, cartHandler, orderHandler, authMiddleware, customerMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
	customerMiddleware *middleware.CustomerMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块（公开接口）
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 菜单模块（公开接口）
		v1.GET("/pizzas", catalogHandler.ListPizzas)
		v1.GET("/pizzas/:slug", catalogHandler.GetPizza)
		v1.GET("/sidebar", catalogHandler.GetSidebar)

		// 个人资料（需要登录）
		profile := v1.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			profile.GET("", userHandler.GetProfile)
			profile.PUT("", userHandler.UpdateProfile)
		}

		// 购物车模块（需要登录+顾客档案）
		cart := v1.Group("/cart")
		cart.Use(authMiddleware.RequireAuth(), customerMiddleware.ResolveCustomer())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items", cartHandler.ChangeQty)
			cart.DELETE("/items", cartHandler.RemoveItem)
		}

		// 订单模块（需要登录+顾客档案）
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth(), customerMiddleware.ResolveCustomer())
		{
			orders.POST("/checkout", orderHandler.Checkout)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:order_no", orderHandler.GetOrder)
			orders.PUT("/:order_no/status", orderHandler.UpdateStatus)
		}
	}
}
