package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/library/docs" // swagger文档注册
	appbook "github.com/xiebiao/library/internal/application/book"
	appborrower "github.com/xiebiao/library/internal/application/borrower"
	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrower"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// @title        图书馆借阅服务 API
// @version      1.0
// @description  图书目录、借阅人与借阅流转的REST接口

// main 主程序入口
// 说明：手动依赖注入（cmd/api/wire.go提供Wire版本）
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
	fmt.Printf("  - 目录缓存: %v\n", cfg.Cache.Enabled)

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化目录缓存(可选)
	// 缓存关闭时catalogCache为nil,目录查询直连数据库
	var catalogCache appbook.CatalogCache
	if cfg.Cache.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		catalogCache = redis.NewCatalogCache(redisClient, cfg.Cache.BookTTL)
		fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())
	}

	// 4. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	borrowerRepo := mysql.NewBorrowerRepository(db)
	loanRepo := mysql.NewLoanRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	// loanRepo同时充当图书删除前的在借数查询
	bookService := book.NewService(bookRepo, loanRepo)
	borrowerService := borrower.NewService(borrowerRepo)

	// 应用层
	manageBookUseCase := appbook.NewManageBookUseCase(bookService, catalogCache)
	queryBookUseCase := appbook.NewQueryBookUseCase(bookService, catalogCache)
	manageBorrowerUseCase := appborrower.NewManageBorrowerUseCase(borrowerService)
	checkoutUseCase := apploan.NewCheckoutUseCase(loanRepo, bookRepo, borrowerRepo, txManager)
	returnUseCase := apploan.NewReturnUseCase(loanRepo, bookRepo, borrowerRepo)
	loanQueryUseCase := apploan.NewQueryUseCase(loanRepo, borrowerRepo)

	// 接口层
	bookHandler := handler.NewBookHandler(manageBookUseCase, queryBookUseCase)
	borrowerHandler := handler.NewBorrowerHandler(manageBorrowerUseCase)
	loanHandler := handler.NewLoanHandler(checkoutUseCase, returnUseCase, loanQueryUseCase)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	// 6. 注册路由
	registerRoutes(r, bookHandler, borrowerHandler, loanHandler)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	borrowerHandler *handler.BorrowerHandler,
	loanHandler *handler.LoanHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus监控指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 图书目录
		books := v1.Group("/books")
		{
			books.POST("", bookHandler.AddBook)
			books.GET("", bookHandler.ListBooks)
			books.GET("/:isbn", bookHandler.GetBook)
			books.PUT("/:isbn", bookHandler.UpdateBook)
			books.DELETE("/:isbn", bookHandler.DeleteBook)
		}

		// 借阅人
		borrowers := v1.Group("/borrowers")
		{
			borrowers.POST("", borrowerHandler.Register)
			borrowers.GET("", borrowerHandler.ListBorrowers)
			borrowers.GET("/:email", borrowerHandler.GetBorrower)
			borrowers.PUT("/:email", borrowerHandler.UpdateBorrower)
			borrowers.DELETE("/:email", borrowerHandler.DeleteBorrower)
		}

		// 借阅流转
		borrows := v1.Group("/borrows")
		{
			borrows.POST("/checkout", loanHandler.Checkout)
			borrows.POST("/return", loanHandler.Return)
			borrows.GET("/borrower/:email", loanHandler.ListBorrowerLoans)
			borrows.GET("/overdue", loanHandler.ListOverdueLoans)
		}
	}
}
