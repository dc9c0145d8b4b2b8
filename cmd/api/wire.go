//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire在编译期生成依赖组装代码:
// Step 1: 编写wire.go(本文件),定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go,包含完整的依赖创建代码

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/xiebiao/library/internal/application/book"
	appborrower "github.com/xiebiao/library/internal/application/borrower"
	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrower"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load, // 加载配置文件
	mysql.NewDB, // 创建MySQL连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,     // 图书仓储
	mysql.NewBorrowerRepository, // 借阅人仓储
	mysql.NewLoanRepository,     // 借阅台账仓储
	mysql.NewTxManager,          // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,     // 图书领域服务
	borrower.NewService, // 借阅人领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewManageBookUseCase,         // 图书目录维护用例
	appbook.NewQueryBookUseCase,          // 图书目录查询用例
	appborrower.NewManageBorrowerUseCase, // 借阅人管理用例
	apploan.NewCheckoutUseCase,           // 借出用例
	apploan.NewReturnUseCase,             // 归还用例
	apploan.NewQueryUseCase,              // 借阅查询用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,     // 图书处理器
	handler.NewBorrowerHandler, // 借阅人处理器
	handler.NewLoanHandler,     // 借阅处理器
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideActiveLoanCounter 图书领域服务的在借数查询
// 接口到接口的适配Wire无法用wire.Bind表达,需要手写Provider
func provideActiveLoanCounter(repo loan.Repository) book.ActiveLoanCounter {
	return repo
}

// provideTxManager 应用层事务接口的生产实现
func provideTxManager(tm *mysql.TxManager) apploan.TxManager {
	return tm
}

// provideCatalogCache 目录缓存(可选)
// 缓存关闭时返回nil,目录查询直连数据库,Redis连接也不会建立
func provideCatalogCache(cfg *config.Config) (appbook.CatalogCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewCatalogCache(client, cfg.Cache.BookTTL), nil
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	borrowerHandler *handler.BorrowerHandler,
	loanHandler *handler.LoanHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	registerRoutes(r, bookHandler, borrowerHandler, loanHandler)

	return r
}

// InitializeApp 初始化整个应用
// Wire会在wire_gen.go中生成实际的初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideActiveLoanCounter,
		provideTxManager,
		provideCatalogCache,
		provideGinEngine,
	)

	return nil, nil
}
