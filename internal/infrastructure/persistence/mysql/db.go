package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 表结构与外键关系在启动时一次性显式建立(autoMigrate),
//    服务开始接受请求前完成,运行期不再有任何schema操作
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 初始化表结构
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 初始化表结构
// 说明：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. 生产环境应使用版本化的迁移脚本，不要依赖AutoMigrate
func autoMigrate(db *gorm.DB) error {
	// 注意：这里使用GORM的模型定义（带tag），不是domain层的实体
	// 外键先建被引用表,再建loans
	return db.AutoMigrate(
		&BookModel{},
		&BorrowerModel{},
		&LoanModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,domain/book/entity.go是领域实体,
//    Repository负责两者之间的转换
// 2. ISBN有唯一索引,防止重复
// 3. AvailableQuantity是容量上限,借出/归还不写该列,
//    剩余可借数由"上限-在借数"在事务内推导
type BookModel struct {
	ID                uint           `gorm:"primaryKey"`
	ISBN              string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title             string         `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author            string         `gorm:"index:idx_search;size:100;not null;comment:作者"`
	ShelfLocation     string         `gorm:"size:50;comment:书架位置"`
	AvailableQuantity int            `gorm:"default:1;comment:可借副本数(容量上限)"`
	CreatedAt         time.Time      `gorm:"comment:创建时间"`
	UpdatedAt         time.Time      `gorm:"comment:更新时间"`
	DeletedAt         gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BorrowerModel GORM借阅人模型
// 设计说明:
// 1. Email有唯一索引,借阅流程凭邮箱定位借阅人
// 2. RegisteredDate缺省为注册时刻(应用层填充)
type BorrowerModel struct {
	ID             uint           `gorm:"primaryKey"`
	Name           string         `gorm:"size:100;not null;comment:姓名"`
	Email          string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	RegisteredDate time.Time      `gorm:"not null;comment:注册日期"`
	CreatedAt      time.Time      `gorm:"comment:创建时间"`
	UpdatedAt      time.Time      `gorm:"comment:更新时间"`
	DeletedAt      gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BorrowerModel) TableName() string {
	return "borrowers"
}

// LoanModel GORM借阅台账模型
// 设计说明:
// 1. BookID/BorrowerID外键关联books/borrowers表,关系在模型上显式声明,
//    由启动时的autoMigrate一次性建立(不在运行期做任何关系装配)
// 2. idx_book_active复合索引覆盖借出路径最热的查询:
//    SELECT COUNT(*) WHERE book_id = ? AND returned_date IS NULL
// 3. ReturnedDate为NULL表示在借;台账只增不删,没有DeletedAt
type LoanModel struct {
	ID           uint       `gorm:"primaryKey"`
	BookID       uint       `gorm:"index:idx_book_active;not null;comment:图书ID"`
	BorrowerID   uint       `gorm:"index;not null;comment:借阅人ID"`
	BorrowedDate time.Time  `gorm:"not null;comment:借出日期"`
	DueDate      time.Time  `gorm:"index;not null;comment:应还日期"`
	ReturnedDate *time.Time `gorm:"index:idx_book_active;comment:归还日期(NULL表示在借)"`

	// 外键关联(联表查询时Preload使用)
	Book     BookModel     `gorm:"foreignKey:BookID"`
	Borrower BorrowerModel `gorm:"foreignKey:BorrowerID"`

	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "loans"
}
