package loan

import (
	"context"
	"time"
)

// Repository 借阅台账仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 借出流程在事务中调用(事务DB通过context传递)
// 3. 台账只增不删:接口刻意不提供Delete
type Repository interface {
	// Create 创建借阅记录
	// 借出事务的最后一步,必须与容量检查在同一事务内
	Create(ctx context.Context, loan *Loan) error

	// CountActiveByBookID 统计某图书的在借数量(returned_date IS NULL)
	// 借出事务内在持有图书行锁后调用,用于推导剩余可借数
	CountActiveByBookID(ctx context.Context, bookID uint) (int64, error)

	// FindActiveByBookAndBorrower 查找某图书/借阅人的在借记录
	// 同一书目允许并发多笔在借,返回最早借出的一笔(归还按先借先还结算)
	FindActiveByBookAndBorrower(ctx context.Context, bookID, borrowerID uint) (*Loan, error)

	// Update 更新借阅记录(仅用于归还,写入returned_date)
	Update(ctx context.Context, loan *Loan) error

	// ListActiveByBorrowerID 查询某借阅人的全部在借记录(联表预加载图书)
	ListActiveByBorrowerID(ctx context.Context, borrowerID uint) ([]*Loan, error)

	// ListOverdue 查询全部逾期记录(在借 且 due_date早于asOf所在日期,联表预加载图书)
	// 日期按天比较,asOf的时分秒不参与
	ListOverdue(ctx context.Context, asOf time.Time) ([]*Loan, error)
}
