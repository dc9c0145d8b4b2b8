package loan

import (
	"time"

	"github.com/xiebiao/library/internal/domain/book"
)

// Loan 借阅台账实体(聚合根)
// 设计说明:
// 1. Loan是借阅引擎唯一拥有写权限的实体,只在借出时创建,归还时更新,
//    永远不会删除(台账可审计)
// 2. 状态机:在借 -[归还]-> 已归还(终态),没有其他迁移,
//    "在借"的判定标准是ReturnedDate为nil,不另存状态字段(避免双写漂移)
// 3. 跨聚合只保存BookID/BorrowerID外键;Book字段仅在联表查询结果中填充,
//    用于展示,不参与任何业务判定
type Loan struct {
	ID           uint
	BookID       uint       // 图书ID(外键)
	BorrowerID   uint       // 借阅人ID(外键)
	BorrowedDate time.Time  // 借出日期(缺省为创建时刻)
	DueDate      time.Time  // 应还日期
	ReturnedDate *time.Time // 归还日期(nil表示在借)

	// Book 联表查询时预加载的图书信息(只读展示)
	Book *book.Book

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLoan 创建新借阅记录(工厂方法)
// 业务规则:
// - borrowedDate为零值时缺省为当前时间
// - dueDate不能早于borrowedDate
func NewLoan(bookID, borrowerID uint, borrowedDate, dueDate time.Time) (*Loan, error) {
	now := time.Now()
	if borrowedDate.IsZero() {
		borrowedDate = now
	}
	if dueDate.Before(borrowedDate) {
		return nil, ErrInvalidDueDate
	}
	return &Loan{
		BookID:       bookID,
		BorrowerID:   borrowerID,
		BorrowedDate: borrowedDate,
		DueDate:      dueDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsActive 是否在借
// 判定标准:ReturnedDate为nil
func (l *Loan) IsActive() bool {
	return l.ReturnedDate == nil
}

// IsOverdueAt 在指定时刻是否逾期
// 业务规则:在借 且 应还日期(按天截断)早于当天,时分秒不参与比较
func (l *Loan) IsOverdueAt(now time.Time) bool {
	if !l.IsActive() {
		return false
	}
	due := truncateToDate(l.DueDate)
	today := truncateToDate(now)
	return due.Before(today)
}

// Return 归还(领域行为)
// 状态机唯一的迁移:在借 → 已归还(终态)
func (l *Loan) Return(returnedAt time.Time) error {
	if !l.IsActive() {
		return ErrNoActiveLoan
	}
	l.ReturnedDate = &returnedAt
	l.UpdatedAt = returnedAt
	return nil
}

// truncateToDate 截断到日期(去掉时分秒)
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
