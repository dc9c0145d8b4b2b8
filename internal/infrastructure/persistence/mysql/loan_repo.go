package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// loanRepository 借阅台账仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/loan/repository.go定义的接口
// 2. 借出路径的Create/CountActiveByBookID通过getDB(ctx)参与事务
// 3. 台账只增不删;归还通过带条件的UPDATE实现,
//    RowsAffected=0表示已被并发归还(第二次归还天然失败)
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository 创建借阅台账仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

// Create 创建借阅记录
// 借出事务的最后一步,必须使用getDB(ctx)参与事务
func (r *loanRepository) Create(ctx context.Context, l *loan.Loan) error {
	model := &LoanModel{
		BookID:       l.BookID,
		BorrowerID:   l.BorrowerID,
		BorrowedDate: l.BorrowedDate,
		DueDate:      l.DueDate,
		ReturnedDate: l.ReturnedDate,
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	// 回填自增ID
	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	l.UpdatedAt = model.UpdatedAt

	return nil
}

// CountActiveByBookID 统计某图书的在借数量
// SELECT COUNT(*) FROM loans WHERE book_id = ? AND returned_date IS NULL
// 借出事务内在持有图书行锁后调用(命中idx_book_active复合索引)
func (r *loanRepository) CountActiveByBookID(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	db := r.getDB(ctx)
	err := db.Model(&LoanModel{}).
		Where("book_id = ? AND returned_date IS NULL", bookID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计在借数量失败")
	}
	return count, nil
}

// FindActiveByBookAndBorrower 查找某图书/借阅人的在借记录
// 同一书目可能并发多笔在借,按先借先还返回最早借出的一笔
func (r *loanRepository) FindActiveByBookAndBorrower(ctx context.Context, bookID, borrowerID uint) (*loan.Loan, error) {
	var model LoanModel
	db := r.getDB(ctx)
	err := db.Where("book_id = ? AND borrower_id = ? AND returned_date IS NULL", bookID, borrowerID).
		Order("borrowed_date ASC").
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNoActiveLoan
		}
		return nil, apperrors.Wrap(err, "查询在借记录失败")
	}

	return toLoanEntity(&model), nil
}

// Update 更新借阅记录(归还)
// 带条件UPDATE:只更新仍在借的行,防止并发归还互相覆盖
// UPDATE loans SET returned_date = ? WHERE id = ? AND returned_date IS NULL
func (r *loanRepository) Update(ctx context.Context, l *loan.Loan) error {
	db := r.getDB(ctx)
	result := db.Model(&LoanModel{}).
		Where("id = ? AND returned_date IS NULL", l.ID).
		Updates(map[string]interface{}{
			"returned_date": l.ReturnedDate,
			"updated_at":    l.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新借阅记录失败")
	}

	if result.RowsAffected == 0 {
		// 行不存在,或已被并发归还
		return loan.ErrNoActiveLoan
	}

	return nil
}

// ListActiveByBorrowerID 查询某借阅人的全部在借记录
// Preload("Book")预加载图书信息用于展示,避免N+1查询
func (r *loanRepository) ListActiveByBorrowerID(ctx context.Context, borrowerID uint) ([]*loan.Loan, error) {
	var models []LoanModel
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("borrower_id = ? AND returned_date IS NULL", borrowerID).
		Order("borrowed_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询在借记录失败")
	}

	return toLoanEntities(models), nil
}

// ListOverdue 查询全部逾期记录
// 日期按天比较:due_date严格早于asOf所在日期的零点才算逾期,
// 与MySQL的 due_date < CURDATE() 口径一致
func (r *loanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*loan.Loan, error) {
	y, m, d := asOf.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, asOf.Location())

	var models []LoanModel
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("returned_date IS NULL AND due_date < ?", today).
		Order("due_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询逾期记录失败")
	}

	return toLoanEntities(models), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toLoanEntity GORM模型 → 领域实体
func toLoanEntity(model *LoanModel) *loan.Loan {
	l := &loan.Loan{
		ID:           model.ID,
		BookID:       model.BookID,
		BorrowerID:   model.BorrowerID,
		BorrowedDate: model.BorrowedDate,
		DueDate:      model.DueDate,
		ReturnedDate: model.ReturnedDate,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	// Preload过的图书信息转换为展示用实体
	if model.Book.ID != 0 {
		l.Book = toBookEntity(&model.Book)
	}
	return l
}

// toLoanEntities 批量转换
func toLoanEntities(models []LoanModel) []*loan.Loan {
	loans := make([]*loan.Loan, len(models))
	for i := range models {
		loans[i] = toLoanEntity(&models[i])
	}
	return loans
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *loanRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db
}
