package loan

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrower"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/pkg/metrics"
)

// CheckoutUseCase 借出用例
// 这是整个项目最核心的用例:
// 涉及事务处理、并发控制、业务规则校验
type CheckoutUseCase struct {
	loanRepo     loan.Repository
	bookRepo     book.Repository
	borrowerRepo borrower.Repository
	txManager    TxManager
}

// NewCheckoutUseCase 创建借出用例
func NewCheckoutUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	borrowerRepo borrower.Repository,
	txManager TxManager,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		loanRepo:     loanRepo,
		bookRepo:     bookRepo,
		borrowerRepo: borrowerRepo,
		txManager:    txManager,
	}
}

// CheckoutRequest 借出请求DTO
type CheckoutRequest struct {
	ISBN          string     // 图书ISBN
	BorrowerEmail string     // 借阅人邮箱
	BorrowedDate  *time.Time // 借出日期(可选,缺省为当前时间)
	DueDate       time.Time  // 应还日期(必填)
}

// Execute 执行借出用例
// 核心问题:防止超借
// 场景:某书可借副本只剩1本,两个请求同时借
// 错误实现(分两次独立读):
//  1. 各自查询在借数 → 都读到0
//  2. 各自比对容量 → 都通过
//  3. 各自插台账 → 借出2本(超借1本!)
//
// 正确实现:悲观锁事务
//  1. SELECT ... FOR UPDATE 锁定图书行
//  2. 统计在借数,与容量上限比对
//  3. 解析借阅人
//  4. 插入台账行
//  5. COMMIT释放锁
//
// 后到的事务在步骤1阻塞,等先到的提交后重新统计,
// 读到在借数=1,容量检查失败,返回"无可借副本"。
// 可借数按"容量上限-在借数"推导,不维护单独的递减计数器,
// 计数器与台账之间不存在漂移的可能。
//
// InnoDB判定死锁时会回滚其中一个事务,这类失败不是业务结果,
// 透明重试一次(相当于容量检查重新跑一遍),重试仍失败才返回错误。
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*LoanResponse, error) {
	// 1. 日期规则校验(快速失败,不占事务)
	now := time.Now()
	borrowedDate := defaultBorrowedDate(req.BorrowedDate, now)
	if req.DueDate.Before(borrowedDate) {
		metrics.RecordCheckout(metrics.ResultError)
		return nil, loan.ErrInvalidDueDate
	}

	// 2. 事务执行,锁冲突透明重试一次
	result, err := uc.checkoutOnce(ctx, req, borrowedDate)
	if err != nil && mysql.IsLockConflict(err) {
		metrics.RecordLockConflictRetry()
		result, err = uc.checkoutOnce(ctx, req, borrowedDate)
	}

	if err != nil {
		metrics.RecordCheckout(checkoutResultLabel(err))
		return nil, err
	}

	metrics.RecordCheckout(metrics.ResultSuccess)
	return toLoanResponse(result), nil
}

// checkoutOnce 单次借出事务
func (uc *CheckoutUseCase) checkoutOnce(ctx context.Context, req CheckoutRequest, borrowedDate time.Time) (*loan.Loan, error) {
	var result *loan.Loan

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 步骤1:锁定图书行(悲观锁,防止并发超借)
		// ========================================
		// SELECT * FROM books WHERE isbn = ? FOR UPDATE
		// 其他借出事务必须等待当前事务COMMIT或ROLLBACK
		b, err := uc.bookRepo.LockByISBN(txCtx, req.ISBN)
		if err != nil {
			return err // 图书不存在 → ErrBookNotFound
		}

		// ========================================
		// 步骤2:推导剩余可借数并比对容量
		// ========================================
		// 必须在持有行锁后统计,否则并发插入会让这里读到过期值
		activeCount, err := uc.loanRepo.CountActiveByBookID(txCtx, b.ID)
		if err != nil {
			return err
		}
		if activeCount >= int64(b.AvailableQuantity) {
			return loan.ErrNoAvailableCopies // 无任何写入发生
		}

		// ========================================
		// 步骤3:解析借阅人
		// ========================================
		// 刻意放在容量检查之后:图书不存在/无副本时不触碰借阅人表
		br, err := uc.borrowerRepo.FindByEmail(txCtx, req.BorrowerEmail)
		if err != nil {
			return err // 借阅人不存在 → ErrBorrowerNotFound
		}

		// ========================================
		// 步骤4:创建台账行(事务自动COMMIT)
		// ========================================
		newLoan, err := loan.NewLoan(b.ID, br.ID, borrowedDate, req.DueDate)
		if err != nil {
			return err
		}
		if err := uc.loanRepo.Create(txCtx, newLoan); err != nil {
			return err // 插入失败,整个事务回滚,不留半成品
		}

		result = newLoan
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// checkoutResultLabel 借出错误 → 指标标签
func checkoutResultLabel(err error) string {
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		return metrics.ResultBookNotFound
	case errors.Is(err, borrower.ErrBorrowerNotFound):
		return metrics.ResultBorrowerNotFound
	case errors.Is(err, loan.ErrNoAvailableCopies):
		return metrics.ResultNoAvailableCopy
	default:
		return metrics.ResultError
	}
}
