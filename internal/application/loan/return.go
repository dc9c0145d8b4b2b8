package loan

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrower"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/pkg/metrics"
)

// ReturnUseCase 归还用例
// 设计说明:
// 1. 归还只写一行:带条件的UPDATE(WHERE returned_date IS NULL),
//    单条语句天然原子,不需要显式事务
// 2. 并发重复归还由该条件兜底:后到的UPDATE影响0行 → ErrNoActiveLoan
// 3. 可借数按"容量-在借数"推导,归还不需要恢复任何计数器;
//    归还提交后,后续借出事务统计在借数时自然看到副本已释放
type ReturnUseCase struct {
	loanRepo     loan.Repository
	bookRepo     book.Repository
	borrowerRepo borrower.Repository
}

// NewReturnUseCase 创建归还用例
func NewReturnUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	borrowerRepo borrower.Repository,
) *ReturnUseCase {
	return &ReturnUseCase{
		loanRepo:     loanRepo,
		bookRepo:     bookRepo,
		borrowerRepo: borrowerRepo,
	}
}

// ReturnRequest 归还请求DTO
type ReturnRequest struct {
	ISBN          string // 图书ISBN
	BorrowerEmail string // 借阅人邮箱
}

// Execute 执行归还用例
// 流程:解析借阅人 → 解析图书 → 定位在借记录 → 写入归还日期
// 同一书目存在多笔在借时按先借先还结算最早的一笔
func (uc *ReturnUseCase) Execute(ctx context.Context, req ReturnRequest) (*LoanResponse, error) {
	result, err := uc.execute(ctx, req)
	if err != nil {
		metrics.RecordReturn(returnResultLabel(err))
		return nil, err
	}

	metrics.RecordReturn(metrics.ResultSuccess)
	return toLoanResponse(result), nil
}

func (uc *ReturnUseCase) execute(ctx context.Context, req ReturnRequest) (*loan.Loan, error) {
	// 1. 解析借阅人
	br, err := uc.borrowerRepo.FindByEmail(ctx, req.BorrowerEmail)
	if err != nil {
		return nil, err // 借阅人不存在 → ErrBorrowerNotFound
	}

	// 2. 解析图书
	b, err := uc.bookRepo.FindByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err // 图书不存在 → ErrBookNotFound
	}

	// 3. 定位在借记录
	activeLoan, err := uc.loanRepo.FindActiveByBookAndBorrower(ctx, b.ID, br.ID)
	if err != nil {
		return nil, err // 无在借记录 → ErrNoActiveLoan
	}

	// 4. 状态迁移:在借 → 已归还(终态)
	if err := activeLoan.Return(time.Now()); err != nil {
		return nil, err
	}

	// 5. 持久化(条件UPDATE,并发归还时后到者失败)
	if err := uc.loanRepo.Update(ctx, activeLoan); err != nil {
		return nil, err
	}

	return activeLoan, nil
}

// returnResultLabel 归还错误 → 指标标签
func returnResultLabel(err error) string {
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		return metrics.ResultBookNotFound
	case errors.Is(err, borrower.ErrBorrowerNotFound):
		return metrics.ResultBorrowerNotFound
	case errors.Is(err, loan.ErrNoActiveLoan):
		return metrics.ResultNoActiveLoan
	default:
		return metrics.ResultError
	}
}
