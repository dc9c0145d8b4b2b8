package loan

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/borrower"
	"github.com/xiebiao/library/internal/domain/loan"
)

// QueryUseCase 借阅查询用例
// 设计说明:
// 1. 纯读路径,不加锁不开事务,直接走仓储
// 2. 两个查询都带出图书信息(Preload),避免前端二次请求
// 3. 逾期判定统一在SQL层做日期截断比较,与实体的IsOverdueAt口径一致
type QueryUseCase struct {
	loanRepo     loan.Repository
	borrowerRepo borrower.Repository
}

// NewQueryUseCase 创建借阅查询用例
func NewQueryUseCase(loanRepo loan.Repository, borrowerRepo borrower.Repository) *QueryUseCase {
	return &QueryUseCase{
		loanRepo:     loanRepo,
		borrowerRepo: borrowerRepo,
	}
}

// ListBorrowerLoans 查询借阅人当前在借的全部图书
// 借阅人不存在时返回ErrBorrowerNotFound,与借出/归还的口径一致
func (uc *QueryUseCase) ListBorrowerLoans(ctx context.Context, email string) ([]*LoanResponse, error) {
	br, err := uc.borrowerRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	loans, err := uc.loanRepo.ListActiveByBorrowerID(ctx, br.ID)
	if err != nil {
		return nil, err
	}

	return toLoanResponses(loans), nil
}

// ListOverdueLoans 查询全部逾期未还的借阅记录
// 逾期 = 在借 且 应还日期早于今天(到期当天不算逾期)
func (uc *QueryUseCase) ListOverdueLoans(ctx context.Context) ([]*LoanResponse, error) {
	loans, err := uc.loanRepo.ListOverdue(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return toLoanResponses(loans), nil
}
