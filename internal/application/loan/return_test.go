package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrower"
	"github.com/xiebiao/library/internal/domain/loan"
)

// checkout 测试辅助:走完整借出流程
func checkout(t *testing.T, env *testEnv, isbn, email string) *LoanResponse {
	t.Helper()
	resp, err := env.checkoutUseCase().Execute(context.Background(), CheckoutRequest{
		ISBN:          isbn,
		BorrowerEmail: email,
		DueDate:       time.Now().Add(14 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("准备借出记录失败: %v", err)
	}
	return resp
}

// TestReturn_Success 测试正常归还
func TestReturn_Success(t *testing.T) {
	env := newTestEnv()
	seedBook(env, "9787111558422", 1)
	seedBorrower(env, "lisi@example.com")
	checkout(t, env, "9787111558422", "lisi@example.com")

	resp, err := env.returnUseCase().Execute(context.Background(), ReturnRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "lisi@example.com",
	})
	if err != nil {
		t.Fatalf("归还失败: %v", err)
	}
	if resp.ReturnedDate == nil {
		t.Error("归还后响应应携带归还日期")
	}
	if env.store.loans[0].IsActive() {
		t.Error("归还后台账记录应为已归还状态")
	}
}

// TestReturn_FreesCapacity 测试归还释放副本
// 归还提交后,同一副本应可再次借出
func TestReturn_FreesCapacity(t *testing.T) {
	env := newTestEnv()
	seedBook(env, "9787111558422", 1)
	seedBorrower(env, "lisi@example.com")
	seedBorrower(env, "wangwu@example.com")
	checkout(t, env, "9787111558422", "lisi@example.com")

	// 副本已借空
	_, err := env.checkoutUseCase().Execute(context.Background(), CheckoutRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "wangwu@example.com",
		DueDate:       time.Now().Add(7 * 24 * time.Hour),
	})
	if !errors.Is(err, loan.ErrNoAvailableCopies) {
		t.Fatalf("期望ErrNoAvailableCopies，实际为%v", err)
	}

	// 归还后再次借出应成功
	if _, err := env.returnUseCase().Execute(context.Background(), ReturnRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "lisi@example.com",
	}); err != nil {
		t.Fatalf("归还失败: %v", err)
	}
	if _, err := env.checkoutUseCase().Execute(context.Background(), CheckoutRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "wangwu@example.com",
		DueDate:       time.Now().Add(7 * 24 * time.Hour),
	}); err != nil {
		t.Errorf("归还后借出应成功，实际失败: %v", err)
	}
}

// TestReturn_NoActiveLoan 测试无在借记录
func TestReturn_NoActiveLoan(t *testing.T) {
	env := newTestEnv()
	seedBook(env, "9787111558422", 1)
	seedBorrower(env, "lisi@example.com")

	_, err := env.returnUseCase().Execute(context.Background(), ReturnRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "lisi@example.com",
	})
	if !errors.Is(err, loan.ErrNoActiveLoan) {
		t.Errorf("期望ErrNoActiveLoan，实际为%v", err)
	}
}

// TestReturn_DoubleReturn 测试重复归还
func TestReturn_DoubleReturn(t *testing.T) {
	env := newTestEnv()
	seedBook(env, "9787111558422", 1)
	seedBorrower(env, "lisi@example.com")
	checkout(t, env, "9787111558422", "lisi@example.com")

	uc := env.returnUseCase()
	if _, err := uc.Execute(context.Background(), ReturnRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "lisi@example.com",
	}); err != nil {
		t.Fatalf("首次归还失败: %v", err)
	}

	_, err := uc.Execute(context.Background(), ReturnRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "lisi@example.com",
	})
	if !errors.Is(err, loan.ErrNoActiveLoan) {
		t.Errorf("重复归还期望ErrNoActiveLoan，实际为%v", err)
	}
}

// TestReturn_SettlesOldestLoan 测试多笔在借时按先借先还结算
func TestReturn_SettlesOldestLoan(t *testing.T) {
	env := newTestEnv()
	b := seedBook(env, "9787111558422", 2)
	br := seedBorrower(env, "lisi@example.com")

	// 手工构造两笔借出时间不同的在借记录
	older, _ := loan.NewLoan(b.ID, br.ID, time.Now().Add(-48*time.Hour), time.Now().Add(7*24*time.Hour))
	newer, _ := loan.NewLoan(b.ID, br.ID, time.Now().Add(-24*time.Hour), time.Now().Add(7*24*time.Hour))
	env.loanRepo.Create(context.Background(), older)
	env.loanRepo.Create(context.Background(), newer)

	resp, err := env.returnUseCase().Execute(context.Background(), ReturnRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "lisi@example.com",
	})
	if err != nil {
		t.Fatalf("归还失败: %v", err)
	}
	if resp.ID != older.ID {
		t.Errorf("应结算最早借出的记录%d，实际结算了%d", older.ID, resp.ID)
	}
	if !newer.IsActive() {
		t.Error("较晚借出的记录应保持在借状态")
	}
}

// TestReturn_BookNotFound 测试图书不存在
func TestReturn_BookNotFound(t *testing.T) {
	env := newTestEnv()
	seedBorrower(env, "lisi@example.com")

	_, err := env.returnUseCase().Execute(context.Background(), ReturnRequest{
		ISBN:          "0000000000000",
		BorrowerEmail: "lisi@example.com",
	})
	if !errors.Is(err, book.ErrBookNotFound) {
		t.Errorf("期望ErrBookNotFound，实际为%v", err)
	}
}

// TestReturn_BorrowerNotFound 测试借阅人不存在
func TestReturn_BorrowerNotFound(t *testing.T) {
	env := newTestEnv()
	seedBook(env, "9787111558422", 1)

	_, err := env.returnUseCase().Execute(context.Background(), ReturnRequest{
		ISBN:          "9787111558422",
		BorrowerEmail: "nobody@example.com",
	})
	if !errors.Is(err, borrower.ErrBorrowerNotFound) {
		t.Errorf("期望ErrBorrowerNotFound，实际为%v", err)
	}
}
