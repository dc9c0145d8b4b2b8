package loan

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrower"
	"github.com/xiebiao/library/internal/domain/loan"
)

// memStore 内存版存储,模拟MySQL的行为供用例测试使用
// 并发语义:stubTxManager持有全局互斥锁模拟图书行锁,
// 事务函数串行执行,与SELECT FOR UPDATE的效果一致
type memStore struct {
	mu         sync.Mutex
	books      map[string]*book.Book         // key: ISBN
	borrowers  map[string]*borrower.Borrower // key: Email
	loans      []*loan.Loan
	nextLoanID uint
}

func newMemStore() *memStore {
	return &memStore{
		books:      make(map[string]*book.Book),
		borrowers:  make(map[string]*borrower.Borrower),
		nextLoanID: 1,
	}
}

func (s *memStore) addBook(b *book.Book) {
	s.books[b.ISBN] = b
}

func (s *memStore) addBorrower(br *borrower.Borrower) {
	s.borrowers[br.Email] = br
}

// stubTxManager 内存事务管理器
// 互斥锁覆盖整个事务函数,模拟悲观锁下后到事务的等待
type stubTxManager struct {
	store *memStore
}

func (m *stubTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

// stubBookRepo 图书仓储内存实现(仅实现用例触达的方法)
type stubBookRepo struct {
	store *memStore
}

func (r *stubBookRepo) Create(ctx context.Context, b *book.Book) error {
	r.store.addBook(b)
	return nil
}

func (r *stubBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	for _, b := range r.store.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *stubBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	b, ok := r.store.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *stubBookRepo) Update(ctx context.Context, b *book.Book) error {
	r.store.books[b.ISBN] = b
	return nil
}

func (r *stubBookRepo) Delete(ctx context.Context, id uint) error {
	for isbn, b := range r.store.books {
		if b.ID == id {
			delete(r.store.books, isbn)
			return nil
		}
	}
	return book.ErrBookNotFound
}

func (r *stubBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	result := make([]*book.Book, 0, len(r.store.books))
	for _, b := range r.store.books {
		result = append(result, b)
	}
	return result, int64(len(result)), nil
}

// LockByISBN 内存实现与FindByISBN等价
// 锁由stubTxManager的互斥锁承担
func (r *stubBookRepo) LockByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return r.FindByISBN(ctx, isbn)
}

// stubBorrowerRepo 借阅人仓储内存实现
type stubBorrowerRepo struct {
	store *memStore
}

func (r *stubBorrowerRepo) Create(ctx context.Context, br *borrower.Borrower) error {
	r.store.addBorrower(br)
	return nil
}

func (r *stubBorrowerRepo) FindByID(ctx context.Context, id uint) (*borrower.Borrower, error) {
	for _, br := range r.store.borrowers {
		if br.ID == id {
			return br, nil
		}
	}
	return nil, borrower.ErrBorrowerNotFound
}

func (r *stubBorrowerRepo) FindByEmail(ctx context.Context, email string) (*borrower.Borrower, error) {
	br, ok := r.store.borrowers[email]
	if !ok {
		return nil, borrower.ErrBorrowerNotFound
	}
	return br, nil
}

func (r *stubBorrowerRepo) Update(ctx context.Context, br *borrower.Borrower) error {
	r.store.borrowers[br.Email] = br
	return nil
}

func (r *stubBorrowerRepo) Delete(ctx context.Context, id uint) error {
	for email, br := range r.store.borrowers {
		if br.ID == id {
			delete(r.store.borrowers, email)
			return nil
		}
	}
	return borrower.ErrBorrowerNotFound
}

func (r *stubBorrowerRepo) List(ctx context.Context, page, pageSize int) ([]*borrower.Borrower, int64, error) {
	result := make([]*borrower.Borrower, 0, len(r.store.borrowers))
	for _, br := range r.store.borrowers {
		result = append(result, br)
	}
	return result, int64(len(result)), nil
}

// stubLoanRepo 借阅台账仓储内存实现
type stubLoanRepo struct {
	store *memStore
}

func (r *stubLoanRepo) Create(ctx context.Context, l *loan.Loan) error {
	l.ID = r.store.nextLoanID
	r.store.nextLoanID++
	r.store.loans = append(r.store.loans, l)
	return nil
}

func (r *stubLoanRepo) CountActiveByBookID(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	for _, l := range r.store.loans {
		if l.BookID == bookID && l.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *stubLoanRepo) FindActiveByBookAndBorrower(ctx context.Context, bookID, borrowerID uint) (*loan.Loan, error) {
	var candidates []*loan.Loan
	for _, l := range r.store.loans {
		if l.BookID == bookID && l.BorrowerID == borrowerID && l.IsActive() {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		return nil, loan.ErrNoActiveLoan
	}
	// 最早借出的一笔在前
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].BorrowedDate.Before(candidates[j].BorrowedDate)
	})
	// 返回副本,模拟数据库查询的行为(修改副本不影响存储,直到Update)
	found := *candidates[0]
	return &found, nil
}

func (r *stubLoanRepo) Update(ctx context.Context, updated *loan.Loan) error {
	for _, l := range r.store.loans {
		if l.ID == updated.ID {
			// 条件UPDATE:仅在借记录允许写入归还日期
			if !l.IsActive() {
				return loan.ErrNoActiveLoan
			}
			l.ReturnedDate = updated.ReturnedDate
			l.UpdatedAt = updated.UpdatedAt
			return nil
		}
	}
	return loan.ErrNoActiveLoan
}

func (r *stubLoanRepo) ListActiveByBorrowerID(ctx context.Context, borrowerID uint) ([]*loan.Loan, error) {
	var result []*loan.Loan
	for _, l := range r.store.loans {
		if l.BorrowerID == borrowerID && l.IsActive() {
			result = append(result, l)
		}
	}
	return result, nil
}

func (r *stubLoanRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]*loan.Loan, error) {
	var result []*loan.Loan
	for _, l := range r.store.loans {
		if l.IsOverdueAt(asOf) {
			result = append(result, l)
		}
	}
	return result, nil
}

// testEnv 组装一套完整的内存环境
type testEnv struct {
	store        *memStore
	bookRepo     *stubBookRepo
	borrowerRepo *stubBorrowerRepo
	loanRepo     *stubLoanRepo
	txManager    *stubTxManager
}

func newTestEnv() *testEnv {
	store := newMemStore()
	return &testEnv{
		store:        store,
		bookRepo:     &stubBookRepo{store: store},
		borrowerRepo: &stubBorrowerRepo{store: store},
		loanRepo:     &stubLoanRepo{store: store},
		txManager:    &stubTxManager{store: store},
	}
}

func (e *testEnv) checkoutUseCase() *CheckoutUseCase {
	return NewCheckoutUseCase(e.loanRepo, e.bookRepo, e.borrowerRepo, e.txManager)
}

func (e *testEnv) returnUseCase() *ReturnUseCase {
	return NewReturnUseCase(e.loanRepo, e.bookRepo, e.borrowerRepo)
}

func (e *testEnv) queryUseCase() *QueryUseCase {
	return NewQueryUseCase(e.loanRepo, e.borrowerRepo)
}
