package book

import (
	"context"
	"errors"
	"testing"

	"github.com/xiebiao/library/internal/domain/book"
)

// stubBookService 领域服务打桩,记录回源次数
type stubBookService struct {
	books     map[string]*book.Book
	findCalls int
}

func newStubBookService() *stubBookService {
	return &stubBookService{books: make(map[string]*book.Book)}
}

func (s *stubBookService) AddBook(ctx context.Context, isbn, title, author, shelfLocation string, availableQuantity int) (*book.Book, error) {
	if _, ok := s.books[isbn]; ok {
		return nil, book.ErrISBNDuplicate
	}
	b := book.NewBook(isbn, title, author, shelfLocation, availableQuantity)
	b.ID = uint(len(s.books) + 1)
	s.books[isbn] = b
	return b, nil
}

func (s *stubBookService) GetBookByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	s.findCalls++
	b, ok := s.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (s *stubBookService) UpdateBook(ctx context.Context, isbn, title, author, shelfLocation string, availableQuantity *int) (*book.Book, error) {
	b, ok := s.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	b.UpdateInfo(title, author, shelfLocation)
	return b, nil
}

func (s *stubBookService) DeleteBook(ctx context.Context, isbn string) error {
	if _, ok := s.books[isbn]; !ok {
		return book.ErrBookNotFound
	}
	delete(s.books, isbn)
	return nil
}

func (s *stubBookService) ListBooks(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	result := make([]*book.Book, 0, len(s.books))
	for _, b := range s.books {
		result = append(result, b)
	}
	return result, int64(len(result)), nil
}

// stubCache 内存版目录缓存
type stubCache struct {
	entries map[string]*book.Book
	sets    int
	dels    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*book.Book)}
}

func (c *stubCache) GetBook(ctx context.Context, isbn string) (*book.Book, error) {
	b, ok := c.entries[isbn]
	if !ok {
		return nil, errors.New("miss")
	}
	return b, nil
}

func (c *stubCache) SetBook(ctx context.Context, b *book.Book) {
	c.entries[b.ISBN] = b
	c.sets++
}

func (c *stubCache) InvalidateBook(ctx context.Context, isbn string) {
	delete(c.entries, isbn)
	c.dels++
}

// TestGetByISBN_CacheAside 测试Cache-Aside读路径
// 首次读回源并回填,二次读命中缓存不再回源
func TestGetByISBN_CacheAside(t *testing.T) {
	svc := newStubBookService()
	svc.AddBook(context.Background(), "9787111558422", "Go程序设计", "张三", "A-1-2", 3)
	cache := newStubCache()
	uc := NewQueryBookUseCase(svc, cache)

	// 首次读:回源 + 回填
	resp, err := uc.GetByISBN(context.Background(), "9787111558422")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if resp.Title != "Go程序设计" {
		t.Errorf("书名不符: %s", resp.Title)
	}
	if svc.findCalls != 1 || cache.sets != 1 {
		t.Errorf("首次读应回源1次并回填1次，实际回源%d次回填%d次", svc.findCalls, cache.sets)
	}

	// 二次读:命中缓存
	if _, err := uc.GetByISBN(context.Background(), "9787111558422"); err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if svc.findCalls != 1 {
		t.Errorf("命中缓存后不应再回源，实际回源%d次", svc.findCalls)
	}
}

// TestGetByISBN_NilCache 测试关闭缓存时直连数据库
func TestGetByISBN_NilCache(t *testing.T) {
	svc := newStubBookService()
	svc.AddBook(context.Background(), "9787111558422", "Go程序设计", "张三", "A-1-2", 3)
	uc := NewQueryBookUseCase(svc, nil)

	for i := 0; i < 2; i++ {
		if _, err := uc.GetByISBN(context.Background(), "9787111558422"); err != nil {
			t.Fatalf("查询失败: %v", err)
		}
	}
	if svc.findCalls != 2 {
		t.Errorf("关闭缓存时每次读都应回源，实际回源%d次", svc.findCalls)
	}
}

// TestGetByISBN_NotFound 测试图书不存在时不回填缓存
func TestGetByISBN_NotFound(t *testing.T) {
	svc := newStubBookService()
	cache := newStubCache()
	uc := NewQueryBookUseCase(svc, cache)

	_, err := uc.GetByISBN(context.Background(), "9787111558422")
	if !errors.Is(err, book.ErrBookNotFound) {
		t.Errorf("期望ErrBookNotFound，实际为%v", err)
	}
	if cache.sets != 0 {
		t.Error("查询失败时不应回填缓存")
	}
}

// TestUpdateBook_InvalidatesCache 测试更新图书后失效缓存
func TestUpdateBook_InvalidatesCache(t *testing.T) {
	svc := newStubBookService()
	svc.AddBook(context.Background(), "9787111558422", "Go程序设计", "张三", "A-1-2", 3)
	cache := newStubCache()

	query := NewQueryBookUseCase(svc, cache)
	manage := NewManageBookUseCase(svc, cache)

	// 预热缓存
	if _, err := query.GetByISBN(context.Background(), "9787111558422"); err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	// 更新后缓存应被失效,下次读回源拿到新书名
	if _, err := manage.UpdateBook(context.Background(), UpdateBookRequest{
		ISBN:  "9787111558422",
		Title: "Go程序设计(第2版)",
	}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if cache.dels != 1 {
		t.Errorf("更新后应失效缓存1次，实际%d次", cache.dels)
	}

	resp, err := query.GetByISBN(context.Background(), "9787111558422")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if resp.Title != "Go程序设计(第2版)" {
		t.Errorf("失效后应读到新书名，实际为%s", resp.Title)
	}
}

// TestDeleteBook_InvalidatesCache 测试删除图书后失效缓存
func TestDeleteBook_InvalidatesCache(t *testing.T) {
	svc := newStubBookService()
	svc.AddBook(context.Background(), "9787111558422", "Go程序设计", "张三", "A-1-2", 3)
	cache := newStubCache()

	query := NewQueryBookUseCase(svc, cache)
	manage := NewManageBookUseCase(svc, cache)

	if _, err := query.GetByISBN(context.Background(), "9787111558422"); err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	if err := manage.DeleteBook(context.Background(), "9787111558422"); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if cache.dels != 1 {
		t.Errorf("删除后应失效缓存1次，实际%d次", cache.dels)
	}

	_, err := query.GetByISBN(context.Background(), "9787111558422")
	if !errors.Is(err, book.ErrBookNotFound) {
		t.Errorf("删除后查询期望ErrBookNotFound，实际为%v", err)
	}
}

// TestList_Defaults 测试列表查询的参数缺省
func TestList_Defaults(t *testing.T) {
	svc := newStubBookService()
	svc.AddBook(context.Background(), "9787111558422", "Go程序设计", "张三", "A-1-2", 3)
	uc := NewQueryBookUseCase(svc, nil)

	resp, err := uc.List(context.Background(), ListBooksRequest{})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if resp.Page != 1 || resp.PageSize != 20 {
		t.Errorf("期望缺省page=1 pageSize=20，实际page=%d pageSize=%d", resp.Page, resp.PageSize)
	}
	if resp.Total != 1 || resp.TotalPages != 1 {
		t.Errorf("分页统计错误: total=%d totalPages=%d", resp.Total, resp.TotalPages)
	}
}
