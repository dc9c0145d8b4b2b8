package loan

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/loan"
)

// 时间格式
const (
	dateTimeLayout = "2006-01-02 15:04:05"
)

// TxManager 事务执行接口
// 设计说明:
// 1. 由应用层声明需要的最小能力,mysql.TxManager是生产实现
// 2. 测试中用内存实现替换,借出用例的并发语义可以脱离数据库验证
type TxManager interface {
	// Transaction 在单个事务中执行fn,fn返回error则回滚
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookInfo 借阅响应中的图书信息(联表展示用)
type BookInfo struct {
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ShelfLocation string `json:"shelf_location"`
}

// LoanResponse 借阅记录响应DTO
type LoanResponse struct {
	ID           uint      `json:"id"`
	BookID       uint      `json:"book_id"`
	BorrowerID   uint      `json:"borrower_id"`
	BorrowedDate string    `json:"borrowed_date"`
	DueDate      string    `json:"due_date"`
	ReturnedDate *string   `json:"returned_date"` // null表示在借
	Book         *BookInfo `json:"book,omitempty"`
}

// toLoanResponse 领域实体 → 响应DTO
func toLoanResponse(l *loan.Loan) *LoanResponse {
	resp := &LoanResponse{
		ID:           l.ID,
		BookID:       l.BookID,
		BorrowerID:   l.BorrowerID,
		BorrowedDate: l.BorrowedDate.Format(dateTimeLayout),
		DueDate:      l.DueDate.Format(dateTimeLayout),
	}
	if l.ReturnedDate != nil {
		s := l.ReturnedDate.Format(dateTimeLayout)
		resp.ReturnedDate = &s
	}
	if l.Book != nil {
		resp.Book = &BookInfo{
			ISBN:          l.Book.ISBN,
			Title:         l.Book.Title,
			Author:        l.Book.Author,
			ShelfLocation: l.Book.ShelfLocation,
		}
	}
	return resp
}

// toLoanResponses 批量转换
func toLoanResponses(loans []*loan.Loan) []*LoanResponse {
	responses := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		responses[i] = toLoanResponse(l)
	}
	return responses
}

// defaultBorrowedDate 借出日期缺省处理
func defaultBorrowedDate(borrowedDate *time.Time, now time.Time) time.Time {
	if borrowedDate == nil || borrowedDate.IsZero() {
		return now
	}
	return *borrowedDate
}
