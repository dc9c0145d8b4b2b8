package book

import (
	"context"
	"errors"
	"regexp"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装目录管理的业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 借阅引擎不经过本服务,直接通过Repository在事务内访问图书
type Service interface {
	// AddBook 新增图书
	// 业务规则:
	// - ISBN格式必须合法(2-13位数字)
	// - 副本数必须>=0(缺省为1,由传输层填充)
	// - ISBN不能重复
	AddBook(ctx context.Context, isbn, title, author, shelfLocation string, availableQuantity int) (*Book, error)

	// GetBookByISBN 根据ISBN获取图书
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// UpdateBook 按ISBN更新图书信息
	UpdateBook(ctx context.Context, isbn, title, author, shelfLocation string, availableQuantity *int) (*Book, error)

	// DeleteBook 按ISBN删除图书
	// 业务规则:尚有在借记录的图书不允许删除(引用约束)
	DeleteBook(ctx context.Context, isbn string) error

	// ListBooks 查询图书列表(支持按标题/作者/ISBN过滤)
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// ActiveLoanCounter 在借数量查询
// 设计说明:删除图书前需要确认没有在借记录,
// 但domain/book不能依赖domain/loan(避免聚合间循环依赖),
// 由应用层注入查询函数
type ActiveLoanCounter interface {
	CountActiveByBookID(ctx context.Context, bookID uint) (int64, error)
}

// service 领域服务实现
type service struct {
	repo        Repository
	loanCounter ActiveLoanCounter
}

// NewService 创建图书领域服务
func NewService(repo Repository, loanCounter ActiveLoanCounter) Service {
	return &service{repo: repo, loanCounter: loanCounter}
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, isbn, title, author, shelfLocation string, availableQuantity int) (*Book, error) {
	// 1. ISBN格式校验
	if !IsValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	// 2. 副本数校验
	if availableQuantity < 0 {
		return nil, ErrInvalidQuantity
	}

	// 3. 创建图书实体
	b := NewBook(isbn, title, author, shelfLocation, availableQuantity)

	// 4. 持久化(Repository会把唯一索引冲突转换为ErrISBNDuplicate)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	if !IsValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}
	return s.repo.FindByISBN(ctx, isbn)
}

// UpdateBook 按ISBN更新图书信息
// availableQuantity为nil表示不修改副本数
func (s *service) UpdateBook(ctx context.Context, isbn, title, author, shelfLocation string, availableQuantity *int) (*Book, error) {
	// 1. 查询图书
	b, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	// 2. 更新信息
	b.UpdateInfo(title, author, shelfLocation)
	if availableQuantity != nil {
		if err := b.UpdateQuantity(*availableQuantity); err != nil {
			return nil, err
		}
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 按ISBN删除图书
func (s *service) DeleteBook(ctx context.Context, isbn string) error {
	// 1. 查询图书
	b, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}

	// 2. 引用约束:在借记录未清零不允许删除
	active, err := s.loanCounter.CountActiveByBookID(ctx, b.ID)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHasActiveLoans
	}

	// 3. 执行删除(软删除)
	return s.repo.Delete(ctx, b.ID)
}

// ListBooks 查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// IsNotFound 判断是否为图书不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookNotFound)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

var isbnPattern = regexp.MustCompile(`^[0-9]{2,13}$`)

// IsValidISBN 校验ISBN格式
// 规则:2-13位纯数字(与录入校验保持一致,不校验校验位)
func IsValidISBN(isbn string) bool {
	return isbnPattern.MatchString(isbn)
}
