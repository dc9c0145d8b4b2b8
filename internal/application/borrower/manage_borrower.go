package borrower

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/borrower"
)

// 时间格式
const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// ManageBorrowerUseCase 借阅人管理用例
// 设计说明:
// 1. 注册/查询/更新/删除/列表全量收在一个用例里,
//    借阅人没有复杂的业务规则,拆成多个用例反而啰嗦
// 2. 邮箱是借阅人的业务标识,所有按人操作都以邮箱寻址
type ManageBorrowerUseCase struct {
	borrowerService borrower.Service
}

// NewManageBorrowerUseCase 创建借阅人管理用例
func NewManageBorrowerUseCase(borrowerService borrower.Service) *ManageBorrowerUseCase {
	return &ManageBorrowerUseCase{
		borrowerService: borrowerService,
	}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Name           string     // 姓名
	Email          string     // 邮箱(唯一)
	RegisteredDate *time.Time // 注册日期(可选,缺省为当前时间)
}

// BorrowerResponse 借阅人响应DTO
type BorrowerResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	RegisteredDate string `json:"registered_date"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// toBorrowerResponse 领域实体 → 响应DTO
func toBorrowerResponse(b *borrower.Borrower) *BorrowerResponse {
	return &BorrowerResponse{
		ID:             b.ID,
		Name:           b.Name,
		Email:          b.Email,
		RegisteredDate: b.RegisteredDate.Format(dateLayout),
		CreatedAt:      b.CreatedAt.Format(dateTimeLayout),
		UpdatedAt:      b.UpdatedAt.Format(dateTimeLayout),
	}
}

// Register 注册借阅人
// 邮箱重复由数据库唯一索引保证,Repository转换为ErrEmailDuplicate
func (uc *ManageBorrowerUseCase) Register(ctx context.Context, req RegisterRequest) (*BorrowerResponse, error) {
	var registeredDate time.Time
	if req.RegisteredDate != nil {
		registeredDate = *req.RegisteredDate
	}

	b, err := uc.borrowerService.RegisterBorrower(ctx, req.Name, req.Email, registeredDate)
	if err != nil {
		return nil, err
	}

	return toBorrowerResponse(b), nil
}

// GetByEmail 按邮箱查询借阅人
func (uc *ManageBorrowerUseCase) GetByEmail(ctx context.Context, email string) (*BorrowerResponse, error) {
	b, err := uc.borrowerService.GetBorrowerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toBorrowerResponse(b), nil
}

// Update 按邮箱更新借阅人信息
func (uc *ManageBorrowerUseCase) Update(ctx context.Context, email, name string) (*BorrowerResponse, error) {
	b, err := uc.borrowerService.UpdateBorrower(ctx, email, name)
	if err != nil {
		return nil, err
	}
	return toBorrowerResponse(b), nil
}

// Delete 按邮箱删除借阅人
func (uc *ManageBorrowerUseCase) Delete(ctx context.Context, email string) error {
	return uc.borrowerService.DeleteBorrower(ctx, email)
}

// ListRequest 列表查询请求DTO
type ListRequest struct {
	Page     int // 页码(从1开始)
	PageSize int // 每页数量
}

// ListResponse 列表查询响应DTO
type ListResponse struct {
	List       []*BorrowerResponse `json:"list"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// List 分页查询借阅人列表
func (uc *ManageBorrowerUseCase) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	// 参数默认值与范围限制
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	borrowers, total, err := uc.borrowerService.ListBorrowers(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*BorrowerResponse, len(borrowers))
	for i, b := range borrowers {
		list[i] = toBorrowerResponse(b)
	}

	totalPages := int(total) / req.PageSize
	if int(total)%req.PageSize != 0 {
		totalPages++
	}

	return &ListResponse{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}
