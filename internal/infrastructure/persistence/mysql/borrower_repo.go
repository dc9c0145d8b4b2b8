package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/borrower"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// borrowerRepository 借阅人仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/borrower/repository.go定义的接口
// 2. 处理邮箱唯一索引冲突,转换为业务错误
type borrowerRepository struct {
	db *gorm.DB
}

// NewBorrowerRepository 创建借阅人仓储
func NewBorrowerRepository(db *gorm.DB) borrower.Repository {
	return &borrowerRepository{db: db}
}

// Create 创建借阅人
func (r *borrowerRepository) Create(ctx context.Context, b *borrower.Borrower) error {
	model := &BorrowerModel{
		Name:           b.Name,
		Email:          b.Email,
		RegisteredDate: b.RegisteredDate,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// 检查是否为邮箱重复错误
		if isDuplicateError(err) {
			return borrower.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建借阅人失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找借阅人
func (r *borrowerRepository) FindByID(ctx context.Context, id uint) (*borrower.Borrower, error) {
	var model BorrowerModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrower.ErrBorrowerNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅人失败")
	}

	return toBorrowerEntity(&model), nil
}

// FindByEmail 根据邮箱查找借阅人
func (r *borrowerRepository) FindByEmail(ctx context.Context, email string) (*borrower.Borrower, error) {
	var model BorrowerModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, borrower.ErrBorrowerNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅人失败")
	}

	return toBorrowerEntity(&model), nil
}

// Update 更新借阅人信息
func (r *borrowerRepository) Update(ctx context.Context, b *borrower.Borrower) error {
	model := &BorrowerModel{
		ID:             b.ID,
		Name:           b.Name,
		Email:          b.Email,
		RegisteredDate: b.RegisteredDate,
		CreatedAt:      b.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return borrower.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "更新借阅人失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除借阅人(软删除)
func (r *borrowerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BorrowerModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除借阅人失败")
	}

	if result.RowsAffected == 0 {
		return borrower.ErrBorrowerNotFound
	}

	return nil
}

// List 分页查询借阅人列表
func (r *borrowerRepository) List(ctx context.Context, page, pageSize int) ([]*borrower.Borrower, int64, error) {
	var models []BorrowerModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BorrowerModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询借阅人总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("registered_date DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询借阅人列表失败")
	}

	borrowers := make([]*borrower.Borrower, len(models))
	for i, model := range models {
		borrowers[i] = toBorrowerEntity(&model)
	}

	return borrowers, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBorrowerEntity GORM模型 → 领域实体
func toBorrowerEntity(model *BorrowerModel) *borrower.Borrower {
	return &borrower.Borrower{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		RegisteredDate: model.RegisteredDate,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
