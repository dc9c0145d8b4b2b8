package borrower

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 借阅人领域错误定义
var (
	// ErrBorrowerNotFound 借阅人不存在
	ErrBorrowerNotFound = apperrors.New(apperrors.ErrCodeBorrowerNotFound, "借阅人不存在")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已被注册")
)
