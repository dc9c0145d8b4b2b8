package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	// ErrInvalidQuantity 无效的副本数
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "副本数不能为负数")

	// ErrHasActiveLoans 图书尚有未归还的借阅记录,不允许删除
	ErrHasActiveLoans = apperrors.New(apperrors.ErrCodeBookHasActiveLoans, "图书尚有未归还的借阅记录")
)
