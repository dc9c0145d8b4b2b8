package loan

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 借阅领域错误定义
// 设计说明:引擎的所有失败都是输入/状态的确定性结果,
// 用带类型的错误区分种类,传输层据此映射状态码,禁止字符串匹配
var (
	// ErrNoAvailableCopies 无可借副本(在借数量已达到容量上限)
	ErrNoAvailableCopies = apperrors.New(apperrors.ErrCodeNoAvailableCopy, "该图书暂无可借副本")

	// ErrNoActiveLoan 无在借记录(从未借出或已归还)
	ErrNoActiveLoan = apperrors.New(apperrors.ErrCodeNoActiveLoan, "没有找到在借记录或图书已归还")

	// ErrInvalidDueDate 应还日期早于借出日期
	ErrInvalidDueDate = apperrors.New(apperrors.ErrCodeInvalidDueDate, "应还日期不能早于借出日期")
)
