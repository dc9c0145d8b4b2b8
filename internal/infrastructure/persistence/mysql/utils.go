package mysql

import (
	"errors"
	"strings"

	gosqlmysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL错误码
const (
	mysqlErrDuplicateEntry  = 1062 // Duplicate entry 'xxx' for key 'yyy'
	mysqlErrLockWaitTimeout = 1205 // Lock wait timeout exceeded
	mysqlErrDeadlock        = 1213 // Deadlock found when trying to get lock
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 驱动层错误码判断
	var mysqlErr *gosqlmysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}
	// 兼容检查:错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}

// IsLockConflict 判断是否为锁冲突错误(死锁/锁等待超时)
// 说明:
// 1. 并发借出在同一图书行上竞争FOR UPDATE锁,InnoDB可能回滚其中一个事务
// 2. 这类失败不是业务结果,借出用例据此透明重试一次(相当于容量检查重新跑一遍)
func IsLockConflict(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *gosqlmysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDeadlock || mysqlErr.Number == mysqlErrLockWaitTimeout
	}
	// 兼容检查:部分驱动版本只透出错误信息
	msg := err.Error()
	return strings.Contains(msg, "Deadlock found") || strings.Contains(msg, "Lock wait timeout")
}
