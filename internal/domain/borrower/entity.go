package borrower

import (
	"time"
)

// Borrower 借阅人实体(聚合根)
// 设计说明:
// 1. Email作为业务唯一标识(数据库层保证唯一性),借阅流程凭邮箱定位借阅人
// 2. ID为自增主键,借阅台账通过ID建立外键引用
// 3. RegisteredDate缺省为注册时刻
// 4. 对借阅引擎而言本实体是只读的,借出/归还不修改借阅人
type Borrower struct {
	ID             uint
	Name           string // 姓名
	Email          string // 邮箱(业务唯一标识)
	RegisteredDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBorrower 创建新借阅人(工厂方法)
// registeredDate为零值时缺省为当前时间
func NewBorrower(name, email string, registeredDate time.Time) *Borrower {
	now := time.Now()
	if registeredDate.IsZero() {
		registeredDate = now
	}
	return &Borrower{
		Name:           name,
		Email:          email,
		RegisteredDate: registeredDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateInfo 更新借阅人基本信息
// 邮箱是业务标识,不允许通过本方法修改
func (b *Borrower) UpdateInfo(name string) {
	if name != "" {
		b.Name = name
	}
	b.UpdatedAt = time.Now()
}
