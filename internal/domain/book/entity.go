package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Book是馆藏目录聚合的根实体
// 2. ISBN作为业务唯一标识(数据库层保证唯一性),由馆员录入时提供
// 3. AvailableQuantity是可借副本数上限(容量上限),
//    借出/归还不修改该字段,实际可借数 = AvailableQuantity - 在借数量
//    (由借阅引擎在事务内推导,避免计数器与台账漂移)
// 4. ShelfLocation是书架位置,纯展示字段
type Book struct {
	ID                uint
	ISBN              string // ISBN号(国际标准书号)
	Title             string // 书名
	Author            string // 作者
	ShelfLocation     string // 书架位置
	AvailableQuantity int    // 可借副本数(容量上限)
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewBook 创建新图书(工厂方法)
// 参数说明:
// - isbn: ISBN号(需调用方先验证格式)
// - title: 书名
// - author: 作者
// - shelfLocation: 书架位置
// - availableQuantity: 可借副本数,必须>=0
func NewBook(isbn, title, author, shelfLocation string, availableQuantity int) *Book {
	now := time.Now()
	return &Book{
		ISBN:              isbn,
		Title:             title,
		Author:            author,
		ShelfLocation:     shelfLocation,
		AvailableQuantity: availableQuantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// UpdateQuantity 调整可借副本数(领域行为)
// 业务规则:副本数不能为负数
func (b *Book) UpdateQuantity(newQuantity int) error {
	if newQuantity < 0 {
		return ErrInvalidQuantity
	}
	b.AvailableQuantity = newQuantity
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息
func (b *Book) UpdateInfo(title, author, shelfLocation string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if shelfLocation != "" {
		b.ShelfLocation = shelfLocation
	}
	b.UpdatedAt = time.Now()
}
