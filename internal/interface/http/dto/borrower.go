package dto

// RegisterBorrowerRequest HTTP注册借阅人请求
type RegisterBorrowerRequest struct {
	Name           string `json:"name" binding:"required,max=100" example:"李四"`
	Email          string `json:"email" binding:"required,email,max=200" example:"lisi@example.com"`
	RegisteredDate string `json:"registered_date" binding:"omitempty,datetime=2006-01-02" example:"2024-01-15"` // 缺省为当前日期
}

// UpdateBorrowerRequest HTTP更新借阅人请求
// 邮箱是业务标识不允许修改,只能改姓名
type UpdateBorrowerRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"李四"`
}

// BorrowerResponse HTTP借阅人响应
type BorrowerResponse struct {
	ID             uint   `json:"id" example:"1"`
	Name           string `json:"name" example:"李四"`
	Email          string `json:"email" example:"lisi@example.com"`
	RegisteredDate string `json:"registered_date" example:"2024-01-15"`
	CreatedAt      string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt      string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ListBorrowersRequest HTTP借阅人列表请求
type ListBorrowersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}
