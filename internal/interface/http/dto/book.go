package dto

// AddBookRequest HTTP新增图书请求
// validator tag说明:
// - required: 必填字段
// - numeric + min/max: ISBN为2-13位数字(min/max对字符串是长度限制)
type AddBookRequest struct {
	ISBN              string `json:"isbn" binding:"required,numeric,min=2,max=13" example:"9787115428028"`
	Title             string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author            string `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	ShelfLocation     string `json:"shelf_location" binding:"omitempty,max=50" example:"A-3-12"`
	AvailableQuantity *int   `json:"available_quantity" binding:"omitempty,min=0" example:"3"` // 缺省为1
}

// UpdateBookRequest HTTP更新图书请求
// 所有字段可选,缺省表示不修改
type UpdateBookRequest struct {
	Title             string `json:"title" binding:"omitempty,max=200" example:"Go语言实战(第2版)"`
	Author            string `json:"author" binding:"omitempty,max=100" example:"威廉·肯尼迪"`
	ShelfLocation     string `json:"shelf_location" binding:"omitempty,max=50" example:"A-3-13"`
	AvailableQuantity *int   `json:"available_quantity" binding:"omitempty,min=0" example:"5"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID                uint   `json:"id" example:"1"`
	ISBN              string `json:"isbn" example:"9787115428028"`
	Title             string `json:"title" example:"Go语言实战"`
	Author            string `json:"author" example:"威廉·肯尼迪"`
	ShelfLocation     string `json:"shelf_location" example:"A-3-12"`
	AvailableQuantity int    `json:"available_quantity" example:"3"`
	CreatedAt         string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt         string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ListBooksRequest HTTP图书列表请求
// 过滤字段为精确匹配
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Title    string `form:"title" binding:"omitempty,max=200" example:"Go语言实战"`
	Author   string `form:"author" binding:"omitempty,max=100" example:"威廉·肯尼迪"`
	ISBN     string `form:"isbn" binding:"omitempty,numeric,max=13" example:"9787115428028"`
}
