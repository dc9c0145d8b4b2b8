package dto

// CheckoutRequest HTTP借出请求
// 日期格式:2006-01-02,borrowed_date缺省为当前时间
type CheckoutRequest struct {
	ISBN          string `json:"isbn" binding:"required,numeric,min=2,max=13" example:"9787115428028"`
	BorrowerEmail string `json:"borrower_email" binding:"required,email" example:"lisi@example.com"`
	BorrowedDate  string `json:"borrowed_date" binding:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
	DueDate       string `json:"due_date" binding:"required,datetime=2006-01-02" example:"2024-01-29"`
}

// ReturnRequest HTTP归还请求
// 以"哪个人还哪本书"定位在借记录,不要求客户端记住借阅记录ID
type ReturnRequest struct {
	ISBN          string `json:"isbn" binding:"required,numeric,min=2,max=13" example:"9787115428028"`
	BorrowerEmail string `json:"borrower_email" binding:"required,email" example:"lisi@example.com"`
}

// BookBrief 借阅响应中的图书摘要
type BookBrief struct {
	ISBN          string `json:"isbn" example:"9787115428028"`
	Title         string `json:"title" example:"Go语言实战"`
	Author        string `json:"author" example:"威廉·肯尼迪"`
	ShelfLocation string `json:"shelf_location" example:"A-3-12"`
}

// LoanResponse HTTP借阅记录响应
type LoanResponse struct {
	ID           uint       `json:"id" example:"1"`
	BookID       uint       `json:"book_id" example:"1"`
	BorrowerID   uint       `json:"borrower_id" example:"1"`
	BorrowedDate string     `json:"borrowed_date" example:"2024-01-15 10:30:00"`
	DueDate      string     `json:"due_date" example:"2024-01-29 10:30:00"`
	ReturnedDate *string    `json:"returned_date" example:"2024-01-20 16:00:00"` // null表示在借
	Book         *BookBrief `json:"book,omitempty"`
}
