package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// LoanHandler 借阅流转HTTP处理器
// 借出/归还/在借查询/逾期查询四个入口都收在这里
type LoanHandler struct {
	checkoutUseCase *apploan.CheckoutUseCase
	returnUseCase   *apploan.ReturnUseCase
	queryUseCase    *apploan.QueryUseCase
}

// NewLoanHandler 创建借阅处理器
func NewLoanHandler(
	checkoutUseCase *apploan.CheckoutUseCase,
	returnUseCase *apploan.ReturnUseCase,
	queryUseCase *apploan.QueryUseCase,
) *LoanHandler {
	return &LoanHandler{
		checkoutUseCase: checkoutUseCase,
		returnUseCase:   returnUseCase,
		queryUseCase:    queryUseCase,
	}
}

// toLoanDTO 应用层响应 → HTTP响应
func toLoanDTO(l *apploan.LoanResponse) *dto.LoanResponse {
	resp := &dto.LoanResponse{
		ID:           l.ID,
		BookID:       l.BookID,
		BorrowerID:   l.BorrowerID,
		BorrowedDate: l.BorrowedDate,
		DueDate:      l.DueDate,
		ReturnedDate: l.ReturnedDate,
	}
	if l.Book != nil {
		resp.Book = &dto.BookBrief{
			ISBN:          l.Book.ISBN,
			Title:         l.Book.Title,
			Author:        l.Book.Author,
			ShelfLocation: l.Book.ShelfLocation,
		}
	}
	return resp
}

// toLoanDTOs 批量转换
func toLoanDTOs(loans []*apploan.LoanResponse) []*dto.LoanResponse {
	result := make([]*dto.LoanResponse, len(loans))
	for i, l := range loans {
		result[i] = toLoanDTO(l)
	}
	return result
}

// Checkout 借出图书
// @Summary      借出图书
// @Description  为借阅人借出一本图书,无可借副本时失败
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutRequest true "借出信息"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书或借阅人不存在"
// @Failure      409 {object} response.Response "无可借副本"
// @Router       /api/v1/borrows/checkout [post]
func (h *LoanHandler) Checkout(c *gin.Context) {
	// 1. 参数绑定与验证(日期格式由validator校验)
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 日期解析
	dueDate, _ := time.ParseInLocation(dateLayout, req.DueDate, time.Local)
	var borrowedDate *time.Time
	if req.BorrowedDate != "" {
		d, _ := time.ParseInLocation(dateLayout, req.BorrowedDate, time.Local)
		borrowedDate = &d
	}

	// 3. 调用应用层用例
	result, err := h.checkoutUseCase.Execute(c.Request.Context(), apploan.CheckoutRequest{
		ISBN:          req.ISBN,
		BorrowerEmail: req.BorrowerEmail,
		BorrowedDate:  borrowedDate,
		DueDate:       dueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toLoanDTO(result))
}

// Return 归还图书
// @Summary      归还图书
// @Description  归还借阅人在借的一本图书,没有在借记录时失败
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.ReturnRequest true "归还信息"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书或借阅人不存在"
// @Failure      409 {object} response.Response "没有在借记录"
// @Router       /api/v1/borrows/return [post]
func (h *LoanHandler) Return(c *gin.Context) {
	var req dto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.returnUseCase.Execute(c.Request.Context(), apploan.ReturnRequest{
		ISBN:          req.ISBN,
		BorrowerEmail: req.BorrowerEmail,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toLoanDTO(result))
}

// ListBorrowerLoans 查询借阅人在借图书
// @Summary      借阅人在借图书
// @Description  查询某借阅人当前在借的全部图书
// @Tags         借阅
// @Produce      json
// @Param        email path string true "借阅人邮箱"
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Failure      404 {object} response.Response "借阅人不存在"
// @Router       /api/v1/borrows/borrower/{email} [get]
func (h *LoanHandler) ListBorrowerLoans(c *gin.Context) {
	result, err := h.queryUseCase.ListBorrowerLoans(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toLoanDTOs(result))
}

// ListOverdueLoans 查询逾期借阅
// @Summary      逾期借阅列表
// @Description  查询全部逾期未还的借阅记录
// @Tags         借阅
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.LoanResponse}
// @Router       /api/v1/borrows/overdue [get]
func (h *LoanHandler) ListOverdueLoans(c *gin.Context) {
	result, err := h.queryUseCase.ListOverdueLoans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toLoanDTOs(result))
}
