package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appborrower "github.com/xiebiao/library/internal/application/borrower"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// 日期格式(请求体中的日期字段)
const dateLayout = "2006-01-02"

// BorrowerHandler 借阅人HTTP处理器
type BorrowerHandler struct {
	manageUseCase *appborrower.ManageBorrowerUseCase
}

// NewBorrowerHandler 创建借阅人处理器
func NewBorrowerHandler(manageUseCase *appborrower.ManageBorrowerUseCase) *BorrowerHandler {
	return &BorrowerHandler{
		manageUseCase: manageUseCase,
	}
}

// toBorrowerDTO 应用层响应 → HTTP响应
func toBorrowerDTO(b *appborrower.BorrowerResponse) *dto.BorrowerResponse {
	return &dto.BorrowerResponse{
		ID:             b.ID,
		Name:           b.Name,
		Email:          b.Email,
		RegisteredDate: b.RegisteredDate,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// Register 注册借阅人
// @Summary      注册借阅人
// @Description  注册一个新借阅人,邮箱不能重复
// @Tags         借阅人
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterBorrowerRequest true "借阅人信息"
// @Success      200 {object} response.Response{data=dto.BorrowerResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已被注册"
// @Router       /api/v1/borrowers [post]
func (h *BorrowerHandler) Register(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.RegisterBorrowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 注册日期可选(格式已由validator校验)
	var registeredDate *time.Time
	if req.RegisteredDate != "" {
		d, _ := time.ParseInLocation(dateLayout, req.RegisteredDate, time.Local)
		registeredDate = &d
	}

	// 3. 调用应用层用例
	result, err := h.manageUseCase.Register(c.Request.Context(), appborrower.RegisterRequest{
		Name:           req.Name,
		Email:          req.Email,
		RegisteredDate: registeredDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBorrowerDTO(result))
}

// GetBorrower 查询借阅人详情
// @Summary      查询借阅人
// @Description  按邮箱查询借阅人详情
// @Tags         借阅人
// @Produce      json
// @Param        email path string true "借阅人邮箱"
// @Success      200 {object} response.Response{data=dto.BorrowerResponse}
// @Failure      404 {object} response.Response "借阅人不存在"
// @Router       /api/v1/borrowers/{email} [get]
func (h *BorrowerHandler) GetBorrower(c *gin.Context) {
	result, err := h.manageUseCase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBorrowerDTO(result))
}

// UpdateBorrower 更新借阅人信息
// @Summary      更新借阅人
// @Description  按邮箱更新借阅人姓名,邮箱本身不可修改
// @Tags         借阅人
// @Accept       json
// @Produce      json
// @Param        email path string true "借阅人邮箱"
// @Param        request body dto.UpdateBorrowerRequest true "更新内容"
// @Success      200 {object} response.Response{data=dto.BorrowerResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "借阅人不存在"
// @Router       /api/v1/borrowers/{email} [put]
func (h *BorrowerHandler) UpdateBorrower(c *gin.Context) {
	var req dto.UpdateBorrowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.Update(c.Request.Context(), c.Param("email"), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBorrowerDTO(result))
}

// DeleteBorrower 删除借阅人
// @Summary      删除借阅人
// @Description  按邮箱删除借阅人
// @Tags         借阅人
// @Produce      json
// @Param        email path string true "借阅人邮箱"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "借阅人不存在"
// @Router       /api/v1/borrowers/{email} [delete]
func (h *BorrowerHandler) DeleteBorrower(c *gin.Context) {
	if err := h.manageUseCase.Delete(c.Request.Context(), c.Param("email")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ListBorrowers 查询借阅人列表
// @Summary      借阅人列表
// @Description  分页查询全部借阅人
// @Tags         借阅人
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Success      200 {object} response.Response{data=appborrower.ListResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/borrowers [get]
func (h *BorrowerHandler) ListBorrowers(c *gin.Context) {
	var req dto.ListBorrowersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.List(c.Request.Context(), appborrower.ListRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
