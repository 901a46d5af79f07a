package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/marketplace/internal/application/catalog"
	"github.com/xiebiao/marketplace/internal/application/contact"
	"github.com/xiebiao/marketplace/internal/interface/http/dto"
	"github.com/xiebiao/marketplace/internal/interface/http/middleware"
	"github.com/xiebiao/marketplace/pkg/response"
)

// SellerHandler 卖家主页与联系卖家
type SellerHandler struct {
	profileUseCase *catalog.SellerProfileUseCase
	contactUseCase *contact.ContactSellerUseCase
	messageUseCase *contact.GetMessageUseCase
}

// NewSellerHandler 创建卖家处理器
func NewSellerHandler(
	profileUseCase *catalog.SellerProfileUseCase,
	contactUseCase *contact.ContactSellerUseCase,
	messageUseCase *contact.GetMessageUseCase,
) *SellerHandler {
	return &SellerHandler{
		profileUseCase: profileUseCase,
		contactUseCase: contactUseCase,
		messageUseCase: messageUseCase,
	}
}

// Profile 卖家主页
// @Summary      卖家主页
// @Description  卖家公开信息和在售商品，按ID倒序分页
// @Tags         卖家
// @Produce      json
// @Param        user_id path int true "卖家ID"
// @Param        page query string false "页码"
// @Success      200 {object} response.Response{data=dto.SellerResponse}
// @Router       /api/v1/sellers/{user_id} [get]
func (h *SellerHandler) Profile(c *gin.Context) {
	sellerID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	result, err := h.profileUseCase.Execute(c.Request.Context(), sellerID, c.Query("page"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewSellerResponse(result))
}

// Contact 联系卖家
// @Summary      联系卖家
// @Description  保存站内消息并异步邮件通知卖家；product不存在时消息不关联商品
// @Tags         卖家
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path int true "卖家ID"
// @Param        product query int false "关联商品ID"
// @Param        request body dto.ContactRequest true "消息"
// @Success      200 {object} response.Response{data=response.RedirectData{result=contact.MessageInfo}}
// @Router       /api/v1/sellers/{user_id}/messages [post]
func (h *SellerHandler) Contact(c *gin.Context) {
	sellerID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.contactUseCase.Execute(c.Request.Context(), middleware.GetRequester(c), contact.ContactRequest{
		SellerID:  sellerID,
		ProductID: optionalUintQuery(c, "product"),
		Subject:   req.Subject,
		Body:      req.Message,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, result.Redirect, "消息已发送", result.Message)
}

// Message 查看站内消息，仅发送方和接收方可见
// @Summary      查看消息
// @Tags         卖家
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "消息ID"
// @Success      200 {object} response.Response{data=contact.MessageInfo}
// @Router       /api/v1/messages/{id} [get]
func (h *SellerHandler) Message(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	msg, err := h.messageUseCase.Execute(c.Request.Context(), middleware.GetRequester(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}
