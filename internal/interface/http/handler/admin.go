package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/marketplace/internal/application/catalog"
	appproduct "github.com/xiebiao/marketplace/internal/application/product"
	"github.com/xiebiao/marketplace/internal/interface/http/dto"
	"github.com/xiebiao/marketplace/internal/interface/http/middleware"
	"github.com/xiebiao/marketplace/pkg/response"
)

// AdminHandler 运营后台：审核商品、维护规格和分类
type AdminHandler struct {
	moderateUseCase  *appproduct.ModerateProductUseCase
	variationUseCase *appproduct.VariationUseCase
	categoryUseCase  *catalog.CategoryUseCase
}

// NewAdminHandler 创建运营管理处理器
func NewAdminHandler(
	moderateUseCase *appproduct.ModerateProductUseCase,
	variationUseCase *appproduct.VariationUseCase,
	categoryUseCase *catalog.CategoryUseCase,
) *AdminHandler {
	return &AdminHandler{
		moderateUseCase:  moderateUseCase,
		variationUseCase: variationUseCase,
		categoryUseCase:  categoryUseCase,
	}
}

// SetApproval 审核商品
// @Summary      审核商品
// @Tags         运营
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.ApprovalRequest true "是否通过"
// @Success      200 {object} response.Response{data=response.RedirectData{result=catalog.ProductItem}}
// @Router       /api/v1/admin/products/{id}/approval [patch]
func (h *AdminHandler) SetApproval(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ApprovalRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.moderateUseCase.SetApproval(c.Request.Context(), middleware.GetRequester(c), id, *req.Approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	message := "已撤销审核"
	if *req.Approved {
		message = "审核通过"
	}
	response.Redirect(c, result.Redirect, message, result.Product)
}

// SetVariationActive 启用/停用规格
// @Summary      启用/停用规格
// @Tags         运营
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "规格ID"
// @Param        request body dto.VariationActiveRequest true "是否启用"
// @Success      200 {object} response.Response{data=appproduct.VariationInfo}
// @Router       /api/v1/admin/variations/{id} [patch]
func (h *AdminHandler) SetVariationActive(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.VariationActiveRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.variationUseCase.SetActive(c.Request.Context(), middleware.GetRequester(c), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}

// CreateCategory 新建分类
// @Summary      新建分类
// @Tags         运营
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CategoryRequest true "分类"
// @Success      200 {object} response.Response{data=response.RedirectData{result=catalog.CategoryInfo}}
// @Router       /api/v1/admin/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.categoryUseCase.Create(c.Request.Context(), middleware.GetRequester(c), req.Name, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, storeURL+"/category/"+info.Slug, "分类已创建", info)
}

// ListCategories 全部分类
// @Summary      分类列表
// @Tags         商店
// @Produce      json
// @Success      200 {object} response.Response{data=[]catalog.CategoryInfo}
// @Router       /api/v1/categories [get]
func (h *AdminHandler) ListCategories(c *gin.Context) {
	list, err := h.categoryUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
