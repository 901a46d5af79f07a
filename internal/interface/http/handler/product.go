package handler

import (
	"github.com/gin-gonic/gin"

	appproduct "github.com/xiebiao/marketplace/internal/application/product"
	"github.com/xiebiao/marketplace/internal/interface/http/dto"
	"github.com/xiebiao/marketplace/internal/interface/http/middleware"
	"github.com/xiebiao/marketplace/pkg/response"
)

// ProductHandler 卖家商品管理
type ProductHandler struct {
	createUseCase    *appproduct.CreateProductUseCase
	updateUseCase    *appproduct.UpdateProductUseCase
	deleteUseCase    *appproduct.DeleteProductUseCase
	moderateUseCase  *appproduct.ModerateProductUseCase
	variationUseCase *appproduct.VariationUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	createUseCase *appproduct.CreateProductUseCase,
	updateUseCase *appproduct.UpdateProductUseCase,
	deleteUseCase *appproduct.DeleteProductUseCase,
	moderateUseCase *appproduct.ModerateProductUseCase,
	variationUseCase *appproduct.VariationUseCase,
) *ProductHandler {
	return &ProductHandler{
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		moderateUseCase:  moderateUseCase,
		variationUseCase: variationUseCase,
	}
}

// Create 发布商品
// @Summary      发布商品
// @Description  新商品需运营审核后才会出现在商店中
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=response.RedirectData{result=catalog.ProductItem}}
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), middleware.GetRequester(c), req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, result.Redirect, "商品已提交，审核通过后上架", result.Product)
}

// Update 编辑商品
// @Summary      编辑商品
// @Description  所有者或运营可编辑；不传图片时保留原图
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.ProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=response.RedirectData{result=catalog.ProductItem}}
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), middleware.GetRequester(c), id, req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, result.Redirect, "商品已更新", result.Product)
}

// Delete 删除商品（连同规格和评价）
// @Summary      删除商品
// @Tags         商品管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=response.RedirectData}
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	result, err := h.deleteUseCase.Execute(c.Request.Context(), middleware.GetRequester(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, result.Redirect, "商品已删除", nil)
}

// SetStatus 上下架
// @Summary      上下架
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.StatusRequest true "是否上架"
// @Success      200 {object} response.Response{data=response.RedirectData{result=catalog.ProductItem}}
// @Router       /api/v1/products/{id}/status [patch]
func (h *ProductHandler) SetStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.moderateUseCase.SetStatus(c.Request.Context(), middleware.GetRequester(c), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	message := "商品已下架"
	if *req.Active {
		message = "商品已上架"
	}
	response.Redirect(c, result.Redirect, message, result.Product)
}

// AddVariation 新增规格
// @Summary      新增规格
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.VariationRequest true "规格"
// @Success      200 {object} response.Response{data=appproduct.VariationInfo}
// @Router       /api/v1/products/{id}/variations [post]
func (h *ProductHandler) AddVariation(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req dto.VariationRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.variationUseCase.Add(c.Request.Context(), middleware.GetRequester(c), id, req.Category, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, v)
}
