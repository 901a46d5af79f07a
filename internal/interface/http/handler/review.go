package handler

import (
	"github.com/gin-gonic/gin"

	appproduct "github.com/xiebiao/marketplace/internal/application/product"
	appreview "github.com/xiebiao/marketplace/internal/application/review"
	"github.com/xiebiao/marketplace/internal/interface/http/dto"
	"github.com/xiebiao/marketplace/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
	"github.com/xiebiao/marketplace/pkg/response"
)

// ReviewHandler 商品评价
type ReviewHandler struct {
	reviewUseCase *appreview.ReviewUseCase
	detailUseCase *appproduct.ProductDetailUseCase
}

// NewReviewHandler 创建评价处理器
func NewReviewHandler(reviewUseCase *appreview.ReviewUseCase, detailUseCase *appproduct.ProductDetailUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		detailUseCase: detailUseCase,
	}
}

func target(c *gin.Context) appreview.Target {
	return appreview.Target{
		CategorySlug: c.Param("category_slug"),
		ProductSlug:  c.Param("product_slug"),
	}
}

// Add 发表评价
// @Summary      发表评价
// @Description  每个用户对同一商品只能评价一次；校验失败时data为详情页数据并回显表单
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category_slug path string true "分类Slug"
// @Param        product_slug path string true "商品Slug"
// @Param        request body dto.ReviewRequest true "评价"
// @Success      200 {object} response.Response{data=response.RedirectData{result=appreview.Item}}
// @Router       /api/v1/store/category/{category_slug}/{product_slug}/reviews [post]
func (h *ReviewHandler) Add(c *gin.Context) {
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reviewUseCase.Add(c.Request.Context(), middleware.GetRequester(c), target(c), req.ToForm())
	if err != nil {
		h.fail(c, err, nil, req.ToForm())
		return
	}
	response.Redirect(c, result.Redirect, "感谢您的评价！", result.Review)
}

// Edit 修改自己的评价
// @Summary      修改评价
// @Description  校验失败时data为详情页数据，edit_review_id保持不变
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category_slug path string true "分类Slug"
// @Param        product_slug path string true "商品Slug"
// @Param        review_id path int true "评价ID"
// @Param        request body dto.ReviewRequest true "评价"
// @Success      200 {object} response.Response{data=response.RedirectData{result=appreview.Item}}
// @Router       /api/v1/store/category/{category_slug}/{product_slug}/reviews/{review_id} [put]
func (h *ReviewHandler) Edit(c *gin.Context) {
	reviewID, ok := uintParam(c, "review_id")
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reviewUseCase.Edit(c.Request.Context(), middleware.GetRequester(c), target(c), reviewID, req.ToForm())
	if err != nil {
		h.fail(c, err, &reviewID, req.ToForm())
		return
	}
	response.Redirect(c, result.Redirect, "评价已更新", result.Review)
}

// Delete 删除自己的评价
// @Summary      删除评价
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Param        category_slug path string true "分类Slug"
// @Param        product_slug path string true "商品Slug"
// @Param        review_id path int true "评价ID"
// @Success      200 {object} response.Response{data=response.RedirectData}
// @Router       /api/v1/store/category/{category_slug}/{product_slug}/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := uintParam(c, "review_id")
	if !ok {
		return
	}

	result, err := h.reviewUseCase.Delete(c.Request.Context(), middleware.GetRequester(c), target(c), reviewID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Redirect(c, result.Redirect, "评价已删除", nil)
}

// fail 表单校验失败时带上详情页数据，其他错误直接返回
func (h *ReviewHandler) fail(c *gin.Context, err error, editReviewID *uint, form appreview.Form) {
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidParams) {
		response.Error(c, err)
		return
	}

	t := target(c)
	detail, derr := h.detailUseCase.Execute(c.Request.Context(), appproduct.DetailRequest{
		Requester:    middleware.GetRequester(c),
		CategorySlug: t.CategorySlug,
		ProductSlug:  t.ProductSlug,
		CartID:       cartID(c),
		EditReviewID: editReviewID,
		PendingForm:  &form,
	})
	if derr != nil {
		response.Error(c, err)
		return
	}
	response.ErrorWithData(c, err, detail)
}
