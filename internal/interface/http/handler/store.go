package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/marketplace/internal/application/catalog"
	appproduct "github.com/xiebiao/marketplace/internal/application/product"
	"github.com/xiebiao/marketplace/internal/interface/http/dto"
	"github.com/xiebiao/marketplace/internal/interface/http/middleware"
	"github.com/xiebiao/marketplace/pkg/response"
)

const storeURL = "/api/v1/store"

// StoreHandler 商店浏览
type StoreHandler struct {
	listUseCase   *catalog.StoreListUseCase
	searchUseCase *catalog.SearchUseCase
	detailUseCase *appproduct.ProductDetailUseCase
}

// NewStoreHandler 创建商店浏览处理器
func NewStoreHandler(
	listUseCase *catalog.StoreListUseCase,
	searchUseCase *catalog.SearchUseCase,
	detailUseCase *appproduct.ProductDetailUseCase,
) *StoreHandler {
	return &StoreHandler{
		listUseCase:   listUseCase,
		searchUseCase: searchUseCase,
		detailUseCase: detailUseCase,
	}
}

// List 全部在售商品
// @Summary      商品列表
// @Description  已上架且已审核的商品，按ID升序分页
// @Tags         商店
// @Produce      json
// @Param        page query string false "页码，非法值按第一页处理"
// @Success      200 {object} response.Response{data=dto.StoreResponse}
// @Router       /api/v1/store [get]
func (h *StoreHandler) List(c *gin.Context) {
	h.list(c, "")
}

// Category 分类下的在售商品
// @Summary      分类商品列表
// @Tags         商店
// @Produce      json
// @Param        category_slug path string true "分类Slug"
// @Param        page query string false "页码"
// @Success      200 {object} response.Response{data=dto.StoreResponse}
// @Router       /api/v1/store/category/{category_slug} [get]
func (h *StoreHandler) Category(c *gin.Context) {
	h.list(c, c.Param("category_slug"))
}

func (h *StoreHandler) list(c *gin.Context, categorySlug string) {
	result, err := h.listUseCase.Execute(c.Request.Context(), catalog.StoreListRequest{
		CategorySlug: categorySlug,
		Page:         c.Query("page"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewStoreResponse(result))
}

// Search 搜索商品
// @Summary      搜索
// @Description  名称或描述包含关键词（不区分大小写），按创建时间倒序；关键词为空时跳转回商店
// @Tags         商店
// @Produce      json
// @Param        keyword query string false "关键词"
// @Success      200 {object} response.Response{data=catalog.SearchResult}
// @Router       /api/v1/store/search [get]
func (h *StoreHandler) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		response.Redirect(c, storeURL, "请输入搜索关键词", nil)
		return
	}

	result, err := h.searchUseCase.Execute(c.Request.Context(), keyword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Detail 商品详情
// @Summary      商品详情
// @Description  包含规格、评价、是否已加入购物车、当前用户是否已评价；edit_review_id预填自己的评价
// @Tags         商店
// @Produce      json
// @Param        category_slug path string true "分类Slug"
// @Param        product_slug path string true "商品Slug"
// @Param        edit_review_id query int false "要编辑的评价ID"
// @Param        X-Cart-ID header string false "购物车ID"
// @Success      200 {object} response.Response{data=appproduct.Detail}
// @Router       /api/v1/store/category/{category_slug}/{product_slug} [get]
func (h *StoreHandler) Detail(c *gin.Context) {
	detail, err := h.detailUseCase.Execute(c.Request.Context(), appproduct.DetailRequest{
		Requester:    middleware.GetRequester(c),
		CategorySlug: c.Param("category_slug"),
		ProductSlug:  c.Param("product_slug"),
		CartID:       cartID(c),
		EditReviewID: optionalUintQuery(c, "edit_review_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}
