package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/pizzeria/internal/application/catalog"
	"github.com/xiebiao/pizzeria/internal/interface/http/dto"
	"github.com/xiebiao/pizzeria/pkg/response"
)

// CatalogHandler 菜单HTTP处理器
type CatalogHandler struct {
	listPizzasUseCase *appcatalog.ListPizzasUseCase
	getPizzaUseCase   *appcatalog.GetPizzaUseCase
	sidebarUseCase    *appcatalog.GetSidebarUseCase
}

// NewCatalogHandler 创建菜单处理器
func NewCatalogHandler(
	listPizzasUseCase *appcatalog.ListPizzasUseCase,
	getPizzaUseCase *appcatalog.GetPizzaUseCase,
	sidebarUseCase *appcatalog.GetSidebarUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		listPizzasUseCase: listPizzasUseCase,
		getPizzaUseCase:   getPizzaUseCase,
		sidebarUseCase:    sidebarUseCase,
	}
}

// ListPizzas 披萨列表
// @Summary      披萨列表
// @Description  菜单主查询,支持价格区间/关键词/分类/配料组合筛选(配料为AND匹配)
// @Tags         菜单
// @Produce      json
// @Param        price_gt    query int    false "价格下限(分,不含)"
// @Param        price_lt    query int    false "价格上限(分,不含)"
// @Param        q           query string false "描述关键词"
// @Param        category    query string false "分类slug"
// @Param        ingredients query []uint false "配料ID集合,须全部包含"
// @Param        page        query int    false "页码,默认1"
// @Param        page_size   query int    false "每页数量,默认20"
// @Param        sort        query string false "排序:price_asc/price_desc/created_at_desc"
// @Success      200 {object} response.Response{data=response.PageData} "查询成功"
// @Router       /api/v1/pizzas [get]
func (h *CatalogHandler) ListPizzas(c *gin.Context) {
	var query dto.ListPizzasQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listPizzasUseCase.Execute(c.Request.Context(), appcatalog.ListPizzasRequest{
		PriceGT:       query.PriceGT,
		PriceLT:       query.PriceLT,
		Keyword:       query.Keyword,
		CategorySlug:  query.CategorySlug,
		IngredientIDs: query.IngredientIDs,
		Page:          query.Page,
		PageSize:      query.PageSize,
		SortBy:        query.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	pizzas := make([]dto.PizzaResponse, 0, len(result.Pizzas))
	for _, p := range result.Pizzas {
		pizzas = append(pizzas, dto.ToPizzaResponse(p))
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	response.SuccessWithPage(c, pizzas, result.Total, page, pageSize)
}

// GetPizza 披萨详情
// @Summary      披萨详情
// @Description  按slug查询披萨,走Redis缓存
// @Tags         菜单
// @Produce      json
// @Param        slug path string true "披萨slug"
// @Success      200 {object} response.Response{data=dto.PizzaResponse} "查询成功"
// @Failure      404 {object} response.Response "披萨不存在"
// @Router       /api/v1/pizzas/{slug} [get]
func (h *CatalogHandler) GetPizza(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.getPizzaUseCase.Execute(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ToPizzaResponse(*result)
	response.Success(c, &resp)
}

// GetSidebar 侧边栏
// @Summary      侧边栏数据
// @Description  分类列表(含披萨数)与配料全集,筛选面板用
// @Tags         菜单
// @Produce      json
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/sidebar [get]
func (h *CatalogHandler) GetSidebar(c *gin.Context) {
	result, err := h.sidebarUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
