package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/pizzeria/internal/domain/catalog"
)

// CatalogRepository 目录仓储MySQL实现
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建目录仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &CatalogRepository{db: db}
}

// FindPizzaByID 根据ID查找披萨(含配料)
func (r *CatalogRepository) FindPizzaByID(ctx context.Context, id uint) (*catalog.Pizza, error) {
	var model PizzaModel
	if err := getDB(ctx, r.db).Preload("Ingredients").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrPizzaNotFound
		}
		return nil, err
	}
	return toPizzaEntity(&model), nil
}

// FindPizzaBySlug 根据Slug查找披萨(含配料)
func (r *CatalogRepository) FindPizzaBySlug(ctx context.Context, slug string) (*catalog.Pizza, error) {
	var model PizzaModel
	if err := getDB(ctx, r.db).Preload("Ingredients").
		Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrPizzaNotFound
		}
		return nil, err
	}
	return toPizzaEntity(&model), nil
}

// ListPizzas 按条件分页查询在售披萨
// 筛选条件全部为AND组合:
// 1. 价格区间为开区间(> gt 且 < lt)
// 2. 描述用LIKE模糊匹配
// 3. 配料为严格AND匹配:JOIN连接表后按披萨分组,
//    要求命中的不同配料数等于选中配料数(HAVING COUNT(DISTINCT ...))
func (r *CatalogRepository) ListPizzas(ctx context.Context, params catalog.ListParams) ([]*catalog.Pizza, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&PizzaModel{}).Where("pizzas.in_stock = ?", true)

	if params.PriceGT > 0 {
		query = query.Where("pizzas.price > ?", params.PriceGT)
	}
	if params.PriceLT > 0 {
		query = query.Where("pizzas.price < ?", params.PriceLT)
	}
	if params.Keyword != "" {
		query = query.Where("pizzas.description LIKE ?", "%"+params.Keyword+"%")
	}
	if params.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = pizzas.category_id").
			Where("categories.slug = ?", params.CategorySlug)
	}
	if len(params.IngredientIDs) > 0 {
		// 严格AND匹配:披萨必须同时包含所有选中配料
		query = query.
			Joins("JOIN pizza_ingredients pi ON pi.pizza_model_id = pizzas.id").
			Where("pi.ingredient_model_id IN ?", params.IngredientIDs).
			Group("pizzas.id").
			Having("COUNT(DISTINCT pi.ingredient_model_id) = ?", len(params.IngredientIDs))
	}

	// 统计总数(分组查询用子查询计数)
	var total int64
	countQuery := db.Table("(?) AS matched", query.Session(&gorm.Session{}).Select("pizzas.id"))
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 排序
	switch params.SortBy {
	case "price_asc":
		query = query.Order("pizzas.price ASC")
	case "price_desc":
		query = query.Order("pizzas.price DESC")
	default:
		query = query.Order("pizzas.created_at DESC")
	}

	// 分页查询
	var models []PizzaModel
	offset := (params.Page - 1) * params.PageSize
	if err := query.Select("pizzas.*").Preload("Ingredients").
		Offset(offset).Limit(params.PageSize).Find(&models).Error; err != nil {
		return nil, 0, err
	}

	pizzas := make([]*catalog.Pizza, 0, len(models))
	for i := range models {
		pizzas = append(pizzas, toPizzaEntity(&models[i]))
	}
	return pizzas, total, nil
}

// ListCategories 查询全部分类,附带每个分类的在售披萨数量
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	type row struct {
		ID         uint
		Name       string
		Slug       string
		PizzaCount int64
	}
	var rows []row
	err := getDB(ctx, r.db).Model(&CategoryModel{}).
		Select("categories.id, categories.name, categories.slug, COUNT(pizzas.id) AS pizza_count").
		Joins("LEFT JOIN pizzas ON pizzas.category_id = categories.id AND pizzas.in_stock = 1 AND pizzas.deleted_at IS NULL").
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]*catalog.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, &catalog.Category{
			ID:         r.ID,
			Name:       r.Name,
			Slug:       r.Slug,
			PizzaCount: r.PizzaCount,
		})
	}
	return categories, nil
}

// FindCategoryBySlug 根据Slug查找分类
func (r *CatalogRepository) FindCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var model CategoryModel
	if err := getDB(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, err
	}
	return &catalog.Category{
		ID:   model.ID,
		Name: model.Name,
		Slug: model.Slug,
	}, nil
}

// ListIngredients 查询全部配料
func (r *CatalogRepository) ListIngredients(ctx context.Context) ([]*catalog.Ingredient, error) {
	var models []IngredientModel
	if err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	ingredients := make([]*catalog.Ingredient, 0, len(models))
	for _, m := range models {
		ingredients = append(ingredients, &catalog.Ingredient{ID: m.ID, Name: m.Name})
	}
	return ingredients, nil
}

// toPizzaEntity 数据模型转领域实体
func toPizzaEntity(m *PizzaModel) *catalog.Pizza {
	ingredients := make([]catalog.Ingredient, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		ingredients = append(ingredients, catalog.Ingredient{ID: ing.ID, Name: ing.Name})
	}
	return &catalog.Pizza{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Price:       m.Price,
		CategoryID:  m.CategoryID,
		InStock:     m.InStock,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Ingredients: ingredients,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
