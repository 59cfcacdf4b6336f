package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shop-service/internal/catalog"
	"shop-service/internal/service"
	"shop-service/pkg/logger"
)

// CatalogHandler serves the public read side of the store.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// Categories returns the parent categories with their subcategories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}
	return c.JSON(http.StatusOK, views)
}

// Tags returns all tags.
func (h *CatalogHandler) Tags(c echo.Context) error {
	tags, err := h.catalog.Tags(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newTagViews(tags))
}

// Catalog returns one page of the filtered, sorted product listing.
func (h *CatalogHandler) Catalog(c echo.Context) error {
	log := logger.FromContext(c)

	query := catalog.Parse(c.QueryParams())
	page, err := h.catalog.List(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Catalog page served",
		zap.Int("current_page", page.CurrentPage),
		zap.Int("last_page", page.LastPage),
		zap.Int("items", len(page.Items)))
	return c.JSON(http.StatusOK, pageView{
		Items:       newProductViews(page.Items),
		CurrentPage: page.CurrentPage,
		LastPage:    page.LastPage,
	})
}

// Product returns the detail view of one non-archived product.
func (h *CatalogHandler) Product(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	product, err := h.catalog.Detail(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newProductDetailView(product))
}

// Popular returns the products flagged popular.
func (h *CatalogHandler) Popular(c echo.Context) error {
	products, err := h.catalog.Popular(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newProductViews(products))
}

// Limited returns the products flagged limited.
func (h *CatalogHandler) Limited(c echo.Context) error {
	products, err := h.catalog.Limited(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newProductViews(products))
}

// Banners returns up to three banner products.
func (h *CatalogHandler) Banners(c echo.Context) error {
	products, err := h.catalog.Banners(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, newProductViews(products))
}

// Sales returns one page of the discount listing.
func (h *CatalogHandler) Sales(c echo.Context) error {
	pageNumber, err := strconv.Atoi(c.QueryParam("currentPage"))
	if err != nil || pageNumber < 1 {
		pageNumber = 1
	}

	page, err := h.catalog.Sales(c.Request().Context(), pageNumber)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]saleItemView, 0, len(page.Items))
	for _, discount := range page.Items {
		items = append(items, newSaleItemView(discount))
	}
	return c.JSON(http.StatusOK, pageView{
		Items:       items,
		CurrentPage: page.CurrentPage,
		LastPage:    page.LastPage,
	})
}
