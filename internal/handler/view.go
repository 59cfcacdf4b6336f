package handler

import (
	"time"

	"shop-service/internal/model"
)

// JSON shapes served by the public API. The field names and formats are
// fixed by the storefront frontend and must not drift.

const dateTimeLayout = "2006-01-02 15:04"
const dateLayout = "2006-01-02"

const (
	placeholderImage    = "/media/no-image.png"
	placeholderImageAlt = "No image available"
)

type imageView struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type tagView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type reviewView struct {
	Author string `json:"author"`
	Email  string `json:"email"`
	Text   string `json:"text"`
	Rate   int    `json:"rate"`
	Date   string `json:"date"`
}

type specificationView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// productView is the catalog/basket/order product shape: reviews is the
// review count and count is context dependent (stock in the catalog,
// per-line count in baskets and orders).
type productView struct {
	ID           uint        `json:"id"`
	Category     uint        `json:"category"`
	Price        float64     `json:"price"`
	Count        int         `json:"count"`
	Date         string      `json:"date"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	FreeDelivery bool        `json:"freeDelivery"`
	Images       []imageView `json:"images"`
	Tags         []tagView   `json:"tags"`
	Reviews      int         `json:"reviews"`
	Rating       float64     `json:"rating"`
}

// productDetailView extends productView with the full description,
// specifications and the review list itself.
type productDetailView struct {
	ID              uint                `json:"id"`
	Category        uint                `json:"category"`
	Price           float64             `json:"price"`
	Count           int                 `json:"count"`
	Date            string              `json:"date"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	FullDescription string              `json:"fullDescription"`
	FreeDelivery    bool                `json:"freeDelivery"`
	Images          []imageView         `json:"images"`
	Tags            []tagView           `json:"tags"`
	Reviews         []reviewView        `json:"reviews"`
	Specifications  []specificationView `json:"specifications"`
	Rating          float64             `json:"rating"`
}

type categoryView struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Image         imageView      `json:"image"`
	Subcategories []categoryView `json:"subcategories"`
}

type saleItemView struct {
	ID        uint        `json:"id"`
	Price     float64     `json:"price"`
	SalePrice float64     `json:"salePrice"`
	DateFrom  string      `json:"dateFrom"`
	DateTo    string      `json:"dateTo"`
	Title     string      `json:"title"`
	Images    []imageView `json:"images"`
}

type pageView struct {
	Items       interface{} `json:"items"`
	CurrentPage int         `json:"currentPage"`
	LastPage    int         `json:"lastPage"`
}

type orderView struct {
	ID           uint          `json:"id"`
	CreatedAt    string        `json:"createdAt"`
	TotalCost    float64       `json:"totalCost"`
	FullName     string        `json:"fullName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	DeliveryType string        `json:"deliveryType"`
	PaymentType  string        `json:"paymentType"`
	Status       string        `json:"status"`
	City         string        `json:"city"`
	Address      string        `json:"address"`
	Products     []productView `json:"products"`
}

func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

func previewImages(path string) []imageView {
	if path == "" {
		return []imageView{{Src: placeholderImage, Alt: placeholderImageAlt}}
	}
	return []imageView{{Src: "/media/" + path, Alt: "Preview Image"}}
}

func newTagViews(tags []model.Tag) []tagView {
	views := make([]tagView, 0, len(tags))
	for _, t := range tags {
		views = append(views, tagView{ID: t.ID, Name: t.Name})
	}
	return views
}

func newReviewViews(reviews []model.Review) []reviewView {
	views := make([]reviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, reviewView{
			Author: r.Author,
			Email:  r.Email,
			Text:   r.Text,
			Rate:   r.Rate,
			Date:   formatDateTime(r.Date),
		})
	}
	return views
}

func newProductView(p model.Product) productView {
	return productView{
		ID:           p.ID,
		Category:     p.CategoryID,
		Price:        p.Price,
		Count:        p.Count,
		Date:         formatDateTime(p.Date),
		Title:        p.Title,
		Description:  p.Description,
		FreeDelivery: p.FreeDelivery,
		Images:       previewImages(p.Preview),
		Tags:         newTagViews(p.Tags),
		Reviews:      p.ReviewsCount,
		Rating:       p.Rating,
	}
}

func newProductViews(products []model.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views
}

func newProductDetailView(p *model.Product) productDetailView {
	specs := make([]specificationView, 0, len(p.Specifications))
	for _, s := range p.Specifications {
		specs = append(specs, specificationView{Name: s.Name, Value: s.Value})
	}
	return productDetailView{
		ID:              p.ID,
		Category:        p.CategoryID,
		Price:           p.Price,
		Count:           p.Count,
		Date:            formatDateTime(p.Date),
		Title:           p.Title,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		FreeDelivery:    p.FreeDelivery,
		Images:          previewImages(p.Preview),
		Tags:            newTagViews(p.Tags),
		Reviews:         newReviewViews(p.Reviews),
		Specifications:  specs,
		Rating:          p.Rating,
	}
}

func newCategoryView(c model.Category) categoryView {
	image := imageView{Src: placeholderImage, Alt: placeholderImageAlt}
	if c.ImagePath != "" {
		image = imageView{Src: "/media/" + c.ImagePath, Alt: c.Description}
	}
	subs := make([]categoryView, 0, len(c.Subcategories))
	for _, sub := range c.Subcategories {
		subs = append(subs, newCategoryView(sub))
	}
	return categoryView{ID: c.ID, Title: c.Title, Image: image, Subcategories: subs}
}

func newSaleItemView(d model.Discount) saleItemView {
	return saleItemView{
		ID:        d.ProductID,
		Price:     d.Product.Price,
		SalePrice: d.SalePrice,
		DateFrom:  d.DateFrom.Format(dateLayout),
		DateTo:    d.DateTo.Format(dateLayout),
		Title:     d.Product.Title,
		Images:    previewImages(d.Product.Preview),
	}
}

// newBasketViews annotates each cart line's product with the count held
// in this cart.
func newBasketViews(items []model.CartItem) []productView {
	views := make([]productView, 0, len(items))
	for _, item := range items {
		view := newProductView(item.Product)
		view.Count = item.Count
		views = append(views, view)
	}
	return views
}

func newOrderView(order model.Order, profile *model.UserProfile) orderView {
	products := make([]productView, 0, len(order.Products))
	for _, line := range order.Products {
		view := newProductView(line.Product)
		view.Count = line.Count
		products = append(products, view)
	}
	view := orderView{
		ID:           order.ID,
		CreatedAt:    formatDateTime(order.CreatedAt),
		TotalCost:    order.TotalCost,
		DeliveryType: order.DeliveryType.Name,
		PaymentType:  order.PaymentType.Name,
		Status:       order.Status.Name,
		Products:     products,
	}
	if profile != nil {
		view.FullName = profile.FullName
		view.Email = profile.Email
		view.Phone = profile.Phone
		view.City = profile.City
		view.Address = profile.Address
	}
	return view
}
