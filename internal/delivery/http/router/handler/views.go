package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// View models decouple the JSON surface from the domain entities, so
// internal fields (password hashes, refresh tokens) can never leak into a
// response by accident.

type categoryView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type productView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       string        `json:"price"`
	Stock       int           `json:"stock"`
	ImageURL    string        `json:"image_url,omitempty"`
	CategoryID  int64         `json:"category_id"`
	Category    *categoryView `json:"category,omitempty"`
	IsActive    bool          `json:"is_active"`
}

type cartLineView struct {
	ProductID int64        `json:"product_id"`
	Product   *productView `json:"product,omitempty"`
	Quantity  int          `json:"quantity"`
	LineTotal string       `json:"line_total"`
}

type cartView struct {
	Lines         []cartLineView `json:"lines"`
	TotalQuantity int            `json:"total_quantity"`
	TotalAmount   string         `json:"total_amount"`
}

type orderLineView struct {
	ProductID int64        `json:"product_id"`
	Product   *productView `json:"product,omitempty"`
	Quantity  int          `json:"quantity"`
	UnitPrice string       `json:"unit_price"`
	LineTotal string       `json:"line_total"`
}

type orderView struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     string          `json:"total_amount"`
	ShippingAddress string          `json:"shipping_address"`
	Lines           []orderLineView `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
}

type userView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
}

type authView struct {
	User         userView `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

func toCategoryView(category *entity.Category) *categoryView {
	if category == nil {
		return nil
	}

	return &categoryView{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func toCategoryViews(categories []*entity.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, *toCategoryView(category))
	}

	return views
}

func toProductView(product *entity.Product) *productView {
	if product == nil {
		return nil
	}

	return &productView{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		CategoryID:  product.CategoryID,
		Category:    toCategoryView(product.Category),
		IsActive:    product.IsActive,
	}
}

func toProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, *toProductView(product))
	}

	return views
}

func toCartView(cart *usecase.CartView) cartView {
	view := cartView{
		Lines:         make([]cartLineView, 0, len(cart.Lines)),
		TotalQuantity: cart.TotalQuantity,
		TotalAmount:   cart.TotalAmount.StringFixed(2),
	}

	for _, line := range cart.Lines {
		view.Lines = append(view.Lines, cartLineView{
			ProductID: line.ProductID,
			Product:   toProductView(line.Product),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}

	return view
}

func toOrderView(order *entity.Order) orderView {
	view := orderView{
		ID:              order.ID,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		ShippingAddress: order.ShippingAddress,
		Lines:           make([]orderLineView, 0, len(order.Lines)),
		CreatedAt:       order.CreatedAt,
	}

	for _, line := range order.Lines {
		view.Lines = append(view.Lines, orderLineView{
			ProductID: line.ProductID,
			Product:   toProductView(line.Product),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.StringFixed(2),
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}

	return view
}

func toOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   user.IsAdmin,
	}
}

func toAuthView(output *usecase.AuthOutput) authView {
	return authView{
		User:         toUserView(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}
