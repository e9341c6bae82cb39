package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCartHandler_GetCart(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	owner := entity.GuestOwner("guest-1")
	uc.EXPECT().GetCart(mock.Anything, owner).Return(&usecase.CartView{
		Lines: []*entity.CartLine{
			{
				ProductID: 7,
				Quantity:  2,
				Product: &entity.Product{
					ID:       7,
					Name:     "Desk Lamp",
					Price:    decimal.NewFromFloat(19.99),
					IsActive: true,
				},
			},
		},
		TotalQuantity: 2,
		TotalAmount:   decimal.NewFromFloat(39.98),
	}, nil)

	c, rec := newCartTestContext(t, http.MethodGet, "/cart", "")
	c.Set(middleware.ContextKeyCartOwner, owner)

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"total_amount":"39.98"`)
	assert.Contains(t, body, `"total_quantity":2`)
	assert.Contains(t, body, `"line_total":"39.98"`)
	assert.Contains(t, body, "Desk Lamp")
}

func TestCartHandler_GetCart_MissingIdentity(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newCartTestContext(t, http.MethodGet, "/cart", "")

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_IDENTITY")
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	owner := entity.GuestOwner("guest-1")
	uc.EXPECT().
		AddItem(mock.Anything, owner, &usecase.AddItemInput{ProductID: 7, Quantity: 3}).
		Return(&usecase.CartView{TotalQuantity: 3, TotalAmount: decimal.NewFromFloat(59.97)}, nil)

	c, rec := newCartTestContext(t, http.MethodPost, "/cart/add", `{"productId":7,"quantity":3}`)
	c.Set(middleware.ContextKeyCartOwner, owner)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_amount":"59.97"`)
}

func TestCartHandler_UpdateItem_InvalidProductID(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newCartTestContext(t, http.MethodPut, "/cart/abc", `{"quantity":1}`)
	c.SetParamNames("productId")
	c.SetParamValues("abc")
	c.Set(middleware.ContextKeyCartOwner, entity.GuestOwner("guest-1"))

	require.NoError(t, h.UpdateItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid product id")
}

func TestCartHandler_RemoveItem(t *testing.T) {
	t.Parallel()

	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	owner := entity.GuestOwner("guest-1")
	uc.EXPECT().RemoveItem(mock.Anything, owner, int64(7)).Return(nil)

	c, rec := newCartTestContext(t, http.MethodDelete, "/cart/7", "")
	c.SetParamNames("productId")
	c.SetParamValues("7")
	c.Set(middleware.ContextKeyCartOwner, owner)

	require.NoError(t, h.RemoveItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
