package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/qwhomes/proposal-service/internal/adapter/http/handlers/mocks"
	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase"
)

func newProductRouter(t *testing.T) (*gin.Engine, *mocks.MockIProductUseCase, *gomock.Controller) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProductUseCase(ctrl)
	h := NewProductHandler(uc)

	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	return r, uc, ctrl
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("facets reach the usecase", func(t *testing.T) {
		r, uc, ctrl := newProductRouter(t)
		defer ctrl.Finish()
		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, filter entities.ProductFilter) ([]entities.Product, int64, error) {
				if filter.Family != "Sofas" || filter.Colour != "red" {
					t.Fatalf("unexpected filter: %+v", filter)
				}
				if filter.PriceMax == nil || !filter.PriceMax.Equal(decimal.NewFromInt(500)) {
					t.Fatalf("expected price_max 500, got %+v", filter.PriceMax)
				}
				return []entities.Product{{ID: 1, Name: "Red Sofa"}}, 1, nil
			},
		)

		w := doJSON(r, http.MethodGet, "/v1/products?family=Sofas&colour=red&price_max=500", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_elements"] != 1.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		r, uc, ctrl := newProductRouter(t)
		defer ctrl.Finish()
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db"))

		w := doJSON(r, http.MethodGet, "/v1/products", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _, ctrl := newProductRouter(t)
		defer ctrl.Finish()

		w := doJSON(r, http.MethodGet, "/v1/products/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc, ctrl := newProductRouter(t)
		defer ctrl.Finish()
		uc.EXPECT().Get(gomock.Any(), int64(5)).Return(entities.Product{}, usecase.ErrProductNotFound)

		w := doJSON(r, http.MethodGet, "/v1/products/5", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc, ctrl := newProductRouter(t)
		defer ctrl.Finish()
		uc.EXPECT().Get(gomock.Any(), int64(5)).Return(entities.Product{
			ID: 5, Name: "Oak Table", SKU: "OAK-5", Price: decimal.RequireFromString("199.90"),
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/products/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sku"] != "OAK-5" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
