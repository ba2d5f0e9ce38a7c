package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qwhomes/proposal-service/internal/adapter/http/dto/request"
	"github.com/qwhomes/proposal-service/internal/adapter/http/dto/response"
	"github.com/qwhomes/proposal-service/internal/usecase"
	"github.com/qwhomes/proposal-service/pkg"
)

// ProductHandler serves the read-only faceted catalog listing backing both
// catalog browsing and proposal building.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query request.ProductFilterRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_FILTER", "Invalid product filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	filter := query.ToFilter()

	products, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ProductPage(products, filter.Page, filter.Size, total))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	product, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
