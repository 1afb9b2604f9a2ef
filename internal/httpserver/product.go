package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"easy-shop/internal/apperr"
	"easy-shop/internal/models"
	"easy-shop/internal/service"
	"easy-shop/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	items, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetProductsHome(c echo.Context) error {
	items, err := h.Svc.ListHome(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// GetProduct answers null with 200 for an unknown id.
func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	product, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	doc := models.Product{}
	if err := c.Bind(&doc); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid body", err)
	}

	id, err := h.Svc.Create(ctx, doc)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.InsertResponse{
		Acknowledged: true,
		InsertedID:   id.Hex(),
	})
}
