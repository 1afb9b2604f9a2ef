package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"easy-shop/internal/apperr"
	"easy-shop/internal/transport"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = errorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)

	e.GET("/products", d.CatalogHandler.GetProducts)
	e.GET("/products-home", d.CatalogHandler.GetProductsHome)
	e.GET("/products/:id", d.CatalogHandler.GetProduct)
	e.POST("/products", d.CatalogHandler.CreateProduct)
}

// errorHandler renders every failure as the structured envelope with a
// stable kind; internal faults map to 500, everything else to 400.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	kind := apperr.KindOf(err)
	message := apperr.MessageOf(err)
	status := http.StatusBadRequest
	if kind == apperr.KindInternal {
		status = http.StatusInternalServerError
	}

	// Framework errors (unknown route, bad method, bind failures) keep
	// their own status.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		kind = apperr.KindValidation
		if status >= http.StatusInternalServerError {
			kind = apperr.KindInternal
		}
		message = fmt.Sprintf("%v", he.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, transport.ErrorResponse{
		Kind:    string(kind),
		Message: message,
	})
}
