package place

import (
	"meetpoint/core/middleware"
	"meetpoint/modules/place/controller"
	"meetpoint/modules/place/router"
	"meetpoint/modules/place/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the place module and registers routes
func Init(e *echo.Echo, catalog *service.Catalog, mw *middleware.Middleware) {
	ctrl := controller.NewPlaceController(catalog)
	rtr := router.NewPlaceRouter(ctrl)

	rtr.Setup(e, mw)
}
