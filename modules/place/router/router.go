package router

import (
	"meetpoint/core/middleware"
	"meetpoint/modules/place/controller"

	"github.com/labstack/echo/v4"
)

// PlaceRouter handles catalog routes
type PlaceRouter struct {
	PlaceController *controller.PlaceController
}

// NewPlaceRouter creates a new router
func NewPlaceRouter(placeController *controller.PlaceController) *PlaceRouter {
	return &PlaceRouter{
		PlaceController: placeController,
	}
}

// Setup registers catalog routes
func (r *PlaceRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	v1.GET("/places", r.PlaceController.ListPlaces)
}
