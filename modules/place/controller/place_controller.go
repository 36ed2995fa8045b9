package controller

import (
	"meetpoint/core/controller"
	"meetpoint/modules/place/service"

	"github.com/labstack/echo/v4"
)

// PlaceController serves the read-only candidate catalog
type PlaceController struct {
	controller.BaseController
	Catalog *service.Catalog
}

// NewPlaceController creates a new controller
func NewPlaceController(catalog *service.Catalog) *PlaceController {
	return &PlaceController{
		BaseController: controller.NewBaseController(),
		Catalog:        catalog,
	}
}

// ListPlaces handles GET /places
// @Summary List candidate meeting locations
// @Tags Place
// @Produce json
// @Success 200 {array} entity.CandidateLocation
// @Router /places [get]
func (c *PlaceController) ListPlaces(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.Catalog.Locations(), "Success")
}
