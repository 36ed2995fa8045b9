package controller

import (
	"meetpoint/core/controller"
	"meetpoint/core/errors"
	"meetpoint/modules/recommendation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RecommendationController handles recommendation HTTP requests
type RecommendationController struct {
	controller.BaseController
	RecommendationService service.RecommendationServiceInterface
}

// NewRecommendationController creates a new controller
func NewRecommendationController(svc service.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		BaseController:        controller.NewBaseController(),
		RecommendationService: svc,
	}
}

// GetRecommendation handles GET /meetings/:id/recommendation
// @Summary Get meeting recommendations
// @Description Latest recommended time ranges and ranked meeting locations
// @Tags Recommendation
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 404 {object} errors.AppError
// @Router /meetings/{id}/recommendation [get]
func (c *RecommendationController) GetRecommendation(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.RecommendationService.GetRecommendation(ctx.Request().Context(), meetingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// RefreshRecommendation handles POST /meetings/:id/recommendation/refresh
// @Summary Recompute meeting recommendations
// @Description Synchronously recompute from the current participant snapshot
// @Tags Recommendation
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 404 {object} errors.AppError
// @Router /meetings/{id}/recommendation/refresh [post]
func (c *RecommendationController) RefreshRecommendation(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.RecommendationService.Refresh(ctx.Request().Context(), meetingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Recommendations refreshed")
}
