package controller

import (
	"meetpoint/core/controller"
	"meetpoint/core/errors"
	"meetpoint/modules/participant/dto"
	"meetpoint/modules/participant/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ParticipantController handles participant HTTP requests
type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

// NewParticipantController creates a new controller
func NewParticipantController(svc service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: svc,
	}
}

// SubmitResponse handles POST /meetings/:id/participants
// @Summary Submit a response
// @Description Submit (or fully replace) a participant's availability and starting location
// @Tags Participant
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.SubmitParticipantRequest true "Participant response"
// @Success 200 {object} dto.ParticipantResponse
// @Failure 400 {object} errors.AppError
// @Router /meetings/{id}/participants [post]
func (c *ParticipantController) SubmitResponse(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	var req dto.SubmitParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ParticipantService.SubmitResponse(ctx.Request().Context(), meetingID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Response recorded")
}

// GetParticipants handles GET /meetings/:id/participants
// @Summary List responses for a meeting
// @Tags Participant
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {array} dto.ParticipantResponse
// @Router /meetings/{id}/participants [get]
func (c *ParticipantController) GetParticipants(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.ParticipantService.GetParticipants(ctx.Request().Context(), meetingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// RemoveParticipant handles DELETE /meetings/:id/participants/:participantId
// @Summary Remove a response
// @Tags Participant
// @Param id path string true "Meeting ID"
// @Param participantId path string true "Participant ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /meetings/{id}/participants/{participantId} [delete]
func (c *ParticipantController) RemoveParticipant(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	participantID, err := uuid.Parse(ctx.Param("participantId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid participant ID")
	}

	appErr := c.ParticipantService.RemoveParticipant(ctx.Request().Context(), meetingID, participantID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Participant removed")
}
