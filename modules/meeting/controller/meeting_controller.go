package controller

import (
	"strconv"

	"meetpoint/core/controller"
	"meetpoint/core/errors"
	"meetpoint/modules/meeting/dto"
	"meetpoint/modules/meeting/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MeetingController handles meeting HTTP requests
type MeetingController struct {
	controller.BaseController
	MeetingService service.MeetingServiceInterface
}

// NewMeetingController creates a new controller
func NewMeetingController(svc service.MeetingServiceInterface) *MeetingController {
	return &MeetingController{
		BaseController: controller.NewBaseController(),
		MeetingService: svc,
	}
}

// CreateMeeting handles POST /meetings
// @Summary Create a meeting
// @Description Create a meeting with candidate days and a daily time window
// @Tags Meeting
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Meeting definition"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Router /meetings [post]
func (c *MeetingController) CreateMeeting(ctx echo.Context) error {
	var req dto.CreateMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.CreateMeeting(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting created successfully")
}

// GetMeeting handles GET /meetings/:id
// @Summary Get a meeting
// @Tags Meeting
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 404 {object} errors.AppError
// @Router /meetings/{id} [get]
func (c *MeetingController) GetMeeting(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	result, appErr := c.MeetingService.GetMeetingByID(ctx.Request().Context(), meetingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetMeetingByCode handles GET /meetings/code/:code
// @Summary Get a meeting by public code
// @Tags Meeting
// @Produce json
// @Param code path string true "Meeting code"
// @Success 200 {object} dto.MeetingResponse
// @Failure 404 {object} errors.AppError
// @Router /meetings/code/{code} [get]
func (c *MeetingController) GetMeetingByCode(ctx echo.Context) error {
	result, appErr := c.MeetingService.GetMeetingByCode(ctx.Request().Context(), ctx.Param("code"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListMeetings handles GET /meetings
// @Summary List recent meetings
// @Tags Meeting
// @Produce json
// @Param limit query int false "Max results (default 20)"
// @Success 200 {array} dto.MeetingResponse
// @Router /meetings [get]
func (c *MeetingController) ListMeetings(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	result, appErr := c.MeetingService.ListRecentMeetings(ctx.Request().Context(), limit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary Update a meeting
// @Tags Meeting
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param request body dto.UpdateMeetingRequest true "Fields to update"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} errors.AppError
// @Router /meetings/{id} [put]
func (c *MeetingController) UpdateMeeting(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	var req dto.UpdateMeetingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.MeetingService.UpdateMeeting(ctx.Request().Context(), meetingID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Meeting updated successfully")
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary Delete a meeting
// @Tags Meeting
// @Param id path string true "Meeting ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /meetings/{id} [delete]
func (c *MeetingController) DeleteMeeting(ctx echo.Context) error {
	meetingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid meeting ID")
	}

	appErr := c.MeetingService.DeleteMeeting(ctx.Request().Context(), meetingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Meeting deleted successfully")
}
