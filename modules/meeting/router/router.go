package router

import (
	"meetpoint/core/middleware"
	"meetpoint/modules/meeting/controller"

	"github.com/labstack/echo/v4"
)

// MeetingRouter handles meeting routes
type MeetingRouter struct {
	MeetingController *controller.MeetingController
}

// NewMeetingRouter creates a new router
func NewMeetingRouter(meetingController *controller.MeetingController) *MeetingRouter {
	return &MeetingRouter{
		MeetingController: meetingController,
	}
}

// Setup registers meeting routes
func (r *MeetingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	meetingRoutes := v1.Group("/meetings")

	meetingRoutes.POST("", r.MeetingController.CreateMeeting)
	meetingRoutes.GET("", r.MeetingController.ListMeetings)
	meetingRoutes.GET("/:id", r.MeetingController.GetMeeting)
	meetingRoutes.GET("/code/:code", r.MeetingController.GetMeetingByCode)
	meetingRoutes.PUT("/:id", r.MeetingController.UpdateMeeting)
	meetingRoutes.DELETE("/:id", r.MeetingController.DeleteMeeting)
}
