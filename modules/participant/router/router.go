package router

import (
	"meetpoint/core/middleware"
	"meetpoint/modules/participant/controller"

	"github.com/labstack/echo/v4"
)

// ParticipantRouter handles participant routes
type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

// NewParticipantRouter creates a new router
func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{
		ParticipantController: participantController,
	}
}

// Setup registers participant routes under the meeting resource
func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	participantRoutes := v1.Group("/meetings/:id/participants")

	participantRoutes.POST("", r.ParticipantController.SubmitResponse)
	participantRoutes.GET("", r.ParticipantController.GetParticipants)
	participantRoutes.DELETE("/:participantId", r.ParticipantController.RemoveParticipant)
}
