package participant

import (
	"meetpoint/core/database"
	"meetpoint/core/middleware"
	"meetpoint/core/tasks"
	meetingRepo "meetpoint/modules/meeting/repository"
	"meetpoint/modules/participant/controller"
	"meetpoint/modules/participant/repository"
	"meetpoint/modules/participant/router"
	"meetpoint/modules/participant/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the participant module and registers routes
func Init(e *echo.Echo, db database.IDatabase, enqueuer tasks.Enqueuer, mw *middleware.Middleware) {
	repo := repository.NewParticipantRepository(db)
	meetings := meetingRepo.NewMeetingRepository(db)
	svc := service.NewParticipantService(repo, meetings, enqueuer)
	ctrl := controller.NewParticipantController(svc)
	rtr := router.NewParticipantRouter(ctrl)

	rtr.Setup(e, mw)
}
