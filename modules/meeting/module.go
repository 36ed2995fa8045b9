package meeting

import (
	"meetpoint/core/cache"
	"meetpoint/core/database"
	"meetpoint/core/middleware"
	"meetpoint/modules/meeting/controller"
	"meetpoint/modules/meeting/repository"
	"meetpoint/modules/meeting/router"
	"meetpoint/modules/meeting/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewMeetingRepository(db)
	svc := service.NewMeetingService(repo, c)
	ctrl := controller.NewMeetingController(svc)
	rtr := router.NewMeetingRouter(ctrl)

	rtr.Setup(e, mw)
}
