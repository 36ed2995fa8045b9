package recommendation

import (
	"meetpoint/core/cache"
	"meetpoint/core/database"
	"meetpoint/core/middleware"
	meetingRepo "meetpoint/modules/meeting/repository"
	participantRepo "meetpoint/modules/participant/repository"
	"meetpoint/modules/recommendation/controller"
	"meetpoint/modules/recommendation/entity"
	"meetpoint/modules/recommendation/repository"
	"meetpoint/modules/recommendation/router"
	"meetpoint/modules/recommendation/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the recommendation module and registers routes. The
// returned service is also the asynq handler for refresh tasks.
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, catalog []entity.CandidateLocation, mw *middleware.Middleware) *service.RecommendationService {
	repo := repository.NewRecommendationRepository(db)
	meetings := meetingRepo.NewMeetingRepository(db)
	participants := participantRepo.NewParticipantRepository(db)
	svc := service.NewRecommendationService(repo, meetings, participants, c, catalog)
	ctrl := controller.NewRecommendationController(svc)
	rtr := router.NewRecommendationRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
