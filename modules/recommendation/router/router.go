package router

import (
	"meetpoint/core/middleware"
	"meetpoint/modules/recommendation/controller"

	"github.com/labstack/echo/v4"
)

// RecommendationRouter handles recommendation routes
type RecommendationRouter struct {
	RecommendationController *controller.RecommendationController
}

// NewRecommendationRouter creates a new router
func NewRecommendationRouter(recommendationController *controller.RecommendationController) *RecommendationRouter {
	return &RecommendationRouter{
		RecommendationController: recommendationController,
	}
}

// Setup registers recommendation routes under the meeting resource
func (r *RecommendationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	recRoutes := v1.Group("/meetings/:id/recommendation")

	recRoutes.GET("", r.RecommendationController.GetRecommendation)
	recRoutes.POST("/refresh", r.RecommendationController.RefreshRecommendation)
}
