package routes

import (
	"net/http"

	controller "golang-exercisetracker/controllers"
	"golang-exercisetracker/middleware"
	"golang-exercisetracker/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter assembles the middleware chain and every route of the service.
func NewRouter(ctl *controller.Controller, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Metrics())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", views.IndexHTML)
	})
	router.GET("/healthz", ctl.Healthz())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		UserRoutes(api, ctl)
		ExerciseRoutes(api, ctl)
	}

	return router
}
