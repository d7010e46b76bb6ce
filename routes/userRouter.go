package routes

import (
	controller "golang-exercisetracker/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.Controller) {
	incomingRoutes.POST("/users", ctl.CreateUser())
	incomingRoutes.GET("/users", ctl.GetUsers())
}
