package routes

import (
	controller "golang-exercisetracker/controllers"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.Controller) {
	incomingRoutes.POST("/users/:_id/exercises", ctl.CreateExercise())
	incomingRoutes.GET("/users/:_id/logs", ctl.GetLogs())
}
