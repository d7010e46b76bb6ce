package controllers

import (
	"net/http"

	"golang-exercisetracker/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

func (ctl *Controller) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.requestContext(c)
		defer cancel()

		var req CreateUserRequest
		if err := c.ShouldBind(&req); err != nil {
			ctl.respondError(c, badRequest("Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			ctl.respondError(c, badRequest("Username is required"))
			return
		}

		user, err := ctl.store.CreateUser(ctx, req.Username)
		if err != nil {
			ctl.respondError(c, err)
			return
		}

		ctl.logger.Info("user created", zap.String("user_id", user.ID.Hex()))
		c.JSON(http.StatusOK, user)
	}
}

func (ctl *Controller) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.requestContext(c)
		defer cancel()

		users, err := ctl.store.ListUsers(ctx)
		if err != nil {
			ctl.respondError(c, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}

		c.JSON(http.StatusOK, users)
	}
}
