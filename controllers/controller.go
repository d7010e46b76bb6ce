package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang-exercisetracker/database"
	"golang-exercisetracker/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// Controller serves the exercise tracker endpoints over a Store.
type Controller struct {
	store   database.Store
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewController(store database.Store, logger *zap.Logger, timeout time.Duration) *Controller {
	return &Controller{
		store:   store,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

func (ctl *Controller) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), ctl.timeout)
}

// clientError marks failures caused by the request itself.
type clientError struct {
	msg string
}

func (e *clientError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &clientError{msg: msg}
}

// respondError writes err as a plain text response. Anything that is not a
// client error or an unknown user is logged and reported as a server error.
func (ctl *Controller) respondError(c *gin.Context, err error) {
	var ce *clientError
	switch {
	case errors.As(err, &ce):
		c.String(http.StatusBadRequest, ce.msg)
	case errors.Is(err, database.ErrDuplicateUsername):
		c.String(http.StatusBadRequest, "Username already taken")
	case errors.Is(err, database.ErrUserNotFound):
		c.String(http.StatusNotFound, "User not found")
	default:
		ctl.logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, "Server error")
	}
}

// Healthz pings the store.
func (ctl *Controller) Healthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.requestContext(c)
		defer cancel()

		if err := ctl.store.Ping(ctx); err != nil {
			ctl.logger.Warn("store ping failed", zap.Error(err))
			c.String(http.StatusServiceUnavailable, "Store unavailable")
			return
		}
		c.String(http.StatusOK, "ok")
	}
}
