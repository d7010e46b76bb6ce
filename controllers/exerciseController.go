package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"golang-exercisetracker/helpers"
	"golang-exercisetracker/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NumericString holds a number exactly as the client sent it. It accepts
// JSON numbers as well as strings, and is parsed only once the request has
// passed validation.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*n = ""
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*n = NumericString(s)
	default:
		*n = NumericString(trimmed)
	}
	return nil
}

type CreateExerciseRequest struct {
	Description string        `json:"description" form:"description" validate:"required"`
	Duration    NumericString `json:"duration" form:"duration" validate:"required"`
	Date        string        `json:"date" form:"date"`
}

type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

type LogQuery struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

func (ctl *Controller) CreateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.requestContext(c)
		defer cancel()

		var req CreateExerciseRequest
		if err := c.ShouldBind(&req); err != nil {
			ctl.respondError(c, badRequest("Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			ctl.respondError(c, badRequest("Description and duration are required"))
			return
		}

		user, err := ctl.store.FindUserByID(ctx, c.Param("_id"))
		if err != nil {
			ctl.respondError(c, err)
			return
		}

		duration, err := helpers.ParseInteger(string(req.Duration))
		if err != nil {
			ctl.respondError(c, fmt.Errorf("duration: %w", err))
			return
		}

		date := ctl.now().UTC()
		if req.Date != "" {
			if date, err = helpers.ParseDate(req.Date); err != nil {
				ctl.respondError(c, fmt.Errorf("date: %w", err))
				return
			}
		}

		exercise, err := ctl.store.CreateExercise(ctx, models.Exercise{
			UserID:      user.ID,
			Description: req.Description,
			Duration:    duration,
			Date:        date,
		})
		if err != nil {
			ctl.respondError(c, err)
			return
		}

		ctl.logger.Info("exercise created",
			zap.String("user_id", user.ID.Hex()),
			zap.String("exercise_id", exercise.ID.Hex()),
		)
		c.JSON(http.StatusOK, ExerciseResponse{
			ID:          user.ID.Hex(),
			Username:    user.Username,
			Date:        helpers.FormatDate(exercise.Date),
			Duration:    exercise.Duration,
			Description: exercise.Description,
		})
	}
}

func (ctl *Controller) GetLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctl.requestContext(c)
		defer cancel()

		user, err := ctl.store.FindUserByID(ctx, c.Param("_id"))
		if err != nil {
			ctl.respondError(c, err)
			return
		}

		var query LogQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			ctl.respondError(c, badRequest("Invalid query"))
			return
		}
		filter, err := query.filter()
		if err != nil {
			ctl.respondError(c, err)
			return
		}

		exercises, err := ctl.store.FindExercises(ctx, user, filter)
		if err != nil {
			ctl.respondError(c, err)
			return
		}

		log := make([]LogEntry, 0, len(exercises))
		for _, exercise := range exercises {
			log = append(log, LogEntry{
				Description: exercise.Description,
				Duration:    exercise.Duration,
				Date:        helpers.FormatDate(exercise.Date),
			})
		}

		c.JSON(http.StatusOK, LogResponse{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Count:    len(log),
			Log:      log,
		})
	}
}

func (q LogQuery) filter() (models.LogFilter, error) {
	from, err := helpers.ParseOptionalDate(q.From)
	if err != nil {
		return models.LogFilter{}, fmt.Errorf("from: %w", err)
	}
	to, err := helpers.ParseOptionalDate(q.To)
	if err != nil {
		return models.LogFilter{}, fmt.Errorf("to: %w", err)
	}
	return models.LogFilter{
		From:  from,
		To:    to,
		Limit: helpers.ParseLimit(q.Limit),
	}, nil
}
