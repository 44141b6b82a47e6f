package createClass

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/lib/schedule"
	"fitnessBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ClassRequest struct {
	Name       string `json:"name" validate:"required"`
	Instructor string `json:"instructor" validate:"required"`
	DateTime   string `json:"date_time" validate:"required"`
	TotalSlots int    `json:"total_slots" validate:"required,gt=0"`
}

type ClassResponse struct {
	response.Response
	Class *models.FitnessClass `json:"class"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassSaver
type ClassSaver interface {
	CreateClass(ctx context.Context, name, instructor string, dateTime time.Time, totalSlots int) (*models.FitnessClass, error)
}

func New(log *slog.Logger, classSaver ClassSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.createClass.New"

		log = log.With(slog.String("op", op))

		var req ClassRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		dateTime, err := schedule.Parse(req.DateTime)
		if err != nil {
			log.Error("invalid date_time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date_time format"))
			return
		}

		if schedule.IsPast(dateTime) {
			log.Info("rejected past class time", slog.Time("date_time", dateTime))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("class time cannot be in the past"))
			return
		}

		class, err := classSaver.CreateClass(r.Context(), req.Name, req.Instructor, dateTime, req.TotalSlots)
		if err != nil {
			log.Error("failed to create class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create class"))
			return
		}

		log.Info("class created", slog.String("class_id", class.ID.String()))

		responseOK(w, r, class)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, class *models.FitnessClass) {
	render.JSON(w, r, ClassResponse{
		Response: response.OK(),
		Class:    class,
	})
}
