package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fitnessBooker/internal/http-server/middleware/mwauth"
	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/lib/schedule"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BookingRequest struct {
	ClassID     string `json:"class_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required,email"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	GetClass(ctx context.Context, id uuid.UUID) (*models.FitnessClass, error)
	CreateBooking(ctx context.Context, userID, classID uuid.UUID, clientName, clientEmail string) (*models.Booking, error)
}

func New(log *slog.Logger, bookingCreator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		log = log.With(slog.String("user_id", user.ID.String()))

		var req BookingRequest

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

		classID, err := uuid.Parse(req.ClassID)
		if err != nil {
			log.Error("invalid class id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid class id format"))
			return
		}

		log = log.With(slog.String("class_id", classID.String()))

		class, err := bookingCreator.GetClass(r.Context(), classID)
		if err != nil {
			if errors.Is(err, storage.ErrClassNotFound) {
				log.Info("class not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("class not found"))
				return
			}

			log.Error("failed to get class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to book class"))
			return
		}

		if schedule.IsPast(class.DateTime) {
			log.Info("rejected booking for past class", slog.Time("date_time", class.DateTime))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("cannot book a past class"))
			return
		}

		booking, err := bookingCreator.CreateBooking(r.Context(), user.ID, classID, req.ClientName, req.ClientEmail)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrSlotsExhausted):
				log.Info("no available slots")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available slots"))
			case errors.Is(err, storage.ErrAlreadyBooked):
				log.Info("duplicate booking attempt")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already booked for this class"))
			case errors.Is(err, storage.ErrClassNotFound):
				log.Info("class not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("class not found"))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book class"))
			}
			return
		}

		log.Info("class booked successfully", slog.String("booking_id", booking.ID.String()))

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
