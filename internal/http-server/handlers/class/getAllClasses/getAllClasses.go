package getAllClasses

import (
	"context"
	"log/slog"
	"net/http"

	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/models"

	"github.com/go-chi/render"
)

type ClassesResponse struct {
	response.Response
	Classes []models.FitnessClass `json:"classes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassesProvider
type ClassesProvider interface {
	GetAllClasses(ctx context.Context) ([]models.FitnessClass, error)
}

func New(log *slog.Logger, classesProvider ClassesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.getAllClasses.New"

		log = log.With(slog.String("op", op))

		classes, err := classesProvider.GetAllClasses(r.Context())
		if err != nil {
			log.Error("failed to get classes", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get classes"))
			return
		}

		log.Info("classes retrieved successfully", slog.Int("count", len(classes)))

		responseOK(w, r, classes)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, classes []models.FitnessClass) {
	render.JSON(w, r, ClassesResponse{
		Response: response.OK(),
		Classes:  classes,
	})
}
