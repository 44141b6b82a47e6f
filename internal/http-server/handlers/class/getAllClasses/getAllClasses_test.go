package getAllClasses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitnessBooker/internal/http-server/handlers/class/getAllClasses/mocks"
	"fitnessBooker/internal/lib/logger/handlers/slogdiscard"
	"fitnessBooker/internal/lib/schedule"
	"fitnessBooker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllClassesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	classes := []models.FitnessClass{
		{
			ID:             uuid.New(),
			Name:           "Yoga 101",
			Instructor:     "Ravi",
			DateTime:       time.Date(2099, 1, 1, 9, 0, 0, 0, schedule.Zone()),
			TotalSlots:     10,
			AvailableSlots: 7,
		},
		{
			ID:             uuid.New(),
			Name:           "HIIT",
			Instructor:     "Asha",
			DateTime:       time.Date(2099, 1, 2, 18, 0, 0, 0, schedule.Zone()),
			TotalSlots:     20,
			AvailableSlots: 20,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.ClassesProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.ClassesProvider) {
				m.On("GetAllClasses", mock.Anything).Return(classes, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ClassesResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Classes, 2)
				assert.Equal(t, "Yoga 101", resp.Classes[0].Name)
				assert.Equal(t, 7, resp.Classes[0].AvailableSlots)
			},
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.ClassesProvider) {
				m.On("GetAllClasses", mock.Anything).Return([]models.FitnessClass{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ClassesResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Classes)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.ClassesProvider) {
				m.On("GetAllClasses", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get classes"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			classesProvider := mocks.NewClassesProvider(t)
			tc.mockSetup(classesProvider)

			handler := New(logger, classesProvider)

			req, err := http.NewRequest("GET", "/classes", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
