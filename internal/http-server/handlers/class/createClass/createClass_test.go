package createClass

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitnessBooker/internal/http-server/handlers/class/createClass/mocks"
	"fitnessBooker/internal/lib/logger/handlers/slogdiscard"
	"fitnessBooker/internal/lib/schedule"
	"fitnessBooker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClassHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	futureTime := time.Date(2099, 1, 1, 9, 0, 0, 0, schedule.Zone())

	newClass := &models.FitnessClass{
		ID:             uuid.New(),
		Name:           "Yoga 101",
		Instructor:     "Ravi",
		DateTime:       futureTime,
		TotalSlots:     10,
		AvailableSlots: 10,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.ClassSaver)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success with offset timestamp",
			requestBody: `{"name": "Yoga 101", "instructor": "Ravi", "date_time": "2099-01-01T09:00:00+05:30", "total_slots": 10}`,
			mockSetup: func(m *mocks.ClassSaver) {
				m.On("CreateClass", mock.Anything, "Yoga 101", "Ravi",
					mock.MatchedBy(func(dt time.Time) bool { return dt.Equal(futureTime) }), 10).
					Return(newClass, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"available_slots":10`)
			},
		},
		{
			name:        "Success with naive timestamp",
			requestBody: `{"name": "Yoga 101", "instructor": "Ravi", "date_time": "2099-01-01T09:00:00", "total_slots": 10}`,
			mockSetup: func(m *mocks.ClassSaver) {
				m.On("CreateClass", mock.Anything, "Yoga 101", "Ravi",
					mock.MatchedBy(func(dt time.Time) bool { return dt.Equal(futureTime) }), 10).
					Return(newClass, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Past class time",
			requestBody:    `{"name": "Yoga 101", "instructor": "Ravi", "date_time": "2020-01-01T09:00:00", "total_slots": 10}`,
			mockSetup:      func(m *mocks.ClassSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"class time cannot be in the past"}`, body)
			},
		},
		{
			name:           "Unparsable timestamp",
			requestBody:    `{"name": "Yoga 101", "instructor": "Ravi", "date_time": "next tuesday", "total_slots": 10}`,
			mockSetup:      func(m *mocks.ClassSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid date_time format"}`, body)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.ClassSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
			},
		},
		{
			name:           "Missing all fields",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.ClassSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Name")
				assert.Contains(t, body, "Instructor")
				assert.Contains(t, body, "DateTime")
				assert.Contains(t, body, "TotalSlots")
			},
		},
		{
			name:           "Zero total_slots",
			requestBody:    `{"name": "Yoga 101", "instructor": "Ravi", "date_time": "2099-01-01T09:00:00", "total_slots": 0}`,
			mockSetup:      func(m *mocks.ClassSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "TotalSlots")
			},
		},
		{
			name:           "Negative total_slots",
			requestBody:    `{"name": "Yoga 101", "instructor": "Ravi", "date_time": "2099-01-01T09:00:00", "total_slots": -5}`,
			mockSetup:      func(m *mocks.ClassSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "TotalSlots")
			},
		},
		{
			name:        "Internal server error",
			requestBody: `{"name": "Yoga 101", "instructor": "Ravi", "date_time": "2099-01-01T09:00:00", "total_slots": 10}`,
			mockSetup: func(m *mocks.ClassSaver) {
				m.On("CreateClass", mock.Anything, "Yoga 101", "Ravi", mock.AnythingOfType("time.Time"), 10).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to create class"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			classSaver := mocks.NewClassSaver(t)
			tc.mockSetup(classSaver)

			handler := New(logger, classSaver)

			req, err := http.NewRequest("POST", "/classes", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	class := &models.FitnessClass{
		ID:             uuid.New(),
		Name:           "Yoga 101",
		Instructor:     "Ravi",
		TotalSlots:     10,
		AvailableSlots: 10,
	}
	responseOK(rr, req, class)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse ClassResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, class.ID, actualResponse.Class.ID)
	assert.Equal(t, 10, actualResponse.Class.AvailableSlots)
}
