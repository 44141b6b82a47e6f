package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitnessBooker/internal/http-server/handlers/auth/login/mocks"
	"fitnessBooker/internal/lib/jwt"
	"fitnessBooker/internal/lib/logger/handlers/slogdiscard"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret = "test-secret"
	testTTL    = time.Hour
)

func testUser(t *testing.T, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.User{
		ID:           uuid.New(),
		Name:         "Ravi",
		Email:        "ravi@example.com",
		PasswordHash: string(hash),
	}
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := testUser(t, "secret123")

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email": "ravi@example.com", "password": "secret123"}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", mock.Anything, "ravi@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "Bearer", resp.TokenType)

				claims, err := jwt.ParseToken(resp.AccessToken, testSecret)
				require.NoError(t, err)
				assert.Equal(t, user.ID.String(), claims.UserID)
			},
		},
		{
			name:        "Wrong password",
			requestBody: `{"email": "ravi@example.com", "password": "wrong-pass"}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", mock.Anything, "ravi@example.com").Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid email or password"}`, body)
			},
		},
		{
			name:        "Unknown email",
			requestBody: `{"email": "ghost@example.com", "password": "secret123"}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", mock.Anything, "ghost@example.com").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid email or password"}`, body)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
			},
		},
		{
			name:           "Missing fields",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:        "Internal server error",
			requestBody: `{"email": "ravi@example.com", "password": "secret123"}`,
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByEmail", mock.Anything, "ravi@example.com").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to login"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userProvider := mocks.NewUserProvider(t)
			tc.mockSetup(userProvider)

			handler := New(logger, userProvider, testSecret, testTTL)

			req, err := http.NewRequest("POST", "/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
