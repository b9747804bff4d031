package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/repository"
	"github.com/octofit-labs/octofit-backend/internal/service"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateUser_ValidationError(t *testing.T) {
	h := NewHandler(zap.NewNop()).
		WithUserService(service.NewUserService(new(service.MockTransactor)))

	c, rec := newTestContext(t, http.MethodPost, "/api/users", `{"username":"Thor"}`)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error *service.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.ErrorCodeInvalidBody, resp.Error.Code)
}

func TestCreateUser_PasswordAbsentFromResponse(t *testing.T) {
	mockRepo := new(service.MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := NewHandler(zap.NewNop()).
		WithUserService(service.NewUserService(new(service.MockTransactor)).WithUserRepo(mockRepo))

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"email":"thor@asgard.com","username":"Thor","password":"mjolnir123"}`)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "mjolnir123")
	mockRepo.AssertExpectations(t)
}

func TestGetUser_NotFound(t *testing.T) {
	mockRepo := new(service.MockUserRepository)
	mockRepo.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	h := NewHandler(zap.NewNop()).
		WithUserService(service.NewUserService(new(service.MockTransactor)).WithUserRepo(mockRepo))

	c, rec := newTestContext(t, http.MethodGet, "/api/users/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_DuplicateEmailConflict(t *testing.T) {
	mockRepo := new(service.MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrAlreadyExists)

	h := NewHandler(zap.NewNop()).
		WithUserService(service.NewUserService(new(service.MockTransactor)).WithUserRepo(mockRepo))

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"email":"thor@asgard.com","username":"Thor","password":"mjolnir123"}`)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateWorkout_InvalidDifficulty(t *testing.T) {
	h := NewHandler(zap.NewNop()).
		WithWorkoutService(service.NewWorkoutService(new(service.MockTransactor)))

	c, rec := newTestContext(t, http.MethodPost, "/api/workouts",
		`{"name":"Test","difficulty":"Impossible","duration":30,"category":"Cardio"}`)

	require.NoError(t, h.CreateWorkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
