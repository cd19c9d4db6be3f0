package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mergington/internal/activity/handler/mocks"
	"mergington/internal/activity/models"
	dErrors "mergington/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite
	router      http.Handler
	ctrl        *gomock.Controller
	mockService *mocks.MockService
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(s.mockService, logger, nil)

	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestListActivities() {
	s.mockService.EXPECT().List(gomock.Any()).Return(map[string]*models.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	}, nil)

	rec := s.do(http.MethodGet, "/activities")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))

	var body map[string]models.Activity
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Contains(body, "Chess Club")
	s.Equal(12, body["Chess Club"].MaxParticipants)
	s.Equal([]string{"michael@mergington.edu", "daniel@mergington.edu"}, body["Chess Club"].Participants)
}

func (s *HandlerSuite) TestSignupSuccess() {
	s.mockService.EXPECT().
		Signup(gomock.Any(), "Chess Club", "newstudent@mergington.edu").
		Return("Signed up newstudent@mergington.edu for Chess Club", nil)

	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")

	s.Equal(http.StatusOK, rec.Code)
	var body models.MessageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Signed up newstudent@mergington.edu for Chess Club", body.Message)
}

func (s *HandlerSuite) TestSignupMissingEmail() {
	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup")

	s.Equal(http.StatusBadRequest, rec.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("email query parameter is required", body["detail"])
}

func (s *HandlerSuite) TestSignupUnknownActivity() {
	s.mockService.EXPECT().
		Signup(gomock.Any(), "NonExistent Club", "student@mergington.edu").
		Return("", dErrors.New(dErrors.CodeNotFound, "Activity not found"))

	rec := s.do(http.MethodPost, "/activities/NonExistent%20Club/signup?email=student@mergington.edu")

	s.Equal(http.StatusNotFound, rec.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Activity not found", body["detail"])
}

func (s *HandlerSuite) TestSignupDuplicateIs400() {
	s.mockService.EXPECT().
		Signup(gomock.Any(), "Chess Club", "michael@mergington.edu").
		Return("", dErrors.New(dErrors.CodeAlreadyRegistered, "Student is already signed up"))

	rec := s.do(http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")

	s.Equal(http.StatusBadRequest, rec.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body["detail"], "already signed up")
}

func (s *HandlerSuite) TestUnregisterSuccess() {
	s.mockService.EXPECT().
		Unregister(gomock.Any(), "Chess Club", "michael@mergington.edu").
		Return("Unregistered michael@mergington.edu from Chess Club", nil)

	rec := s.do(http.MethodDelete, "/activities/Chess%20Club/signup/michael@mergington.edu")

	s.Equal(http.StatusOK, rec.Code)
	var body models.MessageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Unregistered michael@mergington.edu from Chess Club", body.Message)
}

func (s *HandlerSuite) TestUnregisterAbsentEmailIs404() {
	s.mockService.EXPECT().
		Unregister(gomock.Any(), "Chess Club", "ghost@mergington.edu").
		Return("", dErrors.New(dErrors.CodeNotRegistered, "Student is not registered for this activity"))

	rec := s.do(http.MethodDelete, "/activities/Chess%20Club/signup/ghost@mergington.edu")

	s.Equal(http.StatusNotFound, rec.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Contains(body["detail"], "not registered")
}

// TestActivityNameDecoding verifies percent-encoded path segments resolve to
// the literal registry key before reaching the service.
func (s *HandlerSuite) TestActivityNameDecoding() {
	s.mockService.EXPECT().
		Signup(gomock.Any(), "Gym Class", "student@mergington.edu").
		Return("Signed up student@mergington.edu for Gym Class", nil)

	rec := s.do(http.MethodPost, "/activities/Gym%20Class/signup?email=student%40mergington.edu")

	s.Equal(http.StatusOK, rec.Code)
}
