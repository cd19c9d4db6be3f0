package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"mergington/internal/activity/models"
	"mergington/internal/activity/store"
	dErrors "mergington/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	store   *store.InMemoryStore
	ctx     context.Context
}

func (s *ServiceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	s.store = store.NewInMemory(models.Seed())
	s.service = New(s.store, logger)
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestListReturnsFullRegistry() {
	activities, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(activities, 3)
	s.Contains(activities, "Chess Club")
	s.Contains(activities, "Programming Class")
	s.Contains(activities, "Gym Class")
}

func (s *ServiceSuite) TestSignupSuccess() {
	message, err := s.service.Signup(s.ctx, "Chess Club", "newstudent@mergington.edu")
	s.Require().NoError(err)
	s.Equal("Signed up newstudent@mergington.edu for Chess Club", message)

	activities, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(
		[]string{"michael@mergington.edu", "daniel@mergington.edu", "newstudent@mergington.edu"},
		activities["Chess Club"].Participants,
	)
}

func (s *ServiceSuite) TestSignupUnknownActivity() {
	_, err := s.service.Signup(s.ctx, "Drama Club", "someone@mergington.edu")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("Activity not found", err.Error())
}

func (s *ServiceSuite) TestSignupDuplicateLeavesRosterUnchanged() {
	_, err := s.service.Signup(s.ctx, "Chess Club", "michael@mergington.edu")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAlreadyRegistered))
	s.Contains(err.Error(), "already signed up")

	activities, listErr := s.service.List(s.ctx)
	s.Require().NoError(listErr)
	s.Len(activities["Chess Club"].Participants, 2)
}

func (s *ServiceSuite) TestSignupIgnoresCapacity() {
	// Chess Club caps at 12; the registry records capacity but never enforces it.
	for i := 0; i < 15; i++ {
		_, err := s.service.Signup(s.ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i))
		s.Require().NoError(err)
	}

	activities, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(activities["Chess Club"].Participants, 17)
}

func (s *ServiceSuite) TestUnregisterSuccess() {
	message, err := s.service.Unregister(s.ctx, "Chess Club", "michael@mergington.edu")
	s.Require().NoError(err)
	s.Equal("Unregistered michael@mergington.edu from Chess Club", message)

	activities, listErr := s.service.List(s.ctx)
	s.Require().NoError(listErr)
	s.Equal([]string{"daniel@mergington.edu"}, activities["Chess Club"].Participants)
}

func (s *ServiceSuite) TestUnregisterUnknownActivity() {
	_, err := s.service.Unregister(s.ctx, "Drama Club", "someone@mergington.edu")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("Activity not found", err.Error())
}

func (s *ServiceSuite) TestUnregisterAbsentEmail() {
	_, err := s.service.Unregister(s.ctx, "Chess Club", "ghost@mergington.edu")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotRegistered))
	s.Contains(err.Error(), "not registered")

	activities, listErr := s.service.List(s.ctx)
	s.Require().NoError(listErr)
	s.Len(activities["Chess Club"].Participants, 2)
}

func (s *ServiceSuite) TestSignupUnregisterRoundTrip() {
	before, err := s.service.List(s.ctx)
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, "Programming Class", "testuser@mergington.edu")
	s.Require().NoError(err)
	_, err = s.service.Unregister(s.ctx, "Programming Class", "testuser@mergington.edu")
	s.Require().NoError(err)

	after, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(before["Programming Class"].Participants, after["Programming Class"].Participants)
}

func (s *ServiceSuite) TestEmailCanJoinMultipleActivities() {
	email := "busy@mergington.edu"
	for _, activity := range []string{"Chess Club", "Programming Class", "Gym Class"} {
		_, err := s.service.Signup(s.ctx, activity, email)
		s.Require().NoError(err)
	}

	activities, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	for _, activity := range []string{"Chess Club", "Programming Class", "Gym Class"} {
		s.Contains(activities[activity].Participants, email)
	}
}
