package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/internal/repository"
)

func TestTeamService_CreateTeam(t *testing.T) {
	tests := []struct {
		name          string
		team          *model.Team
		setupMocks    func(*MockTeamRepository)
		expectedError bool
		errorCode     ErrorCode
	}{
		{
			name: "success",
			team: &model.Team{Name: "Team Marvel", Description: "Earth's Mightiest Heroes"},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Create", mock.Anything, mock.MatchedBy(func(rec *repository.Team) bool {
					return rec.Name == "Team Marvel" && rec.ID != ""
				})).Return(nil)
			},
		},
		{
			name: "storage failure",
			team: &model.Team{Name: "Team DC"},
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTeamRepo := new(MockTeamRepository)
			tt.setupMocks(mockTeamRepo)

			service := NewTeamService(new(MockTransactor)).WithTeamRepo(mockTeamRepo)

			got, err := service.CreateTeam(context.Background(), tt.team)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
			} else {
				assert.Nil(t, err)
				assert.NotEmpty(t, got.ID)
				assert.Equal(t, tt.team.Name, got.Name)
				assert.NotNil(t, got.CreatedAt)
			}

			mockTeamRepo.AssertExpectations(t)
		})
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockTeamRepository)
		expectedError bool
		errorCode     ErrorCode
	}{
		{
			name: "success",
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Get", mock.Anything, "team-1").Return(&repository.Team{ID: "team-1", Name: "Team DC"}, nil)
			},
		},
		{
			name: "not found",
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Get", mock.Anything, "team-1").Return(nil, repository.ErrNotFound)
			},
			expectedError: true,
			errorCode:     ErrorCodeNotFound,
		},
		{
			name: "storage failure",
			setupMocks: func(tr *MockTeamRepository) {
				tr.On("Get", mock.Anything, "team-1").Return(nil, errors.New("db error"))
			},
			expectedError: true,
			errorCode:     ErrorCodeUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTeamRepo := new(MockTeamRepository)
			tt.setupMocks(mockTeamRepo)

			service := NewTeamService(new(MockTransactor)).WithTeamRepo(mockTeamRepo)

			got, err := service.GetTeam(context.Background(), "team-1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, tt.errorCode, err.Code)
				assert.Nil(t, got)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, "Team DC", got.Name)
			}

			mockTeamRepo.AssertExpectations(t)
		})
	}
}

func TestTeamService_DeleteTeam_NoCascade(t *testing.T) {
	// Deleting a team touches only the teams collection; users and
	// activities are never consulted.
	mockTeamRepo := new(MockTeamRepository)
	mockTeamRepo.On("Delete", mock.Anything, "team-1").Return(nil)

	service := NewTeamService(new(MockTransactor)).WithTeamRepo(mockTeamRepo)

	err := service.DeleteTeam(context.Background(), "team-1")
	assert.Nil(t, err)
	mockTeamRepo.AssertExpectations(t)
}
