package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonmartinstorm/profilsnusern/internal/models"
)

type MockProfileSource struct {
	mock.Mock
}

func (m *MockProfileSource) FetchProfile(ctx context.Context, username string) (models.Profile, error) {
	args := m.Called(ctx, username)
	profile, _ := args.Get(0).(models.Profile)
	return profile, args.Error(1)
}

func (m *MockProfileSource) FetchRepos(ctx context.Context, username string) ([]models.Repository, error) {
	args := m.Called(ctx, username)
	repos, _ := args.Get(0).([]models.Repository)
	return repos, args.Error(1)
}
