package mocks

import (
	"context"

	"layoutlens/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Insert(ctx context.Context, id string, p model.Project) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func (m *MockProjectRepository) Get(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) Replace(ctx context.Context, id string, p model.Project) (*model.Project, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) Len() int {
	args := m.Called()
	return args.Int(0)
}
