package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"layoutlens/internal/model"
	"layoutlens/internal/repository"
	"layoutlens/internal/repository/memory"
	repoMocks "layoutlens/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		projName   string
		setupMocks func(mRepo *repoMocks.MockProjectRepository)
		wantErrMsg string
	}{
		{
			name:     "happy path",
			projName: "Living Room",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Insert", ctx, "fixed-id", model.Project{
					ID:    "fixed-id",
					Name:  "Living Room",
					Walls: []model.Wall{},
				}).Return(nil)
			},
		},
		{
			name:     "empty name is accepted",
			projName: "",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Insert", ctx, "fixed-id", mock.MatchedBy(func(p model.Project) bool {
					return p.Name == ""
				})).Return(nil)
			},
		},
		{
			name:     "repository error",
			projName: "x",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Insert", ctx, "fixed-id", mock.Anything).Return(errors.New("store fail"))
			},
			wantErrMsg: "insert project: store fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProjectRepository)
			svc := &projectService{repo: mRepo, newID: func() string { return "fixed-id" }}

			tt.setupMocks(mRepo)

			p, err := svc.Create(ctx, tt.projName)

			if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "fixed-id", p.ID)
				assert.Equal(t, tt.projName, p.Name)
				assert.NotNil(t, p.Walls)
				assert.Empty(t, p.Walls)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockProjectRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Get", ctx, "valid-id").Return(&model.Project{ID: "valid-id"}, nil)
			},
		},
		{
			name: "not found - mapping repository.ErrNotFound",
			id:   "missing-id",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Get", ctx, "missing-id").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "generic repository error",
			id:   "error-id",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Get", ctx, "error-id").Return(nil, errors.New("store fail"))
			},
			wantErr: errors.New("store fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProjectRepository)
			svc := NewProjectService(mRepo)

			tt.setupMocks(mRepo)

			p, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				} else {
					assert.Error(t, err)
					assert.NotErrorIs(t, err, ErrNotFound)
				}
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, p.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Replace(t *testing.T) {
	ctx := context.Background()
	updated := model.Project{
		ID:   "p1",
		Name: "Renamed",
		Walls: []model.Wall{
			{ID: "w1", Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 10, Y: 0}, Thickness: 0.2},
		},
	}

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockProjectRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "p1",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				stored := updated
				mRepo.On("Replace", ctx, "p1", updated).Return(&stored, nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Replace", ctx, "missing", updated).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "generic repository error",
			id:   "p1",
			setupMocks: func(mRepo *repoMocks.MockProjectRepository) {
				mRepo.On("Replace", ctx, "p1", updated).Return(nil, errors.New("store fail"))
			},
			wantErr: errors.New("store fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockProjectRepository)
			svc := NewProjectService(mRepo)

			tt.setupMocks(mRepo)

			p, err := svc.Replace(ctx, tt.id, updated)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				assert.Equal(t, updated, *p)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_ConcurrentCreate(t *testing.T) {
	repo := memory.NewProjectMemory()
	svc := NewProjectService(repo)
	ctx := context.Background()

	const n = 100
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := svc.Create(ctx, "room")
			assert.NoError(t, err)
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		assert.NotEmpty(t, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, repo.Len())
}
