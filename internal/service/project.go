package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"layoutlens/internal/model"
	"layoutlens/internal/repository"
)

var (
	ErrNotFound = errors.New("project not found")
)

// ProjectService defines the use cases for handling projects.
type ProjectService interface {
	// Create stores a new project with a generated ID, the given name and no walls.
	Create(ctx context.Context, name string) (*model.Project, error)

	// Get returns the project stored under id.
	Get(ctx context.Context, id string) (*model.Project, error)

	// Replace overwrites the project stored under id with updated in its entirety.
	// The embedded ID and name are stored as sent, even if they disagree with id.
	Replace(ctx context.Context, id string, updated model.Project) (*model.Project, error)
}

// projectService is a concrete implementation of ProjectService.
type projectService struct {
	repo  repository.ProjectRepository
	newID func() string
}

// NewProjectService constructs a new ProjectService backed by repo.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo, newID: uuid.NewString}
}

func (s *projectService) Create(ctx context.Context, name string) (*model.Project, error) {
	p := model.Project{
		ID:    s.newID(),
		Name:  name,
		Walls: []model.Wall{},
	}
	if err := s.repo.Insert(ctx, p.ID, p); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *projectService) Replace(ctx context.Context, id string, updated model.Project) (*model.Project, error) {
	// TODO: decide whether a body id that disagrees with the path id should be rejected; stored as sent for now.
	p, err := s.repo.Replace(ctx, id, updated)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
