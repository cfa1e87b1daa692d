package memory

import (
	"context"
	"sync"

	"layoutlens/internal/model"
	"layoutlens/internal/repository"
)

// ProjectMemory is an in-memory implementation of repository.ProjectRepository.
// A single RWMutex guards the whole map: readers share, writers are exclusive.
// Contents live only as long as the process.
type ProjectMemory struct {
	mu       sync.RWMutex
	projects map[string]model.Project
}

// NewProjectMemory creates an empty store.
func NewProjectMemory() *ProjectMemory {
	return &ProjectMemory{projects: make(map[string]model.Project)}
}

var _ repository.ProjectRepository = (*ProjectMemory)(nil)

// Insert unconditionally stores p under id.
func (r *ProjectMemory) Insert(_ context.Context, id string, p model.Project) error {
	p = p.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[id] = p
	return nil
}

// Get returns a copy of the stored project.
func (r *ProjectMemory) Get(_ context.Context, id string) (*model.Project, error) {
	r.mu.RLock()
	p, ok := r.projects[id]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := p.Clone()
	return &out, nil
}

// Replace overwrites an existing entry. The lookup and the write share one
// exclusive acquisition so concurrent replaces on the same id are linearized.
func (r *ProjectMemory) Replace(_ context.Context, id string, p model.Project) (*model.Project, error) {
	p = p.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return nil, repository.ErrNotFound
	}
	r.projects[id] = p

	out := p.Clone()
	return &out, nil
}

// Len reports the number of stored projects.
func (r *ProjectMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects)
}
