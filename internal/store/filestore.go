// Package store supplies CandidateProfile and ProjectRequirement records to
// the engine. Both backends are read-only toward the engine: records are
// loaded and handed out, never written back.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/talent-matcher/internal/types"
)

// ErrNotFound is returned when a record id is unknown to the store.
var ErrNotFound = fmt.Errorf("record not found")

// FileStore holds candidate and project records loaded from JSON documents.
type FileStore struct {
	candidates map[string]*types.CandidateProfile
	projects   map[string]*types.ProjectRequirement
	order      []string // candidate ids in file order
}

// OpenFileStore loads candidates and projects from JSON array files. Either
// path may be empty, leaving that side of the store unpopulated.
func OpenFileStore(candidatesPath, projectsPath string) (*FileStore, error) {
	fs := &FileStore{
		candidates: make(map[string]*types.CandidateProfile),
		projects:   make(map[string]*types.ProjectRequirement),
	}
	if candidatesPath != "" {
		candidates, err := LoadCandidates(candidatesPath)
		if err != nil {
			return nil, err
		}
		for i := range candidates {
			fs.candidates[candidates[i].ID] = &candidates[i]
			fs.order = append(fs.order, candidates[i].ID)
		}
	}
	if projectsPath != "" {
		projects, err := LoadProjects(projectsPath)
		if err != nil {
			return nil, err
		}
		for i := range projects {
			fs.projects[projects[i].ID] = &projects[i]
		}
	}
	return fs, nil
}

// LoadCandidates reads a JSON array of candidate profiles.
func LoadCandidates(path string) ([]types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate data %s: %w", path, err)
	}
	var candidates []types.CandidateProfile
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidate data %s: %w", path, err)
	}
	return candidates, nil
}

// LoadProjects reads a JSON array of project requirements.
func LoadProjects(path string) ([]types.ProjectRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project data %s: %w", path, err)
	}
	var projects []types.ProjectRequirement
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse project data %s: %w", path, err)
	}
	return projects, nil
}

// CandidateByID returns one candidate profile.
func (fs *FileStore) CandidateByID(id string) (*types.CandidateProfile, error) {
	c, ok := fs.candidates[id]
	if !ok {
		return nil, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// ProjectByID returns one project requirement.
func (fs *FileStore) ProjectByID(id string) (*types.ProjectRequirement, error) {
	p, ok := fs.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// Candidates returns all candidate profiles in file order.
func (fs *FileStore) Candidates() []types.CandidateProfile {
	out := make([]types.CandidateProfile, 0, len(fs.order))
	for _, id := range fs.order {
		out = append(out, *fs.candidates[id])
	}
	return out
}
