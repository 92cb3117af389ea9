package services

import (
	"context"
	"fmt"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
)

// Projects wraps the project endpoints.
type Projects struct {
	c *api.Client
}

func NewProjects(c *api.Client) *Projects {
	return &Projects{c: c}
}

func (s *Projects) List(ctx context.Context, f ListFilter) ([]models.Project, error) {
	var out []models.Project
	if err := s.c.Get(ctx, "/projects/list", f.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Projects) Get(ctx context.Context, id int64) (*models.Project, error) {
	var out models.Project
	if err := s.c.Get(ctx, fmt.Sprintf("/projects/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Projects) Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var out models.Project
	if err := s.c.Post(ctx, "/projects/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Projects) Update(ctx context.Context, id int64, patch models.UpdateProjectRequest) (*models.Project, error) {
	if err := checkPayload(patch); err != nil {
		return nil, err
	}
	var out models.Project
	if err := s.c.Put(ctx, fmt.Sprintf("/projects/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Projects) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/projects/%d", id))
}
