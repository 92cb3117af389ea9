package listpage

import (
	"context"
	"time"

	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// NewContacts builds the contacts list controller.
func NewContacts(svc *services.Contacts, pageSize int, debounce time.Duration, log logging.Logger) *Controller[models.Contact] {
	fetch := func(ctx context.Context, f services.ListFilter) ([]models.Contact, *models.Pagination, error) {
		items, err := svc.List(ctx, f)
		return items, nil, err
	}
	return New(fetch, pageSize, debounce, log)
}

// NewProjects builds the projects list controller.
func NewProjects(svc *services.Projects, pageSize int, debounce time.Duration, log logging.Logger) *Controller[models.Project] {
	fetch := func(ctx context.Context, f services.ListFilter) ([]models.Project, *models.Pagination, error) {
		items, err := svc.List(ctx, f)
		return items, nil, err
	}
	return New(fetch, pageSize, debounce, log)
}

// NewInteractions builds the interactions list controller.
func NewInteractions(svc *services.Interactions, pageSize int, debounce time.Duration, log logging.Logger) *Controller[models.Interaction] {
	fetch := func(ctx context.Context, f services.ListFilter) ([]models.Interaction, *models.Pagination, error) {
		items, err := svc.List(ctx, f)
		return items, nil, err
	}
	return New(fetch, pageSize, debounce, log)
}
