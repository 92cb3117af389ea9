package services

import (
	"context"
	"fmt"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
)

// Interactions wraps the interaction endpoints. Creation is posted under
// the owning contact's sub-resource path.
type Interactions struct {
	c *api.Client
}

func NewInteractions(c *api.Client) *Interactions {
	return &Interactions{c: c}
}

func (s *Interactions) List(ctx context.Context, f ListFilter) ([]models.Interaction, error) {
	var out []models.Interaction
	if err := s.c.Get(ctx, "/interactions/list", f.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Interactions) Get(ctx context.Context, id int64) (*models.Interaction, error) {
	var out models.Interaction
	if err := s.c.Get(ctx, fmt.Sprintf("/interactions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForContact lists the interactions logged against one contact.
func (s *Interactions) ForContact(ctx context.Context, contactID int64, f ListFilter) ([]models.Interaction, error) {
	var out []models.Interaction
	if err := s.c.Get(ctx, fmt.Sprintf("/contacts/%d/interactions", contactID), f.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Interactions) Create(ctx context.Context, contactID int64, req models.CreateInteractionRequest) (*models.Interaction, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var out models.Interaction
	if err := s.c.Post(ctx, fmt.Sprintf("/contacts/%d/interactions", contactID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Interactions) Update(ctx context.Context, id int64, patch models.UpdateInteractionRequest) (*models.Interaction, error) {
	if err := checkPayload(patch); err != nil {
		return nil, err
	}
	var out models.Interaction
	if err := s.c.Put(ctx, fmt.Sprintf("/interactions/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Interactions) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/interactions/%d", id))
}
