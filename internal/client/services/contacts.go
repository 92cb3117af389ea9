package services

import (
	"context"
	"fmt"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
)

// Contacts wraps the contact endpoints.
type Contacts struct {
	c *api.Client
}

func NewContacts(c *api.Client) *Contacts {
	return &Contacts{c: c}
}

func (s *Contacts) List(ctx context.Context, f ListFilter) ([]models.Contact, error) {
	var out []models.Contact
	if err := s.c.Get(ctx, "/contacts/list", f.Query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Contacts) Get(ctx context.Context, id int64) (*models.Contact, error) {
	var out models.Contact
	if err := s.c.Get(ctx, fmt.Sprintf("/contacts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Contacts) Create(ctx context.Context, req models.CreateContactRequest) (*models.Contact, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var out models.Contact
	if err := s.c.Post(ctx, "/contacts/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Contacts) Update(ctx context.Context, id int64, patch models.UpdateContactRequest) (*models.Contact, error) {
	if err := checkPayload(patch); err != nil {
		return nil, err
	}
	var out models.Contact
	if err := s.c.Put(ctx, fmt.Sprintf("/contacts/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Contacts) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("/contacts/%d", id))
}

// ConvertToClient promotes a lead to a client.
func (s *Contacts) ConvertToClient(ctx context.Context, id int64) (*models.Contact, error) {
	var out models.Contact
	if err := s.c.Put(ctx, fmt.Sprintf("/contacts/%d/convert-to-client", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
