package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/clientdesk/internal/api/domain"
	"github.com/aussiebroadwan/clientdesk/internal/api/store"
	"github.com/aussiebroadwan/clientdesk/pkg/idx"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

var (
	ErrInvalidClient  = errors.New("invalid client")
	ErrClientNotFound = errors.New("client not found")
	ErrClientExists   = errors.New("client with that shared key already exists")
)

// CreateClientInput is the payload accepted by CreateClient.
type CreateClientInput struct {
	SharedKey string `validate:"required,max=64"`
	Name      string `validate:"required,max=200"`
	Email     string `validate:"required,email,max=254"`
	Phone     string `validate:"max=32"`
	StartDate string `validate:"max=32"`
	EndDate   string `validate:"max=32"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type ClientService struct {
	Store store.Store

	// Now returns the creation timestamp; defaults to time.Now.
	Now func() time.Time
}

// ListClients returns every client in creation order.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// GetClient returns the client with exactly the given shared key.
func (s *ClientService) GetClient(ctx context.Context, sharedKey string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientBySharedKey(ctx, sharedKey)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, ErrClientNotFound
	}
	return c, err
}

// CreateClient validates in and stores it as a new client.
// Blank required fields count as missing; values are stored as given.
func (s *ClientService) CreateClient(ctx context.Context, in CreateClientInput) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	check := in
	check.SharedKey = strings.TrimSpace(in.SharedKey)
	check.Name = strings.TrimSpace(in.Name)
	if strings.TrimSpace(in.Email) == "" {
		check.Email = ""
	}
	if err := validate.Struct(check); err != nil {
		return domain.Client{}, fmt.Errorf("%w: %s", ErrInvalidClient, describe(err))
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	createdAt := now().UTC()
	c := domain.Client{
		ID:        idx.NewAt(createdAt).String(),
		SharedKey: in.SharedKey,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: createdAt,
	}

	err := s.Store.Clients().CreateClient(ctx, c)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		l.Info("duplicate shared key rejected")
		return domain.Client{}, ErrClientExists
	case err != nil:
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	l.Info("client created successfully", "client_id", c.ID)
	return c, nil
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fe.Field() + ": " + fe.Tag()
	}
	return strings.Join(parts, ", ")
}
