package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/clientdesk/internal/desk/domain"
	"github.com/aussiebroadwan/clientdesk/internal/desk/nav"
	"github.com/aussiebroadwan/clientdesk/internal/desk/notify"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

// ErrInvalidDraft is returned by Submit when validation fails. The user has
// already been notified.
var ErrInvalidDraft = errors.New("draft failed validation")

// CreateController drives the creation form. Build a new one for every
// visit so that each visit starts with an empty draft.
type CreateController struct {
	gateway  Gateway
	notifier notify.Notifier
	nav      Navigator
	log      *slog.Logger

	mu    sync.Mutex
	draft domain.Draft
}

// NewCreateController returns a controller with an empty draft.
func NewCreateController(gw Gateway, notifier notify.Notifier, navigator Navigator, log *slog.Logger) *CreateController {
	return &CreateController{
		gateway:  gw,
		notifier: notifier,
		nav:      navigator,
		log:      log.With("controller", "create"),
	}
}

// Set stores value into field of the draft.
func (c *CreateController) Set(field domain.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Set(field, value)
}

// Draft returns the record as currently entered.
func (c *CreateController) Draft() clientsdk.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Client()
}

// Validate reports whether the draft may be submitted, showing a warning
// when it may not.
func (c *CreateController) Validate(ctx context.Context) bool {
	return c.validate(ctx, c.Draft())
}

func (c *CreateController) validate(ctx context.Context, record clientsdk.Client) bool {
	err := domain.Validate(record)
	switch {
	case err == nil:
		return true
	case errors.Is(err, domain.ErrInvalidEmail):
		c.notify(ctx, notify.SeverityWarning, TitleInvalidEmail, MessageInvalidEmail)
	default:
		c.notify(ctx, notify.SeverityWarning, TitleValidationError, MessageRequiredFields)
	}
	c.log.Debug("draft rejected", "reason", err)
	return false
}

// Submit validates the draft and sends it. On success the user is told and,
// once the notice is dismissed, taken back to the list. On failure the draft
// is kept and the gateway's message is shown.
func (c *CreateController) Submit(ctx context.Context) error {
	// The record sent is the record validated.
	record := c.Draft()
	if !c.validate(ctx, record) {
		return ErrInvalidDraft
	}

	if _, err := c.gateway.CreateClient(ctx, record); err != nil {
		logFailure(c.log, "failed to create client", err, "shared_key", record.SharedKey)
		c.notify(ctx, notify.SeverityError, TitleError, err.Error())
		return err
	}

	c.log.Info("client created", "shared_key", record.SharedKey)
	c.notify(ctx, notify.SeveritySuccess, TitleClientCreated, MessageClientCreated)

	return c.nav.Navigate(ctx, nav.RouteClients)
}

func (c *CreateController) notify(ctx context.Context, sev notify.Severity, title, message string) {
	if err := c.notifier.Notify(ctx, sev, title, message); err != nil {
		c.log.Warn("notice not shown", "title", title, "error", err)
	}
}
