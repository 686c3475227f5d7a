// Package controller holds the view logic of the console: the client list
// (load, search, navigate) and the creation form (draft, validate, submit).
// Controllers surface outcomes through a notify.Notifier and diagnostics
// through slog; they never return gateway detail to the user.
package controller

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

// Gateway is the subset of the clients API used by the controllers.
// *clientsdk.SDKClient satisfies it.
type Gateway interface {
	ListClients(ctx context.Context) ([]clientsdk.Client, error)
	FindBySharedKey(ctx context.Context, sharedKey string) (*clientsdk.Client, error)
	CreateClient(ctx context.Context, client clientsdk.Client) (*clientsdk.CreateClientResponse, error)
}

// Navigator moves between views.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// Notice titles and messages shown to the user.
const (
	TitleInfo            = "Info"
	TitleWarning         = "Warning"
	TitleError           = "Error"
	TitleValidationError = "Validation Error"
	TitleInvalidEmail    = "Invalid Email"
	TitleClientCreated   = "Client Created"

	MessageEnterSharedKey  = "Please enter a shared key to search."
	MessageNoClientsPrefix = "No clients found for the provided shared key: "
	MessageRequiredFields  = "Please fill out all required fields."
	MessageInvalidEmail    = "Please enter a valid email address."
	MessageClientCreated   = "The client was created successfully!"
)

// logFailure logs err with its classification and underlying cause.
func logFailure(log *slog.Logger, msg string, err error, args ...any) {
	var sdkErr *clientsdk.Error
	if errors.As(err, &sdkErr) {
		args = append(args, "kind", sdkErr.Kind.String(), "status", sdkErr.StatusCode)
	}
	if cause := errors.Unwrap(err); cause != nil {
		args = append(args, "cause", cause.Error())
	}
	log.Error(msg, append(args, "error", err.Error())...)
}
