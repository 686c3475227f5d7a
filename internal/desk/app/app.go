package app

import (
	"bufio"
	"context"
	"io"

	"github.com/aussiebroadwan/clientdesk/internal/desk/notify"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Run starts the console on the given streams and blocks until the user
// quits or ctx is done. Logs go to stderr so they stay out of the views.
func Run(ctx context.Context, cfg Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := slogx.New(slogx.Config{
		Service: "clientdesk",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  stderr,
	})

	in := bufio.NewReader(stdin)
	gateway := clientsdk.NewSDKClient(cfg.APIURL, cfg.HTTPTimeout)
	notifier := &notify.Terminal{Out: stdout, In: in, NoWait: cfg.NoWait}

	logger.Debug("console starting", "api_url", cfg.APIURL, "timeout", cfg.HTTPTimeout)

	return NewConsole(in, stdout, gateway, notifier, logger).Run(ctx)
}
