package controller

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/aussiebroadwan/clientdesk/internal/desk/nav"
	"github.com/aussiebroadwan/clientdesk/internal/desk/notify"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

// ListController drives the client list view.
type ListController struct {
	gateway  Gateway
	notifier notify.Notifier
	nav      Navigator
	log      *slog.Logger

	mu         sync.Mutex
	clients    []clientsdk.Client
	searchText string
	sub        *nav.Subscription
}

// NewListController returns a controller with an empty list.
func NewListController(gw Gateway, notifier notify.Notifier, navigator Navigator, log *slog.Logger) *ListController {
	return &ListController{
		gateway:  gw,
		notifier: notifier,
		nav:      navigator,
		log:      log.With("controller", "list"),
	}
}

// Activate subscribes to navigation events on events, reloading whenever the
// list route is entered, and performs the initial load. Release with Close.
func (c *ListController) Activate(ctx context.Context, events *nav.Navigator) {
	sub := events.Subscribe(func(ctx context.Context, ev nav.Event) {
		if ev.To == nav.RouteClients {
			c.Load(ctx)
		}
	})

	c.mu.Lock()
	if c.sub != nil {
		c.sub.Close()
	}
	c.sub = sub
	c.mu.Unlock()

	c.Load(ctx)
}

// Close releases the navigation subscription. Safe to call repeatedly.
func (c *ListController) Close() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
}

// Clients returns a copy of the displayed list.
func (c *ListController) Clients() []clientsdk.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.clients)
}

// SearchText returns the search field contents.
func (c *ListController) SearchText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchText
}

// SetSearchText replaces the search field contents.
func (c *ListController) SetSearchText(text string) {
	c.mu.Lock()
	c.searchText = text
	c.mu.Unlock()
}

func (c *ListController) setClients(list []clientsdk.Client) {
	c.mu.Lock()
	c.clients = list
	c.mu.Unlock()
}

// Load replaces the displayed list with every client. On failure the list is
// left as it was and an error notice is shown.
func (c *ListController) Load(ctx context.Context) {
	list, err := c.gateway.ListClients(ctx)
	if err != nil {
		logFailure(c.log, "failed to load clients", err)
		c.notify(ctx, notify.SeverityError, TitleError, err.Error())
		return
	}

	if list == nil {
		list = []clientsdk.Client{}
	}
	c.setClients(list)
	c.log.Debug("clients loaded", "count", len(list))
}

// SearchBySharedKey looks up the client whose shared key equals the search
// text. A hit shows only that client; a miss or error shows an empty list and
// one warning.
func (c *ListController) SearchBySharedKey(ctx context.Context) {
	key := c.SearchText()
	if strings.TrimSpace(key) == "" {
		c.notify(ctx, notify.SeverityInfo, TitleInfo, MessageEnterSharedKey)
		return
	}

	client, err := c.gateway.FindBySharedKey(ctx, key)
	if err != nil {
		logFailure(c.log, "failed to search clients", err, "shared_key", key)
	}

	if err != nil || client == nil {
		c.setClients([]clientsdk.Client{})
		c.notify(ctx, notify.SeverityWarning, TitleWarning, MessageNoClientsPrefix+key)
		return
	}

	c.setClients([]clientsdk.Client{*client})
}

// OnSearchFieldBlur reloads the full list when the search field is blank
// and searches otherwise.
func (c *ListController) OnSearchFieldBlur(ctx context.Context) {
	if strings.TrimSpace(c.SearchText()) == "" {
		c.Load(ctx)
		return
	}
	c.SearchBySharedKey(ctx)
}

// NavigateToCreate opens the creation form.
func (c *ListController) NavigateToCreate(ctx context.Context) error {
	return c.nav.Navigate(ctx, nav.RouteAddClient)
}

func (c *ListController) notify(ctx context.Context, sev notify.Severity, title, message string) {
	if err := c.notifier.Notify(ctx, sev, title, message); err != nil {
		c.log.Warn("notice not shown", "title", title, "error", err)
	}
}
