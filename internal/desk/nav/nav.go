package nav

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Application routes.
const (
	RouteClients   = "/clients"
	RouteAddClient = "/add-client"
)

// ErrUnknownRoute is returned when navigating to a path with no view.
var ErrUnknownRoute = errors.New("unknown route")

// Event describes a completed navigation.
type Event struct {
	From string
	To   string
}

// Handler receives navigation events. It runs on the navigating goroutine.
type Handler func(ctx context.Context, ev Event)

// Navigator tracks the current route and notifies subscribers after every
// successful navigation.
type Navigator struct {
	mu      sync.Mutex
	current string
	nextID  uint64
	subs    map[uint64]Handler
}

// New returns a Navigator positioned on the empty route. Navigate to ""
// to land on the default view.
func New() *Navigator {
	return &Navigator{subs: make(map[uint64]Handler)}
}

// Resolve maps a path to its canonical route. "" and "/" redirect to the list.
func Resolve(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	switch p {
	case "", "/", RouteClients:
		return RouteClients, nil
	case RouteAddClient:
		return RouteAddClient, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
}

// Current returns the active route.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate moves to path and publishes an Event to every subscriber, even
// when the route does not change. Handlers are called outside the lock, so
// they may navigate or unsubscribe.
func (n *Navigator) Navigate(ctx context.Context, path string) error {
	to, err := Resolve(path)
	if err != nil {
		return err
	}

	n.mu.Lock()
	ev := Event{From: n.current, To: to}
	n.current = to
	handlers := make([]Handler, 0, len(n.subs))
	for _, h := range n.subs {
		handlers = append(handlers, h)
	}
	n.mu.Unlock()

	for _, h := range handlers {
		h(ctx, ev)
	}
	return nil
}

// Subscribe registers h until the returned Subscription is closed.
func (n *Navigator) Subscribe(h Handler) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subs[id] = h
	return &Subscription{nav: n, id: id}
}

func (n *Navigator) unsubscribe(id uint64) {
	n.mu.Lock()
	delete(n.subs, id)
	n.mu.Unlock()
}

// Subscription is a registered Handler.
type Subscription struct {
	once sync.Once
	nav  *Navigator
	id   uint64
}

// Close stops delivery. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.nav.unsubscribe(s.id) })
}
