package controller_test

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/clientdesk/internal/desk/notify"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

type notice struct {
	Severity notify.Severity
	Title    string
	Message  string
}

// recorder collects notices and, optionally, a shared trace of events.
type recorder struct {
	mu      sync.Mutex
	notices []notice
	trace   *[]string
}

func (r *recorder) Notify(_ context.Context, sev notify.Severity, title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{sev, title, message})
	if r.trace != nil {
		*r.trace = append(*r.trace, "notice:"+title)
	}
	return nil
}

func (r *recorder) all() []notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notice(nil), r.notices...)
}

type fakeGateway struct {
	mu sync.Mutex

	list    func() ([]clientsdk.Client, error)
	find    func(key string) (*clientsdk.Client, error)
	create  func(c clientsdk.Client) error
	calls   map[string]int
	created []clientsdk.Client
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{calls: map[string]int{}}
}

func (g *fakeGateway) count(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[op]
}

func (g *fakeGateway) ListClients(context.Context) ([]clientsdk.Client, error) {
	g.mu.Lock()
	g.calls["list"]++
	g.mu.Unlock()
	if g.list == nil {
		return []clientsdk.Client{}, nil
	}
	return g.list()
}

func (g *fakeGateway) FindBySharedKey(_ context.Context, key string) (*clientsdk.Client, error) {
	g.mu.Lock()
	g.calls["find"]++
	g.mu.Unlock()
	if g.find == nil {
		return nil, nil
	}
	return g.find(key)
}

func (g *fakeGateway) CreateClient(_ context.Context, c clientsdk.Client) (*clientsdk.CreateClientResponse, error) {
	g.mu.Lock()
	g.calls["create"]++
	g.created = append(g.created, c)
	g.mu.Unlock()
	if g.create != nil {
		if err := g.create(c); err != nil {
			return nil, err
		}
	}
	return &clientsdk.CreateClientResponse{}, nil
}
