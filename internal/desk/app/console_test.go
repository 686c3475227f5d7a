package app_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aussiebroadwan/clientdesk/internal/desk/app"
	"github.com/aussiebroadwan/clientdesk/internal/desk/notify"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// memoryAPI serves the three client endpoints from memory.
type memoryAPI struct {
	mu      sync.Mutex
	clients []clientsdk.Client
	creates int
}

func (m *memoryAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/clients/getClients", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		_ = json.NewEncoder(w).Encode(m.clients)
	})
	mux.HandleFunc("GET /api/clients/searchClient/{key}", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for _, c := range m.clients {
			if c.SharedKey == r.PathValue("key") {
				_ = json.NewEncoder(w).Encode(c)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /api/clients/createClient", func(w http.ResponseWriter, r *http.Request) {
		var in clientsdk.Client
		_ = json.NewDecoder(r.Body).Decode(&in)

		m.mu.Lock()
		defer m.mu.Unlock()
		m.creates++
		for _, c := range m.clients {
			if c.SharedKey == in.SharedKey {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"data":{"respondeCode":"01"}}`))
				return
			}
		}
		m.clients = append(m.clients, in)
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func runConsole(t *testing.T, api *memoryAPI, script string) string {
	t.Helper()

	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(script))
	term := &notify.Terminal{Out: &out, In: in, NoWait: true}
	console := app.NewConsole(in, &out, clientsdk.NewSDKClient(srv.URL, 0), term, slogx.Discard())

	require.NoError(t, console.Run(context.Background()))
	return out.String()
}

func TestConsoleListsClients(t *testing.T) {
	t.Parallel()

	api := &memoryAPI{clients: []clientsdk.Client{{SharedKey: "acme", Name: "Acme", Email: "ops@acme.io"}}}
	out := runConsole(t, api, "quit\n")

	require.Contains(t, out, "acme")
	require.Contains(t, out, "ops@acme.io")
}

func TestConsoleCreateFlow(t *testing.T) {
	t.Parallel()

	api := &memoryAPI{}
	out := runConsole(t, api, strings.Join([]string{
		"new",
		"set sharedKey globex",
		"set name Globex Corporation",
		"set email bad-email",
		"submit",
		"set email it@globex.com",
		"submit",
		"quit",
	}, "\n")+"\n")

	require.Contains(t, out, "Invalid Email")
	require.Contains(t, out, "Client Created")
	require.Contains(t, out, "Globex Corporation")
	require.Equal(t, 1, api.creates, "the invalid draft never reached the API")
	require.Equal(t, []clientsdk.Client{{SharedKey: "globex", Name: "Globex Corporation", Email: "it@globex.com"}}, api.clients)
}

func TestConsoleSetKeepsValueAsTyped(t *testing.T) {
	t.Parallel()

	api := &memoryAPI{}
	runConsole(t, api, "new\nset sharedKey  k1\nset name Acme   Pty\nset email a@b.com\nsubmit\nquit\n")

	require.Equal(t, []clientsdk.Client{{SharedKey: " k1", Name: "Acme   Pty", Email: "a@b.com"}}, api.clients)
}

func TestConsoleFreshDraftPerVisit(t *testing.T) {
	t.Parallel()

	api := &memoryAPI{}
	runConsole(t, api, "new\nset sharedKey a\nset name A\nback\nnew\nset email a@b.co\nsubmit\nquit\n")

	require.Zero(t, api.creates, "second visit starts empty so validation fails")
}

func TestConsoleSearch(t *testing.T) {
	t.Parallel()

	api := &memoryAPI{clients: []clientsdk.Client{
		{SharedKey: "acme", Name: "Acme"},
		{SharedKey: "globex", Name: "Globex"},
	}}
	out := runConsole(t, api, "search\nsearch nobody\nkey\nsearch globex\n")

	require.Contains(t, out, "Please enter a shared key to search.")
	require.Contains(t, out, "No clients found for the provided shared key: nobody")
	require.Contains(t, out, "Globex")
}

func TestConsoleUnknownCommand(t *testing.T) {
	t.Parallel()

	out := runConsole(t, &memoryAPI{}, "dance\n")
	require.Contains(t, out, `unknown command "dance"`)
}
