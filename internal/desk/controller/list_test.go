package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/clientdesk/internal/desk/controller"
	"github.com/aussiebroadwan/clientdesk/internal/desk/nav"
	"github.com/aussiebroadwan/clientdesk/internal/desk/notify"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
	"github.com/stretchr/testify/require"
)

var (
	acme   = clientsdk.Client{SharedKey: "acme", Name: "Acme", Email: "ops@acme.io"}
	globex = clientsdk.Client{SharedKey: "globex", Name: "Globex", Email: "it@globex.com"}
)

func newList(gw *fakeGateway) (*controller.ListController, *recorder, *nav.Navigator) {
	rec := &recorder{}
	n := nav.New()
	return controller.NewListController(gw, rec, n, slogx.Discard()), rec, n
}

func TestListLoad(t *testing.T) {
	t.Parallel()

	t.Run("replaces list and is idempotent", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		gw.list = func() ([]clientsdk.Client, error) { return []clientsdk.Client{acme, globex}, nil }
		c, rec, _ := newList(gw)

		c.Load(context.Background())
		first := c.Clients()
		c.Load(context.Background())

		require.Equal(t, []clientsdk.Client{acme, globex}, first)
		require.Equal(t, first, c.Clients())
		require.Equal(t, 2, gw.count("list"))
		require.Empty(t, rec.all())
	})

	t.Run("failure keeps list and shows error", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		gw.list = func() ([]clientsdk.Client, error) { return []clientsdk.Client{acme}, nil }
		c, rec, _ := newList(gw)
		c.Load(context.Background())

		gw.list = func() ([]clientsdk.Client, error) { return nil, clientsdk.ErrRequestFailed }
		c.Load(context.Background())

		require.Equal(t, []clientsdk.Client{acme}, c.Clients())
		require.Equal(t, []notice{{notify.SeverityError, "Error", clientsdk.MessageGeneric}}, rec.all())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		gw.list = func() ([]clientsdk.Client, error) { return []clientsdk.Client{acme}, nil }
		c, _, _ := newList(gw)
		c.Load(context.Background())

		snap := c.Clients()
		snap[0].Name = "mutated"
		require.Equal(t, "Acme", c.Clients()[0].Name)
	})
}

func TestListSearch(t *testing.T) {
	t.Parallel()

	t.Run("blank text asks for a key without querying", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"", "   "} {
			gw := newFakeGateway()
			c, rec, _ := newList(gw)
			c.SetSearchText(text)

			c.SearchBySharedKey(context.Background())

			require.Zero(t, gw.count("find"))
			require.Equal(t, []notice{{notify.SeverityInfo, "Info", "Please enter a shared key to search."}}, rec.all())
		}
	})

	t.Run("hit shows single client", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		gw.list = func() ([]clientsdk.Client, error) { return []clientsdk.Client{acme, globex}, nil }
		gw.find = func(key string) (*clientsdk.Client, error) {
			require.Equal(t, "globex", key)
			g := globex
			return &g, nil
		}
		c, rec, _ := newList(gw)
		c.Load(context.Background())
		c.SetSearchText("globex")

		c.SearchBySharedKey(context.Background())

		require.Equal(t, []clientsdk.Client{globex}, c.Clients())
		require.Empty(t, rec.all())
	})

	t.Run("miss clears list with one warning", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		gw.list = func() ([]clientsdk.Client, error) { return []clientsdk.Client{acme}, nil }
		c, rec, _ := newList(gw)
		c.Load(context.Background())
		c.SetSearchText("nobody")

		c.SearchBySharedKey(context.Background())

		require.NotNil(t, c.Clients())
		require.Empty(t, c.Clients())
		require.Equal(t, []notice{{notify.SeverityWarning, "Warning", "No clients found for the provided shared key: nobody"}}, rec.all())
	})

	t.Run("error is reported as a miss", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		gw.find = func(string) (*clientsdk.Client, error) { return nil, errors.New("connection refused") }
		c, rec, _ := newList(gw)
		c.SetSearchText("acme")

		c.SearchBySharedKey(context.Background())

		require.Empty(t, c.Clients())
		require.Len(t, rec.all(), 1)
		require.Equal(t, notify.SeverityWarning, rec.all()[0].Severity)
	})
}

func TestListBlur(t *testing.T) {
	t.Parallel()

	t.Run("blank reloads", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		c, rec, _ := newList(gw)
		c.SetSearchText(" ")

		c.OnSearchFieldBlur(context.Background())

		require.Equal(t, 1, gw.count("list"))
		require.Zero(t, gw.count("find"))
		require.Empty(t, rec.all())
	})

	t.Run("text searches", func(t *testing.T) {
		t.Parallel()
		gw := newFakeGateway()
		c, _, _ := newList(gw)
		c.SetSearchText("acme")

		c.OnSearchFieldBlur(context.Background())

		require.Zero(t, gw.count("list"))
		require.Equal(t, 1, gw.count("find"))
	})
}

func TestListActivateAndNavigate(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	c, _, n := newList(gw)
	ctx := context.Background()

	c.Activate(ctx, n)
	require.Equal(t, 1, gw.count("list"))

	require.NoError(t, c.NavigateToCreate(ctx))
	require.Equal(t, nav.RouteAddClient, n.Current())
	require.Equal(t, 1, gw.count("list"), "leaving the list does not reload")

	require.NoError(t, n.Navigate(ctx, nav.RouteClients))
	require.Equal(t, 2, gw.count("list"))

	c.Close()
	c.Close()
	require.NoError(t, n.Navigate(ctx, ""))
	require.Equal(t, 2, gw.count("list"), "no reload after Close")
}
