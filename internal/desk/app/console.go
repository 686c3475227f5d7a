package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/clientdesk/internal/desk/controller"
	"github.com/aussiebroadwan/clientdesk/internal/desk/domain"
	"github.com/aussiebroadwan/clientdesk/internal/desk/nav"
	"github.com/aussiebroadwan/clientdesk/internal/desk/notify"
)

const listHelp = `commands:
  reload          reload every client
  search [key]    look up a client by shared key
  key [text]      type into the search field and leave it
  new             open the creation form
  help            show this help
  quit            exit`

const formHelp = `commands:
  set <field> <value>   set a field (sharedKey, name, email, phone, startDate, endDate)
  show                  show the draft
  submit                validate and create the client
  back                  return to the list without saving
  help                  show this help
  quit                  exit`

// Console is a line-oriented front end for the list and creation views.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	gateway  controller.Gateway
	notifier notify.Notifier
	nav      *nav.Navigator
	log      *slog.Logger

	list *controller.ListController
	form *controller.CreateController
}

// NewConsole wires a console. in should be the same reader the notifier
// waits on.
func NewConsole(in *bufio.Reader, out io.Writer, gw controller.Gateway, notifier notify.Notifier, log *slog.Logger) *Console {
	return &Console{
		in:       in,
		out:      out,
		gateway:  gw,
		notifier: notifier,
		nav:      nav.New(),
		log:      log,
	}
}

// Run shows the list view and executes commands until quit, end of input or
// ctx is done.
func (c *Console) Run(ctx context.Context) error {
	formSub := c.nav.Subscribe(func(ctx context.Context, ev nav.Event) {
		if ev.To == nav.RouteAddClient {
			c.form = controller.NewCreateController(c.gateway, c.notifier, c.nav, c.log)
		} else {
			c.form = nil
		}
	})
	defer formSub.Close()

	if err := c.nav.Navigate(ctx, ""); err != nil {
		return err
	}

	c.list = controller.NewListController(c.gateway, c.notifier, c.nav, c.log)
	c.list.Activate(ctx, c.nav)
	defer c.list.Close()

	c.printView()

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(c.out, promptStyle.Render(strings.TrimPrefix(c.nav.Current(), "/")+"> "))
		line, readErr := c.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read command: %w", readErr)
		}

		quit, err := c.exec(ctx, line)
		if err != nil {
			fmt.Fprintln(c.out, faintStyle.Render(err.Error()))
		}
		if quit || readErr != nil {
			fmt.Fprintln(c.out)
			return nil
		}
	}
}

// exec runs one command line against the current view.
func (c *Console) exec(ctx context.Context, line string) (quit bool, err error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	}

	if c.nav.Current() == nav.RouteAddClient {
		err = c.execForm(ctx, cmd, rest)
	} else {
		err = c.execList(ctx, cmd, rest)
	}
	return false, err
}

func (c *Console) execList(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "reload":
		c.list.Load(ctx)
	case "search":
		if arg != "" {
			c.list.SetSearchText(arg)
		}
		c.list.SearchBySharedKey(ctx)
	case "key":
		c.list.SetSearchText(arg)
		c.list.OnSearchFieldBlur(ctx)
	case "new":
		if err := c.list.NavigateToCreate(ctx); err != nil {
			return err
		}
	case "help":
		fmt.Fprintln(c.out, listHelp)
		return nil
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}

	c.printView()
	return nil
}

func (c *Console) execForm(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "set":
		name, value, _ := strings.Cut(arg, " ")
		field, err := domain.ParseField(name)
		if err != nil {
			return err
		}
		return c.form.Set(field, value)
	case "show":
	case "submit":
		if err := c.form.Submit(ctx); err != nil {
			c.log.Debug("submit failed", "error", err)
		}
	case "back":
		if err := c.nav.Navigate(ctx, nav.RouteClients); err != nil {
			return err
		}
	case "help":
		fmt.Fprintln(c.out, formHelp)
		return nil
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}

	c.printView()
	return nil
}

// printView renders whichever view is current.
func (c *Console) printView() {
	switch c.nav.Current() {
	case nav.RouteAddClient:
		fmt.Fprintln(c.out, renderDraft(c.form.Draft()))
	default:
		if text := c.list.SearchText(); text != "" {
			fmt.Fprintln(c.out, faintStyle.Render("search: "+text))
		}
		fmt.Fprintln(c.out, renderClients(c.list.Clients()))
	}
}
