package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dietdiary-backend/internal/meal/domain"
	"dietdiary-backend/internal/meal/dto"
	"dietdiary-backend/internal/session"
	"dietdiary-backend/pkg/client"

	"golang.org/x/term"
)

var errNotLoggedIn = errors.New("not logged in; run `dietdiary login`")

type options struct {
	name  string
	email string
	tag   string
	note  string
	date  string
}

type app struct {
	out          io.Writer
	in           *bufio.Reader
	session      *session.Controller
	api          *client.Client
	readPassword func(*bufio.Reader) ([]byte, error)
	now          func() time.Time
}

func (a *app) run(ctx context.Context, cmd string, args []string, opts options) error {
	a.session.CheckAuth()

	switch cmd {
	case "register":
		return a.register(ctx, opts)
	case "login":
		return a.login(ctx, opts)
	case "logout":
		if err := a.session.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out.")
		return nil
	}

	if a.session.State() != session.Authenticated {
		return errNotLoggedIn
	}

	switch cmd {
	case "me":
		user, err := a.api.Me(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
		return nil
	case "add":
		return a.add(ctx, args, opts)
	case "today":
		return a.list(ctx, func(ctx context.Context) ([]*domain.Meal, error) {
			return a.api.TodayMeals(ctx, a.now())
		})
	case "history":
		return a.list(ctx, a.api.ListMeals)
	case "show":
		if len(args) != 1 {
			return errors.New("usage: show <id>")
		}
		meal, err := a.api.GetMeal(ctx, args[0])
		if err != nil {
			return err
		}
		printMeal(a.out, meal)
		return nil
	case "rename":
		if len(args) < 2 {
			return errors.New("usage: rename <id> <name>")
		}
		name := strings.Join(args[1:], " ")
		meal, err := a.api.UpdateMeal(ctx, args[0], dto.UpdateMealRequest{Name: &name})
		if err != nil {
			return err
		}
		printMeal(a.out, meal)
		return nil
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: delete <id>")
		}
		if err := a.api.DeleteMeal(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Deleted.")
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) register(ctx context.Context, opts options) error {
	name, err := a.valueOrPrompt(opts.name, "Name")
	if err != nil {
		return err
	}
	email, err := a.valueOrPrompt(opts.email, "Email")
	if err != nil {
		return err
	}
	password, err := a.password()
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, name, email, password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.Username())
	return nil
}

func (a *app) login(ctx context.Context, opts options) error {
	email, err := a.valueOrPrompt(opts.email, "Email")
	if err != nil {
		return err
	}
	password, err := a.password()
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.Username())
	return nil
}

func (a *app) add(ctx context.Context, args []string, opts options) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return errors.New("usage: add <name> --tag <tag>")
	}
	if opts.tag == "" {
		return errors.New("--tag is required")
	}
	if !domain.Tag(opts.tag).Known() {
		fmt.Fprintf(a.out, "Note: %q is not one of %v\n", opts.tag, domain.Tags)
	}

	req := dto.AddMealRequest{Name: name, Tag: opts.tag, Note: opts.note}
	if opts.date != "" {
		req.Date = &opts.date
	}
	meal, err := a.api.AddMeal(ctx, req)
	if err != nil {
		return err
	}
	printMeal(a.out, meal)
	return nil
}

func (a *app) list(ctx context.Context, fetch session.FetchFunc) error {
	feed := session.NewMealFeed(fetch)
	if err := feed.Refresh(ctx); err != nil {
		return err
	}
	meals := feed.Meals()
	if len(meals) == 0 {
		fmt.Fprintln(a.out, "No meals.")
		return nil
	}
	for _, m := range meals {
		fmt.Fprintf(a.out, "%s  %-9s  %s  (%s)\n", m.Date.Local().Format("2006-01-02 15:04"), m.Tag, m.Name, m.ID)
	}
	return nil
}

func (a *app) valueOrPrompt(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprintf(a.out, "%s: ", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *app) password() (string, error) {
	fmt.Fprint(a.out, "Password: ")
	pw, err := a.readPassword(a.in)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// terminalPassword reads without echo from a terminal, or a plain line from
// piped input.
func terminalPassword(in *bufio.Reader) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return nil, err
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}
	return term.ReadPassword(fd)
}

func printMeal(w io.Writer, m *domain.Meal) {
	fmt.Fprintf(w, "%s\n  id:   %s\n  tag:  %s\n  date: %s\n", m.Name, m.ID, m.Tag, m.Date.Local().Format(time.RFC1123))
	if m.Note != "" {
		fmt.Fprintf(w, "  note: %s\n", m.Note)
	}
}
