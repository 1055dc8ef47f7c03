// Command dietdiary is a terminal client for the meal diary API.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"dietdiary-backend/internal/session"
	"dietdiary-backend/pkg/client"

	"github.com/spf13/pflag"
)

const usage = `Usage: dietdiary [flags] <command> [args]

Commands:
  register              create an account and sign in
  login                 sign in
  logout                sign out and forget the stored token
  me                    show the signed-in user
  add <name>            log a meal (--tag required)
  today                 list today's meals
  history               list all meals, newest first
  show <id>             show one meal
  rename <id> <name>    rename a meal
  delete <id>           delete a meal

Flags:
`

func main() {
	fs := pflag.NewFlagSet("dietdiary", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	defaultSession, _ := session.DefaultSessionPath()
	server := fs.StringP("server", "s", envOr("DIETDIARY_SERVER", "http://localhost:8080"), "API base URL")
	sessionPath := fs.String("session", defaultSession, "file holding the session token")

	var opts options
	fs.StringVar(&opts.name, "name", "", "display name for register")
	fs.StringVarP(&opts.email, "email", "e", "", "account email")
	fs.StringVarP(&opts.tag, "tag", "t", "", "meal tag: breakfast, lunch, dinner, snack or cheat")
	fs.StringVarP(&opts.note, "note", "n", "", "optional meal note")
	fs.StringVarP(&opts.date, "date", "d", "", "meal date, YYYY-MM-DD or RFC 3339 (default now)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	if *sessionPath == "" {
		fmt.Fprintln(os.Stderr, "dietdiary: no session path; pass --session")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(*server, session.NewFileStore(*sessionPath), os.Stdout, bufio.NewReader(os.Stdin))
	if err := a.run(ctx, fs.Arg(0), fs.Args()[1:], opts); err != nil {
		fmt.Fprintln(os.Stderr, "dietdiary:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newApp(server string, store session.TokenStore, out io.Writer, in *bufio.Reader) *app {
	ctrl := session.NewController(nil, store)
	api := client.New(server, client.WithTokenSource(ctrl))
	ctrl.SetAPI(api)

	return &app{
		out:          out,
		in:           in,
		session:      ctrl,
		api:          api,
		readPassword: terminalPassword,
		now:          time.Now,
	}
}
