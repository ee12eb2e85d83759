package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/truvote/portal/internal/authorization"
	"github.com/truvote/portal/internal/crypto"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/session"
	"github.com/truvote/portal/internal/worker/client"
	"github.com/truvote/portal/internal/worker/tasks"
)

var ErrUnknownCommand = errors.New("unknown command")

const usage = `usage: truvote-cli <command> [flags]

commands:
  routes          print the route table
  authorize       print the guard decision for a role and a path
  keygen          write a new RSA private key for backend request signing
  purge-sessions  enqueue a purge of expired sessions
`

// CLI is the operator tool. workers is only needed by purge-sessions and may be nil.
type CLI struct {
	out     io.Writer
	log     logger.Logger
	guard   *authorization.RouteGuard
	keys    crypto.KeyManager
	workers client.BackgroundWorkerClient
}

func New(
	out io.Writer,
	log logger.Logger,
	guard *authorization.RouteGuard,
	keys crypto.KeyManager,
	workers client.BackgroundWorkerClient,
) *CLI {
	return &CLI{out: out, log: log, guard: guard, keys: keys, workers: workers}
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = fmt.Fprint(c.out, usage)
		return errors.Wrap(ErrUnknownCommand, "no command given")
	}
	switch args[0] {
	case "routes":
		return c.routes(args[1:])
	case "authorize":
		return c.authorize(args[1:])
	case "keygen":
		return c.keygen(args[1:])
	case "purge-sessions":
		return c.purgeSessions(ctx)
	}
	_, _ = fmt.Fprint(c.out, usage)
	return errors.Wrap(ErrUnknownCommand, args[0])
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

type routeLine struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	RequiredRole string `json:"required_role"`
	Default      bool   `json:"default,omitempty"`
}

func (c *CLI) routes(args []string) error {
	fs := c.flagSet("routes")
	asJSON := fs.Bool("json", false, "print the table as json")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	table := c.guard.Table()
	defaults := map[string]bool{}
	for _, role := range session.Roles() {
		if path, ok := table.DefaultPathFor(role); ok {
			defaults[path] = true
		}
	}
	lines := make([]routeLine, 0, len(table.Rules()))
	for _, rule := range table.Rules() {
		lines = append(lines, routeLine{
			Name:         rule.Name,
			Path:         rule.Path,
			RequiredRole: rule.RequiredRole.String(),
			Default:      defaults[rule.Path],
		})
	}

	if *asJSON {
		encoder := json.NewEncoder(c.out)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(lines), "unable to encode routes")
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPATH\tROLE\tDEFAULT")
	for _, line := range lines {
		def := ""
		if line.Default {
			def = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", line.Name, line.Path, line.RequiredRole, def)
	}
	return errors.Wrap(w.Flush(), "unable to print routes")
}

func (c *CLI) authorize(args []string) error {
	fs := c.flagSet("authorize")
	roleName := fs.String("role", "none", "role of the session: none, admin or voter")
	path := fs.String("path", "/", "path to check")
	anonymous := fs.Bool("anonymous", false, "check as a visitor without a session")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	role, err := session.ParseRole(*roleName)
	if err != nil {
		return err //nolint:wrapcheck
	}
	sess := session.Session{Authenticated: !*anonymous, Role: role}
	decision := c.guard.AuthorizePath(sess, *path)
	c.log.WithFields(logrus.Fields{
		"role": sess.EffectiveRole().String(),
		"path": *path,
	}).Debug("authorize")
	if decision.Allowed() {
		_, _ = fmt.Fprintln(c.out, decision.Kind.String())
		return nil
	}
	_, _ = fmt.Fprintf(c.out, "%s %s\n", decision.Kind.String(), decision.Path)
	return nil
}

func (c *CLI) keygen(args []string) error {
	fs := c.flagSet("keygen")
	out := fs.String("out", "backend_signing_key.pem", "file to write the private key to")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "invalid flags")
	}

	key, err := c.keys.GenerateKey()
	if err != nil {
		return err //nolint:wrapcheck
	}
	if err := os.WriteFile(*out, c.keys.EncodePrivateKey(key), 0o600); err != nil {
		return errors.Wrap(err, "unable to write private key")
	}
	c.log.WithField("file", *out).Info("private key written")
	_, _ = fmt.Fprint(c.out, c.keys.FormatPubKey(&key.PublicKey))
	return nil
}

func (c *CLI) purgeSessions(ctx context.Context) error {
	if c.workers == nil {
		return errors.New("purge-sessions needs a configured application")
	}
	task, err := tasks.NewPurgeSessionsTask(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to create purge task")
	}
	info, err := c.workers.Enqueue(task)
	if err != nil {
		return err //nolint:wrapcheck
	}
	_, _ = fmt.Fprintf(c.out, "enqueued %s on queue %s\n", info.ID, info.Queue)
	return nil
}
