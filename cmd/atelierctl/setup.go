package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"atelier/internal/usecase"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type setupOptions struct {
	creds   usecase.Credentials
	port    string
	noInput bool
}

func newSetupCmd(root *rootOptions) *cobra.Command {
	opts := &setupOptions{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Send backend credentials to the server's env file",
		Long: `setup collects the auth provider, database and bucket settings and posts
them to /setup/credentials. The server writes them to its env file; they take
effect after a restart.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.noInput {
				if err := opts.prompt(); err != nil {
					return err
				}
			}

			if err := opts.finalize(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return runSetup(ctx, cmd.OutOrStdout(), root, &opts.creds)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.creds.AuthProviderURL, "auth-url", "", "Auth provider base URL")
	f.StringVar(&opts.creds.AuthProviderAnonKey, "auth-anon-key", "", "Auth provider anon key")
	f.StringVar(&opts.creds.PostgresHost, "pg-host", "", "Postgres host")
	f.StringVar(&opts.port, "pg-port", "5432", "Postgres port")
	f.StringVar(&opts.creds.PostgresUser, "pg-user", "", "Postgres user")
	f.StringVar(&opts.creds.PostgresPassword, "pg-password", "", "Postgres password")
	f.StringVar(&opts.creds.PostgresDatabase, "pg-database", "", "Postgres database")
	f.StringVar(&opts.creds.StorageBucketURL, "bucket-url", "", "Uploads bucket URL (file://, gs://, mem://)")
	f.BoolVar(&opts.noInput, "no-input", false, "Use flags only, never prompt")

	return cmd
}

func (o *setupOptions) prompt() error {
	c := &o.creds

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Auth provider URL").Placeholder("https://auth.example.com").
				Validate(validateURL).Value(&c.AuthProviderURL),
			huh.NewInput().Title("Auth provider anon key").EchoMode(huh.EchoModePassword).
				Validate(required("anon key")).Value(&c.AuthProviderAnonKey),
		).Title("Auth provider"),
		huh.NewGroup(
			huh.NewInput().Title("Host").Validate(required("host")).Value(&c.PostgresHost),
			huh.NewInput().Title("Port").CharLimit(5).Validate(validatePort).Value(&o.port),
			huh.NewInput().Title("User").Validate(required("user")).Value(&c.PostgresUser),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.PostgresPassword),
			huh.NewInput().Title("Database").Validate(required("database")).Value(&c.PostgresDatabase),
		).Title("Postgres"),
		huh.NewGroup(
			huh.NewInput().Title("Bucket URL").Description("Leave empty to keep the configured bucket").
				Value(&c.StorageBucketURL),
		).Title("Uploads"),
	)

	return errors.Wrap(form.Run(), "prompt aborted")
}

// finalize applies the same checks the server runs so a bad flag fails locally.
func (o *setupOptions) finalize() error {
	port, err := parsePort(o.port)
	if err != nil {
		return err
	}
	o.creds.PostgresPort = port

	if err := validateURL(o.creds.AuthProviderURL); err != nil {
		return err
	}

	checks := map[string]string{
		"auth anon key":     o.creds.AuthProviderAnonKey,
		"postgres host":     o.creds.PostgresHost,
		"postgres user":     o.creds.PostgresUser,
		"postgres database": o.creds.PostgresDatabase,
	}
	for name, value := range checks {
		if err := required(name)(value); err != nil {
			return err
		}
	}

	return nil
}

func runSetup(ctx context.Context, w io.Writer, root *rootOptions, creds *usecase.Credentials) error {
	result, err := root.client().saveCredentials(ctx, creds)
	if err != nil {
		return err
	}

	if root.jsonOutput {
		return errors.WithStack(json.NewEncoder(w).Encode(result))
	}

	fmt.Fprintln(w, okStyle.Render("Credentials saved to "+result.EnvFile))
	if result.RestartRequired {
		fmt.Fprintln(w, mutedStyle.Render("Restart the server, then run `atelierctl verify`."))
	}

	return nil
}

func required(name string) func(string) error {
	return func(value string) error {
		if value == "" {
			return errors.Errorf("%s is required", name)
		}

		return nil
	}
}

func validateURL(value string) error {
	u, err := url.ParseRequestURI(value)
	if err != nil || u.Host == "" {
		return errors.New("a full URL such as https://auth.example.com is required")
	}

	return nil
}

func parsePort(value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || port < 1 || port > 65535 {
		return 0, errors.Errorf("port must be a number between 1 and 65535, got %q", value)
	}

	return port, nil
}

func validatePort(value string) error {
	_, err := parsePort(value)

	return err
}
