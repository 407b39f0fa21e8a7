package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultServerURL = "http://localhost:8080"
	envServerURL     = "ATELIER_URL"
	envSetupToken    = "ATELIER_SETUP_TOKEN"
)

type rootOptions struct {
	serverURL  string
	token      string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "atelierctl",
		Short: "Bootstrap and check an atelier deployment",
		Long: `atelierctl talks to the setup endpoints of a running atelier server.

Environment Variables:
  ATELIER_URL          Server URL (default: http://localhost:8080)
  ATELIER_SETUP_TOKEN  Value sent as X-Setup-Token`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.serverURL, "server", "", "Server URL (overrides ATELIER_URL)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "Setup token (overrides ATELIER_SETUP_TOKEN)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output JSON instead of human-readable text")

	cmd.AddCommand(
		newHashTokenCmd(),
		newSetupCmd(opts),
		newVerifyCmd(opts),
	)

	return cmd
}

func (o *rootOptions) client() *client {
	serverURL := o.serverURL
	if serverURL == "" {
		serverURL = os.Getenv(envServerURL)
	}
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	token := o.token
	if token == "" {
		token = os.Getenv(envSetupToken)
	}

	return newClient(serverURL, token)
}
