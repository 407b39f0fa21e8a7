package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("one or more backend checks failed")

func newVerifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Probe the auth provider, database and bucket from the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			report, err := root.client().verify(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if root.jsonOutput {
				if err := json.NewEncoder(w).Encode(report); err != nil {
					return errors.WithStack(err)
				}
			} else {
				fmt.Fprintln(w, renderReport(report))
			}

			if !report.OK {
				return errChecksFailed
			}

			return nil
		},
	}
}

func renderReport(report *usecase.VerifyReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Backend checks"))
	b.WriteString("\n")

	for _, check := range report.Checks {
		status := okStyle.Render("OK  ")
		if !check.OK {
			status = failStyle.Render("FAIL")
		}

		line := fmt.Sprintf("%s %-14s %s", status, check.Name, mutedStyle.Render(check.Latency.Round(time.Millisecond).String()))
		if check.Error != "" {
			line += "\n     " + failStyle.Render(check.Error)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
