package main

import (
	"fmt"

	"atelier/internal/infra/auth"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const minTokenLength = 16

func newHashTokenCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "hash-token",
		Short: "Print the bcrypt hash to store as setup.tokenHash",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token == "" {
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Setup token").
							Description(fmt.Sprintf("At least %d characters; keep it out of the repository", minTokenLength)).
							EchoMode(huh.EchoModePassword).
							Validate(validateToken).
							Value(&token),
					),
				)
				if err := form.Run(); err != nil {
					return errors.Wrap(err, "prompt aborted")
				}
			}

			if err := validateToken(token); err != nil {
				return err
			}

			hash, err := auth.NewBcryptHasher().Hash(token)
			if err != nil {
				return errors.Wrap(err, "failed to hash token")
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "value", "", "Token to hash (prompted when empty)")

	return cmd
}

func validateToken(token string) error {
	if len(token) < minTokenLength {
		return errors.Errorf("token must be at least %d characters", minTokenLength)
	}

	return nil
}
