package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		token   string
		sandbox bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API access token",
		Long: `Store a GoCardless access token in the CLI configuration.

The token is verified with a test request before it is saved. Use
--sandbox for sandbox tokens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				_, _ = os.Stdout.WriteString("Access token: ")

				tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				_, _ = os.Stdout.WriteString("\n")

				token = strings.TrimSpace(string(tokenBytes))
			}

			if token == "" {
				return ErrTokenRequired
			}

			environment := gcpay.EnvironmentLive
			if sandbox {
				environment = gcpay.EnvironmentSandbox
			}

			viper.Set("token", token)
			viper.Set("environment", string(environment))

			// Verify the token before persisting it
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Creditors().List(context.Background(), gcpay.NewListParams().WithLimit(1))
			if err != nil {
				return fmt.Errorf("token verification failed: %w", err)
			}

			err = saveConfig()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in to the %s environment\n", environment)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "access token (prompted when omitted)")
	cmd.Flags().BoolVar(&sandbox, "sandbox", false, "use the sandbox environment")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		Long:  "Remove the stored access token from the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("token") == "" {
				return ErrNoConfiguredToken
			}

			viper.Set("token", "")

			err := saveConfig()
			if err != nil {
				return err
			}

			_, _ = os.Stdout.WriteString("Logged out\n")

			return nil
		},
	}
}
