package cli

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/identity"
	"github.com/kwanchai/cleanbook/internal/session"
)

var (
	cfg   *Config
	state *session.State

	apiClient   *client.Client
	authAPI     *client.AuthAPI
	servicesAPI *client.ServicesAPI
	bookingsAPI *client.BookingsAPI
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "cleanctl",
		Short: "CLI tool for the CleanBook API",
		Long: `cleanctl is a CLI tool for interacting with the CleanBook booking API.

Login persists your identity for 24 hours; until it expires every
command authenticates with the stored credential automatically.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			store := identity.NewFileStore(cfg.IdentityFile, nil)
			state = session.New(store)

			httpClient := &http.Client{
				Transport: &client.Transport{
					Source: client.StateSource(state),
				},
			}
			apiClient = client.New(cfg.ServerURL, httpClient)
			authAPI = client.NewAuthAPI(apiClient)
			servicesAPI = client.NewServicesAPI(apiClient)
			bookingsAPI = client.NewBookingsAPI(apiClient, nil)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CLEANBOOK_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.IdentityFile, "identity-file", cfg.IdentityFile, "Identity file path (env: CLEANBOOK_IDENTITY_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServicesCmd())
	rootCmd.AddCommand(newBookingsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
