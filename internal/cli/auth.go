package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwanchai/cleanbook/internal/model"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Account and credential commands",
	}

	cmd.AddCommand(newAuthRegisterCmd())
	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthWhoamiCmd())

	return cmd
}

func newAuthRegisterCmd() *cobra.Command {
	var user, pass, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedRole, err := model.ParseRole(role)
			if err != nil {
				return fmt.Errorf("invalid --role %q: must be User or Author", role)
			}

			if err := authAPI.Register(cmd.Context(), user, pass, parsedRole); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Account created: " + user)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&role, "role", "User", "Account role: User or Author")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := authAPI.Login(cmd.Context(), user, pass)
			if err != nil {
				return err
			}

			if err := state.Set(id); err != nil {
				return fmt.Errorf("failed to persist identity: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(IdentityResult{
				SubjectID:   id.SubjectID,
				DisplayName: id.DisplayName,
				Role:        string(id.Role),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.Clear(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newAuthWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := state.Current()
			if !id.Authenticated() {
				return fmt.Errorf("not logged in")
			}

			out := NewOutput(cfg.Output)
			out.Print(IdentityResult{
				SubjectID:   id.SubjectID,
				DisplayName: id.DisplayName,
				Role:        string(id.Role),
			})
			return nil
		},
	}
}
