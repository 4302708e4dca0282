package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/model"
)

func newServicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Service catalogue commands",
	}

	cmd.AddCommand(newServicesListCmd())
	cmd.AddCommand(newServicesGetCmd())
	cmd.AddCommand(newServicesCreateCmd())
	cmd.AddCommand(newServicesUpdateCmd())
	cmd.AddCommand(newServicesDeleteCmd())

	return cmd
}

func newServicesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all services",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := servicesAPI.List(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(serviceResults(services))
			return nil
		},
	}
}

func newServicesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <service-id>",
		Short: "Show a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := servicesAPI.Get(cmd.Context(), model.ServiceID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(serviceResult(svc))
			return nil
		},
	}
}

func newServicesCreateCmd() *cobra.Command {
	var name, details, duration, image string
	var price float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a service (Author only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := client.ServiceForm{
				Name:        name,
				Description: details,
				Price:       price,
				Duration:    duration,
			}

			if image != "" {
				f, err := os.Open(image)
				if err != nil {
					return fmt.Errorf("failed to open image: %w", err)
				}
				defer func() { _ = f.Close() }()
				form.File = &client.FileUpload{Name: filepath.Base(image), Content: f}
			}

			svc, err := servicesAPI.Create(cmd.Context(), form)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(serviceResult(svc))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Service name (required)")
	cmd.Flags().StringVar(&details, "details", "", "Service description")
	cmd.Flags().Float64Var(&price, "price", 0, "Price")
	cmd.Flags().StringVar(&duration, "duration", "", "Typical duration, e.g. 2h")
	cmd.Flags().StringVar(&image, "image", "", "Path to a cover image file")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newServicesUpdateCmd() *cobra.Command {
	var name, details, duration, image string
	var price float64

	cmd := &cobra.Command{
		Use:   "update <service-id>",
		Short: "Update a service (Author only); only set flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch client.ServicePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("details") {
				patch.Description = &details
			}
			if cmd.Flags().Changed("price") {
				patch.Price = &price
			}
			if cmd.Flags().Changed("duration") {
				patch.Duration = &duration
			}
			if image != "" {
				f, err := os.Open(image)
				if err != nil {
					return fmt.Errorf("failed to open image: %w", err)
				}
				defer func() { _ = f.Close() }()
				patch.File = &client.FileUpload{Name: filepath.Base(image), Content: f}
			}

			svc, err := servicesAPI.Update(cmd.Context(), model.ServiceID(args[0]), patch)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(serviceResult(svc))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Service name")
	cmd.Flags().StringVar(&details, "details", "", "Service description")
	cmd.Flags().Float64Var(&price, "price", 0, "Price")
	cmd.Flags().StringVar(&duration, "duration", "", "Typical duration")
	cmd.Flags().StringVar(&image, "image", "", "Path to a cover image file")

	return cmd
}

func newServicesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <service-id>",
		Short: "Delete a service (Author only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := servicesAPI.Delete(cmd.Context(), model.ServiceID(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Service deleted: " + args[0])
			return nil
		},
	}
}
