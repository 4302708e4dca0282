package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/model"
)

func newBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Booking commands",
	}

	cmd.AddCommand(newBookingsListCmd())
	cmd.AddCommand(newBookingsGetCmd())
	cmd.AddCommand(newBookingsCreateCmd())
	cmd.AddCommand(newBookingsUpdateCmd())
	cmd.AddCommand(newBookingsCancelCmd())

	return cmd
}

func newBookingsListCmd() *cobra.Command {
	var user string
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings (--mine for your own, no flags for all; all is Author only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mine {
				id := state.Current()
				if !id.Authenticated() {
					return fmt.Errorf("not logged in")
				}
				user = id.SubjectID
			}

			var bookings []*model.Booking
			var err error
			if user != "" {
				bookings, err = bookingsAPI.ListByUser(cmd.Context(), user)
			} else {
				bookings, err = bookingsAPI.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(bookingResults(bookings))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "List bookings for this user id")
	cmd.Flags().BoolVar(&mine, "mine", false, "List your own bookings")

	return cmd
}

func newBookingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <booking-id>",
		Short: "Show a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bookingsAPI.Get(cmd.Context(), model.BookingID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(bookingResult(b))
			return nil
		},
	}
}

func newBookingsCreateCmd() *cobra.Command {
	var service, date, timeOfDay, address, note string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a service",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := state.Current()
			if !id.Authenticated() {
				return fmt.Errorf("not logged in")
			}

			b, err := bookingsAPI.Create(cmd.Context(), client.BookingForm{
				ServiceID: model.ServiceID(service),
				Date:      date,
				Time:      timeOfDay,
				Address:   address,
				Note:      note,
				UserID:    id.SubjectID,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(bookingResult(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "Service id (required)")
	cmd.Flags().StringVar(&date, "date", "", "Date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time, HH:MM (required)")
	cmd.Flags().StringVar(&address, "address", "", "Address (required)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newBookingsUpdateCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "update <booking-id>",
		Short: "Update a booking's status (Author only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := model.ParseBookingStatus(status)
			if err != nil {
				return fmt.Errorf("invalid --status %q", status)
			}

			b, err := bookingsAPI.Update(cmd.Context(), model.BookingID(args[0]), client.BookingPatch{Status: &parsed})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(bookingResult(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status: pending, confirmed, completed, or cancelled (required)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newBookingsCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bookingsAPI.Delete(cmd.Context(), model.BookingID(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Booking cancelled: " + args[0])
			return nil
		},
	}
}
