package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/templates/layout"
)

// BookData is the data for the booking form page
type BookData struct {
	layout.PageData
	Service *model.Service
	Date    string
	Time    string
	Address string
	Note    string
	Error   string
}

// Book renders the booking form for a chosen service
func Book(data BookData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="form-page"><h1>Book: %s</h1>`, esc(data.Service.Name)); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(data.Error)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/book">`+
				`<input type="hidden" name="service" value="%s">`+
				`<label>Date<input type="date" name="date" value="%s" required></label>`+
				`<label>Time<input type="time" name="time" value="%s" required></label>`+
				`<label>Address<input type="text" name="address" value="%s" required></label>`+
				`<label>Note<textarea name="note">%s</textarea></label>`+
				`<button type="submit">Confirm booking</button></form></section>`,
			esc(string(data.Service.ID)), esc(data.Date), esc(data.Time),
			esc(data.Address), esc(data.Note))
		return err
	})
	return layout.Page(data.PageData, body)
}

// BookingRow pairs a booking with its service's display name
type BookingRow struct {
	Booking     *model.Booking
	ServiceName string
}

// MyBookingsData is the data for the caller's bookings page
type MyBookingsData struct {
	layout.PageData
	Bookings []BookingRow
}

// MyBookings renders the caller's bookings, newest first
func MyBookings(data MyBookingsData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>My Bookings</h1>`); err != nil {
			return err
		}
		if len(data.Bookings) == 0 {
			_, err := io.WriteString(w,
				`<p class="empty">You have no bookings yet. <a href="/">Browse services</a></p></section>`)
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="bookings"><thead><tr><th>Service</th><th>Date</th><th>Time</th>`+
				`<th>Address</th><th>Status</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range data.Bookings {
			b := row.Booking
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
					`<td><span class="status status-%s">%s</span></td><td>`,
				esc(row.ServiceName), esc(b.Date), esc(b.Time), esc(b.Address),
				esc(string(b.Status)), esc(string(b.Status))); err != nil {
				return err
			}
			if b.Status == model.StatusPending || b.Status == model.StatusConfirmed {
				if _, err := fmt.Fprintf(w,
					`<form class="inline" method="post" action="/my-bookings/%s/cancel">`+
						`<button type="submit">Cancel</button></form>`,
					esc(string(b.ID))); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</td></tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
	return layout.Page(data.PageData, body)
}
