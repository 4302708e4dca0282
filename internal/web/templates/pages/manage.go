package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/templates/layout"
)

// ManageServicesData is the data for the service administration page
type ManageServicesData struct {
	layout.PageData
	Services []*model.Service
}

// ManageServices renders the catalogue administration screen
func ManageServices(data ManageServicesData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<section><h1>Manage Services</h1>`+
				`<a class="button" href="/add-service">Add service</a>`); err != nil {
			return err
		}
		if len(data.Services) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No services yet.</p></section>`)
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="services"><thead><tr><th>Name</th><th>Price</th>`+
				`<th>Duration</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, svc := range data.Services {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%.2f</td><td>%s</td><td>`+
					`<a href="/edit-service/%s">Edit</a>`+
					`<form class="inline" method="post" action="/manage-services/%s/delete">`+
					`<button type="submit">Delete</button></form></td></tr>`,
				esc(svc.Name), svc.Price, esc(svc.Duration),
				esc(string(svc.ID)), esc(string(svc.ID))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
	return layout.Page(data.PageData, body)
}

// ServiceFormData is the data for the add/edit service page
type ServiceFormData struct {
	layout.PageData
	Service *model.Service // nil when adding
	Error   string
}

// ServiceForm renders the add or edit form for a service
func ServiceForm(data ServiceFormData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		title := "Add Service"
		action := "/add-service"
		var name, details, price, duration string
		if data.Service != nil {
			title = "Edit Service"
			action = "/edit-service/" + string(data.Service.ID)
			name = data.Service.Name
			details = data.Service.Description
			price = strconv.FormatFloat(data.Service.Price, 'f', -1, 64)
			duration = data.Service.Duration
		}

		if _, err := fmt.Fprintf(w, `<section class="form-page"><h1>%s</h1>`, esc(title)); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(data.Error)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s" enctype="multipart/form-data">`+
				`<label>Name<input type="text" name="name" value="%s" required></label>`+
				`<label>Details<textarea name="details">%s</textarea></label>`+
				`<label>Price<input type="number" name="price" step="0.01" min="0" value="%s" required></label>`+
				`<label>Duration<input type="text" name="duration" value="%s"></label>`+
				`<label>Cover image<input type="file" name="file" accept="image/*"></label>`+
				`<button type="submit">Save</button></form></section>`,
			esc(action), esc(name), esc(details), esc(price), esc(duration))
		return err
	})
	return layout.Page(data.PageData, body)
}

// ManageBookingsData is the data for the booking administration page
type ManageBookingsData struct {
	layout.PageData
	Bookings []BookingRow
}

var bookingStatuses = []model.BookingStatus{
	model.StatusPending,
	model.StatusConfirmed,
	model.StatusCompleted,
	model.StatusCancelled,
}

// ManageBookings renders the booking administration screen
func ManageBookings(data ManageBookingsData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>Manage Bookings</h1>`); err != nil {
			return err
		}
		if len(data.Bookings) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No bookings yet.</p></section>`)
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="bookings"><thead><tr><th>Service</th><th>Date</th><th>Time</th>`+
				`<th>Address</th><th>User</th><th>Status</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range data.Bookings {
			b := row.Booking
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`+
					`<form class="inline" method="post" action="/manage-bookings/%s/status">`+
					`<select name="status">`,
				esc(row.ServiceName), esc(b.Date), esc(b.Time), esc(b.Address),
				esc(b.UserID), esc(string(b.ID))); err != nil {
				return err
			}
			for _, status := range bookingStatuses {
				selected := ""
				if status == b.Status {
					selected = " selected"
				}
				if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
					esc(string(status)), selected, esc(string(status))); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`</select><button type="submit">Update</button></form></td><td>`+
					`<form class="inline" method="post" action="/manage-bookings/%s/delete">`+
					`<button type="submit">Delete</button></form></td></tr>`,
				esc(string(b.ID))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
	return layout.Page(data.PageData, body)
}
