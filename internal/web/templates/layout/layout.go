// Package layout provides the shared page chrome for the web UI.
package layout

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/kwanchai/cleanbook/internal/model"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // "success", "error", or "info"
	Message string
}

// PageData carries the fields every page needs
type PageData struct {
	Title    string
	Identity *model.Identity
	Flash    *FlashMessage
}

// Page wraps a body component in the site chrome: head, nav, flash
// banner, and footer
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s - CleanBook</title>`+
				`<link rel="stylesheet" href="/static/style.css"></head><body>`,
			html.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := nav(data.Identity).Render(ctx, w); err != nil {
			return err
		}

		if data.Flash != nil {
			if _, err := fmt.Fprintf(w,
				`<div class="flash flash-%s" role="status">%s</div>`,
				html.EscapeString(data.Flash.Type),
				html.EscapeString(data.Flash.Message)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}

		_, err := io.WriteString(w,
			`<footer class="footer">CleanBook - professional cleaning, booked online</footer></body></html>`)
		return err
	})
}

func nav(id *model.Identity) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<nav class="nav"><a class="brand" href="/">CleanBook</a><div class="nav-links">`); err != nil {
			return err
		}

		if !id.Authenticated() {
			if _, err := io.WriteString(w,
				`<a href="/login">Login</a><a href="/register">Register</a>`); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/my-bookings">My Bookings</a>`); err != nil {
				return err
			}
			if id.HasRole(model.RoleAuthor) {
				if _, err := io.WriteString(w,
					`<a href="/manage-services">Manage Services</a><a href="/manage-bookings">Manage Bookings</a>`); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<span class="nav-user">%s</span>`+
					`<form class="inline" method="post" action="/logout"><button type="submit">Logout</button></form>`,
				html.EscapeString(id.DisplayName)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div></nav>`)
		return err
	})
}
