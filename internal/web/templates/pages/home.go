// Package pages holds the page-level view components.
package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/templates/layout"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	Services []*model.Service
	Query    string
}

// Home renders the service catalogue with a search box
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="hero"><h1>Book a cleaning service</h1>`+
				`<form class="search" method="get" action="/">`+
				`<input type="search" name="q" placeholder="Search services" value="%s">`+
				`<button type="submit">Search</button></form></section>`,
			esc(data.Query)); err != nil {
			return err
		}

		if len(data.Services) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No services found.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<ul class="card-grid">`); err != nil {
			return err
		}
		for _, svc := range data.Services {
			if err := serviceCard(svc).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
	return layout.Page(data.PageData, body)
}

func serviceCard(svc *model.Service) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<li class="card">`); err != nil {
			return err
		}
		if svc.Image != "" {
			if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s">`,
				esc(svc.Image), esc(svc.Name)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<h2><a href="/service/%s">%s</a></h2>`+
				`<p class="price">%.2f</p>`+
				`<a class="button" href="/book?service=%s">Book now</a></li>`,
			esc(string(svc.ID)), esc(svc.Name), svc.Price, esc(string(svc.ID)))
		return err
	})
}

// ServiceDetailData is the data for the service detail page
type ServiceDetailData struct {
	layout.PageData
	Service *model.Service
}

// ServiceDetail renders a single service
func ServiceDetail(data ServiceDetailData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		svc := data.Service
		if _, err := fmt.Fprintf(w, `<article class="service-detail"><h1>%s</h1>`, esc(svc.Name)); err != nil {
			return err
		}
		if svc.Image != "" {
			if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s">`,
				esc(svc.Image), esc(svc.Name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<p class="price">%.2f</p>`, svc.Price); err != nil {
			return err
		}
		if svc.Duration != "" {
			if _, err := fmt.Fprintf(w, `<p class="duration">%s</p>`, esc(svc.Duration)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<p>%s</p><a class="button" href="/book?service=%s">Book now</a></article>`,
			esc(svc.Description), esc(string(svc.ID)))
		return err
	})
	return layout.Page(data.PageData, body)
}
