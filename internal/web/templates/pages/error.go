package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/kwanchai/cleanbook/internal/web/templates/layout"
)

// ErrorData is the data for the error page
type ErrorData struct {
	layout.PageData
	Message string
}

// Error renders a full-page error notice
func Error(data ErrorData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="error-page"><h1>%s</h1>`+
				`<p>%s</p><a class="button" href="/">Back to home</a></section>`,
			esc(data.Title), esc(data.Message))
		return err
	})
	return layout.Page(data.PageData, body)
}
