package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/kwanchai/cleanbook/internal/web/templates/layout"
)

// LoginData is the data for the login page
type LoginData struct {
	layout.PageData
	Username string
	Next     string
	Error    string
}

// Login renders the login form
func Login(data LoginData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="form-page"><h1>Login</h1>`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(data.Error)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/login">`+
				`<input type="hidden" name="next" value="%s">`+
				`<label>Username<input type="text" name="username" value="%s" required></label>`+
				`<label>Password<input type="password" name="password" required></label>`+
				`<button type="submit">Login</button></form>`+
				`<p>No account? <a href="/register">Register</a></p></section>`,
			esc(data.Next), esc(data.Username))
		return err
	})
	return layout.Page(data.PageData, body)
}

// RegisterData is the data for the registration page
type RegisterData struct {
	layout.PageData
	Username    string
	Error       string
	FieldErrors map[string]string
}

// Register renders the registration form
func Register(data RegisterData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="form-page"><h1>Register</h1>`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, esc(data.Error)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="/register">`+
				`<label>Username<input type="text" name="username" value="%s" required></label>`,
			esc(data.Username)); err != nil {
			return err
		}
		if err := fieldError(w, data.FieldErrors, "username"); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<label>Password<input type="password" name="password" required></label>`); err != nil {
			return err
		}
		if err := fieldError(w, data.FieldErrors, "password"); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<label>Confirm password<input type="password" name="password_confirm" required></label>`); err != nil {
			return err
		}
		if err := fieldError(w, data.FieldErrors, "password_confirm"); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<button type="submit">Register</button></form>`+
				`<p>Already registered? <a href="/login">Login</a></p></section>`)
		return err
	})
	return layout.Page(data.PageData, body)
}

func fieldError(w io.Writer, errors map[string]string, field string) error {
	msg, ok := errors[field]
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, esc(msg))
	return err
}
