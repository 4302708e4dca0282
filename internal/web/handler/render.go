package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/kwanchai/cleanbook/internal/web/middleware"
	"github.com/kwanchai/cleanbook/internal/web/templates/layout"
)

// pageData builds the common page fields from the request context
func pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title:    title,
		Identity: middleware.GetIdentity(r.Context()),
		Flash:    middleware.GetFlash(r.Context()),
	}
}

// render writes a page component, falling back to a plain 500 if
// rendering itself fails
func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// redirectNext sends the visitor to next when it is a site-local path,
// or home otherwise
func redirectNext(w http.ResponseWriter, r *http.Request, next string) {
	if len(next) > 0 && next[0] == '/' && (len(next) == 1 || next[1] != '/') {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
