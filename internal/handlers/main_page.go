package handlers

import (
	"net/http"

	"github.com/sbilibin2017/club-polls/internal/templates"
)

// NewMainHandler returns an HTTP handler for the static landing page.
// @Summary Landing page
// @Tags members
// @Produce html
// @Success 200 {string} string "Landing page"
// @Router / [get]
func NewMainHandler(renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, renderer, templates.MainPage{})
	}
}
