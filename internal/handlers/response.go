package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/templates"
)

//go:generate mockgen -source=response.go -destination=mock_response.go -package=handlers

// PageRenderer renders a typed page.
type PageRenderer interface {
	Render(w io.Writer, page templates.Page) error
}

// writeHTML renders the page into a buffer and writes it only when rendering succeeded.
func writeHTML(w http.ResponseWriter, renderer PageRenderer, page templates.Page) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page); err != nil {
		logger.Log.Errorw("failed to render template", "template", page.TemplateName(), "err", err)
		writeText(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
