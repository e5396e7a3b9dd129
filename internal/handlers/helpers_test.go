package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/club-polls/internal/templates"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *templates.Renderer {
	t.Helper()
	r, err := templates.New()
	require.NoError(t, err)
	return r
}

// withURLParam attaches a chi route context carrying one path parameter.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
