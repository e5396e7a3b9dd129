package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/models"
	"github.com/sbilibin2017/club-polls/internal/templates"
)

//go:generate mockgen -source=testing_page.go -destination=mock_testing_page.go -package=handlers

// Fixed values shown on the template demo page.
const (
	demoFirstname = "Linus"
	demoFilter    = "Emil"
)

var demoFruits = []string{"Apple", "Banana", "Cherry"}

// MemberFilterer defines the interface that the members service must implement.
type MemberFilterer interface {
	ListMembersByFirstname(ctx context.Context, firstname string) ([]models.Member, error)
}

// NewTestingHandler returns an HTTP handler for the template demo page.
// @Summary Template demo
// @Description Renders fixed demo values together with every member named Emil
// @Tags members
// @Produce html
// @Success 200 {string} string "Demo page"
// @Failure 500 {string} string "Internal server error"
// @Router /testing/ [get]
func NewTestingHandler(svc MemberFilterer, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := svc.ListMembersByFirstname(r.Context(), demoFilter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeText(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeHTML(w, renderer, templates.TestingPage{
			Fruits:    append([]string(nil), demoFruits...),
			Firstname: demoFirstname,
			Members:   members,
		})
	}
}
