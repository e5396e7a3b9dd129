package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/models"
	"github.com/sbilibin2017/club-polls/internal/templates"
)

//go:generate mockgen -source=members.go -destination=mock_members.go -package=handlers

// MemberLister defines the interface that the members service must implement.
type MemberLister interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
}

// NewMembersHandler returns an HTTP handler listing all club members.
// @Summary List members
// @Description Renders every member of the tennis club as an HTML list
// @Tags members
// @Produce html
// @Success 200 {string} string "Member list page"
// @Failure 500 {string} string "Internal server error"
// @Router /members/ [get]
func NewMembersHandler(svc MemberLister, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := svc.ListMembers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeText(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeHTML(w, renderer, templates.MembersPage{Members: members})
	}
}
