package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/models"
	"github.com/sbilibin2017/club-polls/internal/services"
	"github.com/sbilibin2017/club-polls/internal/templates"
)

//go:generate mockgen -source=details.go -destination=mock_details.go -package=handlers

// MemberGetter defines the interface that the members service must implement.
type MemberGetter interface {
	GetMember(ctx context.Context, id int64) (*models.Member, error)
}

// NewMemberDetailsHandler returns an HTTP handler showing one member.
// @Summary Member details
// @Description Renders a single member by id
// @Tags members
// @Produce html
// @Param id path int true "Member ID"
// @Success 200 {string} string "Member details page"
// @Failure 404 {string} string "Member not found"
// @Failure 500 {string} string "Internal server error"
// @Router /members/details/{id} [get]
func NewMemberDetailsHandler(svc MemberGetter, renderer PageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeText(w, http.StatusNotFound, "Member not found")
			return
		}

		member, err := svc.GetMember(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMemberNotFound):
				writeText(w, http.StatusNotFound, "Member not found")
			default:
				logger.Log.Errorw("internal server error", "id", id, "err", err)
				writeText(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeHTML(w, renderer, templates.DetailsPage{Member: *member})
	}
}
