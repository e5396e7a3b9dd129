package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/models"
)

//go:generate mockgen -source=members.go -destination=mock_members.go -package=services

// ErrMemberNotFound is returned when no member matches the requested id.
var ErrMemberNotFound = errors.New("member not found")

// MemberReader defines read-only operations for members.
type MemberReader interface {
	List(ctx context.Context) ([]models.Member, error)                                // Returns every member
	ListByFirstname(ctx context.Context, firstname string) ([]models.Member, error) // Returns members with the given firstname
	GetByID(ctx context.Context, id int64) (*models.Member, error)                  // Returns nil when the id is unknown
}

// MemberService serves the members views.
type MemberService struct {
	reader MemberReader
}

// NewMemberService creates a new MemberService.
func NewMemberService(reader MemberReader) *MemberService {
	return &MemberService{reader: reader}
}

// ListMembers returns all members.
func (svc *MemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	members, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list members", "err", err)
		return nil, err
	}
	return members, nil
}

// ListMembersByFirstname returns members with the given firstname.
func (svc *MemberService) ListMembersByFirstname(ctx context.Context, firstname string) ([]models.Member, error) {
	members, err := svc.reader.ListByFirstname(ctx, firstname)
	if err != nil {
		logger.Log.Errorw("failed to filter members", "firstname", firstname, "err", err)
		return nil, err
	}
	return members, nil
}

// GetMember returns one member or ErrMemberNotFound.
func (svc *MemberService) GetMember(ctx context.Context, id int64) (*models.Member, error) {
	member, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get member", "id", id, "err", err)
		return nil, err
	}
	if member == nil {
		logger.Log.Infow("member does not exist", "id", id)
		return nil, ErrMemberNotFound
	}
	return member, nil
}
