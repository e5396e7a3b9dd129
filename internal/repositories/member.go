package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/club-polls/internal/db"
	"github.com/sbilibin2017/club-polls/internal/models"
)

// MemberReadRepository reads club members. Queries run inside the request
// transaction when one is stored in the context.
type MemberReadRepository struct {
	db *sqlx.DB
}

// NewMemberReadRepository creates a new MemberReadRepository.
func NewMemberReadRepository(conn *sqlx.DB) *MemberReadRepository {
	return &MemberReadRepository{db: conn}
}

// List returns every member ordered by id. An empty table yields an empty, non-nil slice.
func (r *MemberReadRepository) List(ctx context.Context) ([]models.Member, error) {
	const query = `
		SELECT id, firstname, lastname, phone, joined_date
		FROM members
		ORDER BY id
	`

	q := db.QuerierFromContext(ctx, r.db)
	members := make([]models.Member, 0)
	err := q.SelectContext(ctx, &members, q.Rebind(query))

	logQuery(query, nil, len(members), err)

	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListByFirstname returns members whose firstname equals the given value.
func (r *MemberReadRepository) ListByFirstname(ctx context.Context, firstname string) ([]models.Member, error) {
	const query = `
		SELECT id, firstname, lastname, phone, joined_date
		FROM members
		WHERE firstname = ?
		ORDER BY id
	`
	args := []any{firstname}

	q := db.QuerierFromContext(ctx, r.db)
	members := make([]models.Member, 0)
	err := q.SelectContext(ctx, &members, q.Rebind(query), args...)

	logQuery(query, args, len(members), err)

	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetByID returns the member with the given id, or nil without error when no row matches.
func (r *MemberReadRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	const query = `
		SELECT id, firstname, lastname, phone, joined_date
		FROM members
		WHERE id = ?
	`
	args := []any{id}

	q := db.QuerierFromContext(ctx, r.db)
	var member models.Member
	err := q.GetContext(ctx, &member, q.Rebind(query), args...)

	if errors.Is(err, sql.ErrNoRows) {
		logQuery(query, args, 0, nil)
		return nil, nil
	}
	logQuery(query, args, 1, err)

	if err != nil {
		return nil, err
	}
	return &member, nil
}
