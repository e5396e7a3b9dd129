package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/club-polls/internal/db"
	"github.com/sbilibin2017/club-polls/internal/models"
)

// QuestionReadRepository reads poll questions.
type QuestionReadRepository struct {
	db *sqlx.DB
}

// NewQuestionReadRepository creates a new QuestionReadRepository.
func NewQuestionReadRepository(conn *sqlx.DB) *QuestionReadRepository {
	return &QuestionReadRepository{db: conn}
}

// Latest returns at most limit questions, newest pub_date first.
// Questions published at the same instant are ordered by descending id.
func (r *QuestionReadRepository) Latest(ctx context.Context, limit int) ([]models.Question, error) {
	const query = `
		SELECT id, question_text, pub_date
		FROM polls_question
		ORDER BY pub_date DESC, id DESC
		LIMIT ?
	`
	args := []any{limit}

	q := db.QuerierFromContext(ctx, r.db)
	questions := make([]models.Question, 0, limit)
	err := q.SelectContext(ctx, &questions, q.Rebind(query), args...)

	logQuery(query, args, len(questions), err)

	if err != nil {
		return nil, err
	}
	return questions, nil
}
