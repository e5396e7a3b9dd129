package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/middlewares"
)

//go:generate mockgen -source=polls.go -destination=mock_polls.go -package=handlers

// LatestQuestionsReader defines the interface that the polls service must implement.
type LatestQuestionsReader interface {
	LatestQuestionTexts(ctx context.Context) (string, error)
}

// VoteRecorder defines the interface that the polls service must implement.
type VoteRecorder interface {
	RecordVoteIntent(ctx context.Context, questionID int64, requestID string)
}

// NewPollsIndexHandler returns an HTTP handler listing the latest questions.
// @Summary Latest questions
// @Description Texts of the five most recently published questions, newest first, joined by ", "
// @Tags polls
// @Produce plain
// @Success 200 {string} string "B, A, C"
// @Failure 500 {string} string "Internal server error"
// @Router /polls/ [get]
func NewPollsIndexHandler(svc LatestQuestionsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := svc.LatestQuestionTexts(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeText(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeText(w, http.StatusOK, output)
	}
}

// questionID parses the question_id path parameter, writing 404 when it is not an integer.
func questionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "question_id"), 10, 64)
	if err != nil {
		writeText(w, http.StatusNotFound, "Question not found")
		return 0, false
	}
	return id, true
}

// NewQuestionDetailHandler returns an HTTP handler echoing the question id.
// @Summary Question detail
// @Tags polls
// @Produce plain
// @Param question_id path int true "Question ID"
// @Success 200 {string} string "You're looking at question 1."
// @Router /polls/{question_id}/ [get]
func NewQuestionDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := questionID(w, r)
		if !ok {
			return
		}
		writeText(w, http.StatusOK, fmt.Sprintf("You're looking at question %d.", id))
	}
}

// NewQuestionResultsHandler returns an HTTP handler echoing the question id.
// @Summary Question results
// @Tags polls
// @Produce plain
// @Param question_id path int true "Question ID"
// @Success 200 {string} string "You're looking at the results of question 1."
// @Router /polls/{question_id}/results/ [get]
func NewQuestionResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := questionID(w, r)
		if !ok {
			return
		}
		writeText(w, http.StatusOK, fmt.Sprintf("You're looking at the results of question %d.", id))
	}
}

// NewVoteHandler returns an HTTP handler echoing the question id.
// No vote is stored; a vote intent is handed to the recorder.
// @Summary Vote on a question
// @Tags polls
// @Produce plain
// @Param question_id path int true "Question ID"
// @Success 200 {string} string "You're voting on question 1."
// @Router /polls/{question_id}/vote/ [get]
func NewVoteHandler(recorder VoteRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := questionID(w, r)
		if !ok {
			return
		}

		recorder.RecordVoteIntent(r.Context(), id, middlewares.RequestIDFromContext(r.Context()))
		writeText(w, http.StatusOK, fmt.Sprintf("You're voting on question %d.", id))
	}
}
