package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/club-polls/internal/logger"
	"github.com/sbilibin2017/club-polls/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=polls.go -destination=mock_polls.go -package=services

// LatestQuestionsLimit is the number of questions listed on the polls index.
const LatestQuestionsLimit = 5

// VoteIntentTimeout bounds how long a vote request waits on the broker.
const VoteIntentTimeout = 2 * time.Second

// QuestionReader retrieves questions.
type QuestionReader interface {
	Latest(ctx context.Context, limit int) ([]models.Question, error) // Returns newest questions first
}

// QuestionCache caches the texts of the latest questions.
type QuestionCache interface {
	GetLatestTexts(ctx context.Context, limit int) ([]string, error)    // Returns cached texts or an error on miss
	SetLatestTexts(ctx context.Context, limit int, texts []string) error // Stores texts
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PollService serves the polls views.
type PollService struct {
	reader      QuestionReader
	cache       QuestionCache
	kafkaWriter KafkaWriter
}

// NewPollService creates a new PollService. cache and kafkaWriter may be nil.
func NewPollService(reader QuestionReader, cache QuestionCache, kafkaWriter KafkaWriter) *PollService {
	return &PollService{
		reader:      reader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// LatestQuestionTexts returns the texts of the five most recently published
// questions joined by ", ". No questions yield an empty string.
func (s *PollService) LatestQuestionTexts(ctx context.Context) (string, error) {
	if s.cache != nil {
		texts, err := s.cache.GetLatestTexts(ctx, LatestQuestionsLimit)
		if err == nil {
			return strings.Join(texts, ", "), nil
		}
	}

	questions, err := s.reader.Latest(ctx, LatestQuestionsLimit)
	if err != nil {
		logger.Log.Errorw("failed to get latest questions", "error", err)
		return "", err
	}

	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		texts = append(texts, q.QuestionText)
	}

	if s.cache != nil {
		if err := s.cache.SetLatestTexts(ctx, LatestQuestionsLimit, texts); err != nil {
			logger.Log.Errorw("failed to cache latest questions", "error", err)
		}
	}

	return strings.Join(texts, ", "), nil
}

// RecordVoteIntent publishes a vote intent for the question. It never touches
// the database and publishing failures are only logged.
func (s *PollService) RecordVoteIntent(ctx context.Context, questionID int64, requestID string) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping vote intent", "question_id", questionID)
		return
	}

	intent := models.VoteIntent{
		QuestionID: questionID,
		RequestID:  requestID,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(intent)
	if err != nil {
		logger.Log.Errorw("Failed to marshal vote intent", "question_id", questionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(questionID, 10)),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(ctx, VoteIntentTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.Log.Warnw("Vote intent publishing canceled", "question_id", questionID)
			return
		}
		logger.Log.Errorw("Failed to publish vote intent", "question_id", questionID, "error", err)
		return
	}
	logger.Log.Infow("Vote intent published", "question_id", questionID, "request_id", requestID)
}
