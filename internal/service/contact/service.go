package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/model/contact"
)

// Recorder keeps a submission somewhere: a log line, a table, an inbox.
type Recorder interface {
	Record(ctx context.Context, sub contact.Submission) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, sub contact.Submission) error

func (f RecorderFunc) Record(ctx context.Context, sub contact.Submission) error {
	return f(ctx, sub)
}

// Service accepts contact form submissions.
type Service struct {
	recorders []Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewService returns a Service that hands each submission to every recorder
// in order.
func NewService(logger *zap.Logger, recorders ...Recorder) *Service {
	return &Service{
		recorders: recorders,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit records the submission. It never returns an error or panics: any
// failure is folded into a Result with Success=false.
func (s *Service) Submit(ctx context.Context, sub contact.Submission) (res contact.Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			s.logger.Error("submitContactForm error", zap.Error(err), zap.Stack("stack"))
			res = contact.Result{Success: false, Error: err.Error()}
		}
	}()

	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.ReceivedAt.IsZero() {
		sub.ReceivedAt = s.now().UTC()
	}

	for _, rec := range s.recorders {
		if err := rec.Record(ctx, sub); err != nil {
			s.logger.Error("submitContactForm error", zap.String("id", sub.ID), zap.Error(err))
			return contact.Result{Success: false, Error: err.Error()}
		}
	}
	return contact.Result{Success: true}
}

// LogRecorder writes submissions to the structured log.
type LogRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder returns a recorder logging through logger.
func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(_ context.Context, sub contact.Submission) error {
	r.logger.Info("Received form data",
		zap.String("id", sub.ID),
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("subject", sub.Subject),
		zap.String("message", sub.Message),
		zap.String("company", sub.Company),
		zap.String("phone", sub.Phone),
		zap.String("budget", sub.Budget),
		zap.String("timeline", sub.Timeline),
		zap.Any("extra", sub.Extra),
		zap.String("user_id", sub.UserID),
		zap.Time("received_at", sub.ReceivedAt))
	return nil
}
