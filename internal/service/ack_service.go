package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
	"github.com/noah-isme/campus-portal-api/pkg/jobs"
)

const ackQueueName = "acks"

// AckConfig configures the simulated write acknowledgements.
type AckConfig struct {
	Delay     time.Duration
	Workers   int
	Retention time.Duration
}

// AckService accepts simulated writes and acknowledges each one after a fixed
// delay. Acks live in memory only and are never applied to academic data.
type AckService struct {
	queue     *jobs.Queue
	metrics   *MetricsService
	logger    *zap.Logger
	delay     time.Duration
	retention time.Duration
	now       func() time.Time

	mu   sync.RWMutex
	acks map[string]*models.Ack
}

// NewAckService builds the service and its worker queue. Call Start before
// submitting.
func NewAckService(cfg AckConfig, metrics *MetricsService, logger *zap.Logger) *AckService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 15 * time.Minute
	}
	svc := &AckService{
		metrics:   metrics,
		logger:    logger,
		delay:     cfg.Delay,
		retention: cfg.Retention,
		now:       func() time.Time { return time.Now().UTC() },
		acks:      make(map[string]*models.Ack),
	}
	svc.queue = jobs.NewQueue(ackQueueName, svc.acknowledge, jobs.QueueConfig{
		Workers: cfg.Workers,
		Logger:  logger,
	})
	return svc
}

// Start launches the acknowledgement workers.
func (s *AckService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop halts the workers. Acks still pending stay pending.
func (s *AckService) Stop() {
	s.queue.Stop()
}

// Submit records a pending ack and schedules its acknowledgement.
func (s *AckService) Submit(ctx context.Context, req models.AckRequest) (*models.Ack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	submittedAt := s.now()
	ack := &models.Ack{
		ID:          uuid.NewString(),
		Kind:        req.Kind,
		ActorID:     req.ActorID,
		SubjectID:   req.SubjectID,
		Status:      models.AckStatusPending,
		Title:       req.Title,
		Message:     req.Message,
		SubmittedAt: submittedAt,
	}

	s.mu.Lock()
	s.pruneLocked(submittedAt)
	s.acks[ack.ID] = ack
	snapshot := *ack
	s.mu.Unlock()

	err := s.queue.Enqueue(jobs.Job{
		ID:        ack.ID,
		Type:      string(ack.Kind),
		Payload:   ack.ID,
		NotBefore: submittedAt.Add(s.delay),
	})
	if err != nil {
		s.mu.Lock()
		delete(s.acks, ack.ID)
		s.mu.Unlock()
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue acknowledgement")
	}

	s.metrics.AckSubmitted(ack.Kind)
	s.logger.Debug("ack submitted",
		zap.String("ack_id", ack.ID),
		zap.String("kind", string(ack.Kind)),
		zap.String("actor_id", ack.ActorID),
		zap.String("subject_id", ack.SubjectID))
	return &snapshot, nil
}

// Get returns the ack when it belongs to actorID. Acks of other actors are
// reported as not found.
func (s *AckService) Get(actorID, id string) (*models.Ack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ack, ok := s.acks[id]
	if !ok || ack.ActorID != actorID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "acknowledgement not found")
	}
	snapshot := *ack
	return &snapshot, nil
}

func (s *AckService) acknowledge(_ context.Context, job jobs.Job) error {
	id, ok := job.Payload.(string)
	if !ok {
		return fmt.Errorf("unexpected ack payload %T", job.Payload)
	}

	s.mu.Lock()
	ack, ok := s.acks[id]
	if !ok || ack.Status == models.AckStatusAcknowledged {
		s.mu.Unlock()
		return nil
	}
	now := s.now()
	ack.Status = models.AckStatusAcknowledged
	ack.AcknowledgedAt = &now
	kind := ack.Kind
	latency := now.Sub(ack.SubmittedAt)
	s.mu.Unlock()

	s.metrics.AckAcknowledged(kind, latency)
	s.logger.Debug("ack acknowledged", zap.String("ack_id", id), zap.Duration("latency", latency))
	return nil
}

// pruneLocked forgets acknowledged acks older than the retention window.
func (s *AckService) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.retention)
	for id, ack := range s.acks {
		if ack.Status == models.AckStatusAcknowledged && ack.SubmittedAt.Before(cutoff) {
			delete(s.acks, id)
		}
	}
}
