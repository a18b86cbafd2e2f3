package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"sealbox/internal/domain"
)

var (
	// ErrQueueFull is returned when a conversation queue is at capacity.
	ErrQueueFull = errors.New("conversation queue is full")

	// ErrUnknownConversation is returned when draining a conversation that
	// has never been enqueued to.
	ErrUnknownConversation = errors.New("unknown conversation")
)

// Handler processes one drained message.
type Handler func(ctx context.Context, msg domain.QueuedMessage) error

// Metrics is a snapshot of processing counters.
type Metrics struct {
	// Processed is the total number of messages handed to handlers.
	Processed uint64
	// AvgProcessing is the running average time spent per message.
	AvgProcessing time.Duration
	// PeakBatch is the largest batch drained so far.
	PeakBatch int
	// Depth is the current number of queued messages across all
	// conversations.
	Depth int
}

// Service is a bounded per-conversation message queue with batch drain.
// Safe for concurrent use.
type Service struct {
	mu      sync.RWMutex
	queues  map[string][]domain.QueuedMessage
	metrics Metrics

	maxPerConversation int
	batchSize          int
	log                *zap.Logger
}

// New returns a queue service. Each conversation holds at most
// maxPerConversation messages and Drain extracts at most batchSize per
// call. A nil logger disables logging.
func New(maxPerConversation, batchSize int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		queues:             make(map[string][]domain.QueuedMessage),
		maxPerConversation: maxPerConversation,
		batchSize:          batchSize,
		log:                log,
	}
}

// Enqueue appends msg to its conversation queue.
func (s *Service) Enqueue(msg domain.QueuedMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.queues[msg.Conversation]
	if len(q) >= s.maxPerConversation {
		s.log.Warn("queue full",
			zap.String("conversation", msg.Conversation),
			zap.Int("depth", len(q)))
		return ErrQueueFull
	}
	s.queues[msg.Conversation] = append(q, msg)
	return nil
}

// Drain removes up to one batch from the conversation queue in FIFO
// order and feeds each message to h. It returns the drained batch; a
// handler error stops processing and is returned alongside the batch
// drained so far. The batch is removed from the queue regardless, so a
// caller that must not lose messages re-enqueues the unprocessed tail.
func (s *Service) Drain(ctx context.Context, conversation string, h Handler) ([]domain.QueuedMessage, error) {
	s.mu.Lock()
	q, ok := s.queues[conversation]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownConversation
	}
	n := min(s.batchSize, len(q))
	batch := make([]domain.QueuedMessage, n)
	copy(batch, q[:n])
	s.queues[conversation] = q[n:]
	s.mu.Unlock()

	start := time.Now()
	for _, msg := range batch {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		if err := h(ctx, msg); err != nil {
			s.log.Error("handler failed",
				zap.String("conversation", conversation),
				zap.String("message_id", msg.ID),
				zap.Error(err))
			return batch, err
		}
	}
	elapsed := time.Since(start)

	s.record(len(batch), elapsed)
	s.log.Debug("drained batch",
		zap.String("conversation", conversation),
		zap.Int("count", len(batch)),
		zap.Duration("took", elapsed))
	return batch, nil
}

// Depth returns the number of messages queued for a conversation.
func (s *Service) Depth(conversation string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.queues[conversation])
}

// Snapshot returns current metrics, including total depth.
func (s *Service) Snapshot() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.metrics
	for _, q := range s.queues {
		m.Depth += len(q)
	}
	return m
}

// record folds a processed batch into the running average.
func (s *Service) record(n int, elapsed time.Duration) {
	if n == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.metrics.Processed
	s.metrics.Processed += uint64(n)
	total := time.Duration(prev)*s.metrics.AvgProcessing + elapsed
	s.metrics.AvgProcessing = total / time.Duration(s.metrics.Processed)
	if n > s.metrics.PeakBatch {
		s.metrics.PeakBatch = n
	}
}
