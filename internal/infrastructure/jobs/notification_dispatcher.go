package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/infrastructure/metrics"
	"justice-airdrop.backend/pkg/logger"
)

// Sender delivers one outbound message
type Sender interface {
	Send(ctx context.Context, msg entities.OutboundMessage) error
}

// NotificationDispatcher delivers Telegram messages from a bounded queue.
// Enqueue never blocks; a full queue drops the message.
type NotificationDispatcher struct {
	sender      Sender
	metrics     *metrics.Metrics
	queue       chan entities.OutboundMessage
	workers     int
	sendTimeout time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
}

func NewNotificationDispatcher(sender Sender, m *metrics.Metrics, queueSize, workers int) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if workers <= 0 {
		workers = 1
	}
	return &NotificationDispatcher{
		sender:      sender,
		metrics:     m,
		queue:       make(chan entities.OutboundMessage, queueSize),
		workers:     workers,
		sendTimeout: 10 * time.Second,
		stop:        make(chan struct{}),
	}
}

// Enqueue schedules msg for delivery and reports whether it was accepted
func (d *NotificationDispatcher) Enqueue(msg entities.OutboundMessage) bool {
	select {
	case <-d.stop:
		return false
	default:
	}

	select {
	case d.queue <- msg:
		d.observeDepth()
		return true
	default:
		if d.metrics != nil {
			d.metrics.NotificationsDropped.Inc()
		}
		logger.Warn(context.Background(), "Notification queue full, message dropped",
			zap.String("chat_id", msg.ChatID))
		return false
	}
}

// Start launches the workers and blocks until ctx is cancelled or Stop is called
func (d *NotificationDispatcher) Start(ctx context.Context) {
	logger.Info(ctx, "Starting notification dispatcher", zap.Int("workers", d.workers))

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(ctx)
	}
	d.wg.Wait()
	logger.Info(ctx, "Notification dispatcher stopped")
}

// Stop signals the workers to drain what is queued and exit
func (d *NotificationDispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
}

func (d *NotificationDispatcher) work(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			d.drain(ctx)
			return
		case msg := <-d.queue:
			d.deliver(ctx, msg)
		}
	}
}

func (d *NotificationDispatcher) drain(ctx context.Context) {
	for {
		select {
		case msg := <-d.queue:
			d.deliver(ctx, msg)
		default:
			return
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, msg entities.OutboundMessage) {
	d.observeDepth()
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, msg); err != nil {
		if d.metrics != nil {
			d.metrics.NotificationsFailed.Inc()
		}
		logger.Warn(ctx, "Notification delivery failed",
			zap.String("chat_id", msg.ChatID), zap.Error(err))
		return
	}
	if d.metrics != nil {
		d.metrics.NotificationsSent.Inc()
	}
}

func (d *NotificationDispatcher) observeDepth() {
	if d.metrics != nil {
		d.metrics.QueueDepth.Set(float64(len(d.queue)))
	}
}
