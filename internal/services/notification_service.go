// internal/services/notification_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/commerce-dashboard/internal/config"
)

type NoticeType string

const (
	NoticeCheckoutCompleted NoticeType = "checkout_completed"
	NoticeBatchProcessed    NoticeType = "batch_processed"
	NoticeReportExported    NoticeType = "report_exported"
)

// Notice is what the dashboard shows as a toast or alert. The core hands
// over values only; presentation decides the wording.
type Notice struct {
	Type       NoticeType             `json:"type"`
	Title      string                 `json:"title"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// NoticePublisher delivers notices to an outside consumer.
type NoticePublisher interface {
	Publish(ctx context.Context, notice Notice) error
}

type NotificationService struct {
	config    config.NotificationConfig
	publisher NoticePublisher
	now       func() time.Time
}

// NewNotificationService logs every notice and, when an AMQP URL is
// configured, also publishes it to the notification queue.
func NewNotificationService(cfg config.NotificationConfig) *NotificationService {
	s := &NotificationService{config: cfg, now: time.Now}
	if cfg.AMQPURL != "" {
		s.publisher = &amqpPublisher{url: cfg.AMQPURL, queue: cfg.Queue}
	}
	return s
}

// WithPublisher replaces the outbound publisher; nil disables publishing.
func (s *NotificationService) WithPublisher(p NoticePublisher) *NotificationService {
	s.publisher = p
	return s
}

func (s *NotificationService) NotifyCheckout(ctx context.Context, total decimal.Decimal, itemCount int) error {
	return s.notify(ctx, Notice{
		Type:  NoticeCheckoutCompleted,
		Title: "Checkout successful",
		Data: map[string]interface{}{
			"total":      total.StringFixed(2),
			"item_count": itemCount,
		},
	})
}

func (s *NotificationService) NotifyBatchProcessed(ctx context.Context, result *BatchResult) error {
	return s.notify(ctx, Notice{
		Type:  NoticeBatchProcessed,
		Title: "Batch Process Complete",
		Data: map[string]interface{}{
			"processed": result.Processed,
			"advanced":  result.Advanced,
			"order_ids": result.OrderIDs,
		},
	})
}

func (s *NotificationService) NotifyReportExported(ctx context.Context, report *Report, location string) error {
	data := map[string]interface{}{
		"file_name": report.FileName,
		"rows":      report.Rows,
	}
	if location != "" {
		data["location"] = location
	}
	return s.notify(ctx, Notice{
		Type:  NoticeReportExported,
		Title: "Export Successful",
		Data:  data,
	})
}

func (s *NotificationService) notify(ctx context.Context, notice Notice) error {
	notice.OccurredAt = s.now().UTC()

	logrus.WithFields(logrus.Fields{
		"type": notice.Type,
		"data": notice.Data,
	}).Info(notice.Title)

	if s.publisher == nil {
		return nil
	}

	timeout := s.config.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, notice); err != nil {
		logrus.WithError(err).WithField("type", notice.Type).Warn("Failed to publish notice")
		return fmt.Errorf("failed to publish notice: %w", err)
	}
	return nil
}

// amqpPublisher opens a short-lived connection per notice. Notices are rare
// operator actions, so there is no pooled connection to keep healthy.
type amqpPublisher struct {
	url   string
	queue string
}

func (p *amqpPublisher) Publish(ctx context.Context, notice Notice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("marshal notice: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	return ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    notice.OccurredAt,
		Type:         string(notice.Type),
		Body:         body,
	})
}
