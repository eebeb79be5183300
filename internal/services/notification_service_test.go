package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/commerce-dashboard/internal/config"
)

type recordingPublisher struct {
	notices []Notice
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, notice Notice) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	p.notices = append(p.notices, notice)
	return p.err
}

func newTestNotifications(p NoticePublisher) *NotificationService {
	svc := NewNotificationService(config.NotificationConfig{Queue: "test", PublishTimeout: time.Second})
	svc.now = fixedClock(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	return svc.WithPublisher(p)
}

func TestNotificationServiceWithoutBroker(t *testing.T) {
	svc := NewNotificationService(config.NotificationConfig{})
	assert.Nil(t, svc.publisher)
	assert.NoError(t, svc.NotifyCheckout(context.Background(), decimal.NewFromInt(3), 1))
}

func TestNotifyCheckout(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newTestNotifications(pub)

	err := svc.NotifyCheckout(context.Background(), decimal.RequireFromString("35"), 5)
	require.NoError(t, err)

	require.Len(t, pub.notices, 1)
	n := pub.notices[0]
	assert.Equal(t, NoticeCheckoutCompleted, n.Type)
	assert.Equal(t, "35.00", n.Data["total"])
	assert.Equal(t, 5, n.Data["item_count"])
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), n.OccurredAt)
}

func TestNotifyBatchProcessed(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newTestNotifications(pub)

	err := svc.NotifyBatchProcessed(context.Background(), &BatchResult{Processed: 2, Advanced: 1, OrderIDs: []string{"A", "B"}})
	require.NoError(t, err)

	require.Len(t, pub.notices, 1)
	assert.Equal(t, NoticeBatchProcessed, pub.notices[0].Type)
	assert.Equal(t, 2, pub.notices[0].Data["processed"])
	assert.Equal(t, 1, pub.notices[0].Data["advanced"])
}

func TestNotifyReportExported(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newTestNotifications(pub)
	report := &Report{FileName: "orders_export_2024-01-02.csv", Rows: 3}

	require.NoError(t, svc.NotifyReportExported(context.Background(), report, ""))
	require.NoError(t, svc.NotifyReportExported(context.Background(), report, "s3://bucket/key"))

	require.Len(t, pub.notices, 2)
	assert.NotContains(t, pub.notices[0].Data, "location")
	assert.Equal(t, "s3://bucket/key", pub.notices[1].Data["location"])
	assert.Equal(t, 3, pub.notices[1].Data["rows"])
}

func TestNotifyPublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := newTestNotifications(pub)

	err := svc.NotifyCheckout(context.Background(), decimal.Zero, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}
