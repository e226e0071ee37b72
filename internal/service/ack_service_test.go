package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/models"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
)

func TestAckServiceAcknowledgesAfterDelay(t *testing.T) {
	svc := NewAckService(AckConfig{Delay: 20 * time.Millisecond, Workers: 1}, NewMetricsService(), nil)
	svc.Start(context.Background())
	defer svc.Stop()

	ack, err := svc.Submit(context.Background(), models.AckRequest{
		Kind:      models.AckEnroll,
		ActorID:   "s1",
		SubjectID: "c3",
		Title:     "Successfully enrolled",
		Message:   "You've been enrolled in ENG105 - Composition.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AckStatusPending, ack.Status)
	assert.Nil(t, ack.AcknowledgedAt)

	require.Eventually(t, func() bool {
		got, err := svc.Get("s1", ack.ID)
		return err == nil && got.Status == models.AckStatusAcknowledged
	}, 2*time.Second, 5*time.Millisecond)

	got, err := svc.Get("s1", ack.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AcknowledgedAt)
	assert.False(t, got.AcknowledgedAt.Before(got.SubmittedAt.Add(20*time.Millisecond)))
	assert.Equal(t, "Successfully enrolled", got.Title)
}

func TestAckServiceHidesOtherActorsAcks(t *testing.T) {
	svc := NewAckService(AckConfig{Delay: time.Hour}, nil, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	ack, err := svc.Submit(context.Background(), models.AckRequest{Kind: models.AckDrop, ActorID: "s1", SubjectID: "c1"})
	require.NoError(t, err)

	_, err = svc.Get("s2", ack.ID)
	requireAppError(t, err, appErrors.ErrNotFound)
	_, err = svc.Get("s1", "missing")
	requireAppError(t, err, appErrors.ErrNotFound)
}

func TestAckServiceSubmitRequiresRunningWorkers(t *testing.T) {
	svc := NewAckService(AckConfig{Delay: time.Millisecond}, nil, nil)

	_, err := svc.Submit(context.Background(), models.AckRequest{Kind: models.AckEnroll, ActorID: "s1"})
	requireAppError(t, err, appErrors.ErrInternal)
	assert.Empty(t, svc.acks)
}

func TestAckServicePrunesExpiredAcks(t *testing.T) {
	svc := NewAckService(AckConfig{Delay: time.Millisecond, Workers: 1, Retention: time.Minute}, nil, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	old, err := svc.Submit(context.Background(), models.AckRequest{Kind: models.AckEnroll, ActorID: "s1"})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		got, err := svc.Get("s1", old.ID)
		return err == nil && got.Status == models.AckStatusAcknowledged
	}, 2*time.Second, 5*time.Millisecond)

	svc.now = func() time.Time { return time.Now().UTC().Add(2 * time.Minute) }
	_, err = svc.Submit(context.Background(), models.AckRequest{Kind: models.AckEnroll, ActorID: "s1"})
	require.NoError(t, err)

	_, err = svc.Get("s1", old.ID)
	requireAppError(t, err, appErrors.ErrNotFound)
}
