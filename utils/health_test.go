package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestHealthMonitorSnapshotsImmediatelyOnStart(t *testing.T) {
	// Nothing listens on this address; pings fail fast instead of
	// waiting out the default server selection timeout.
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(20*time.Millisecond).
		SetConnectTimeout(20*time.Millisecond))
	require.NoError(t, err)

	m := &HealthMonitor{}
	m.Start(nil, client)

	// The first snapshot lands well before the first 60s tick.
	require.Eventually(t, func() bool {
		return !m.Status().CheckedAt.IsZero()
	}, 2*time.Second, 10*time.Millisecond)

	status := m.Status()
	assert.False(t, status.Mongo)
	assert.False(t, status.Redis)
}

func TestHealthMonitorZeroValueBeforeStart(t *testing.T) {
	m := &HealthMonitor{}
	assert.True(t, m.Status().CheckedAt.IsZero())
}
