package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor performs periodic health checks and keeps the latest snapshot.
type HealthMonitor struct {
	mu      sync.RWMutex
	current HealthStatus
}

// Status returns the latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start launches the background checker. The first check runs immediately
// so the endpoint has a real snapshot from startup, not a zero value.
func (m *HealthMonitor) Start(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()
		m.check(ctx, redisClient, mongoClient)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			m.check(ctx, redisClient, mongoClient)
		}
	}()
}

func (m *HealthMonitor) check(ctx context.Context, redisClient *redis.Client, mongoClient *mongo.Client) {
	redisHealthy := redisClient != nil && redisClient.Ping(ctx).Err() == nil
	mongoHealthy := mongoClient.Ping(ctx, nil) == nil

	m.mu.Lock()
	m.current = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealthy,
		CheckedAt: time.Now(),
	}
	m.mu.Unlock()
}
