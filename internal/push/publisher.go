package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const pushQueueKey = "push_notifications"

// Notification is the structured request handed to the external push gateway.
// TTLSeconds is kept short so stale urgent alerts are never delivered late.
type Notification struct {
	Token      string  `json:"token"`
	Title      string  `json:"title"`
	Body       string  `json:"body"`
	Urgency    string  `json:"urgency"`
	TTLSeconds int     `json:"ttl_seconds"`
	Data       Payload `json:"data"`
}

// Payload carries the dispatch context the officer app needs.
type Payload struct {
	DispatchID string   `json:"dispatch_id"`
	ReportID   string   `json:"report_id"`
	CrimeType  string   `json:"crime_type,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// Publisher enqueues notifications for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, notification Notification) error
}

// RedisPublisher is a Publisher backed by a Redis list queue.
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a RedisPublisher.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the notification onto the delivery queue.
func (p *RedisPublisher) Publish(ctx context.Context, notification Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal push notification: %w", err)
	}

	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push notification to Redis: %w", err)
	}
	return nil
}
