package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mvillarin/patrol_dispatch_system/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker drains the push queue and delivers notifications to the external
// gateway. Delivery is best-effort: failures are logged and never surfaced to
// the state transition that triggered them.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker creates a Worker.
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
	}
}

// Start launches the queue-draining goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting push notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push notification worker.")
				return
			default:
				// BRPop with 0 blocks until an element arrives.
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop push notification from Redis")
					time.Sleep(w.cfg.PushTimeout)
					continue
				}

				payload := result[1]
				var notification Notification
				if err := json.Unmarshal([]byte(payload), &notification); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push notification from Redis")
					continue
				}

				w.deliver(ctx, notification, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, notification Notification, rawPayload string) {
	log := w.logger.
		WithField("dispatch_id", notification.Data.DispatchID).
		WithField("urgency", notification.Urgency)
	log.Debug("Delivering push notification...")

	if w.cfg.PushGatewayURL == "" {
		log.Warn("Push gateway URL is not configured. Skipping delivery.")
		return
	}

	maxRetries := w.cfg.PushMaxRetries
	baseDelay := w.cfg.PushBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.PushGatewayURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create push request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")
		if w.cfg.PushAPIKey != "" {
			req.Header.Set("X-API-Key", w.cfg.PushAPIKey)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send push notification. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Push notification delivered successfully.")
			return
		}
		log.Warnf("Push delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver push notification after %d retries.", maxRetries)
}
