package chat

import (
	"context"
	"log/slog"
	"time"

	"elevatehub/internal/domain/services"
)

// RunJanitor calls Cleanup every interval until ctx is done
func RunJanitor(ctx context.Context, svc services.ChatService, interval, retention time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("session janitor started", "interval", interval, "retention", retention)
	for {
		select {
		case <-ctx.Done():
			logger.Info("session janitor stopped")
			return
		case <-ticker.C:
			if _, err := svc.Cleanup(ctx, retention); err != nil {
				logger.Error("session cleanup failed", "error", err)
			}
		}
	}
}
