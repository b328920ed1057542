package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"gpark/internal/pkg/config"
	"gpark/internal/usecase/commands"

	"go.uber.org/fx"
)

var ReaperModule = fx.Module("reaper",
	fx.Invoke(
		StartReaper,
	),
)

// StartReaper periodically drops expired bookings. A zero REAP_INTERVAL disables it;
// expiry is still evaluated on every read, so reaping only bounds storage growth.
func StartReaper(lc fx.Lifecycle, cfg config.Config, alloc commands.AllocationCommands, logger *slog.Logger) {
	interval := cfg.Booking.ReapInterval
	if interval <= 0 {
		logger.Info("booking reaper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				runReaper(ctx, interval, alloc, logger)
			}()
			logger.Info("booking reaper started", "interval", interval.String())
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			return nil
		},
	})
}

func runReaper(ctx context.Context, interval time.Duration, alloc commands.AllocationCommands, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := alloc.Reap(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("booking reap failed", "error", err.Error())
			}
		}
	}
}
