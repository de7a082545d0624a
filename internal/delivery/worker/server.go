// Package worker hosts the background order expiry sweeper.
package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = 10 * time.Minute

type expiryWorker struct {
	orders   usecase.OrderUsecase
	interval time.Duration
	logger   *slog.Logger
	done     chan struct{}
}

// WorkerParams holds dependencies for the expiry worker, injected by Fx.
type WorkerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Orders usecase.OrderUsecase
}

// NewServer creates the background worker that sweeps stale pending
// orders on a fixed interval.
func NewServer(params WorkerParams) (delivery.Delivery, error) {
	interval := defaultSweepInterval
	if params.Config != nil && params.Config.Orders != nil && params.Config.Orders.SweepInterval > 0 {
		interval = params.Config.Orders.SweepInterval
	}

	worker := &expiryWorker{
		orders:   params.Orders,
		interval: interval,
		logger:   params.Logger,
		done:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: worker.stop,
	})

	return worker, nil
}

// Serve runs the sweep loop until the context is cancelled or the
// worker is stopped.
func (w *expiryWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting expiry worker", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.done:
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *expiryWorker) sweep(ctx context.Context) {
	count, err := w.orders.ExpirePending(ctx)
	if err != nil {
		w.logger.Error("Expiry sweep failed", slog.Any("error", err))

		return
	}
	if count > 0 {
		w.logger.Info("Expiry sweep finished", slog.Int("expired", count))
	}
}

func (w *expiryWorker) stop(ctx context.Context) error {
	w.logger.Info("Shutting down expiry worker")
	close(w.done)

	return nil
}
