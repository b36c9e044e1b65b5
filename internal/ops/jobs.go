package ops

import (
	"context"
	"time"

	"mtour/internal/realtime"
	"mtour/pkg/logger"
)

// watchedTables are the tables whose changes feed the KPI snapshot.
var watchedTables = map[string]bool{
	realtime.TableVehiclePositions: true,
	realtime.TableIncidents:        true,
	realtime.TableTicketScans:      true,
	realtime.TableDriverShifts:     true,
	realtime.TableBookings:         true,
}

// KPIRefresher keeps the cached KPI snapshot current. It recomputes on a
// fixed interval and whenever the change feed reports a write to a watched
// table. Change-triggered refreshes coalesce: a recompute already queued
// absorbs further triggers.
type KPIRefresher struct {
	service  Service
	log      *logger.Logger
	interval time.Duration
	trigger  chan struct{}
	done     chan struct{}
}

func NewKPIRefresher(service Service, log *logger.Logger, interval time.Duration) *KPIRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &KPIRefresher{
		service:  service,
		log:      log,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// SubscribeTo registers the refresher on the change-feed consumer.
func (k *KPIRefresher) SubscribeTo(consumer realtime.Consumer) {
	consumer.Subscribe(realtime.TableAll, func(event *realtime.ChangeEvent) {
		if !watchedTables[event.Table] {
			return
		}
		select {
		case k.trigger <- struct{}{}:
		default:
		}
	})
}

// Start runs the refresh loop until the context is cancelled or Stop is
// called. The first recompute happens immediately so the dashboard never
// starts from an empty cache.
func (k *KPIRefresher) Start(ctx context.Context) {
	go k.run(ctx)
}

func (k *KPIRefresher) Stop() {
	close(k.done)
}

func (k *KPIRefresher) run(ctx context.Context) {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	k.log.InfoWithContext(ctx, "KPI refresher started", map[string]interface{}{
		"interval": k.interval.String(),
	})

	k.refresh(ctx)

	for {
		select {
		case <-ticker.C:
			k.refresh(ctx)
		case <-k.trigger:
			k.refresh(ctx)
		case <-k.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (k *KPIRefresher) refresh(ctx context.Context) {
	if _, err := k.service.RefreshKPIs(ctx); err != nil {
		k.log.ErrorWithContext(ctx, "KPI refresh failed", err, nil)
	}
}
