package poller

import (
	"context"
	"time"

	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/shenikar/dispersion_monitoring_system/internal/upstream"
	"github.com/sirupsen/logrus"
)

// ListSyncer - полное согласование списка опроса (Reconciler)
type ListSyncer interface {
	SyncAll(ctx context.Context, patches []models.SpillPatch) error
}

// Poller периодически обновляет коллекцию инцидентов из внешнего API.
// Сбой опроса не фатален: хранилище сохраняет прежнее состояние до
// следующего успешного тика.
type Poller struct {
	client   upstream.Client
	syncer   ListSyncer
	interval time.Duration
	logger   *logrus.Logger
}

// NewPoller создает новый Poller
func NewPoller(client upstream.Client, syncer ListSyncer, interval time.Duration, logger *logrus.Logger) *Poller {
	return &Poller{
		client:   client,
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

// Start запускает горутину периодического опроса. Первый опрос выполняется
// сразу, дальше по тикеру.
func (p *Poller) Start(ctx context.Context) {
	p.logger.WithField("interval", p.interval).Info("Starting spill poller...")
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				p.logger.Info("Stopping spill poller.")
				return
			case <-ticker.C:
				p.refresh(ctx)
			}
		}
	}()
}

func (p *Poller) refresh(ctx context.Context) {
	log := p.logger.WithFields(logrus.Fields{
		"service": "poller",
		"method":  "refresh",
	})

	patches, err := p.client.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch spill list, keeping previous state")
		return
	}

	if err := p.syncer.SyncAll(ctx, patches); err != nil {
		log.WithError(err).Warn("Some spills from poll were rejected")
	}
	log.WithField("count", len(patches)).Debug("Spill list refreshed")
}
