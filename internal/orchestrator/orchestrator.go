package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dispersion_monitoring_system/internal/compute"
	"github.com/shenikar/dispersion_monitoring_system/internal/estimator"
	"github.com/shenikar/dispersion_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=orchestrator.go -destination=mocks/deps_mock.go -package=mocks

// SnapshotProvider - источник снимков окружающей среды
type SnapshotProvider interface {
	Fetch(ctx context.Context, loc models.Location) (*models.EnvironmentalSnapshot, error)
}

// EstimateStore - часть хранилища инцидентов, нужная оркестратору
type EstimateStore interface {
	Get(id uuid.UUID) (*models.Spill, bool)
	AttachEstimate(id uuid.UUID, estimate models.DispersionEstimate) bool
}

// Orchestrator владеет учетными записями расчетов и гарантирует не более
// одного одновременного расчета на инцидент. Машина состояний записи:
// IDLE -> IN_FLIGHT -> {DONE, FAILED}; FAILED сразу понижается до IDLE,
// чтобы следующий естественный триггер повторил расчет без явного retry.
type Orchestrator struct {
	mu      sync.Mutex
	tickets map[uuid.UUID]*models.CalculationTicket

	store   EstimateStore
	env     SnapshotProvider
	compute compute.Client

	simulationHours int
	computeTimeout  time.Duration
	logger          *logrus.Logger
	wg              sync.WaitGroup
}

func New(store EstimateStore, env SnapshotProvider, computeClient compute.Client,
	simulationHours int, computeTimeout time.Duration, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		tickets:         make(map[uuid.UUID]*models.CalculationTicket),
		store:           store,
		env:             env,
		compute:         computeClient,
		simulationHours: simulationHours,
		computeTimeout:  computeTimeout,
		logger:          logger,
	}
}

// Request запрашивает расчет дисперсии для инцидента. Возвращает true, если
// запрос принят. Запрос для инцидента с расчетом в полете отбрасывается
// молча (не ставится в очередь) - это ключевая гарантия модуля.
// force сбрасывает завершенную запись (DONE) перед принятием; запись в
// полете не сбрасывается и при force.
func (o *Orchestrator) Request(ctx context.Context, id uuid.UUID, force bool) bool {
	log := o.logger.WithFields(logrus.Fields{
		"service":  "orchestrator",
		"spill_id": id,
	})

	o.mu.Lock()
	ticket, ok := o.tickets[id]
	if ok {
		switch ticket.State {
		case models.TicketInFlight:
			o.mu.Unlock()
			log.Debug("Calculation already in flight, request dropped")
			return false
		case models.TicketDone, models.TicketFailed:
			if !force {
				o.mu.Unlock()
				log.Debug("Calculation already completed, request dropped")
				return false
			}
			ticket.State = models.TicketIdle
		}
	} else {
		ticket = &models.CalculationTicket{SpillID: id, State: models.TicketIdle}
		o.tickets[id] = ticket
	}

	ticket.State = models.TicketInFlight
	ticket.RequestedAt = time.Now().UTC()
	o.wg.Add(1)
	o.mu.Unlock()

	log.Info("Calculation accepted")
	go o.run(ctx, id)
	return true
}

// Reset понижает завершенную запись до IDLE, открывая путь следующему
// естественному триггеру. Используется при инвалидации оценки
// (смена местоположения, объема или химиката). Запись в полете не трогается:
// ее устаревший результат все равно будет применен и позже пересчитан.
func (o *Orchestrator) Reset(id uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if ticket, ok := o.tickets[id]; ok && ticket.State != models.TicketInFlight {
		ticket.State = models.TicketIdle
	}
}

// InProgress сообщает, идет ли расчет для инцидента (флаг для слоя отображения)
func (o *Orchestrator) InProgress(id uuid.UUID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	ticket, ok := o.tickets[id]
	return ok && ticket.State == models.TicketInFlight
}

// TicketState возвращает текущее состояние записи расчета
func (o *Orchestrator) TicketState(id uuid.UUID) models.TicketState {
	o.mu.Lock()
	defer o.mu.Unlock()

	if ticket, ok := o.tickets[id]; ok {
		return ticket.State
	}
	return models.TicketIdle
}

// Drop удаляет запись расчета вместе с удаленным инцидентом
func (o *Orchestrator) Drop(id uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.tickets, id)
}

// Wait блокируется до завершения всех запущенных расчетов
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// run выполняет один расчет: снимок условий, внешний расчет, локальная
// оценка, присоединение результата. Результат применяется даже если за время
// полета выбор пользователя сменился: оценки идемпотентны и монотонно
// информативны, устаревшее применение безопасно.
func (o *Orchestrator) run(ctx context.Context, id uuid.UUID) {
	defer o.wg.Done()

	log := o.logger.WithFields(logrus.Fields{
		"service":  "orchestrator",
		"spill_id": id,
	})

	spill, ok := o.store.Get(id)
	if !ok {
		log.Warn("Spill disappeared before calculation started")
		o.finish(id, models.TicketFailed)
		return
	}

	snapshot, err := o.env.Fetch(ctx, spill.Location)
	if err != nil {
		log.WithError(err).Error("Failed to fetch environmental snapshot")
		o.finish(id, models.TicketFailed)
		return
	}

	computeCtx, cancel := context.WithTimeout(ctx, o.computeTimeout)
	defer cancel()

	result, err := o.compute.Calculate(computeCtx, id, o.simulationHours)
	if err != nil {
		// Прежняя оценка сохраняется: отображение не должно деградировать
		log.WithError(err).Error("External compute call failed")
		o.finish(id, models.TicketFailed)
		return
	}

	estimate := estimator.Estimate(spill, snapshot)
	estimate.MaxConcentration = &result.MaxConcentration
	estimate.AffectedAreaKm2 = &result.AffectedAreaKm2

	if !o.store.AttachEstimate(id, estimate) {
		log.Warn("Spill removed during calculation, result discarded")
	}
	o.finish(id, models.TicketDone)
	log.WithField("radius_m", estimate.RadiusMeters).Info("Calculation completed")
}

// finish освобождает охрану "в полете". Сбой сразу понижается до IDLE:
// наблюдаемые состояния покоя - только IDLE и DONE.
func (o *Orchestrator) finish(id uuid.UUID, state models.TicketState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ticket, ok := o.tickets[id]
	if !ok {
		return
	}
	if state == models.TicketFailed {
		ticket.State = models.TicketIdle
		return
	}
	ticket.State = state
}
