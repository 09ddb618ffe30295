package emergency

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shenikar/dispersion_monitoring_system/internal/models"
)

// Порог объема, после которого разлив считается критическим (литры)
const criticalVolumeLiters = 10000.0

// Status - результат оценки аварийной обстановки по всему набору инцидентов
type Status struct {
	CriticalCount int    `json:"critical_count"`
	PreviousCount int    `json:"previous_count"`
	Message       string `json:"message,omitempty"`
}

// NewAlert сообщает, что произошел переход из спокойного состояния в аварийное.
// Только этот переход должен порождать новое уведомление; изменение счетчика
// N -> M (оба > 0) обновляет данные без повторного оповещения.
func (s Status) NewAlert() bool {
	return s.PreviousCount == 0 && s.CriticalCount > 0
}

// IsCritical определяет, является ли отдельный инцидент критическим
func IsCritical(spill *models.Spill) bool {
	if spill.Volume > criticalVolumeLiters {
		return true
	}
	if spill.Priority == models.PriorityCritical {
		return true
	}
	if strings.Contains(strings.ToLower(spill.ChemicalType), "toxic") {
		return true
	}
	if strings.Contains(strings.ToLower(spill.HazardClass), "hazard") {
		return true
	}
	return false
}

// Evaluate - чистая функция над полным списком инцидентов
func Evaluate(spills []*models.Spill) Status {
	count := 0
	for _, s := range spills {
		if IsCritical(s) {
			count++
		}
	}

	status := Status{CriticalCount: count}
	if count > 0 {
		status.Message = fmt.Sprintf("%d emergency level spill(s) detected", count)
	}
	return status
}

// Tracker хранит предыдущий счетчик критических инцидентов между
// пересчетами, чтобы вызывающая сторона могла реализовать дебаунс уведомлений.
type Tracker struct {
	mu   sync.Mutex
	last Status
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Update пересчитывает статус и фиксирует переход относительно прошлой оценки
func (t *Tracker) Update(spills []*models.Spill) Status {
	status := Evaluate(spills)

	t.mu.Lock()
	status.PreviousCount = t.last.CriticalCount
	t.last = status
	t.mu.Unlock()

	return status
}

// Current возвращает последнюю зафиксированную оценку без пересчета
func (t *Tracker) Current() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
