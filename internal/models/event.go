package models

// StreamEventType - тип сообщения из потока обновлений
type StreamEventType string

const (
	EventCreated       StreamEventType = "created"
	EventUpdated       StreamEventType = "updated"
	EventStatusChanged StreamEventType = "status_changed"
	EventEmergency     StreamEventType = "emergency"
)

// StreamEvent - единый тип события, через который проходят все пути мутации:
// сообщения потока обновлений, результаты периодического опроса и действия пользователя.
type StreamEvent struct {
	Type  StreamEventType `json:"type"`
	Spill SpillPatch      `json:"spill"`
	// Correction помечает явную корректировку данных, разрешающую
	// переход статуса назад по жизненному циклу.
	Correction bool   `json:"correction,omitempty"`
	Message    string `json:"message,omitempty"`
}
