package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-management/pkg/logger"
)

const (
	EventTypeEmployeeCreated = "employee.created"
	EventTypeEmployeeUpdated = "employee.updated"
	EventTypeEmployeeDeleted = "employee.deleted"
)

type EmployeeEvent struct {
	BaseEvent
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	ActorID    string `json:"actor_id"`
}

func newEmployeeEvent(eventType, employeeID, name, actorID string) *EmployeeEvent {
	return &EmployeeEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"name":        name,
				"actor_id":    actorID,
			},
		},
		EmployeeID: employeeID,
		Name:       name,
		ActorID:    actorID,
	}
}

func NewEmployeeCreatedEvent(employeeID, name, actorID string) *EmployeeEvent {
	return newEmployeeEvent(EventTypeEmployeeCreated, employeeID, name, actorID)
}

func NewEmployeeUpdatedEvent(employeeID, name, actorID string) *EmployeeEvent {
	return newEmployeeEvent(EventTypeEmployeeUpdated, employeeID, name, actorID)
}

func NewEmployeeDeletedEvent(employeeID, name, actorID string) *EmployeeEvent {
	return newEmployeeEvent(EventTypeEmployeeDeleted, employeeID, name, actorID)
}

// RegisterAuditLogger subscribes a handler that writes every employee
// lifecycle event to the audit log.
func RegisterAuditLogger(bus *EventBus) {
	for _, eventType := range []string{
		EventTypeEmployeeCreated,
		EventTypeEmployeeUpdated,
		EventTypeEmployeeDeleted,
	} {
		bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
			logger.From(ctx).Info("employee audit",
				"event_type", event.EventType(),
				"event_id", event.EventID(),
				"occurred_at", event.OccurredAt(),
				"payload", event.Payload())
			return nil
		})
	}
}
