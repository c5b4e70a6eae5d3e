package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"inventory-request-service/internal/models"
	"inventory-request-service/internal/util"
)

// EventPublisher handles publishing domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishRequestSubmitted publishes RequestSubmitted event
func (ep *EventPublisher) PublishRequestSubmitted(ctx context.Context, event *models.RequestSubmittedEvent) error {
	key := fmt.Sprintf("request-%s", event.RequestID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishStatusChanged publishes StatusChanged event
func (ep *EventPublisher) PublishStatusChanged(ctx context.Context, event *models.StatusChangedEvent) error {
	key := fmt.Sprintf("request-%s", event.RequestID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishInvoiceIssued publishes InvoiceIssued event
func (ep *EventPublisher) PublishInvoiceIssued(ctx context.Context, event *models.InvoiceIssuedEvent) error {
	key := fmt.Sprintf("request-%s", event.RequestID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler handles incoming events
type EventHandler struct {
	onRequestSubmitted func(context.Context, *models.RequestSubmittedEvent) error
	onStatusChanged    func(context.Context, *models.StatusChangedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnRequestSubmitted registers a handler for RequestSubmitted events
func (eh *EventHandler) OnRequestSubmitted(handler func(context.Context, *models.RequestSubmittedEvent) error) {
	eh.onRequestSubmitted = handler
}

// OnStatusChanged registers a handler for StatusChanged events
func (eh *EventHandler) OnStatusChanged(handler func(context.Context, *models.StatusChangedEvent) error) {
	eh.onStatusChanged = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	logger := util.GetLogger()
	logger.Debug("handling event",
		zap.String("type", baseEvent.EventType),
		zap.String("id", baseEvent.EventID))

	switch baseEvent.EventType {
	case models.EventTypeRequestSubmitted:
		if eh.onRequestSubmitted != nil {
			var event models.RequestSubmittedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal RequestSubmitted event: %w", err)
			}
			return eh.onRequestSubmitted(ctx, &event)
		}

	case models.EventTypeStatusChanged:
		if eh.onStatusChanged != nil {
			var event models.StatusChangedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal StatusChanged event: %w", err)
			}
			return eh.onStatusChanged(ctx, &event)
		}

	default:
		logger.Debug("unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
