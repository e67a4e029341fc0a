package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/events"
)

// AuditService logs cart activity published on the dispatcher.
type AuditService struct {
	logger     *zap.Logger
	dispatcher events.Dispatcher
}

// NewAuditService builds the service.
func NewAuditService(logger *zap.Logger, dispatcher events.Dispatcher) *AuditService {
	return &AuditService{logger: logger, dispatcher: dispatcher}
}

// RegisterHandlers subscribes the audit log to all cart events.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventCartItemAdded,
		events.EventCartQuantitySet,
		events.EventCartItemRemoved,
	} {
		s.dispatcher.Subscribe(eventType, s.logEvent)
	}
}

func (s *AuditService) logEvent(_ context.Context, e events.Event) error {
	s.logger.Info("cart activity",
		zap.String("event_id", e.ID),
		zap.String("event", string(e.Type)),
		zap.String("username", e.Username),
		zap.String("product_id", e.ProductID),
		zap.Int("quantity", e.Quantity),
	)
	return nil
}
