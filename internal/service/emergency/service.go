// Package emergency logs placed calls and serves the curated hotline
// contacts kept on the document store.
package emergency

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// callRepo stores placed calls.
type callRepo interface {
	Insert(ctx context.Context, c domain.Call) (*domain.Call, error)
}

// contactRepo reads hotline contacts.
type contactRepo interface {
	List(ctx context.Context) ([]domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
}

// callPublisher announces logged calls to downstream consumers.
type callPublisher interface {
	PublishCallPlaced(ctx context.Context, c domain.Call) error
}

// Service implements the emergency call and contact operations.
type Service struct {
	log       *slog.Logger
	calls     callRepo
	contacts  contactRepo
	publisher callPublisher
}

// NewService creates an emergency service. publisher may be nil.
func NewService(logger *slog.Logger, calls callRepo, contacts contactRepo, publisher callPublisher) *Service {
	return &Service{
		log:       logger.With("service", "emergency"),
		calls:     calls,
		contacts:  contacts,
		publisher: publisher,
	}
}

// StoreCallInput is a call placed from the dialer.
type StoreCallInput struct {
	Person  string `json:"person"`
	Service string `json:"service"`
	Number  string `json:"number" validate:"required"`
}

// StoreCall logs a placed call and publishes a call event. A publish
// failure is logged and does not fail the call.
func (s *Service) StoreCall(ctx context.Context, input StoreCallInput) (*domain.Call, error) {
	input.Number = strings.TrimSpace(input.Number)
	if err := domain.ValidateStruct(input); err != nil {
		return nil, err
	}

	call, err := s.calls.Insert(ctx, domain.Call{
		Person:  input.Person,
		Service: input.Service,
		Number:  input.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("emergency.StoreCall: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishCallPlaced(ctx, *call); err != nil {
			s.log.WarnContext(ctx, "publish call event failed",
				slog.String("call_id", call.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "call stored",
		slog.String("call_id", call.ID),
		slog.String("service", call.Service),
	)
	return call, nil
}

// ListContacts returns every hotline contact in its client view.
func (s *Service) ListContacts(ctx context.Context) ([]domain.ContactSummary, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("emergency.ListContacts: %w", err)
	}

	out := make([]domain.ContactSummary, len(contacts))
	for i, c := range contacts {
		out[i] = c.Summary()
	}
	return out, nil
}

// GetContact returns one hotline contact in its client view.
func (s *Service) GetContact(ctx context.Context, id string) (*domain.ContactSummary, error) {
	c, err := s.contacts.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("emergency.GetContact: %w", err)
	}
	summary := c.Summary()
	return &summary, nil
}
