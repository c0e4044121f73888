// README: Chat service; history is the source of truth, live delivery is async.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

var ErrBadMessage = errors.New("invalid chat message")

type Service struct {
	store  *Store
	hub    *Hub
	logger *zap.Logger
}

func NewService(store *Store, hub *Hub, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, hub: hub, logger: logger}
}

// Send appends the message to the booking's history and then broadcasts it to
// live subscribers in the background. The broadcast never blocks the caller;
// chat delivery must not sit on any booking-mutation path.
func (s *Service) Send(ctx context.Context, bookingID types.ID, senderRole Role, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if bookingID.IsZero() || text == "" || !ValidRole(senderRole) {
		return nil, ErrBadMessage
	}

	m := &Message{
		ID:         types.NewID(),
		BookingID:  bookingID,
		SenderRole: senderRole,
		Text:       text,
		Timestamp:  time.Now(),
	}
	if err := s.store.Append(ctx, m); err != nil {
		return nil, err
	}

	if s.hub != nil {
		payload, err := json.Marshal(m)
		if err == nil {
			go s.hub.Broadcast(bookingID, payload)
		} else {
			s.logger.Warn("chat broadcast encode failed", zap.Error(err))
		}
	}
	return m, nil
}

func (s *Service) History(ctx context.Context, bookingID types.ID) ([]Message, error) {
	if bookingID.IsZero() {
		return nil, ErrBadMessage
	}
	return s.store.History(ctx, bookingID)
}
