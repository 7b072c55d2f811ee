package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"cleaning-marketplace-server/database"
	"cleaning-marketplace-server/models"
	"cleaning-marketplace-server/utils"
)

// MessageService stores messages exchanged inside a booking
type MessageService struct {
	gateway *database.Gateway
	now     func() time.Time
}

// NewMessageService creates a new message service
func NewMessageService(gateway *database.Gateway) *MessageService {
	return &MessageService{
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type CreateMessageInput struct {
	BookingID uint   `json:"bookingId" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

// Create records a message from user to the other party of the booking.
// A client may write before a cleaner is assigned; the recipient is then null.
func (s *MessageService) Create(ctx context.Context, user *models.User, in CreateMessageInput) (*models.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		in.Content = ""
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var message models.Message
	err := s.gateway.Update(ctx, func(doc *models.Document) error {
		booking := doc.FindBooking(in.BookingID)
		if booking == nil {
			return NotFoundError("Booking not found")
		}
		if !booking.IsParticipant(user.Username) {
			return ForbiddenError("You are not part of this booking")
		}

		message = models.Message{
			ID:        doc.NextMessageID(),
			BookingID: booking.ID,
			Sender:    user.Username,
			Recipient: booking.Counterpart(user.Username),
			Content:   in.Content,
			Timestamp: s.now(),
		}
		doc.Messages = append(doc.Messages, message)
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{"booking_id": message.BookingID, "sender": message.Sender}).Info("💬 Message sent")
	return &message, nil
}

// List returns a booking's messages oldest first. Participants and admins may read them.
func (s *MessageService) List(ctx context.Context, user *models.User, bookingID uint) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.gateway.View(ctx, func(doc *models.Document) error {
		booking := doc.FindBooking(bookingID)
		if booking == nil {
			return NotFoundError("Booking not found")
		}
		if !booking.IsParticipant(user.Username) && !user.IsAdmin() {
			return ForbiddenError("You are not part of this booking")
		}

		for _, m := range doc.Messages {
			if m.BookingID == bookingID {
				messages = append(messages, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}
