package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"cleaning-marketplace-server/database"
	"cleaning-marketplace-server/models"
	"cleaning-marketplace-server/utils"
)

// BookingService drives the booking lifecycle:
// pending -> accepted -> in_progress -> completed.
type BookingService struct {
	gateway *database.Gateway
}

// NewBookingService creates a new booking service
func NewBookingService(gateway *database.Gateway) *BookingService {
	return &BookingService{gateway: gateway}
}

type CreateBookingInput struct {
	PropertyAddress string  `json:"propertyAddress" validate:"required"`
	PropertyType    string  `json:"propertyType" validate:"required"`
	Date            string  `json:"date" validate:"required"`
	Time            string  `json:"time" validate:"required"`
	Duration        float64 `json:"duration" validate:"required,gt=0"`
}

type UpdateBookingInput struct {
	BookingID uint    `json:"bookingId" validate:"required"`
	Status    *string `json:"status"`
}

// Create opens a new pending booking for a client
func (s *BookingService) Create(ctx context.Context, user *models.User, in CreateBookingInput) (*models.Booking, error) {
	if !user.IsClient() {
		return nil, ForbiddenError("Only clients can create bookings")
	}

	in.PropertyAddress = strings.TrimSpace(in.PropertyAddress)
	in.PropertyType = strings.TrimSpace(in.PropertyType)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var booking models.Booking
	err := s.gateway.Update(ctx, func(doc *models.Document) error {
		booking = models.Booking{
			ID:              doc.NextBookingID(),
			Client:          user.Username,
			PropertyAddress: in.PropertyAddress,
			PropertyType:    in.PropertyType,
			Date:            in.Date,
			Time:            in.Time,
			Duration:        in.Duration,
			Status:          models.BookingStatusPending,
		}
		doc.Bookings = append(doc.Bookings, booking)
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{"booking_id": booking.ID, "client": user.Username}).Info("📅 Booking created")
	return &booking, nil
}

// List returns the bookings visible to user: a client's own bookings, a
// cleaner's assigned bookings, or everything for an admin
func (s *BookingService) List(ctx context.Context, user *models.User) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.gateway.View(ctx, func(doc *models.Document) error {
		for _, b := range doc.Bookings {
			switch {
			case user.IsAdmin():
				bookings = append(bookings, b)
			case user.IsClient() && b.Client == user.Username:
				bookings = append(bookings, b)
			case user.IsCleaner() && b.HasCleaner(user.Username):
				bookings = append(bookings, b)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update lets a cleaner claim an unassigned booking and advance its status.
// The first cleaner to call Update on a booking becomes its cleaner for good.
// Only that cleaner may change the status afterwards, and never backwards.
// Status values outside accepted/in_progress/completed are ignored.
func (s *BookingService) Update(ctx context.Context, user *models.User, in UpdateBookingInput) (*models.Booking, error) {
	if !user.IsCleaner() {
		return nil, ForbiddenError("Only cleaners can update bookings")
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var updated models.Booking
	err := s.gateway.Update(ctx, func(doc *models.Document) error {
		booking := doc.FindBooking(in.BookingID)
		if booking == nil {
			return NotFoundError("Booking not found")
		}

		if !booking.IsClaimed() {
			cleaner := user.Username
			booking.Cleaner = &cleaner
			booking.Status = models.BookingStatusAccepted
			utils.Logger.WithFields(logrus.Fields{"booking_id": booking.ID, "cleaner": cleaner}).Info("🧹 Booking claimed")
		}

		if in.Status != nil {
			status, ok := models.ParseBookingStatus(strings.TrimSpace(*in.Status))
			if ok && status != models.BookingStatusPending {
				if !booking.HasCleaner(user.Username) {
					return ForbiddenError("Only the assigned cleaner can change the booking status")
				}
				if status.IsBefore(booking.Status) {
					return ValidationError("Cannot move booking from %s back to %s", booking.Status, status)
				}
				booking.Status = status
			}
		}

		updated = *booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{"booking_id": updated.ID, "status": updated.Status}).Info("🔄 Booking updated")
	return &updated, nil
}
