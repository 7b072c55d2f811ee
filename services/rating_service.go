package services

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"cleaning-marketplace-server/database"
	"cleaning-marketplace-server/models"
	"cleaning-marketplace-server/utils"
)

// RatingService records the client's one-time rating and tip
type RatingService struct {
	gateway *database.Gateway
}

// NewRatingService creates a new rating service
func NewRatingService(gateway *database.Gateway) *RatingService {
	return &RatingService{gateway: gateway}
}

type RateBookingInput struct {
	BookingID uint     `json:"bookingId" validate:"required"`
	Rating    *float64 `json:"rating"`
	Tip       *float64 `json:"tip"`
}

// Rate sets rating and tip on a completed booking. It can only happen once.
// A tip of 0 is the same as no tip.
func (s *RatingService) Rate(ctx context.Context, user *models.User, in RateBookingInput) (*models.Booking, error) {
	if !user.IsClient() {
		return nil, ForbiddenError("Only clients can rate bookings")
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var rated models.Booking
	err := s.gateway.Update(ctx, func(doc *models.Document) error {
		booking := doc.FindBooking(in.BookingID)
		if booking == nil {
			return NotFoundError("Booking not found")
		}
		if booking.Client != user.Username {
			return ForbiddenError("You can only rate your own bookings")
		}
		if !booking.IsCompleted() {
			return ValidationError("Booking not completed yet")
		}
		if booking.IsRated() {
			return ValidationError("Booking already rated")
		}

		rating, err := parseRating(in.Rating)
		if err != nil {
			return err
		}
		booking.Rating = &rating

		if in.Tip != nil && *in.Tip != 0 {
			if *in.Tip < 0 || math.IsNaN(*in.Tip) || math.IsInf(*in.Tip, 0) {
				return ValidationError("Tip must be a positive number")
			}
			tip := *in.Tip
			booking.Tip = &tip
		}

		rated = *booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{"booking_id": rated.ID, "rating": *rated.Rating}).Info("⭐ Booking rated")
	return &rated, nil
}

func parseRating(value *float64) (int, error) {
	if value == nil {
		return 0, ValidationError("Rating must be an integer between 1 and 5")
	}
	v := *value
	if v != math.Trunc(v) || v < 1 || v > 5 {
		return 0, ValidationError("Rating must be an integer between 1 and 5")
	}
	return int(v), nil
}
