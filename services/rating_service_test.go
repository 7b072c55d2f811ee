package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning-marketplace-server/models"
)

func completedBooking(t *testing.T, env *testEnv) (*models.User, *models.User, *models.Booking) {
	t.Helper()
	alice := env.user(t, "alice", models.RoleClient)
	bob := env.user(t, "bob", models.RoleCleaner)
	b := env.booking(t, alice)
	b, err := env.bookings.Update(env.ctx, bob, UpdateBookingInput{BookingID: b.ID, Status: strPtr("completed")})
	require.NoError(t, err)
	return alice, bob, b
}

func TestRateBooking(t *testing.T) {
	env := newTestEnv(t)
	alice, _, b := completedBooking(t, env)

	rated, err := env.ratings.Rate(env.ctx, alice, RateBookingInput{BookingID: b.ID, Rating: floatPtr(5), Tip: floatPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, 5, *rated.Rating)
	assert.Equal(t, 10.0, *rated.Tip)

	_, err = env.ratings.Rate(env.ctx, alice, RateBookingInput{BookingID: b.ID, Rating: floatPtr(1)})
	requireKind(t, err, KindValidation)
	assert.Equal(t, "Booking already rated", err.Error())

	list, err := env.bookings.List(env.ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 5, *list[0].Rating)
	assert.Equal(t, 10.0, *list[0].Tip)
}

func TestRateBookingNotCompleted(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice", models.RoleClient)
	bob := env.user(t, "bob", models.RoleCleaner)
	b := env.booking(t, alice)

	for _, status := range []string{"", "accepted", "in_progress"} {
		if status != "" {
			_, err := env.bookings.Update(env.ctx, bob, UpdateBookingInput{BookingID: b.ID, Status: strPtr(status)})
			require.NoError(t, err)
		}
		_, err := env.ratings.Rate(env.ctx, alice, RateBookingInput{BookingID: b.ID, Rating: floatPtr(4)})
		requireKind(t, err, KindValidation)
		assert.Equal(t, "Booking not completed yet", err.Error())
	}

	list, err := env.bookings.List(env.ctx, alice)
	require.NoError(t, err)
	assert.Nil(t, list[0].Rating)
}

func TestRateBookingZeroTipIsAbsent(t *testing.T) {
	env := newTestEnv(t)
	alice, _, b := completedBooking(t, env)

	rated, err := env.ratings.Rate(env.ctx, alice, RateBookingInput{BookingID: b.ID, Rating: floatPtr(3), Tip: floatPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 3, *rated.Rating)
	assert.Nil(t, rated.Tip)
}

func TestRateBookingInvalidRating(t *testing.T) {
	env := newTestEnv(t)
	alice, _, b := completedBooking(t, env)

	for _, r := range []*float64{nil, floatPtr(0), floatPtr(6), floatPtr(4.5), floatPtr(-1)} {
		_, err := env.ratings.Rate(env.ctx, alice, RateBookingInput{BookingID: b.ID, Rating: r})
		requireKind(t, err, KindValidation)
	}

	_, err := env.ratings.Rate(env.ctx, alice, RateBookingInput{BookingID: b.ID, Rating: floatPtr(5), Tip: floatPtr(-3)})
	requireKind(t, err, KindValidation)

	list, err := env.bookings.List(env.ctx, alice)
	require.NoError(t, err)
	assert.Nil(t, list[0].Rating)
}

func TestRateBookingAuthorization(t *testing.T) {
	env := newTestEnv(t)
	_, bob, b := completedBooking(t, env)
	dave := env.user(t, "dave", models.RoleClient)

	_, err := env.ratings.Rate(env.ctx, bob, RateBookingInput{BookingID: b.ID, Rating: floatPtr(5)})
	requireKind(t, err, KindForbidden)

	_, err = env.ratings.Rate(env.ctx, dave, RateBookingInput{BookingID: b.ID, Rating: floatPtr(5)})
	requireKind(t, err, KindForbidden)

	_, err = env.ratings.Rate(env.ctx, dave, RateBookingInput{BookingID: 77, Rating: floatPtr(5)})
	requireKind(t, err, KindNotFound)
}
