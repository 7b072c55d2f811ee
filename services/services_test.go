package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cleaning-marketplace-server/database"
	"cleaning-marketplace-server/models"
)

type testEnv struct {
	ctx      context.Context
	sessions *MemorySessionStore
	auth     *AuthService
	bookings *BookingService
	messages *MessageService
	ratings  *RatingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gw := database.NewGateway(database.NewFileStore(filepath.Join(t.TempDir(), "db.json"), false))
	sessions := NewMemorySessionStore()
	return &testEnv{
		ctx:      context.Background(),
		sessions: sessions,
		auth:     NewAuthService(gw, sessions),
		bookings: NewBookingService(gw),
		messages: NewMessageService(gw),
		ratings:  NewRatingService(gw),
	}
}

// user registers an account and returns it as Authenticate would
func (e *testEnv) user(t *testing.T, username string, role models.UserRole) *models.User {
	t.Helper()
	require.NoError(t, e.auth.Register(e.ctx, RegisterInput{Username: username, Password: "pw-" + username, Role: string(role)}))
	res, err := e.auth.Login(e.ctx, LoginInput{Username: username, Password: "pw-" + username})
	require.NoError(t, err)
	u, err := e.auth.Authenticate(e.ctx, res.Token)
	require.NoError(t, err)
	return u
}

func (e *testEnv) booking(t *testing.T, client *models.User) *models.Booking {
	t.Helper()
	b, err := e.bookings.Create(e.ctx, client, CreateBookingInput{
		PropertyAddress: "1 Main St",
		PropertyType:    "flat",
		Date:            "2024-01-01",
		Time:            "09:00",
		Duration:        2,
	})
	require.NoError(t, err)
	return b
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), err.Error())
}
