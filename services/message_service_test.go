package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleaning-marketplace-server/models"
)

func TestMessageBeforeCleanerAssigned(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice", models.RoleClient)
	b := env.booking(t, alice)

	msg, err := env.messages.Create(env.ctx, alice, CreateMessageInput{BookingID: b.ID, Content: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.Sender)
	assert.Nil(t, msg.Recipient)
	assert.Equal(t, "Hi", msg.Content)
	assert.False(t, msg.Timestamp.IsZero())

	list, err := env.messages.List(env.ctx, alice, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestMessageRecipientIsOtherParty(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice", models.RoleClient)
	bob := env.user(t, "bob", models.RoleCleaner)
	b := env.booking(t, alice)
	_, err := env.bookings.Update(env.ctx, bob, UpdateBookingInput{BookingID: b.ID})
	require.NoError(t, err)

	fromClient, err := env.messages.Create(env.ctx, alice, CreateMessageInput{BookingID: b.ID, Content: "When?"})
	require.NoError(t, err)
	assert.Equal(t, "bob", *fromClient.Recipient)

	fromCleaner, err := env.messages.Create(env.ctx, bob, CreateMessageInput{BookingID: b.ID, Content: "9am"})
	require.NoError(t, err)
	assert.Equal(t, "alice", *fromCleaner.Recipient)
	assert.Equal(t, fromClient.ID+1, fromCleaner.ID)
}

func TestMessageAccessControl(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice", models.RoleClient)
	dave := env.user(t, "dave", models.RoleClient)
	bob := env.user(t, "bob", models.RoleCleaner)
	carol := env.user(t, "carol", models.RoleCleaner)
	root := env.user(t, "root", models.RoleAdmin)
	b := env.booking(t, alice)

	// bob is not assigned yet
	_, err := env.messages.Create(env.ctx, bob, CreateMessageInput{BookingID: b.ID, Content: "hello"})
	requireKind(t, err, KindForbidden)

	_, err = env.bookings.Update(env.ctx, bob, UpdateBookingInput{BookingID: b.ID})
	require.NoError(t, err)

	for _, u := range []*models.User{dave, carol, root} {
		_, err = env.messages.Create(env.ctx, u, CreateMessageInput{BookingID: b.ID, Content: "hello"})
		requireKind(t, err, KindForbidden)
	}
	for _, u := range []*models.User{dave, carol} {
		_, err = env.messages.List(env.ctx, u, b.ID)
		requireKind(t, err, KindForbidden)
	}

	_, err = env.messages.List(env.ctx, root, b.ID)
	require.NoError(t, err)
	_, err = env.messages.List(env.ctx, bob, b.ID)
	require.NoError(t, err)
}

func TestMessageErrors(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice", models.RoleClient)
	b := env.booking(t, alice)

	_, err := env.messages.Create(env.ctx, alice, CreateMessageInput{BookingID: 42, Content: "x"})
	requireKind(t, err, KindNotFound)

	_, err = env.messages.Create(env.ctx, alice, CreateMessageInput{BookingID: b.ID, Content: "  "})
	requireKind(t, err, KindValidation)

	_, err = env.messages.Create(env.ctx, alice, CreateMessageInput{Content: "x"})
	requireKind(t, err, KindValidation)

	_, err = env.messages.List(env.ctx, alice, 42)
	requireKind(t, err, KindNotFound)
}

func TestMessagesOrderedByTimestamp(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice", models.RoleClient)
	bob := env.user(t, "bob", models.RoleCleaner)
	b := env.booking(t, alice)
	other := env.booking(t, alice)
	_, err := env.bookings.Update(env.ctx, bob, UpdateBookingInput{BookingID: b.ID})
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := []time.Time{base.Add(2 * time.Minute), base, base.Add(time.Minute), base, base.Add(time.Hour)}
	tick := 0
	env.messages.now = func() time.Time {
		ts := clock[tick]
		tick++
		return ts
	}

	send := func(u *models.User, bookingID uint, content string) {
		_, err := env.messages.Create(env.ctx, u, CreateMessageInput{BookingID: bookingID, Content: content})
		require.NoError(t, err)
	}
	send(alice, b.ID, "third")
	send(bob, b.ID, "first")
	send(alice, b.ID, "second-a")
	send(bob, b.ID, "first-tie")
	send(alice, other.ID, "elsewhere")

	list, err := env.messages.List(env.ctx, alice, b.ID)
	require.NoError(t, err)

	var contents []string
	for i, m := range list {
		contents = append(contents, m.Content)
		if i > 0 {
			assert.False(t, m.Timestamp.Before(list[i-1].Timestamp))
		}
	}
	assert.Equal(t, []string{"first", "first-tie", "second-a", "third"}, contents)
}
