package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/models"
)

func TestContactMessages_ListNewestFirst(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		msg := models.ContactMessage{
			Name:      name,
			Phone:     "0773418669",
			Message:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		_, err := r.CreateContactMessage(ctx, &msg)
		require.NoError(t, err)
	}

	messages, err := r.ListContactMessages(ctx, 0, 50)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "third", messages[0].Name)
	assert.Equal(t, "first", messages[2].Name)
}

func TestContactMessages_MarkReadAndDelete(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	msg := models.ContactMessage{Name: "customer", Phone: "123", Message: "hi"}
	_, err := r.CreateContactMessage(ctx, &msg)
	require.NoError(t, err)

	require.NoError(t, r.MarkContactMessageRead(ctx, msg.ID))

	messages, err := r.ListContactMessages(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)

	require.NoError(t, r.DeleteContactMessage(ctx, msg.ID))
	assert.ErrorIs(t, r.DeleteContactMessage(ctx, msg.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.MarkContactMessageRead(ctx, uuid.New()), gorm.ErrRecordNotFound)
}
