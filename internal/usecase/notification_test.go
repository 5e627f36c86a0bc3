package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-transfer/internal/domain"
	"mobile-transfer/internal/usecase"
)

func TestNotificationCenter(t *testing.T) {
	n := 0
	c := usecase.NewNotificationCenter(
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithIDGenerator(func() string { n++; return fmt.Sprintf("n-%d", n) }),
	)

	first := c.Add(domain.Notification{Kind: domain.NotificationSecurity, Title: "New login", Read: true})
	second := c.Add(domain.Notification{Kind: domain.NotificationTransaction, Title: "Money received", Priority: domain.PriorityHigh})

	assert.Equal(t, "n-1", first.ID)
	assert.Equal(t, fixedNow, first.Timestamp)
	assert.False(t, first.Read, "new notifications are unread")
	assert.Equal(t, domain.PriorityMedium, first.Priority)
	assert.Equal(t, domain.PriorityHigh, second.Priority)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "n-2", list[0].ID, "newest first")
	assert.Equal(t, 2, c.UnreadCount())

	assert.True(t, c.MarkAsRead("n-1"))
	assert.False(t, c.MarkAsRead("missing"))
	assert.Equal(t, 1, c.UnreadCount())

	c.MarkAllAsRead()
	assert.Equal(t, 0, c.UnreadCount())

	assert.True(t, c.Remove("n-2"))
	assert.False(t, c.Remove("n-2"))
	assert.Len(t, c.List(), 1)

	c.Clear()
	assert.Empty(t, c.List())
}
