package usecase

import (
	"sync"

	"mobile-transfer/internal/domain"
)

// NotificationCenter keeps the session's notifications, newest first.
type NotificationCenter struct {
	opts options

	mu    sync.Mutex
	items []domain.Notification
}

// NewNotificationCenter creates an empty center.
func NewNotificationCenter(opts ...Option) *NotificationCenter {
	return &NotificationCenter{opts: buildOptions(opts)}
}

// Add stamps n with an id and time, marks it unread and puts it first.
func (c *NotificationCenter) Add(n domain.Notification) domain.Notification {
	n.ID = c.opts.newID()
	n.Timestamp = c.opts.now()
	n.Read = false
	if n.Priority == "" {
		n.Priority = domain.PriorityMedium
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]domain.Notification{n}, c.items...)
	return n
}

// List returns all notifications, newest first.
func (c *NotificationCenter) List() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// UnreadCount counts notifications not yet read.
func (c *NotificationCenter) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, n := range c.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead marks one notification read. It reports whether id exists.
func (c *NotificationCenter) MarkAsRead(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllAsRead marks every notification read.
func (c *NotificationCenter) MarkAllAsRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		c.items[i].Read = true
	}
}

// Remove deletes one notification. It reports whether id existed.
func (c *NotificationCenter) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear deletes every notification.
func (c *NotificationCenter) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
