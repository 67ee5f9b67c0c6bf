package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue, bell icon)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications (yellow, warning icon)
	LevelWarning
	// LevelError represents error notifications (red, error icon)
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string

	// ID identifies the notification for later expiry
	ID int
}

// NotificationState manages notification display state.
// Notifications are shown newest last and dismissed by ID once they expire.
type NotificationState struct {
	// notifications contains the list of current notifications to display
	notifications []Notification
	// nextID is assigned to the next added notification
	nextID int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add adds a new notification with the specified level and message.
// Returns the ID of the new notification.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
		ID:      s.nextID,
	})
	return s.nextID
}

// Dismiss removes the notification with the given ID, if present.
func (s *NotificationState) Dismiss(id int) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Latest returns the most recent notification.
// Returns false if there are none.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
