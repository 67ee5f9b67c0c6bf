package tui

import (
	"time"

	"github.com/thenoetrevino/rosterpick/internal/picker"
)

// notificationTTL is how long a notification stays on screen
const notificationTTL = 3 * time.Second

// dropdownCloseMsg is delivered once the blur delay has elapsed
type dropdownCloseMsg struct {
	pending picker.PendingClose
}

// dismissNotificationMsg removes an expired notification
type dismissNotificationMsg struct {
	id int
}
