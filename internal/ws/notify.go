package ws

import (
	"encoding/json"
	"time"
)

const EventProfileUpdated = "profile_updated"

type ProfileUpdatedEvent struct {
	Type      string `json:"type"`
	ProfileID int64  `json:"profile_id"`
	Timestamp string `json:"timestamp"`
}

// NotifyProfileUpdated tells every subscriber that a profile changed.
// Subscribers refetch; the event carries no profile data.
func (h *Hub) NotifyProfileUpdated(profileID int64) {
	if h == nil || profileID <= 0 {
		return
	}

	evt := ProfileUpdatedEvent{
		Type:      EventProfileUpdated,
		ProfileID: profileID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("ws event marshal failed", "error", err)
		return
	}
	h.Broadcast(b)
}
