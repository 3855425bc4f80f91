package relata

import (
	"time"
)

const (
	EventActionCreated  = "created"
	EventActionUpdated  = "updated"
	EventActionDeleted  = "deleted"
	EventActionLinked   = "linked"
	EventActionUnlinked = "unlinked"
)

// Event is published to redis on every entity mutation and relayed to
// realtime websocket subscribers of the owning user.
type Event struct {
	Kind     string    `json:"kind"`
	Action   string    `json:"action"`
	Owner    string    `json:"owner"`
	ID       string    `json:"id"`
	Body     any       `json:"body,omitempty"`
	Occurred time.Time `json:"occurred"`
}

// ListResult is the envelope for every collection endpoint.
type ListResult[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
