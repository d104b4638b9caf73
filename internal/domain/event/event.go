package event

import (
	"time"
)

type Type string

const (
	TypeGraphCreated Type = "graph_created"
	TypeGraphDeleted Type = "graph_deleted"
)

// Channel is a domain-scoped notification channel.
// All event types within a domain share one subscription.
type Channel string

const (
	ChannelGraph Channel = "graph"
)

var typeToChannel = map[Type]Channel{
	TypeGraphCreated: ChannelGraph,
	TypeGraphDeleted: ChannelGraph,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Channels lists every domain channel, for subscribers that bridge all of them.
func Channels() []Channel { return []Channel{ChannelGraph} }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the GaaS API.
type Event struct {
	Type      Type      `json:"type"`
	GraphID   string    `json:"graph_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, graphID string) Event {
	return Event{
		Type:      eventType,
		GraphID:   graphID,
		Timestamp: time.Now().UTC(),
	}
}
