package realtime

import (
	"time"

	"gorm.io/datatypes"
)

type SSEEvent string

const (
	SSEEventTrackerActivity SSEEvent = "TrackerActivity"
	SSEEventTrackerSnapshot SSEEvent = "TrackerSnapshot"
)

// ChannelTracker is the hub channel the control tower broadcasts on.
const ChannelTracker = "tracker"

type SSEMessage struct {
	Channel string   `json:"channel"`
	Event   SSEEvent `json:"event"`
	Data    any      `json:"data,omitempty"`
}

type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Tables carried on the change bus.
const (
	TableJobCards = "job_cards"
	TableQCLogs   = "qc_logs"
)

// ChangeEvent is a raw storage change notification. Row is the writer's
// snapshot of the affected record; consumers must not treat it as a complete
// view and should re-fetch derived state.
type ChangeEvent struct {
	Table string         `json:"table"`
	Kind  ChangeKind     `json:"kind"`
	Row   datatypes.JSON `json:"row,omitempty"`
	Actor string         `json:"actor,omitempty"`
	At    time.Time      `json:"at"`
}
