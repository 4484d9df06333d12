package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/realtime"
	"github.com/Bloodcipher/Amara/internal/realtime/bus"
	"github.com/Bloodcipher/Amara/internal/types"
)

// TrackerNotifier pushes change events onto the bus after a write commits.
// Delivery is best effort: a failed publish is logged and dropped, the poll
// cycle on the consumer side covers the gap.
type TrackerNotifier interface {
	JobCardChanged(kind realtime.ChangeKind, card *types.JobCard, actor string)
	QCLogged(entry *types.QCLog, card *types.JobCard)
}

type trackerNotifier struct {
	log *logger.Logger
	bus bus.Bus
}

func NewTrackerNotifier(baseLog *logger.Logger, b bus.Bus) TrackerNotifier {
	return &trackerNotifier{
		log: baseLog.With("service", "TrackerNotifier"),
		bus: b,
	}
}

func (n *trackerNotifier) publish(table string, kind realtime.ChangeKind, row any, actor string) {
	if n.bus == nil {
		return
	}
	raw, err := json.Marshal(row)
	if err != nil {
		n.log.Warn("Failed to encode change event", "table", table, "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ev := realtime.ChangeEvent{
		Table: table,
		Kind:  kind,
		Row:   raw,
		Actor: actor,
		At:    time.Now().UTC(),
	}
	if err := n.bus.Publish(ctx, ev); err != nil {
		n.log.Warn("Failed to publish change event", "table", table, "kind", kind, "error", err)
	}
}

func (n *trackerNotifier) JobCardChanged(kind realtime.ChangeKind, card *types.JobCard, actor string) {
	n.publish(realtime.TableJobCards, kind, card, actor)
}

func (n *trackerNotifier) QCLogged(entry *types.QCLog, card *types.JobCard) {
	n.publish(realtime.TableQCLogs, realtime.ChangeInsert, entry, "")
}
