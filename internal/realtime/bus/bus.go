package bus

import (
	"context"

	"github.com/Bloodcipher/Amara/internal/realtime"
)

type Status string

const (
	StatusSubscribed   Status = "subscribed"
	StatusDisconnected Status = "disconnected"
)

// Bus is the change notification channel between writers (services) and the
// tracker. Subscribe confirms the subscription before returning, then
// forwards events on a background goroutine until ctx is cancelled; after
// cancellation no further callbacks fire.
type Bus interface {
	Publish(ctx context.Context, ev realtime.ChangeEvent) error
	Subscribe(ctx context.Context, onEvent func(ev realtime.ChangeEvent), onStatus func(s Status)) error
	Close() error
}
