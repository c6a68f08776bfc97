package interfaces

import "context"

// INotifier receives entity-and-id-tagged "changed" hints after successful
// mutations. Consumers re-fetch; the event carries no entity data and must
// never be treated as a source of truth.
type INotifier interface {
	EntityChanged(ctx context.Context, entity, id, action string)
}
