package sync

import (
	"context"

	"github.com/erp/partysync/internal/domain/channel"
)

// CustomerAPI is the port to the remote platform's customer endpoint.
// The channel carries the credentials and base URL to use. Fetch
// failures propagate unchanged; retry and backoff belong to the
// implementation, not to the reconcilers.
type CustomerAPI interface {
	// FetchCustomer retrieves the full customer payload for a remote id
	FetchCustomer(ctx context.Context, ch *channel.Channel, remoteID string) (*RemoteCustomer, error)
}

// CreationLock serializes party creation per (channel, remote id) so two
// ingestion workers cannot both miss the lookup and double-insert. The
// reconcilers themselves perform no concurrency control; the import
// orchestrator takes the lock around each unit of work.
type CreationLock interface {
	// Acquire takes the lock for a key, blocking until available or the
	// context is done. The returned function releases the lock.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
