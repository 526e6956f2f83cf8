package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

const (
	guardKey = "g"

	// ErrReentrancy appears when a guarded method is entered again
	// while an outer guarded call is still in flight.
	ErrReentrancy = "reentrant call rejected"
)

// LockGuard marks the start of a state-mutating method. Any nested call into
// another guarded method within the same transaction panics until UnlockGuard
// is called. A panic reverts the whole transaction, so an aborted call never
// leaves the guard set.
func LockGuard(ctx storage.Context) {
	if storage.Get(ctx, guardKey) != nil {
		panic(ErrReentrancy)
	}
	storage.Put(ctx, guardKey, 1)
}

// UnlockGuard releases the guard taken by LockGuard. It is called as the last
// statement of a guarded method, after any outbound transfer, so the guard
// covers the whole call including token callbacks. Failing paths need no
// release: a panic reverts the lock with the rest of the transaction.
func UnlockGuard(ctx storage.Context) {
	storage.Delete(ctx, guardKey)
}
