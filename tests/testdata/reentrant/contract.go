// Package reentrant is a test double of a malicious prize recipient: on any
// incoming GAS transfer it calls back into the bounty contract while the
// payout that triggered the transfer is still in flight.
package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const bountyContractKey = "b"

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.(struct {
		bounty interop.Hash160
	})
	storage.Put(storage.GetContext(), bountyContractKey, args.bounty)
}

// Submit registers the contract itself as a participant of the given bounty.
// The participant witness check passes because the contract is the direct
// caller of the bounty contract.
func Submit(bountyID int, contentID []byte) {
	h := bountyHash()
	contract.Call(h, "createSubmission", contract.All,
		runtime.GetExecutingScriptHash(), bountyID, contentID)
}

// OnNEP17Payment re-enters the bounty contract on prize receipt.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	contract.Call(bountyHash(), "withdraw", contract.All, 1)
}

func bountyHash() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), bountyContractKey).(interop.Hash160)
}
