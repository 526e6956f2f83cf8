package tests

import (
	"math/rand"
	"path"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/stretchr/testify/require"
)

const (
	bountyPath    = "../contracts/bounty"
	reentrantPath = "testdata/reentrant"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// deployBountyContract compiles and deploys the bounty contract with the
// committee account as the platform owner.
func deployBountyContract(t *testing.T, e *neotest.Executor) *neotest.Contract {
	ctr := neotest.CompileFile(t, e.CommitteeHash, bountyPath, path.Join(bountyPath, "config.yml"))
	e.DeployContract(t, ctr, []any{e.CommitteeHash})
	return ctr
}

func newBountyInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	ctr := deployBountyContract(t, e)
	return e.CommitteeInvoker(ctr.Hash)
}

// randomCID returns a base58-encoded content reference the way off-chain
// clients render content ids.
func randomCID() []byte {
	a := make([]byte, 32)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return []byte(base58.Encode(a))
}

// advancePast appends a block with a timestamp right after ts, so any
// following invocation observes a chain time greater than ts.
func advancePast(t *testing.T, c *neotest.ContractInvoker, ts uint64) {
	b := c.NewUnsignedBlock(t)
	b.Timestamp = ts + 1
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
}
