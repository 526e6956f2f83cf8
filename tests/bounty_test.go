package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/bountylab/bounty-contract/common"
	cst "github.com/bountylab/bounty-contract/contracts/bounty/bountyconst"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	hourMS = int64(3_600_000)

	prizeFirst  = int64(1_0000_0000) // 1.0 GAS
	prizeSecond = int64(5000_0000)   // 0.5 GAS
	prizeTotal  = prizeFirst + prizeSecond
	prizeFee    = prizeTotal * common.FeePercent / 100 // 0.075 GAS
	fullFunding = prizeTotal + prizeFee
)

// createDefaultBounty escrows a fully funded two-winner bounty and returns
// its deadlines.
func createDefaultBounty(t *testing.T, c *neotest.ContractInvoker, creator neotest.Signer,
	minParticipants int64) (int64, int64) {
	now := c.TopBlock(t).Timestamp
	deadline := int64(now) + hourMS
	resultDeadline := int64(now) + 2*hourMS

	next := nextBountyID(t, c)
	c.WithSigners(creator).Invoke(t, next, "createBounty",
		creator.ScriptHash(), randomCID(), deadline, resultDeadline,
		minParticipants, int64(2), []any{prizeFirst, prizeSecond},
		int64(cst.TypeEditable), fullFunding)

	return deadline, resultDeadline
}

func nextBountyID(t *testing.T, c *neotest.ContractInvoker) int64 {
	s, err := c.TestInvoke(t, "bountyCount")
	require.NoError(t, err)
	count, err := s.Top().Item().TryInteger()
	require.NoError(t, err)
	return count.Int64() + 1
}

func bountyStruct(t *testing.T, c *neotest.ContractInvoker, id int64) []stackitem.Item {
	s, err := c.TestInvoke(t, "getBounty", id)
	require.NoError(t, err)
	items, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, items, 11)
	return items
}

func bountySubmissions(t *testing.T, c *neotest.ContractInvoker, id int64) [][]stackitem.Item {
	s, err := c.TestInvoke(t, "getBountySubmissions", id)
	require.NoError(t, err)
	items, ok := s.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)

	subs := make([][]stackitem.Item, 0, len(items))
	for _, item := range items {
		fields, ok := item.Value().([]stackitem.Item)
		require.True(t, ok)
		require.Len(t, fields, 3)
		subs = append(subs, fields)
	}
	return subs
}

func itemBytes(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

func itemInt(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func itemBool(t *testing.T, item stackitem.Item) bool {
	v, err := item.TryBool()
	require.NoError(t, err)
	return v
}

func gasBalance(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) *big.Int {
	return c.Chain.GetUtilityTokenBalance(acc)
}

func TestVersion(t *testing.T) {
	c := newBountyInvoker(t)
	c.Invoke(t, common.Version, "version")
}

func TestCreateBounty(t *testing.T) {
	c := newBountyInvoker(t)
	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)

	now := c.TopBlock(t).Timestamp
	deadline := int64(now) + hourMS
	resultDeadline := int64(now) + 2*hourMS
	cid := randomCID()
	prizes := []any{prizeFirst, prizeSecond}

	t.Run("invalid parameters", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorBadDeadline, "createBounty",
			creator.ScriptHash(), cid, int64(now)-1, resultDeadline, int64(2), int64(2), prizes, int64(cst.TypeEditable), fullFunding)
		cCreator.InvokeFail(t, cst.ErrorBadResultDeadline, "createBounty",
			creator.ScriptHash(), cid, deadline, deadline, int64(2), int64(2), prizes, int64(cst.TypeEditable), fullFunding)
		cCreator.InvokeFail(t, cst.ErrorBadMinParticipants, "createBounty",
			creator.ScriptHash(), cid, deadline, resultDeadline, int64(0), int64(2), prizes, int64(cst.TypeEditable), fullFunding)
		cCreator.InvokeFail(t, cst.ErrorBadTotalWinners, "createBounty",
			creator.ScriptHash(), cid, deadline, resultDeadline, int64(2), int64(0), []any{}, int64(cst.TypeEditable), fullFunding)
		cCreator.InvokeFail(t, cst.ErrorPrizesMismatch, "createBounty",
			creator.ScriptHash(), cid, deadline, resultDeadline, int64(2), int64(3), prizes, int64(cst.TypeEditable), fullFunding)
		cCreator.InvokeFail(t, common.ErrBadPrize, "createBounty",
			creator.ScriptHash(), cid, deadline, resultDeadline, int64(2), int64(2), []any{prizeFirst, int64(0)}, int64(cst.TypeEditable), fullFunding)
		cCreator.InvokeFail(t, cst.ErrorBadBountyType, "createBounty",
			creator.ScriptHash(), cid, deadline, resultDeadline, int64(2), int64(2), prizes, int64(42), fullFunding)
	})

	t.Run("insufficient attached funds", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorInsufficientFunds, "createBounty",
			creator.ScriptHash(), cid, deadline, resultDeadline, int64(2), int64(2), prizes, int64(cst.TypeEditable), fullFunding-1)
		c.Invoke(t, 0, "feeCollected")
	})

	t.Run("creator witness", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrCreatorWitnessFailed, "createBounty",
			creator.ScriptHash(), cid, deadline, resultDeadline, int64(2), int64(2), prizes, int64(cst.TypeEditable), fullFunding)
	})

	h := cCreator.Invoke(t, 1, "createBounty",
		creator.ScriptHash(), cid, deadline, resultDeadline, int64(2), int64(2), prizes, int64(cst.TypeEditable), fullFunding)

	// Notifications of the funding transaction: GAS Transfer, the contract's
	// own Deposit for the pulled funds, then BountyCreated.
	c.CheckTxNotificationEvent(t, h, 2, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "BountyCreated",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(1),
			stackitem.Make(creator.ScriptHash().BytesBE()),
			stackitem.Make(cid),
			stackitem.Make(deadline),
			stackitem.Make(resultDeadline),
			stackitem.Make(2),
			stackitem.Make(2),
			stackitem.NewArray([]stackitem.Item{
				stackitem.Make(prizeFirst),
				stackitem.Make(prizeSecond),
			}),
		}),
	})

	c.Invoke(t, prizeFee, "feeCollected")
	c.Invoke(t, 1, "bountyCount")
	require.EqualValues(t, fullFunding, gasBalance(t, c, c.Hash).Int64())

	b := bountyStruct(t, c, 1)
	require.EqualValues(t, 1, itemInt(t, b[0]))
	require.Equal(t, creator.ScriptHash().BytesBE(), itemBytes(t, b[1]))
	require.Equal(t, cid, itemBytes(t, b[2]))
	require.EqualValues(t, deadline, itemInt(t, b[3]))
	require.EqualValues(t, resultDeadline, itemInt(t, b[4]))
	require.True(t, itemBool(t, b[9]))

	t.Run("excess funds are absorbed", func(t *testing.T) {
		custody := gasBalance(t, c, c.Hash).Int64()
		cCreator.Invoke(t, 2, "createBounty",
			creator.ScriptHash(), randomCID(), deadline, resultDeadline, int64(2), int64(2), prizes, int64(cst.TypeNonEditable), fullFunding+1234)
		require.EqualValues(t, custody+fullFunding+1234, gasBalance(t, c, c.Hash).Int64())
		c.Invoke(t, 2*prizeFee, "feeCollected")
	})

	c.Invoke(t, stackitem.NewArray([]stackitem.Item{stackitem.Make(1), stackitem.Make(2)}),
		"getUserBounties", creator.ScriptHash())
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{}), "getUserBounties", c.CommitteeHash)

	c.InvokeFail(t, cst.NotFoundError, "getBounty", 99)
}

func TestEditBounty(t *testing.T) {
	c := newBountyInvoker(t)
	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)

	now := c.TopBlock(t).Timestamp
	deadline := int64(now) + hourMS
	resultDeadline := int64(now) + 2*hourMS
	prizes := []any{prizeFirst, prizeSecond}

	cCreator.Invoke(t, 1, "createBounty",
		creator.ScriptHash(), randomCID(), deadline, resultDeadline, int64(2), int64(2), prizes, int64(cst.TypeEditable), fullFunding)
	cCreator.Invoke(t, 2, "createBounty",
		creator.ScriptHash(), randomCID(), deadline, resultDeadline, int64(2), int64(2), prizes, int64(cst.TypeNonEditable), fullFunding)

	t.Run("non-editable bounty", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorNonEditable, "editBounty",
			2, randomCID(), deadline, resultDeadline, int64(2), int64(2), prizes, fullFunding)
	})

	t.Run("creator witness", func(t *testing.T) {
		other := c.NewAccount(t)
		c.WithSigners(other).InvokeFail(t, common.ErrCreatorWitnessFailed, "editBounty",
			1, randomCID(), deadline, resultDeadline, int64(2), int64(2), prizes, fullFunding)
	})

	t.Run("funds re-checked as in creation", func(t *testing.T) {
		newPrizes := []any{2 * prizeFirst}
		newTotal := 2 * prizeFirst
		newFee := newTotal * common.FeePercent / 100
		cCreator.InvokeFail(t, cst.ErrorInsufficientFunds, "editBounty",
			1, randomCID(), deadline, resultDeadline, int64(1), int64(1), newPrizes, newTotal+newFee-1)

		cid := randomCID()
		cCreator.Invoke(t, stackitem.Null{}, "editBounty",
			1, cid, deadline+hourMS, resultDeadline+hourMS, int64(1), int64(1), newPrizes, newTotal+newFee)

		c.Invoke(t, 2*prizeFee+newFee, "feeCollected")

		b := bountyStruct(t, c, 1)
		require.Equal(t, cid, itemBytes(t, b[2]))
		require.EqualValues(t, deadline+hourMS, itemInt(t, b[3]))
		require.EqualValues(t, resultDeadline+hourMS, itemInt(t, b[4]))
		require.EqualValues(t, 1, itemInt(t, b[5]))
		require.EqualValues(t, 1, itemInt(t, b[6]))
	})

	c.InvokeFail(t, cst.NotFoundError, "editBounty",
		99, randomCID(), deadline, resultDeadline, int64(2), int64(2), prizes, fullFunding)
}

func TestSubmissions(t *testing.T) {
	c := newBountyInvoker(t)
	creator := c.NewAccount(t)
	p1 := c.NewAccount(t)
	p2 := c.NewAccount(t)

	deadline, _ := createDefaultBounty(t, c, creator, 2)

	t.Run("creator cannot submit", func(t *testing.T) {
		c.WithSigners(creator).InvokeFail(t, cst.ErrorCreatorSubmission, "createSubmission",
			creator.ScriptHash(), 1, randomCID())
	})

	t.Run("participant witness", func(t *testing.T) {
		c.WithSigners(p2).InvokeFail(t, common.ErrWitnessFailed, "createSubmission",
			p1.ScriptHash(), 1, randomCID())
	})

	cid1 := randomCID()
	c.WithSigners(p1).Invoke(t, stackitem.Null{}, "createSubmission", p1.ScriptHash(), 1, cid1)
	c.Invoke(t, true, "isParticipantOfBounty", 1, p1.ScriptHash())
	c.Invoke(t, false, "isParticipantOfBounty", 1, p2.ScriptHash())

	t.Run("one submission per participant", func(t *testing.T) {
		c.WithSigners(p1).InvokeFail(t, cst.ErrorAlreadySubmitted, "createSubmission",
			p1.ScriptHash(), 1, randomCID())
	})

	c.WithSigners(p2).Invoke(t, stackitem.Null{}, "createSubmission", p2.ScriptHash(), 1, randomCID())

	subs := bountySubmissions(t, c, 1)
	require.Len(t, subs, 2)
	require.Equal(t, p1.ScriptHash().BytesBE(), itemBytes(t, subs[0][0]))
	require.Equal(t, cid1, itemBytes(t, subs[0][1]))
	require.Equal(t, p2.ScriptHash().BytesBE(), itemBytes(t, subs[1][0]))
	createdAt := itemInt(t, subs[0][2])

	t.Run("edit by non-owner", func(t *testing.T) {
		c.WithSigners(p2).InvokeFail(t, cst.ErrorNotSubmissionOwner, "editSubmission",
			p2.ScriptHash(), 1, randomCID(), 0)
	})

	t.Run("edit with bad index", func(t *testing.T) {
		c.WithSigners(p1).InvokeFail(t, cst.ErrorBadSubmissionIndex, "editSubmission",
			p1.ScriptHash(), 1, randomCID(), 2)
	})

	cid1v2 := randomCID()
	c.WithSigners(p1).Invoke(t, stackitem.Null{}, "editSubmission", p1.ScriptHash(), 1, cid1v2, 0)

	subs = bountySubmissions(t, c, 1)
	require.Equal(t, cid1v2, itemBytes(t, subs[0][1]))
	require.EqualValues(t, createdAt, itemInt(t, subs[0][2]))

	advancePast(t, c, uint64(deadline))

	t.Run("no submissions after deadline", func(t *testing.T) {
		p3 := c.NewAccount(t)
		c.WithSigners(p3).InvokeFail(t, cst.ErrorDeadlinePassed, "createSubmission",
			p3.ScriptHash(), 1, randomCID())
	})

	t.Run("edits have no deadline", func(t *testing.T) {
		cid1v3 := randomCID()
		c.WithSigners(p1).Invoke(t, stackitem.Null{}, "editSubmission", p1.ScriptHash(), 1, cid1v3, 0)
		subs := bountySubmissions(t, c, 1)
		require.Equal(t, cid1v3, itemBytes(t, subs[0][1]))
		require.EqualValues(t, createdAt, itemInt(t, subs[0][2]))
	})

	c.InvokeFail(t, cst.NotFoundError, "getBountySubmissions", 99)
}

func TestSelectWinners(t *testing.T) {
	c := newBountyInvoker(t)
	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)
	p1 := c.NewAccount(t)
	p2 := c.NewAccount(t)
	stranger := c.NewAccount(t)

	deadline, resultDeadline := createDefaultBounty(t, c, creator, 2)

	c.WithSigners(p1).Invoke(t, stackitem.Null{}, "createSubmission", p1.ScriptHash(), 1, randomCID())
	c.WithSigners(p2).Invoke(t, stackitem.Null{}, "createSubmission", p2.ScriptHash(), 1, randomCID())

	winners := []any{p1.ScriptHash(), p2.ScriptHash()}

	t.Run("before submission deadline", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorDeadlineNotReached, "selectWinners", 1, winners)
	})

	advancePast(t, c, uint64(deadline))

	t.Run("creator witness", func(t *testing.T) {
		c.WithSigners(stranger).InvokeFail(t, common.ErrCreatorWitnessFailed, "selectWinners", 1, winners)
	})

	t.Run("winner list validation", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorWinnersMismatch, "selectWinners",
			1, []any{p1.ScriptHash()})
		cCreator.InvokeFail(t, cst.ErrorBadWinner, "selectWinners",
			1, []any{p1.ScriptHash(), util.Uint160{}})
		cCreator.InvokeFail(t, cst.ErrorCreatorWinner, "selectWinners",
			1, []any{creator.ScriptHash(), p1.ScriptHash()})
		cCreator.InvokeFail(t, cst.ErrorDuplicateWinner, "selectWinners",
			1, []any{p1.ScriptHash(), p1.ScriptHash()})
		cCreator.InvokeFail(t, cst.ErrorWinnerNotParticipant, "selectWinners",
			1, []any{p1.ScriptHash(), stranger.ScriptHash()})
	})

	custodyBefore := gasBalance(t, c, c.Hash).Int64()
	p1Before := gasBalance(t, c, p1.ScriptHash())
	p2Before := gasBalance(t, c, p2.ScriptHash())

	h := cCreator.Invoke(t, stackitem.Null{}, "selectWinners", 1, winners)

	// Two GAS Transfer notifications precede WinnersSelected.
	c.CheckTxNotificationEvent(t, h, 2, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "WinnersSelected",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(1),
			stackitem.NewArray([]stackitem.Item{
				stackitem.Make(p1.ScriptHash().BytesBE()),
				stackitem.Make(p2.ScriptHash().BytesBE()),
			}),
		}),
	})

	require.EqualValues(t, prizeFirst,
		new(big.Int).Sub(gasBalance(t, c, p1.ScriptHash()), p1Before).Int64())
	require.EqualValues(t, prizeSecond,
		new(big.Int).Sub(gasBalance(t, c, p2.ScriptHash()), p2Before).Int64())
	require.EqualValues(t, custodyBefore-prizeTotal, gasBalance(t, c, c.Hash).Int64())
	c.Invoke(t, prizeFee, "feeCollected")

	b := bountyStruct(t, c, 1)
	require.False(t, itemBool(t, b[9]))
	winnerItems, ok := b[8].Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, winnerItems, 2)
	require.Equal(t, p1.ScriptHash().BytesBE(), itemBytes(t, winnerItems[0]))
	require.Equal(t, p2.ScriptHash().BytesBE(), itemBytes(t, winnerItems[1]))

	t.Run("double resolution", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorWinnersAlreadySelected, "selectWinners", 1, winners)
	})

	t.Run("cancel after resolution", func(t *testing.T) {
		advancePast(t, c, uint64(resultDeadline))
		cCreator.InvokeFail(t, cst.ErrorWinnersAlreadySelected, "cancelBounty", 1)
	})

	t.Run("after result deadline", func(t *testing.T) {
		_, resultDeadline := createDefaultBounty(t, c, creator, 2)
		advancePast(t, c, uint64(resultDeadline))
		cCreator.InvokeFail(t, cst.ErrorResultDeadlinePassed, "selectWinners", 2, winners)
	})

	t.Run("below minimum participant count", func(t *testing.T) {
		now := c.TopBlock(t).Timestamp
		d := int64(now) + hourMS
		cCreator.Invoke(t, 3, "createBounty",
			creator.ScriptHash(), randomCID(), d, d+hourMS, int64(3), int64(2),
			[]any{prizeFirst, prizeSecond}, int64(cst.TypeEditable), fullFunding)
		c.WithSigners(p1).Invoke(t, stackitem.Null{}, "createSubmission", p1.ScriptHash(), 3, randomCID())
		c.WithSigners(p2).Invoke(t, stackitem.Null{}, "createSubmission", p2.ScriptHash(), 3, randomCID())
		advancePast(t, c, uint64(d))
		cCreator.InvokeFail(t, cst.ErrorNotEnoughWinners, "selectWinners", 3, winners)
	})
}

func TestCancelBounty(t *testing.T) {
	c := newBountyInvoker(t)
	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)
	p1 := c.NewAccount(t)

	deadline, resultDeadline := createDefaultBounty(t, c, creator, 2)
	c.WithSigners(p1).Invoke(t, stackitem.Null{}, "createSubmission", p1.ScriptHash(), 1, randomCID())

	advancePast(t, c, uint64(deadline))

	t.Run("before result deadline", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorResultDeadlineNotReached, "cancelBounty", 1)
	})

	advancePast(t, c, uint64(resultDeadline))

	t.Run("creator witness", func(t *testing.T) {
		c.WithSigners(p1).InvokeFail(t, common.ErrCreatorWitnessFailed, "cancelBounty", 1)
	})

	custodyBefore := gasBalance(t, c, c.Hash).Int64()
	creatorBefore := gasBalance(t, c, creator.ScriptHash())

	tx := cCreator.Invoke(t, stackitem.Null{}, "cancelBounty", 1)
	txFees := txCost(t, c, tx)

	// The refund GAS Transfer precedes BountyCancelled.
	c.CheckTxNotificationEvent(t, tx, 1, state.NotificationEvent{
		ScriptHash: c.Hash,
		Name:       "BountyCancelled",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(1),
			stackitem.Make(prizeTotal),
		}),
	})

	require.EqualValues(t, custodyBefore-prizeTotal, gasBalance(t, c, c.Hash).Int64())
	require.EqualValues(t, prizeTotal-txFees,
		new(big.Int).Sub(gasBalance(t, c, creator.ScriptHash()), creatorBefore).Int64())
	c.Invoke(t, prizeFee, "feeCollected")

	b := bountyStruct(t, c, 1)
	require.False(t, itemBool(t, b[9]))

	t.Run("double cancellation", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorInactive, "cancelBounty", 1)
	})

	t.Run("resolution after cancellation", func(t *testing.T) {
		cCreator.InvokeFail(t, cst.ErrorInactive, "selectWinners", 1, []any{p1.ScriptHash(), p1.ScriptHash()})
	})

	t.Run("enough participants to resolve", func(t *testing.T) {
		p2 := c.NewAccount(t)
		now := c.TopBlock(t).Timestamp
		d := int64(now) + hourMS
		rd := d + hourMS
		cCreator.Invoke(t, 2, "createBounty",
			creator.ScriptHash(), randomCID(), d, rd, int64(2), int64(2),
			[]any{prizeFirst, prizeSecond}, int64(cst.TypeEditable), fullFunding)
		c.WithSigners(p1).Invoke(t, stackitem.Null{}, "createSubmission", p1.ScriptHash(), 2, randomCID())
		c.WithSigners(p2).Invoke(t, stackitem.Null{}, "createSubmission", p2.ScriptHash(), 2, randomCID())
		advancePast(t, c, uint64(rd))
		cCreator.InvokeFail(t, cst.ErrorCancelNotAllowed, "cancelBounty", 2)
	})
}

// txCost returns the total system and network fee of a persisted transaction.
func txCost(t *testing.T, c *neotest.ContractInvoker, h util.Uint256) int64 {
	tx, _, err := c.Chain.GetTransaction(h)
	require.NoError(t, err)
	return tx.SystemFee + tx.NetworkFee
}

func TestWithdraw(t *testing.T) {
	c := newBountyInvoker(t)
	creator := c.NewAccount(t)
	createDefaultBounty(t, c, creator, 2)
	c.Invoke(t, prizeFee, "feeCollected")

	t.Run("owner witness", func(t *testing.T) {
		c.WithSigners(creator).InvokeFail(t, common.ErrOwnerWitnessFailed, "withdraw", prizeFee)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		c.InvokeFail(t, "non positive amount number", "withdraw", 0)
	})

	t.Run("over collected revenue", func(t *testing.T) {
		c.InvokeFail(t, cst.ErrorInsufficientFunds, "withdraw", prizeFee+1)
	})

	custodyBefore := gasBalance(t, c, c.Hash).Int64()
	c.Invoke(t, stackitem.Null{}, "withdraw", prizeFee-100)
	c.Invoke(t, 100, "feeCollected")
	require.EqualValues(t, custodyBefore-(prizeFee-100), gasBalance(t, c, c.Hash).Int64())
}

func TestDeposit(t *testing.T) {
	e := newExecutor(t)
	ctr := deployBountyContract(t, e)
	c := e.CommitteeInvoker(ctr.Hash)
	acc := c.NewAccount(t)

	const amount = int64(3_0000_0000)
	gasInv := e.NewInvoker(e.NativeHash(t, nativenames.Gas), acc)
	h := gasInv.Invoke(t, true, "transfer", acc.ScriptHash(), ctr.Hash, amount, nil)

	e.CheckTxNotificationEvent(t, h, 1, state.NotificationEvent{
		ScriptHash: ctr.Hash,
		Name:       "Deposit",
		Item: stackitem.NewArray([]stackitem.Item{
			stackitem.Make(acc.ScriptHash().BytesBE()),
			stackitem.Make(amount),
		}),
	})
	require.EqualValues(t, amount, gasBalance(t, c, ctr.Hash).Int64())

	// Deposits increase custody only, they are not attributable to any
	// bounty or account.
	c.Invoke(t, 0, "feeCollected")
	c.Invoke(t, 0, "bountyCount")
}

func TestReentrantPayoutRejected(t *testing.T) {
	e := newExecutor(t)
	ctr := deployBountyContract(t, e)

	atk := neotest.CompileFile(t, e.CommitteeHash, reentrantPath, path.Join(reentrantPath, "config.yml"))
	e.DeployContract(t, atk, []any{ctr.Hash})

	c := e.CommitteeInvoker(ctr.Hash)
	creator := c.NewAccount(t)
	cCreator := c.WithSigners(creator)
	honest := c.NewAccount(t)

	now := c.TopBlock(t).Timestamp
	deadline := int64(now) + hourMS
	resultDeadline := int64(now) + 2*hourMS
	fee := prizeFirst * common.FeePercent / 100
	cCreator.Invoke(t, 1, "createBounty",
		creator.ScriptHash(), randomCID(), deadline, resultDeadline, int64(1), int64(1),
		[]any{prizeFirst}, int64(cst.TypeEditable), prizeFirst+fee)

	// The attacker contract registers itself through its own method, being
	// the direct caller of createSubmission.
	e.NewInvoker(atk.Hash, honest).Invoke(t, stackitem.Null{}, "submit", 1, randomCID())
	c.Invoke(t, true, "isParticipantOfBounty", 1, atk.Hash)

	c.WithSigners(honest).Invoke(t, stackitem.Null{}, "createSubmission",
		honest.ScriptHash(), 1, randomCID())

	advancePast(t, c, uint64(deadline))

	// The recipient's callback re-enters a guarded method, the guard faults
	// the whole payout transaction and no state change survives.
	cCreator.InvokeFail(t, common.ErrReentrancy, "selectWinners", 1, []any{atk.Hash})

	b := bountyStruct(t, c, 1)
	require.True(t, itemBool(t, b[9]))
	c.Invoke(t, fee, "feeCollected")

	// The guard is released between transactions and the bounty record is
	// untouched: an honest winner can still be paid, exactly once.
	honestBefore := gasBalance(t, c, honest.ScriptHash())
	cCreator.Invoke(t, stackitem.Null{}, "selectWinners", 1, []any{honest.ScriptHash()})
	require.EqualValues(t, prizeFirst,
		new(big.Int).Sub(gasBalance(t, c, honest.ScriptHash()), honestBefore).Int64())
	cCreator.InvokeFail(t, cst.ErrorWinnersAlreadySelected, "selectWinners", 1, []any{honest.ScriptHash()})
}
