package bounty

import (
	"github.com/bountylab/bounty-contract/common"
	cst "github.com/bountylab/bounty-contract/contracts/bounty/bountyconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Bounty is an escrowed task with declared prizes, deadlines and
	// participation requirements.
	Bounty struct {
		// Sequential identifier, never reused.
		ID int
		// Account that created and funded the bounty.
		Creator interop.Hash160
		// Opaque off-chain reference to the bounty description.
		ContentID []byte
		// Submission deadline, ms since epoch.
		Deadline int
		// Winner selection deadline, ms since epoch. Always after Deadline.
		ResultDeadline int
		// Minimum number of participants required to resolve the bounty.
		MinParticipants int
		// Number of winners, equals the length of Prizes.
		TotalWinners int
		// Prize amounts in GAS, bound to winners by position.
		Prizes []int
		// Selected winners, empty until the bounty is resolved.
		Winners []interop.Hash160
		// Active is false once the bounty is resolved or cancelled.
		Active bool
		// Editability policy, one of bountyconst.TypeEditable,
		// bountyconst.TypeNonEditable.
		BountyType int
	}

	// Submission is a single participant's entry for a bounty.
	Submission struct {
		// Account that submitted the entry.
		Participant interop.Hash160
		// Opaque off-chain reference to the submitted content.
		ContentID []byte
		// Creation timestamp, ms since epoch. Preserved across edits.
		CreatedAt int
	}
)

const (
	bountyPrefix      = 'x'
	creatorPrefix     = 'o'
	submissionsPrefix = 's'
	participantPrefix = 'p'

	counterKey      = "c"
	feeRevenueKey   = "f"
	ownerAccountKey = "w"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner interop.Hash160
	})
	if len(args.owner) != interop.Hash160Len {
		panic("incorrect owner script hash")
	}

	storage.Put(ctx, ownerAccountKey, args.owner)
	runtime.Log("bounty contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the platform owner.
func Update(script []byte, manifest []byte, data any) {
	common.CheckOwnerWitness(getOwner(storage.GetReadOnlyContext()))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("bounty contract updated")
}

// CreateBounty escrows a new bounty funded by creator. attachedFunds GAS is
// pulled from the creator account and must cover the total declared prize
// amount plus the platform fee; any excess is absorbed by the contract
// account without refund. Deadlines are ms timestamps, deadline must be in
// the future and resultDeadline must be after it. The prize list length must
// equal totalWinners. bountyType fixes the editability policy forever.
//
// Returns the identifier of the new bounty and produces BountyCreated
// notification. It can be invoked only by the creator itself.
func CreateBounty(creator interop.Hash160, contentID []byte, deadline, resultDeadline,
	minParticipants, totalWinners int, prizes []int, bountyType, attachedFunds int) int {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	if len(creator) != interop.Hash160Len {
		panic("incorrect creator script hash")
	}
	common.CheckCreatorWitness(creator)

	validateTerms(deadline, resultDeadline, minParticipants, totalWinners, prizes)
	if bountyType != cst.TypeEditable && bountyType != cst.TypeNonEditable {
		panic(cst.ErrorBadBountyType)
	}

	collectFunds(ctx, creator, prizes, attachedFunds)

	id := common.GetInt(ctx, counterKey) + 1
	storage.Put(ctx, counterKey, id)

	b := Bounty{
		ID:              id,
		Creator:         creator,
		ContentID:       contentID,
		Deadline:        deadline,
		ResultDeadline:  resultDeadline,
		MinParticipants: minParticipants,
		TotalWinners:    totalWinners,
		Prizes:          prizes,
		Winners:         []interop.Hash160{},
		Active:          true,
		BountyType:      bountyType,
	}
	common.SetSerialized(ctx, bountyKey(id), b)
	storage.Put(ctx, creatorIndexKey(creator, id), 1)

	runtime.Log("created new bounty")
	runtime.Notify("BountyCreated", id, creator, contentID, deadline, resultDeadline,
		minParticipants, totalWinners, prizes)
	common.UnlockGuard(ctx)

	return id
}

// EditBounty overwrites all mutable fields of an active editable bounty. The
// new terms are validated and funded exactly as in CreateBounty: attachedFunds
// must cover the new prize total plus the platform fee and is pulled from the
// creator in full. There is no refund path when the new prize total is lower
// than the old one.
//
// It produces BountyUpdated notification. It can be invoked only by the
// bounty creator.
func EditBounty(bountyID int, contentID []byte, deadline, resultDeadline,
	minParticipants, totalWinners int, prizes []int, attachedFunds int) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	b := getBounty(ctx, bountyID)
	if !b.Active {
		panic(cst.ErrorInactive)
	}
	common.CheckCreatorWitness(b.Creator)
	if b.BountyType != cst.TypeEditable {
		panic(cst.ErrorNonEditable)
	}

	validateTerms(deadline, resultDeadline, minParticipants, totalWinners, prizes)
	collectFunds(ctx, b.Creator, prizes, attachedFunds)

	b.ContentID = contentID
	b.Deadline = deadline
	b.ResultDeadline = resultDeadline
	b.MinParticipants = minParticipants
	b.TotalWinners = totalWinners
	b.Prizes = prizes
	common.SetSerialized(ctx, bountyKey(bountyID), b)

	runtime.Log("bounty updated")
	runtime.Notify("BountyUpdated", bountyID, b.Creator, contentID, deadline, resultDeadline,
		minParticipants, totalWinners, prizes)
	common.UnlockGuard(ctx)
}

// CreateSubmission registers a participant's entry for an active bounty. One
// submission per participant is allowed, the creator cannot participate and
// submissions close at the bounty deadline.
//
// It produces SubmissionCreated notification. It can be invoked only by the
// participant itself.
func CreateSubmission(participant interop.Hash160, bountyID int, contentID []byte) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	b := getBounty(ctx, bountyID)
	if !b.Active {
		panic(cst.ErrorInactive)
	}

	if len(participant) != interop.Hash160Len {
		panic("incorrect participant script hash")
	}
	common.CheckWitness(participant)
	if common.BytesEqual(participant, b.Creator) {
		panic(cst.ErrorCreatorSubmission)
	}

	now := runtime.GetTime()
	if now > b.Deadline {
		panic(cst.ErrorDeadlinePassed)
	}

	pKey := participantKey(bountyID, participant)
	if storage.Get(ctx, pKey) != nil {
		panic(cst.ErrorAlreadySubmitted)
	}

	subs := getSubmissions(ctx, bountyID)
	subs = append(subs, Submission{
		Participant: participant,
		ContentID:   contentID,
		CreatedAt:   now,
	})
	common.SetSerialized(ctx, submissionsKey(bountyID), subs)
	storage.Put(ctx, pKey, 1)

	runtime.Log("submission added")
	runtime.Notify("SubmissionCreated", bountyID, participant, contentID)
	common.UnlockGuard(ctx)
}

// EditSubmission replaces the content reference of the caller's submission.
// The original creation timestamp and the participant binding are preserved.
// Submissions of an active bounty can be edited at any time, there is no
// deadline restriction.
//
// It produces SubmissionUpdated notification. It can be invoked only by the
// participant that owns the submission.
func EditSubmission(participant interop.Hash160, bountyID int, contentID []byte, submissionIndex int) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	b := getBounty(ctx, bountyID)
	if !b.Active {
		panic(cst.ErrorInactive)
	}

	if len(participant) != interop.Hash160Len {
		panic("incorrect participant script hash")
	}
	common.CheckWitness(participant)
	if common.BytesEqual(participant, b.Creator) {
		panic(cst.ErrorCreatorSubmission)
	}

	subs := getSubmissions(ctx, bountyID)
	if submissionIndex < 0 || submissionIndex >= len(subs) {
		panic(cst.ErrorBadSubmissionIndex)
	}

	s := subs[submissionIndex]
	if !common.BytesEqual(s.Participant, participant) {
		panic(cst.ErrorNotSubmissionOwner)
	}

	s.ContentID = contentID
	subs[submissionIndex] = s
	common.SetSerialized(ctx, submissionsKey(bountyID), subs)

	runtime.Log("submission updated")
	runtime.Notify("SubmissionUpdated", bountyID, participant, contentID, submissionIndex)
	common.UnlockGuard(ctx)
}

// SelectWinners resolves an active bounty by paying out the declared prizes.
// The winner list must be exactly totalWinners long and at least
// minParticipants long, must contain no duplicates, must not contain the
// creator and every winner must have submitted to the bounty. Selection is
// possible only after the submission deadline and no later than the result
// deadline. The i-th prize is transferred to the i-th winner, so the caller
// orders the list to match the intended prize assignment.
//
// The bounty is deactivated and the winner set is recorded before any GAS
// leaves the contract account; a rejected transfer aborts the whole
// operation. It produces WinnersSelected notification. It can be invoked only
// by the bounty creator.
func SelectWinners(bountyID int, winners []interop.Hash160) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	b := getBounty(ctx, bountyID)
	if len(b.Winners) != 0 {
		panic(cst.ErrorWinnersAlreadySelected)
	}
	if !b.Active {
		panic(cst.ErrorInactive)
	}
	common.CheckCreatorWitness(b.Creator)
	if len(winners) != b.TotalWinners {
		panic(cst.ErrorWinnersMismatch)
	}
	if len(winners) < b.MinParticipants {
		panic(cst.ErrorNotEnoughWinners)
	}

	now := runtime.GetTime()
	if now > b.ResultDeadline {
		panic(cst.ErrorResultDeadlinePassed)
	}
	if now < b.Deadline {
		panic(cst.ErrorDeadlineNotReached)
	}

	zeroAddr := interop.Hash160(make([]byte, interop.Hash160Len))
	for i := 0; i < len(winners); i++ {
		w := winners[i]
		if len(w) != interop.Hash160Len || common.BytesEqual(w, zeroAddr) {
			panic(cst.ErrorBadWinner)
		}
		if common.BytesEqual(w, b.Creator) {
			panic(cst.ErrorCreatorWinner)
		}
		for j := 0; j < i; j++ {
			if common.BytesEqual(winners[j], w) {
				panic(cst.ErrorDuplicateWinner)
			}
		}
		if storage.Get(ctx, participantKey(bountyID, w)) == nil {
			panic(cst.ErrorWinnerNotParticipant)
		}
	}

	total := 0
	for i := 0; i < len(b.Prizes); i++ {
		total += b.Prizes[i]
	}

	self := runtime.GetExecutingScriptHash()
	checkCustody(self, total)

	b.Winners = winners
	b.Active = false
	common.SetSerialized(ctx, bountyKey(bountyID), b)

	for i := 0; i < len(winners); i++ {
		if !gas.Transfer(self, winners[i], b.Prizes[i], nil) {
			panic(cst.ErrorTransferFailed)
		}
	}

	runtime.Log("bounty resolved")
	runtime.Notify("WinnersSelected", bountyID, winners)
	common.UnlockGuard(ctx)
}

// CancelBounty cancels an active bounty that provably could not have been
// resolved: no winners are selected, the number of submissions is below the
// minimum participant count and the result deadline has fully passed. The
// prize total is refunded to the creator in a single transfer; the platform
// fee is not refundable.
//
// The bounty is deactivated before the refund leaves the contract account.
// It produces BountyCancelled notification. It can be invoked only by the
// bounty creator.
func CancelBounty(bountyID int) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	b := getBounty(ctx, bountyID)
	if len(b.Winners) != 0 {
		panic(cst.ErrorWinnersAlreadySelected)
	}
	if !b.Active {
		panic(cst.ErrorInactive)
	}
	common.CheckCreatorWitness(b.Creator)

	subs := getSubmissions(ctx, bountyID)
	if len(subs) >= b.MinParticipants {
		panic(cst.ErrorCancelNotAllowed)
	}
	if runtime.GetTime() <= b.ResultDeadline {
		panic(cst.ErrorResultDeadlineNotReached)
	}

	total := 0
	for i := 0; i < len(b.Prizes); i++ {
		total += b.Prizes[i]
	}

	self := runtime.GetExecutingScriptHash()
	checkCustody(self, total)

	b.Active = false
	common.SetSerialized(ctx, bountyKey(bountyID), b)

	if !gas.Transfer(self, b.Creator, total, nil) {
		panic(cst.ErrorTransferFailed)
	}

	runtime.Log("bounty cancelled")
	runtime.Notify("BountyCancelled", bountyID, total)
	common.UnlockGuard(ctx)
}

// Withdraw transfers amount of collected platform fees from the contract
// account to the platform owner. It can be invoked only by the platform
// owner. The fee counter is decremented before the transfer and a rejected
// transfer aborts the operation.
func Withdraw(amount int) {
	ctx := storage.GetContext()
	common.LockGuard(ctx)

	owner := getOwner(ctx)
	common.CheckOwnerWitness(owner)

	if amount <= 0 {
		panic("non positive amount number")
	}

	collected := common.GetInt(ctx, feeRevenueKey)
	if amount > collected {
		panic(insufficientFunds(collected, amount))
	}

	storage.Put(ctx, feeRevenueKey, collected-amount)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), owner, amount, nil) {
		panic(cst.ErrorTransferFailed)
	}

	runtime.Log("platform fees withdrawn")
	common.UnlockGuard(ctx)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Any positive GAS amount is accepted and increases the custody balance of
// the contract account with no other effect. Transfers of other tokens are
// rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, []byte(gas.Hash)) {
		panic("only GAS is accepted for deposit")
	}
	if amount <= 0 {
		panic("amount must be positive")
	}

	runtime.Notify("Deposit", from, amount)
}

// GetBounty returns the bounty record by identifier. It panics if the bounty
// is missing.
func GetBounty(bountyID int) Bounty {
	return getBounty(storage.GetReadOnlyContext(), bountyID)
}

// GetUserBounties returns identifiers of all bounties ever created by the
// given account, both active and finished.
func GetUserBounties(creator interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()
	ids := []int{}

	it := storage.Find(ctx, append([]byte{creatorPrefix}, creator...), storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		raw := iterator.Value(it).([]byte)
		ids = append(ids, convert.ToInteger(raw))
	}

	return ids
}

// GetBountySubmissions returns all submissions of the bounty in creation
// order. It panics if the bounty is missing.
func GetBountySubmissions(bountyID int) []Submission {
	ctx := storage.GetReadOnlyContext()
	getBounty(ctx, bountyID)

	return getSubmissions(ctx, bountyID)
}

// IsParticipantOfBounty returns true if the given account has submitted to
// the bounty.
func IsParticipantOfBounty(bountyID int, participant interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()

	return storage.Get(ctx, participantKey(bountyID, participant)) != nil
}

// IterateBounties returns an iterator over all bounty records.
func IterateBounties() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{bountyPrefix},
		storage.ValuesOnly|storage.DeserializeValues)
}

// BountyCount returns the number of bounty identifiers assigned so far.
func BountyCount() int {
	return common.GetInt(storage.GetReadOnlyContext(), counterKey)
}

// FeeCollected returns the amount of platform fee revenue that has not been
// withdrawn yet.
func FeeCollected() int {
	return common.GetInt(storage.GetReadOnlyContext(), feeRevenueKey)
}

// Owner returns the platform owner account.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// validateTerms checks bounty parameters shared by creation and edit.
func validateTerms(deadline, resultDeadline, minParticipants, totalWinners int, prizes []int) {
	if deadline <= runtime.GetTime() {
		panic(cst.ErrorBadDeadline)
	}
	if resultDeadline <= deadline {
		panic(cst.ErrorBadResultDeadline)
	}
	if minParticipants <= 0 {
		panic(cst.ErrorBadMinParticipants)
	}
	if totalWinners <= 0 {
		panic(cst.ErrorBadTotalWinners)
	}
	if len(prizes) != totalWinners {
		panic(cst.ErrorPrizesMismatch)
	}
}

// collectFunds verifies that attachedFunds covers the declared prizes plus
// the platform fee, credits the fee counter and pulls attachedFunds GAS from
// the payer to the contract account. Attached funds beyond the requirement
// are absorbed without refund.
func collectFunds(ctx storage.Context, payer interop.Hash160, prizes []int, attachedFunds int) {
	total, fee := common.CalculatePrizesAndFee(prizes)
	need := total + fee
	if attachedFunds < need {
		panic(insufficientFunds(attachedFunds, need))
	}

	storage.Put(ctx, feeRevenueKey, common.GetInt(ctx, feeRevenueKey)+fee)

	if !gas.Transfer(payer, runtime.GetExecutingScriptHash(), attachedFunds, nil) {
		panic(cst.ErrorTransferFailed)
	}
}

// checkCustody panics if the contract account holds less GAS than amount.
func checkCustody(self interop.Hash160, amount int) {
	balance := gas.BalanceOf(self)
	if balance < amount {
		panic(insufficientFunds(balance, amount))
	}
}

func insufficientFunds(have, need int) string {
	return cst.ErrorInsufficientFunds + ": have " + std.Itoa(have, 10) +
		", need " + std.Itoa(need, 10)
}

func getBounty(ctx storage.Context, id int) Bounty {
	data := storage.Get(ctx, bountyKey(id))
	if data == nil {
		panic(cst.NotFoundError)
	}

	return std.Deserialize(data.([]byte)).(Bounty)
}

func getSubmissions(ctx storage.Context, id int) []Submission {
	data := storage.Get(ctx, submissionsKey(id))
	if data != nil {
		return std.Deserialize(data.([]byte)).([]Submission)
	}

	return []Submission{}
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerAccountKey).(interop.Hash160)
}

func bountyKey(id int) []byte {
	return append([]byte{bountyPrefix}, convert.ToBytes(id)...)
}

func submissionsKey(id int) []byte {
	return append([]byte{submissionsPrefix}, convert.ToBytes(id)...)
}

func participantKey(id int, participant interop.Hash160) []byte {
	return append(append([]byte{participantPrefix}, convert.ToBytes(id)...), participant...)
}

func creatorIndexKey(creator interop.Hash160, id int) []byte {
	return append(append([]byte{creatorPrefix}, creator...), convert.ToBytes(id)...)
}
