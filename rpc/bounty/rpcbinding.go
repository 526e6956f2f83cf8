// Package bounty contains RPC wrappers for Bounty contract.
package bounty

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// BountyBounty is a contract-specific bounty.Bounty type used by its methods.
type BountyBounty struct {
	ID *big.Int
	Creator util.Uint160
	ContentID []byte
	Deadline *big.Int
	ResultDeadline *big.Int
	MinParticipants *big.Int
	TotalWinners *big.Int
	Prizes []*big.Int
	Winners []util.Uint160
	Active bool
	BountyType *big.Int
}

// BountySubmission is a contract-specific bounty.Submission type used by its methods.
type BountySubmission struct {
	Participant util.Uint160
	ContentID []byte
	CreatedAt *big.Int
}

// BountyCreatedEvent represents "BountyCreated" event emitted by the contract.
type BountyCreatedEvent struct {
	ID *big.Int
	Creator util.Uint160
	ContentID []byte
	Deadline *big.Int
	ResultDeadline *big.Int
	MinParticipants *big.Int
	TotalWinners *big.Int
	Prizes []*big.Int
}

// BountyUpdatedEvent represents "BountyUpdated" event emitted by the contract.
type BountyUpdatedEvent struct {
	ID *big.Int
	Creator util.Uint160
	ContentID []byte
	Deadline *big.Int
	ResultDeadline *big.Int
	MinParticipants *big.Int
	TotalWinners *big.Int
	Prizes []*big.Int
}

// SubmissionCreatedEvent represents "SubmissionCreated" event emitted by the contract.
type SubmissionCreatedEvent struct {
	BountyID *big.Int
	Participant util.Uint160
	ContentID []byte
}

// SubmissionUpdatedEvent represents "SubmissionUpdated" event emitted by the contract.
type SubmissionUpdatedEvent struct {
	BountyID *big.Int
	Participant util.Uint160
	ContentID []byte
	SubmissionIndex *big.Int
}

// WinnersSelectedEvent represents "WinnersSelected" event emitted by the contract.
type WinnersSelectedEvent struct {
	BountyID *big.Int
	Winners []util.Uint160
}

// BountyCancelledEvent represents "BountyCancelled" event emitted by the contract.
type BountyCancelledEvent struct {
	BountyID *big.Int
	Refund *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	From util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BountyCount invokes `bountyCount` method of contract.
func (c *ContractReader) BountyCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "bountyCount"))
}

// FeeCollected invokes `feeCollected` method of contract.
func (c *ContractReader) FeeCollected() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "feeCollected"))
}

// GetBounty invokes `getBounty` method of contract.
func (c *ContractReader) GetBounty(bountyID *big.Int) (*BountyBounty, error) {
	return itemToBountyBounty(unwrap.Item(c.invoker.Call(c.hash, "getBounty", bountyID)))
}

// GetBountySubmissions invokes `getBountySubmissions` method of contract.
func (c *ContractReader) GetBountySubmissions(bountyID *big.Int) ([]*BountySubmission, error) {
	return func (item stackitem.Item, err error) ([]*BountySubmission, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*BountySubmission, len(arr))
		for i := range res {
			res[i], err = itemToBountySubmission(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "getBountySubmissions", bountyID)))
}

// GetUserBounties invokes `getUserBounties` method of contract.
func (c *ContractReader) GetUserBounties(creator util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "getUserBounties", creator))
}

// IsParticipantOfBounty invokes `isParticipantOfBounty` method of contract.
func (c *ContractReader) IsParticipantOfBounty(bountyID *big.Int, participant util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isParticipantOfBounty", bountyID, participant))
}

// IterateBounties invokes `iterateBounties` method of contract.
func (c *ContractReader) IterateBounties() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateBounties"))
}

// IterateBountiesExpanded is similar to IterateBounties (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateBountiesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateBounties", _numOfIteratorItems))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CancelBounty creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelBounty(bountyID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelBounty", bountyID)
}

// CancelBountyTransaction creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelBountyTransaction(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelBounty", bountyID)
}

// CancelBountyUnsigned creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelBountyUnsigned(bountyID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelBounty", nil, bountyID)
}

// CreateBounty creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateBounty(creator util.Uint160, contentID []byte, deadline *big.Int, resultDeadline *big.Int, minParticipants *big.Int, totalWinners *big.Int, prizes []any, bountyType *big.Int, attachedFunds *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createBounty", creator, contentID, deadline, resultDeadline, minParticipants, totalWinners, prizes, bountyType, attachedFunds)
}

// CreateBountyTransaction creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateBountyTransaction(creator util.Uint160, contentID []byte, deadline *big.Int, resultDeadline *big.Int, minParticipants *big.Int, totalWinners *big.Int, prizes []any, bountyType *big.Int, attachedFunds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createBounty", creator, contentID, deadline, resultDeadline, minParticipants, totalWinners, prizes, bountyType, attachedFunds)
}

// CreateBountyUnsigned creates a transaction invoking `createBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateBountyUnsigned(creator util.Uint160, contentID []byte, deadline *big.Int, resultDeadline *big.Int, minParticipants *big.Int, totalWinners *big.Int, prizes []any, bountyType *big.Int, attachedFunds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createBounty", nil, creator, contentID, deadline, resultDeadline, minParticipants, totalWinners, prizes, bountyType, attachedFunds)
}

// CreateSubmission creates a transaction invoking `createSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateSubmission(participant util.Uint160, bountyID *big.Int, contentID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createSubmission", participant, bountyID, contentID)
}

// CreateSubmissionTransaction creates a transaction invoking `createSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateSubmissionTransaction(participant util.Uint160, bountyID *big.Int, contentID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createSubmission", participant, bountyID, contentID)
}

// CreateSubmissionUnsigned creates a transaction invoking `createSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateSubmissionUnsigned(participant util.Uint160, bountyID *big.Int, contentID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createSubmission", nil, participant, bountyID, contentID)
}

// EditBounty creates a transaction invoking `editBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EditBounty(bountyID *big.Int, contentID []byte, deadline *big.Int, resultDeadline *big.Int, minParticipants *big.Int, totalWinners *big.Int, prizes []any, attachedFunds *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "editBounty", bountyID, contentID, deadline, resultDeadline, minParticipants, totalWinners, prizes, attachedFunds)
}

// EditBountyTransaction creates a transaction invoking `editBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EditBountyTransaction(bountyID *big.Int, contentID []byte, deadline *big.Int, resultDeadline *big.Int, minParticipants *big.Int, totalWinners *big.Int, prizes []any, attachedFunds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "editBounty", bountyID, contentID, deadline, resultDeadline, minParticipants, totalWinners, prizes, attachedFunds)
}

// EditBountyUnsigned creates a transaction invoking `editBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EditBountyUnsigned(bountyID *big.Int, contentID []byte, deadline *big.Int, resultDeadline *big.Int, minParticipants *big.Int, totalWinners *big.Int, prizes []any, attachedFunds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "editBounty", nil, bountyID, contentID, deadline, resultDeadline, minParticipants, totalWinners, prizes, attachedFunds)
}

// EditSubmission creates a transaction invoking `editSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EditSubmission(participant util.Uint160, bountyID *big.Int, contentID []byte, submissionIndex *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "editSubmission", participant, bountyID, contentID, submissionIndex)
}

// EditSubmissionTransaction creates a transaction invoking `editSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EditSubmissionTransaction(participant util.Uint160, bountyID *big.Int, contentID []byte, submissionIndex *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "editSubmission", participant, bountyID, contentID, submissionIndex)
}

// EditSubmissionUnsigned creates a transaction invoking `editSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EditSubmissionUnsigned(participant util.Uint160, bountyID *big.Int, contentID []byte, submissionIndex *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "editSubmission", nil, participant, bountyID, contentID, submissionIndex)
}

// SelectWinners creates a transaction invoking `selectWinners` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SelectWinners(bountyID *big.Int, winners []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "selectWinners", bountyID, winners)
}

// SelectWinnersTransaction creates a transaction invoking `selectWinners` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SelectWinnersTransaction(bountyID *big.Int, winners []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "selectWinners", bountyID, winners)
}

// SelectWinnersUnsigned creates a transaction invoking `selectWinners` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SelectWinnersUnsigned(bountyID *big.Int, winners []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "selectWinners", nil, bountyID, winners)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", amount)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", amount)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, amount)
}

// itemToBountyBounty converts stack item into *BountyBounty.
func itemToBountyBounty(item stackitem.Item, err error) (*BountyBounty, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountyBounty)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountyBounty from the given
// [stackitem.Item] or returns an error if it's not possible to do to due to
// type mismatch.
func (res *BountyBounty) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 11 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	res.ContentID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContentID: %w", err)
	}

	index++
	res.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	res.ResultDeadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ResultDeadline: %w", err)
	}

	index++
	res.MinParticipants, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinParticipants: %w", err)
	}

	index++
	res.TotalWinners, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalWinners: %w", err)
	}

	index++
	res.Prizes, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Prizes: %w", err)
	}

	index++
	res.Winners, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Winners: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.BountyType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyType: %w", err)
	}

	return nil
}

// itemToBountySubmission converts stack item into *BountySubmission.
func itemToBountySubmission(item stackitem.Item, err error) (*BountySubmission, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountySubmission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountySubmission from the given
// [stackitem.Item] or returns an error if it's not possible to do to due to
// type mismatch.
func (res *BountySubmission) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	index++
	res.ContentID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContentID: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	return nil
}

// BountyCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyCreated" name from the provided [result.ApplicationLog].
func BountyCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyCreated" {
				continue
			}
			event := new(BountyCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyCreatedEvent or
// returns an error if it's not possible to do to due to event serialization (or
// event structure) mismatch.
func (e *BountyCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.ContentID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContentID: %w", err)
	}

	index++
	e.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	e.ResultDeadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ResultDeadline: %w", err)
	}

	index++
	e.MinParticipants, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinParticipants: %w", err)
	}

	index++
	e.TotalWinners, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalWinners: %w", err)
	}

	index++
	e.Prizes, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Prizes: %w", err)
	}

	return nil
}

// BountyUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyUpdated" name from the provided [result.ApplicationLog].
func BountyUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyUpdated" {
				continue
			}
			event := new(BountyUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyUpdatedEvent or
// returns an error if it's not possible to do to due to event serialization (or
// event structure) mismatch.
func (e *BountyUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Creator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Creator: %w", err)
	}

	index++
	e.ContentID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContentID: %w", err)
	}

	index++
	e.Deadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deadline: %w", err)
	}

	index++
	e.ResultDeadline, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ResultDeadline: %w", err)
	}

	index++
	e.MinParticipants, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinParticipants: %w", err)
	}

	index++
	e.TotalWinners, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalWinners: %w", err)
	}

	index++
	e.Prizes, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Prizes: %w", err)
	}

	return nil
}

// SubmissionCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionCreated" name from the provided [result.ApplicationLog].
func SubmissionCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionCreated" {
				continue
			}
			event := new(SubmissionCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionCreatedEvent or
// returns an error if it's not possible to do to due to event serialization (or
// event structure) mismatch.
func (e *SubmissionCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	index++
	e.ContentID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContentID: %w", err)
	}

	return nil
}

// SubmissionUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionUpdated" name from the provided [result.ApplicationLog].
func SubmissionUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionUpdated" {
				continue
			}
			event := new(SubmissionUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionUpdatedEvent or
// returns an error if it's not possible to do to due to event serialization (or
// event structure) mismatch.
func (e *SubmissionUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Participant, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Participant: %w", err)
	}

	index++
	e.ContentID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContentID: %w", err)
	}

	index++
	e.SubmissionIndex, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SubmissionIndex: %w", err)
	}

	return nil
}

// WinnersSelectedEventsFromApplicationLog retrieves a set of all emitted events
// with "WinnersSelected" name from the provided [result.ApplicationLog].
func WinnersSelectedEventsFromApplicationLog(log *result.ApplicationLog) ([]*WinnersSelectedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*WinnersSelectedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "WinnersSelected" {
				continue
			}
			event := new(WinnersSelectedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize WinnersSelectedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to WinnersSelectedEvent or
// returns an error if it's not possible to do to due to event serialization (or
// event structure) mismatch.
func (e *WinnersSelectedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Winners, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Winners: %w", err)
	}

	return nil
}

// BountyCancelledEventsFromApplicationLog retrieves a set of all emitted events
// with "BountyCancelled" name from the provided [result.ApplicationLog].
func BountyCancelledEventsFromApplicationLog(log *result.ApplicationLog) ([]*BountyCancelledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BountyCancelledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BountyCancelled" {
				continue
			}
			event := new(BountyCancelledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BountyCancelledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BountyCancelledEvent or
// returns an error if it's not possible to do to due to event serialization (or
// event structure) mismatch.
func (e *BountyCancelledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.BountyID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}

	index++
	e.Refund, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Refund: %w", err)
	}

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to due to event serialization (or
// event structure) mismatch.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
