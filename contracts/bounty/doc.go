/*
Package bounty implements Bounty contract, a custodial bounty marketplace
escrow.

A creator escrows native GAS against a list of declared prizes plus a 5%
platform fee, participants submit work references before the submission
deadline, and the creator either selects winners (prizes are paid out
positionally) or, if the bounty provably could not be resolved, cancels it
after the result deadline and is refunded the prize total. Platform fees are
accumulated inside the contract and withdrawn by the platform owner.

All state transitions are synchronous: every method either commits all of its
storage changes or panics and leaves no trace. State mutations are committed
before any outbound GAS transfer and a re-entrancy guard rejects nested calls
into state-mutating methods, so a transfer recipient cannot observe or mutate
half-finished state.

# Contract notifications

BountyCreated notification. Produced when a new bounty is escrowed.

	BountyCreated:
	  - name: id
	    type: Integer
	  - name: creator
	    type: Hash160
	  - name: contentID
	    type: ByteArray
	  - name: deadline
	    type: Integer
	  - name: resultDeadline
	    type: Integer
	  - name: minParticipants
	    type: Integer
	  - name: totalWinners
	    type: Integer
	  - name: prizes
	    type: Array

BountyUpdated notification. Produced when an editable bounty is overwritten
with new terms. Carries the same fields as BountyCreated.

SubmissionCreated notification. Produced when a participant submits.

	SubmissionCreated:
	  - name: bountyID
	    type: Integer
	  - name: participant
	    type: Hash160
	  - name: contentID
	    type: ByteArray

SubmissionUpdated notification. Produced when a participant replaces the
content of their submission.

	SubmissionUpdated:
	  - name: bountyID
	    type: Integer
	  - name: participant
	    type: Hash160
	  - name: contentID
	    type: ByteArray
	  - name: submissionIndex
	    type: Integer

WinnersSelected notification. Produced when a bounty is resolved and prizes
are paid out.

	WinnersSelected:
	  - name: bountyID
	    type: Integer
	  - name: winners
	    type: Array

BountyCancelled notification. Produced when a bounty is cancelled and the
prize total is refunded to the creator.

	BountyCancelled:
	  - name: bountyID
	    type: Integer
	  - name: refund
	    type: Integer

Deposit notification. Produced on any incoming GAS transfer to the contract
account.

	Deposit:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer

# Contract storage scheme

Key-value storage format:
 - 'x' + id -> std.Serialize(Bounty)
   bounty records by sequential identifier
 - 'o' + creator (20 bytes) + id -> 1
   per-creator index of owned bounty identifiers
 - 's' + id -> std.Serialize([]Submission)
   per-bounty submission list in creation order
 - 'p' + id + participant (20 bytes) -> 1
   per-bounty participation index
 - 'c' -> int
   last assigned bounty identifier
 - 'f' -> int
   uncollected platform fee revenue
 - 'w' -> interop.Hash160
   platform owner account, set at deploy
 - 'g' -> 1
   re-entrancy guard flag, held only within a single transaction

# Custody
The contract account's native GAS balance collateralizes the declared prizes
of all active bounties plus the uncollected fee revenue. Funds attached
beyond the computed requirement of a creation or edit are absorbed by the
contract account without per-account tracking.
*/
package bounty
