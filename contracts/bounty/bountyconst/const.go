package bountyconst

const (
	// TypeEditable marks a bounty whose terms the creator may change while
	// it is active.
	TypeEditable = 0
	// TypeNonEditable marks a bounty whose terms are fixed at creation.
	TypeNonEditable = 1

	// NotFoundError is returned if bounty is missing.
	NotFoundError = "bounty does not exist"
	// ErrorInactive is returned on attempt to act on a resolved or
	// cancelled bounty.
	ErrorInactive = "bounty is not active"
	// ErrorNonEditable is returned on attempt to edit a non-editable bounty.
	ErrorNonEditable = "bounty is not editable"

	// ErrorBadDeadline is returned if submission deadline is not in the future.
	ErrorBadDeadline = "deadline must be in the future"
	// ErrorBadResultDeadline is returned if result deadline does not exceed
	// the submission deadline.
	ErrorBadResultDeadline = "result deadline must be after submission deadline"
	// ErrorBadMinParticipants is returned on a non-positive minimum
	// participant count.
	ErrorBadMinParticipants = "minimum participant count must be positive"
	// ErrorBadTotalWinners is returned on a non-positive total winner count.
	ErrorBadTotalWinners = "total winner count must be positive"
	// ErrorPrizesMismatch is returned if the prize list length differs from
	// the total winner count.
	ErrorPrizesMismatch = "prize list length must equal total winner count"
	// ErrorBadBountyType is returned on an unknown editability policy value.
	ErrorBadBountyType = "unknown bounty type"

	// ErrorInsufficientFunds is returned when supplied or custodied funds do
	// not cover declared obligations. Supplied and required amounts are
	// appended to the message.
	ErrorInsufficientFunds = "insufficient funds"
	// ErrorTransferFailed is returned when an outbound GAS transfer is
	// rejected.
	ErrorTransferFailed = "failed to transfer funds, aborting"

	// ErrorCreatorSubmission is returned on a submission from the bounty
	// creator.
	ErrorCreatorSubmission = "bounty creator cannot submit"
	// ErrorDeadlinePassed is returned on a submission after the deadline.
	ErrorDeadlinePassed = "submission deadline has passed"
	// ErrorAlreadySubmitted is returned on a second submission from the same
	// participant.
	ErrorAlreadySubmitted = "participant has already submitted"
	// ErrorNotSubmissionOwner is returned on attempt to edit a submission of
	// another participant.
	ErrorNotSubmissionOwner = "submission belongs to another participant"
	// ErrorBadSubmissionIndex is returned on an out-of-range submission index.
	ErrorBadSubmissionIndex = "submission index out of range"

	// ErrorWinnersMismatch is returned if the winner list length differs from
	// the total winner count.
	ErrorWinnersMismatch = "winner list length must equal total winner count"
	// ErrorWinnersAlreadySelected is returned on a second resolution attempt.
	ErrorWinnersAlreadySelected = "winners already selected"
	// ErrorNotEnoughWinners is returned if the winner list is shorter than
	// the minimum participant count.
	ErrorNotEnoughWinners = "winner list is below minimum participant count"
	// ErrorResultDeadlinePassed is returned on winner selection after the
	// result deadline.
	ErrorResultDeadlinePassed = "result deadline has passed"
	// ErrorDeadlineNotReached is returned on winner selection before
	// submissions close.
	ErrorDeadlineNotReached = "submission deadline has not passed yet"
	// ErrorBadWinner is returned on a zero or malformed winner address.
	ErrorBadWinner = "invalid winner address"
	// ErrorCreatorWinner is returned if the creator is in the winner list.
	ErrorCreatorWinner = "bounty creator cannot win"
	// ErrorDuplicateWinner is returned on a duplicate address in the winner
	// list.
	ErrorDuplicateWinner = "duplicate winner address"
	// ErrorWinnerNotParticipant is returned if a chosen winner never
	// submitted.
	ErrorWinnerNotParticipant = "winner is not a bounty participant"

	// ErrorCancelNotAllowed is returned on cancellation of a bounty that
	// gathered enough participants to be resolved.
	ErrorCancelNotAllowed = "bounty has enough participants to be resolved"
	// ErrorResultDeadlineNotReached is returned on cancellation before the
	// result deadline expires.
	ErrorResultDeadlineNotReached = "result deadline has not passed yet"
)
