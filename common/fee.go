package common

const (
	// FeePercent is the platform surcharge on the total declared prize
	// amount, collected on every bounty creation and edit.
	FeePercent = 5

	// ErrBadPrize appears when a declared prize amount is not positive.
	ErrBadPrize = "prize amount must be positive"
)

// CalculatePrizesAndFee returns the total declared prize amount and the
// platform fee for it. The fee is floored integer percentage of the total.
func CalculatePrizesAndFee(prizes []int) (int, int) {
	total := 0
	for i := 0; i < len(prizes); i++ {
		if prizes[i] <= 0 {
			panic(ErrBadPrize)
		}
		total += prizes[i]
	}

	return total, total * FeePercent / 100
}
