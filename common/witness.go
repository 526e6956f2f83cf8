package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by the platform owner but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrCreatorWitnessFailed appears when the method must be called
	// by the bounty creator but was not.
	ErrCreatorWitnessFailed = "creator witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using a certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckCreatorWitness checks witness of the passed caller.
// It panics with ErrCreatorWitnessFailed message on fail.
func CheckCreatorWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrCreatorWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
