package abi

import (
	"strconv"

	big "github.com/tokenvest/vesting-actors/actors/abi/big"
)

// The abi package contains definitions of the types that cross the VM boundary and are used
// within actor code.

// Epoch number of the chain state, which acts as a proxy for time within the VM.
// The host supplies the current epoch to each invocation; actors never poll or cache it.
type ChainEpoch int64

func (e ChainEpoch) String() string {
	return strconv.FormatInt(int64(e), 10)
}

// A sequential number assigned to an actor when created.
// This ID is embedded in ID-type addresses.
type ActorID uint64

func (e ActorID) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// MethodNum is an integer that represents a particular method
// in an actor's function table. These numbers are used to compress
// invocation of actor code, and to decouple human language concerns
// about method names from the ability to uniquely refer to a particular
// method.
type MethodNum uint64

func (e MethodNum) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// TokenAmount is an amount of fungible asset units. This type is used within
// the VM in message execution and to account movement of tokens.
//
// BigInt types are aliases rather than new types because the latter introduce incredible amounts of noise converting to
// and from types in order to manipulate values. We give up some type safety for ergonomics.
type TokenAmount = big.Int

func NewTokenAmount(t int64) TokenAmount {
	return big.NewInt(t)
}

// Invokee is the interface that all actor implementations satisfy.
// It is merely a method dispatch interface.
type Invokee interface {
	Exports() []interface{}
}
