package actors

import (
	cid "github.com/ipfs/go-cid"

	abi "github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/account"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
)

var _ abi.Invokee = BuiltinActor{}

type BuiltinActor struct {
	actor abi.Invokee
	code  cid.Cid
}

// Code is the CodeID (cid) of the actor.
func (b BuiltinActor) Code() cid.Cid {
	return b.code
}

// Exports returns a slice of callable actor methods.
func (b BuiltinActor) Exports() []interface{} {
	return b.actor.Exports()
}

// BuiltinActors lists every actor a host must register to run this suite.
func BuiltinActors() []BuiltinActor {
	return []BuiltinActor{
		{
			actor: account.Actor{},
			code:  builtin.AccountActorCodeID,
		},
		{
			actor: token.Actor{},
			code:  builtin.TokenActorCodeID,
		},
		{
			actor: vesting.Actor{},
			code:  builtin.VestingActorCodeID,
		},
	}
}
