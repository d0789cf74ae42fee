package main

import (
	account "github.com/tokenvest/vesting-actors/actors/builtin/account"
	token "github.com/tokenvest/vesting-actors/actors/builtin/token"
	vesting "github.com/tokenvest/vesting-actors/actors/builtin/vesting"

	gen "github.com/whyrusleeping/cbor-gen"
)

func main() {
	// Actors
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/account/cbor_gen.go", "account",
		// actor state
		account.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/token/cbor_gen.go", "token",
		// actor state
		token.State{},
		// method params
		token.ConstructorParams{},
		token.TransferParams{},
		token.TransferFromParams{},
		token.ApproveParams{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.Grant{},
		// method params and returns
		vesting.GrantID{},
		vesting.InitializeGrantParams{},
		vesting.TransferReturn{},
	); err != nil {
		panic(err)
	}
}
