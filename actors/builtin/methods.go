package builtin

import (
	abi "github.com/tokenvest/vesting-actors/actors/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type accMethods struct {
	Constructor   abi.MethodNum
	PubkeyAddress abi.MethodNum
}

var MethodsAccount = accMethods{MethodConstructor, 2}

type tokenMethods struct {
	Constructor  abi.MethodNum
	Transfer     abi.MethodNum
	TransferFrom abi.MethodNum
	Approve      abi.MethodNum
	BalanceOf    abi.MethodNum
}

var MethodsToken = tokenMethods{MethodConstructor, 2, 3, 4, 5}

type vestingMethods struct {
	Constructor     abi.MethodNum
	InitializeGrant abi.MethodNum
	Withdraw        abi.MethodNum
	Revoke          abi.MethodNum
	GetGrant        abi.MethodNum
}

var MethodsVesting = vestingMethods{MethodConstructor, 2, 3, 4, 5}
