package token

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/tokenvest/vesting-actors/actors/abi"
	builtin "github.com/tokenvest/vesting-actors/actors/builtin"
	vmr "github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/runtime/exitcode"
	adt "github.com/tokenvest/vesting-actors/actors/util/adt"
)

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Transfer,
		3:                         a.TransferFrom,
		4:                         a.Approve,
		5:                         a.BalanceOf,
	}
}

var _ abi.Invokee = Actor{}

type ConstructorParams struct {
	Owner  addr.Address
	Supply abi.TokenAmount
}

// Constructor creates the ledger with the entire supply credited to the owner.
func (a Actor) Constructor(rt vmr.Runtime, params *ConstructorParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	if params.Supply.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "supply %v must be positive", params.Supply)
	}
	owner, ok := rt.ResolveAddress(params.Owner)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve owner address %v", params.Owner)
	}

	st, err := ConstructState(adt.AsStore(rt), owner, params.Supply)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.State().Create(st)
	return nil
}

type TransferParams struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Transfer moves units from the caller's balance to another holder.
func (a Actor) Transfer(rt vmr.Runtime, params *TransferParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	from := rt.Message().Caller()

	if params.Amount.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "transfer amount %v must be positive", params.Amount)
	}
	to, ok := rt.ResolveAddress(params.To)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve destination address %v", params.To)
	}

	var st State
	rt.State().Transaction(&st, func() interface{} {
		err := st.transfer(adt.AsStore(rt), from, to, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to transfer %v from %v to %v", params.Amount, from, to)
		return nil
	})
	return nil
}

type TransferFromParams struct {
	From   addr.Address
	To     addr.Address
	Amount abi.TokenAmount
}

// TransferFrom moves units between holders on the strength of an allowance
// previously granted to the caller, reducing the allowance by the amount moved.
func (a Actor) TransferFrom(rt vmr.Runtime, params *TransferFromParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	spender := rt.Message().Caller()

	if params.Amount.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "transfer amount %v must be positive", params.Amount)
	}
	from, ok := rt.ResolveAddress(params.From)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve source address %v", params.From)
	}
	to, ok := rt.ResolveAddress(params.To)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve destination address %v", params.To)
	}

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		err := st.debitAllowance(store, from, spender, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrForbidden, "failed to debit allowance of %v for %v", from, spender)

		err = st.transfer(store, from, to, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to transfer %v from %v to %v", params.Amount, from, to)
		return nil
	})
	return nil
}

type ApproveParams struct {
	Spender addr.Address
	Amount  abi.TokenAmount
}

// Approve authorises a spender to move up to the given amount out of the
// caller's balance, replacing any earlier allowance for that spender.
func (a Actor) Approve(rt vmr.Runtime, params *ApproveParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()
	holder := rt.Message().Caller()

	if params.Amount.Sign() < 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "allowance %v must not be negative", params.Amount)
	}
	spender, ok := rt.ResolveAddress(params.Spender)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve spender address %v", params.Spender)
	}

	var st State
	rt.State().Transaction(&st, func() interface{} {
		err := st.approve(adt.AsStore(rt), holder, spender, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to approve %v for %v", params.Amount, spender)
		return nil
	})
	return nil
}

// BalanceOf reads the units held by an address.
func (a Actor) BalanceOf(rt vmr.Runtime, holder *addr.Address) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()
	resolved, ok := rt.ResolveAddress(*holder)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve holder address %v", *holder)
	}

	var st State
	rt.State().Readonly(&st)
	balance, err := st.Balance(adt.AsStore(rt), resolved)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load balance of %v", resolved)
	return &balance
}
