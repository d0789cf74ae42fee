package vesting

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/tokenvest/vesting-actors/actors/abi"
	big "github.com/tokenvest/vesting-actors/actors/abi/big"
	builtin "github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	vmr "github.com/tokenvest/vesting-actors/actors/runtime"
	"github.com/tokenvest/vesting-actors/actors/runtime/exitcode"
	"github.com/tokenvest/vesting-actors/actors/util"
	adt "github.com/tokenvest/vesting-actors/actors/util/adt"
)

// The vesting actor custodies token deposits and releases them to
// beneficiaries along a linear schedule, with an optional cliff and an
// optional owner right to revoke the unvested remainder.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.InitializeGrant,
		3:                         a.Withdraw,
		4:                         a.Revoke,
		5:                         a.GetGrant,
	}
}

var _ abi.Invokee = Actor{}

func (a Actor) Constructor(rt vmr.Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	emptyMap, err := adt.MakeEmptyMap(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to create empty grants map")

	rt.State().Create(ConstructState(emptyMap.Root()))
	return nil
}

// GrantID identifies a grant: one exists per beneficiary and asset pair.
type GrantID struct {
	Beneficiary addr.Address
	Asset       addr.Address
}

type InitializeGrantParams struct {
	Beneficiary addr.Address
	Asset       addr.Address
	Amount      abi.TokenAmount
	StartEpoch  abi.ChainEpoch
	CliffEpoch  abi.ChainEpoch
	Duration    abi.ChainEpoch
	Revocable   bool
}

// InitializeGrant creates a grant funded by the caller and pulls the deposit
// into the actor's custody. The caller must have approved this actor as a
// spender on the asset ledger beforehand.
//
// The cliff epoch is not constrained against the start epoch: a cliff before
// the start is simply inert, and a cliff at or past the end of the window
// defers the entire deposit to the end.
func (a Actor) InitializeGrant(rt vmr.Runtime, params *InitializeGrantParams) *GrantID {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	owner := rt.Message().Caller()

	if params.Amount.Sign() <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "grant amount %v must be positive", params.Amount)
	}
	if params.Duration <= 0 {
		rt.Abortf(exitcode.ErrIllegalArgument, "grant duration %d must be positive", params.Duration)
	}
	beneficiary, ok := rt.ResolveAddress(params.Beneficiary)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve beneficiary address %v", params.Beneficiary)
	}
	asset, ok := rt.ResolveAddress(params.Asset)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve asset address %v", params.Asset)
	}

	key := GrantKey(rt.Syscalls().HashBlake2b, beneficiary, asset)
	grant := Grant{
		Beneficiary:    beneficiary,
		Owner:          owner,
		Asset:          asset,
		StartEpoch:     params.StartEpoch,
		CliffEpoch:     params.CliffEpoch,
		Duration:       params.Duration,
		Revocable:      params.Revocable,
		Revoked:        false,
		TotalDeposited: params.Amount,
		Released:       big.Zero(),
		VaultBalance:   params.Amount,
	}

	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		_, found, err := st.getGrant(store, key)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load grant for %v/%v", beneficiary, asset)
		if found {
			rt.Abortf(ErrGrantExists, "grant already exists for beneficiary %v and asset %v", beneficiary, asset)
		}

		err = st.putGrant(store, key, &grant)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store grant for %v/%v", beneficiary, asset)
		return nil
	})

	// Pull the deposit into custody. A failed pull (insufficient balance or
	// allowance) aborts the invocation, rolling back the grant record.
	_, code := rt.Send(
		asset,
		builtin.MethodsToken.TransferFrom,
		&token.TransferFromParams{From: owner, To: rt.Message().Receiver(), Amount: params.Amount},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to move deposit of %v from %v into custody", params.Amount, owner)

	rt.Log(vmr.INFO, "initialized grant of %v for %v over [%d, %d), cliff %d, revocable %t",
		params.Amount, beneficiary, params.StartEpoch, params.StartEpoch+params.Duration, params.CliffEpoch, params.Revocable)

	return &GrantID{Beneficiary: beneficiary, Asset: asset}
}

// TransferReturn reports a payout made by the actor.
type TransferReturn struct {
	To     addr.Address
	Amount abi.TokenAmount
}

// Withdraw releases the vested, unreleased units of the caller's grant and
// pays them to the beneficiary.
func (a Actor) Withdraw(rt vmr.Runtime, params *GrantID) *TransferReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	caller := rt.Message().Caller()

	beneficiary, ok := rt.ResolveAddress(params.Beneficiary)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve beneficiary address %v", params.Beneficiary)
	}
	asset, ok := rt.ResolveAddress(params.Asset)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve asset address %v", params.Asset)
	}
	key := GrantKey(rt.Syscalls().HashBlake2b, beneficiary, asset)
	now := rt.CurrEpoch()

	var amount abi.TokenAmount
	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		grant, found, err := st.getGrant(store, key)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load grant for %v/%v", beneficiary, asset)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no grant for beneficiary %v and asset %v", beneficiary, asset)
		}
		if caller != grant.Beneficiary {
			rt.Abortf(exitcode.ErrForbidden, "caller %v is not the grant beneficiary %v", caller, grant.Beneficiary)
		}

		// The cliff gates withdrawal until reached, unless the whole window
		// has already closed (full-vesting overrides a trailing cliff).
		if now < grant.CliffEpoch && now < grant.StartEpoch+grant.Duration {
			rt.Abortf(ErrCliffNotReached, "cliff epoch %d not reached at %d", grant.CliffEpoch, now)
		}

		amount = grant.Releasable(now)
		if amount.IsZero() {
			rt.Abortf(ErrNothingToRelease, "nothing to release at epoch %d (deposited %v, released %v, in custody %v)",
				now, grant.TotalDeposited, grant.Released, grant.VaultBalance)
		}

		grant.Released = big.Add(grant.Released, amount)
		grant.VaultBalance = big.Sub(grant.VaultBalance, amount)
		util.AssertMsg(grant.VaultBalance.Sign() >= 0, "released more than the vault held for %v/%v", beneficiary, asset)

		err = st.putGrant(store, key, grant)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store grant for %v/%v", beneficiary, asset)
		return nil
	})

	rt.Log(vmr.DEBUG, "releasing %v of %v to beneficiary %v at epoch %d", amount, asset, beneficiary, now)

	_, code := rt.Send(
		asset,
		builtin.MethodsToken.Transfer,
		&token.TransferParams{To: beneficiary, Amount: amount},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to transfer %v of %v to beneficiary %v", amount, asset, beneficiary)

	return &TransferReturn{To: beneficiary, Amount: amount}
}

// Revoke reclaims the unvested remainder of a revocable grant for its owner.
// The schedule freezes: the beneficiary keeps withdrawal rights over what had
// vested by the revocation epoch, and nothing more ever vests into custody.
func (a Actor) Revoke(rt vmr.Runtime, params *GrantID) *TransferReturn {
	rt.ValidateImmediateCallerType(builtin.CallerTypesSignable...)
	caller := rt.Message().Caller()

	beneficiary, ok := rt.ResolveAddress(params.Beneficiary)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve beneficiary address %v", params.Beneficiary)
	}
	asset, ok := rt.ResolveAddress(params.Asset)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve asset address %v", params.Asset)
	}
	key := GrantKey(rt.Syscalls().HashBlake2b, beneficiary, asset)
	now := rt.CurrEpoch()

	var owner addr.Address
	var unvested abi.TokenAmount
	var st State
	rt.State().Transaction(&st, func() interface{} {
		store := adt.AsStore(rt)
		grant, found, err := st.getGrant(store, key)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load grant for %v/%v", beneficiary, asset)
		if !found {
			rt.Abortf(exitcode.ErrNotFound, "no grant for beneficiary %v and asset %v", beneficiary, asset)
		}
		if caller != grant.Owner {
			rt.Abortf(exitcode.ErrForbidden, "caller %v is not the grant owner %v", caller, grant.Owner)
		}

		if !grant.Revocable {
			rt.Abortf(ErrNotRevocable, "grant for %v/%v is not revocable", beneficiary, asset)
		}
		if grant.Revoked {
			rt.Abortf(ErrAlreadyRevoked, "grant for %v/%v already revoked", beneficiary, asset)
		}

		unvested = grant.UnvestedAmount(now)
		if unvested.Sign() <= 0 {
			rt.Abortf(ErrFullyVested, "grant for %v/%v fully vested at epoch %d, nothing to revoke", beneficiary, asset, now)
		}

		grant.Revoked = true
		grant.VaultBalance = big.Sub(grant.VaultBalance, unvested)
		util.AssertMsg(grant.VaultBalance.Sign() >= 0, "reclaimed more than the vault held for %v/%v", beneficiary, asset)
		owner = grant.Owner

		err = st.putGrant(store, key, grant)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to store grant for %v/%v", beneficiary, asset)
		return nil
	})

	rt.Log(vmr.INFO, "revoked grant for %v/%v at epoch %d, reclaiming %v for owner %v", beneficiary, asset, now, unvested, owner)

	_, code := rt.Send(
		asset,
		builtin.MethodsToken.Transfer,
		&token.TransferParams{To: owner, Amount: unvested},
		big.Zero(),
	)
	builtin.RequireSuccess(rt, code, "failed to return %v of %v to owner %v", unvested, asset, owner)

	return &TransferReturn{To: owner, Amount: unvested}
}

// GetGrant reads a grant record without mutating it.
func (a Actor) GetGrant(rt vmr.Runtime, params *GrantID) *Grant {
	rt.ValidateImmediateCallerAcceptAny()
	beneficiary, ok := rt.ResolveAddress(params.Beneficiary)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve beneficiary address %v", params.Beneficiary)
	}
	asset, ok := rt.ResolveAddress(params.Asset)
	if !ok {
		rt.Abortf(exitcode.ErrIllegalArgument, "unable to resolve asset address %v", params.Asset)
	}
	key := GrantKey(rt.Syscalls().HashBlake2b, beneficiary, asset)

	var st State
	rt.State().Readonly(&st)
	grant, found, err := st.getGrant(adt.AsStore(rt), key)
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to load grant for %v/%v", beneficiary, asset)
	if !found {
		rt.Abortf(exitcode.ErrNotFound, "no grant for beneficiary %v and asset %v", beneficiary, asset)
	}
	return grant
}
