package vesting_test

import (
	"context"
	"strings"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/abi/big"
	"github.com/tokenvest/vesting-actors/actors/builtin"
	"github.com/tokenvest/vesting-actors/actors/builtin/token"
	"github.com/tokenvest/vesting-actors/actors/builtin/vesting"
	"github.com/tokenvest/vesting-actors/actors/runtime/exitcode"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/mock"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

func TestConstruction(t *testing.T) {
	actor := vesting.Actor{}
	receiver := tutil.NewIDAddr(t, 100)

	builder := mock.NewBuilder(context.Background(), receiver).
		WithCaller(builtin.InitActorAddr, builtin.SystemActorCodeID)

	t.Run("simple construction", func(t *testing.T) {
		rt := builder.Build(t)
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		ret := rt.Call(actor.Constructor, nil)
		assert.Nil(t, ret)
		rt.Verify()

		var st vesting.State
		rt.GetState(&st)
		grants := adt.AsMap(adt.AsStore(rt), st.Grants)
		keys, err := grants.CollectKeys()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("construction rejects non-init caller", func(t *testing.T) {
		rt := mock.NewBuilder(context.Background(), receiver).
			WithCaller(tutil.NewIDAddr(t, 101), builtin.AccountActorCodeID).
			Build(t)
		rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
		rt.ExpectAbort(exitcode.ErrForbidden, func() {
			rt.Call(actor.Constructor, nil)
		})
	})
}

func TestVestedAmount(t *testing.T) {
	grant := func(total int64, start, cliff, duration abi.ChainEpoch) *vesting.Grant {
		return &vesting.Grant{
			StartEpoch:     start,
			CliffEpoch:     cliff,
			Duration:       duration,
			TotalDeposited: abi.NewTokenAmount(total),
			Released:       big.Zero(),
			VaultBalance:   abi.NewTokenAmount(total),
		}
	}

	t.Run("linear with floor division", func(t *testing.T) {
		g := grant(1_000_000, 0, 0, 100)
		assert.Equal(t, abi.NewTokenAmount(0), g.VestedAmount(0))
		assert.Equal(t, abi.NewTokenAmount(10_000), g.VestedAmount(1))
		assert.Equal(t, abi.NewTokenAmount(500_000), g.VestedAmount(50))
		assert.Equal(t, abi.NewTokenAmount(990_000), g.VestedAmount(99))
		assert.Equal(t, abi.NewTokenAmount(1_000_000), g.VestedAmount(100))

		// indivisible deposit rounds down
		h := grant(10, 0, 0, 3)
		assert.Equal(t, abi.NewTokenAmount(3), h.VestedAmount(1))
		assert.Equal(t, abi.NewTokenAmount(6), h.VestedAmount(2))
		assert.Equal(t, abi.NewTokenAmount(10), h.VestedAmount(3))
	})

	t.Run("zero before start and before cliff", func(t *testing.T) {
		g := grant(1_000_000, 100, 130, 100)
		assert.Equal(t, abi.NewTokenAmount(0), g.VestedAmount(0))
		assert.Equal(t, abi.NewTokenAmount(0), g.VestedAmount(100))
		assert.Equal(t, abi.NewTokenAmount(0), g.VestedAmount(129))
		assert.Equal(t, abi.NewTokenAmount(300_000), g.VestedAmount(130))
	})

	t.Run("clamps to total once the window closes", func(t *testing.T) {
		g := grant(1_000_000, 0, 0, 100)
		assert.Equal(t, abi.NewTokenAmount(1_000_000), g.VestedAmount(100))
		assert.Equal(t, abi.NewTokenAmount(1_000_000), g.VestedAmount(101))
		assert.Equal(t, abi.NewTokenAmount(1_000_000), g.VestedAmount(1<<40))
	})

	t.Run("cliff at or past the end jumps to full at the end", func(t *testing.T) {
		g := grant(1_000_000, 0, 100, 100)
		assert.Equal(t, abi.NewTokenAmount(0), g.VestedAmount(99))
		assert.Equal(t, abi.NewTokenAmount(1_000_000), g.VestedAmount(100))

		h := grant(1_000_000, 0, 150, 100)
		assert.Equal(t, abi.NewTokenAmount(0), h.VestedAmount(99))
		assert.Equal(t, abi.NewTokenAmount(1_000_000), h.VestedAmount(100))
	})

	t.Run("cliff before start is inert", func(t *testing.T) {
		g := grant(1_000_000, 100, 50, 100)
		assert.Equal(t, abi.NewTokenAmount(0), g.VestedAmount(99))
		assert.Equal(t, abi.NewTokenAmount(0), g.VestedAmount(100))
		assert.Equal(t, abi.NewTokenAmount(500_000), g.VestedAmount(150))
	})

	t.Run("monotonic and deterministic", func(t *testing.T) {
		g := grant(999_983, 10, 37, 73)
		prev := big.Zero()
		for now := abi.ChainEpoch(0); now <= 100; now++ {
			v := g.VestedAmount(now)
			assert.True(t, v.GreaterThanEqual(prev), "vested decreased at epoch %d", now)
			assert.Equal(t, v, g.VestedAmount(now))
			prev = v
		}
		assert.Equal(t, g.TotalDeposited, prev)
	})
}

func TestInitializeGrant(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	beneficiary := tutil.NewIDAddr(t, 102)
	asset := tutil.NewIDAddr(t, 90)

	t.Run("creates grant and pulls deposit", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		params := grantParams(beneficiary, asset)
		gid := actor.initializeGrant(rt, owner, params)
		assert.Equal(t, beneficiary, gid.Beneficiary)
		assert.Equal(t, asset, gid.Asset)

		grant := actor.getGrant(rt, gid)
		assert.Equal(t, owner, grant.Owner)
		assert.Equal(t, beneficiary, grant.Beneficiary)
		assert.Equal(t, asset, grant.Asset)
		assert.Equal(t, params.Amount, grant.TotalDeposited)
		assert.Equal(t, big.Zero(), grant.Released)
		assert.Equal(t, params.Amount, grant.VaultBalance)
		assert.False(t, grant.Revoked)
		actor.checkState(rt)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		for _, amt := range []abi.TokenAmount{big.Zero(), abi.NewTokenAmount(-1)} {
			params := grantParams(beneficiary, asset)
			params.Amount = amt
			rt.SetCaller(owner, builtin.AccountActorCodeID)
			rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
			rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
				rt.Call(actor.InitializeGrant, params)
			})
			rt.Verify()
		}
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		for _, d := range []abi.ChainEpoch{0, -10} {
			params := grantParams(beneficiary, asset)
			params.Duration = d
			rt.SetCaller(owner, builtin.AccountActorCodeID)
			rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
			rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
				rt.Call(actor.InitializeGrant, params)
			})
			rt.Verify()
		}
	})

	t.Run("rejects duplicate grant for beneficiary and asset", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		params := grantParams(beneficiary, asset)
		actor.initializeGrant(rt, owner, params)

		rt.SetCaller(owner, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectAbort(vesting.ErrGrantExists, func() {
			rt.Call(actor.InitializeGrant, params)
		})
		rt.Verify()
		actor.checkState(rt)
	})

	t.Run("aborts when deposit pull fails", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		params := grantParams(beneficiary, asset)
		rt.SetCaller(owner, builtin.AccountActorCodeID)
		rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
		rt.ExpectSend(
			asset,
			builtin.MethodsToken.TransferFrom,
			&token.TransferFromParams{From: owner, To: actor.receiver, Amount: params.Amount},
			big.Zero(),
			nil,
			exitcode.ErrInsufficientFunds,
		)
		rt.ExpectAbort(exitcode.ErrInsufficientFunds, func() {
			rt.Call(actor.InitializeGrant, params)
		})
		rt.Verify()
	})
}

func TestWithdraw(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	beneficiary := tutil.NewIDAddr(t, 102)
	stranger := tutil.NewIDAddr(t, 103)
	asset := tutil.NewIDAddr(t, 90)

	t.Run("releases the vested portion midway", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))

		rt.SetEpoch(50)
		ret := actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(500_000))
		assert.Equal(t, beneficiary, ret.To)

		grant := actor.getGrant(rt, gid)
		assert.Equal(t, abi.NewTokenAmount(500_000), grant.Released)
		assert.Equal(t, abi.NewTokenAmount(500_000), grant.VaultBalance)
		actor.checkState(rt)

		// nothing more has vested at the same epoch
		actor.expectWithdrawAbort(rt, beneficiary, gid, vesting.ErrNothingToRelease)
		actor.checkState(rt)
	})

	t.Run("split withdrawals release the same total as one", func(t *testing.T) {
		// two partial withdrawals
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))
		rt.SetEpoch(30)
		actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(300_000))
		rt.SetEpoch(100)
		actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(700_000))
		split := actor.getGrant(rt, gid)

		// one withdrawal at the end
		actor2 := newHarness(t)
		rt2 := actor2.constructAndVerify(t)
		gid2 := actor2.initializeGrant(rt2, owner, grantParams(beneficiary, asset))
		rt2.SetEpoch(100)
		actor2.withdraw(rt2, beneficiary, gid2, abi.NewTokenAmount(1_000_000))
		single := actor2.getGrant(rt2, gid2)

		assert.Equal(t, single.Released, split.Released)
		assert.Equal(t, single.VaultBalance, split.VaultBalance)
		actor.checkState(rt)
		actor2.checkState(rt2)
	})

	t.Run("rejects withdrawal before the cliff", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		params := grantParams(beneficiary, asset)
		params.CliffEpoch = 30
		gid := actor.initializeGrant(rt, owner, params)

		rt.SetEpoch(29)
		actor.expectWithdrawAbort(rt, beneficiary, gid, vesting.ErrCliffNotReached)

		grant := actor.getGrant(rt, gid)
		assert.Equal(t, big.Zero(), grant.Released)

		// at the cliff the accrued portion releases all at once
		rt.SetEpoch(30)
		actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(300_000))
		actor.checkState(rt)
	})

	t.Run("a cliff past the end cannot block a closed window", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		params := grantParams(beneficiary, asset)
		params.CliffEpoch = 200
		gid := actor.initializeGrant(rt, owner, params)

		rt.SetEpoch(99)
		actor.expectWithdrawAbort(rt, beneficiary, gid, vesting.ErrCliffNotReached)

		rt.SetEpoch(100)
		actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(1_000_000))
		actor.checkState(rt)
	})

	t.Run("releases everything far beyond the window", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))

		rt.SetEpoch(1 << 40)
		actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(1_000_000))

		// drained; every further attempt fails
		actor.expectWithdrawAbort(rt, beneficiary, gid, vesting.ErrNothingToRelease)
		actor.checkState(rt)
	})

	t.Run("rejects a caller other than the beneficiary", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))

		rt.SetEpoch(50)
		for _, caller := range []addr.Address{stranger, owner} {
			rt.SetCaller(caller, builtin.AccountActorCodeID)
			rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
			rt.ExpectAbort(exitcode.ErrForbidden, func() {
				rt.Call(actor.Withdraw, gid)
			})
			rt.Verify()
		}

		grant := actor.getGrant(rt, gid)
		assert.Equal(t, big.Zero(), grant.Released)
		assert.Equal(t, abi.NewTokenAmount(1_000_000), grant.VaultBalance)
		actor.checkState(rt)
	})

	t.Run("rejects a missing grant", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		gid := &vesting.GrantID{Beneficiary: beneficiary, Asset: asset}
		actor.expectWithdrawAbort(rt, beneficiary, gid, exitcode.ErrNotFound)
	})
}

func TestRevoke(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	beneficiary := tutil.NewIDAddr(t, 102)
	stranger := tutil.NewIDAddr(t, 103)
	asset := tutil.NewIDAddr(t, 90)

	t.Run("reclaims the unvested remainder and freezes the schedule", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))

		// halfway through, the owner reclaims half the deposit
		rt.SetEpoch(50)
		ret := actor.revoke(rt, owner, gid, abi.NewTokenAmount(500_000))
		assert.Equal(t, owner, ret.To)

		grant := actor.getGrant(rt, gid)
		assert.True(t, grant.Revoked)
		assert.Equal(t, abi.NewTokenAmount(500_000), grant.VaultBalance)
		assert.Equal(t, big.Zero(), grant.Released)
		actor.checkState(rt)

		// later, the beneficiary can still drain what had vested by the
		// revocation, but nothing more ever vests into custody
		rt.SetEpoch(80)
		actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(500_000))

		grant = actor.getGrant(rt, gid)
		assert.Equal(t, abi.NewTokenAmount(500_000), grant.Released)
		assert.Equal(t, big.Zero(), grant.VaultBalance)
		actor.checkState(rt)

		// the grant is now empty for both parties
		rt.SetEpoch(200)
		actor.expectWithdrawAbort(rt, beneficiary, gid, vesting.ErrNothingToRelease)
		actor.expectRevokeAbort(rt, owner, gid, vesting.ErrAlreadyRevoked)
		actor.checkState(rt)
	})

	t.Run("revoking before the cliff reclaims everything", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		params := grantParams(beneficiary, asset)
		params.CliffEpoch = 60
		gid := actor.initializeGrant(rt, owner, params)

		rt.SetEpoch(50)
		actor.revoke(rt, owner, gid, abi.NewTokenAmount(1_000_000))

		grant := actor.getGrant(rt, gid)
		assert.True(t, grant.Revoked)
		assert.Equal(t, big.Zero(), grant.VaultBalance)

		rt.SetEpoch(100)
		actor.expectWithdrawAbort(rt, beneficiary, gid, vesting.ErrNothingToRelease)
		actor.checkState(rt)
	})

	t.Run("rejects revoking an unrevocable grant", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		params := grantParams(beneficiary, asset)
		params.Revocable = false
		gid := actor.initializeGrant(rt, owner, params)

		for _, epoch := range []abi.ChainEpoch{0, 50, 1000} {
			rt.SetEpoch(epoch)
			actor.expectRevokeAbort(rt, owner, gid, vesting.ErrNotRevocable)
		}
		actor.checkState(rt)
	})

	t.Run("rejects revoking once fully vested", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))

		rt.SetEpoch(100)
		actor.expectRevokeAbort(rt, owner, gid, vesting.ErrFullyVested)

		// the beneficiary's claim is unaffected
		actor.withdraw(rt, beneficiary, gid, abi.NewTokenAmount(1_000_000))
		actor.checkState(rt)
	})

	t.Run("rejects a caller other than the owner", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))

		rt.SetEpoch(50)
		for _, caller := range []addr.Address{stranger, beneficiary} {
			rt.SetCaller(caller, builtin.AccountActorCodeID)
			rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
			rt.ExpectAbort(exitcode.ErrForbidden, func() {
				rt.Call(actor.Revoke, gid)
			})
			rt.Verify()
		}

		grant := actor.getGrant(rt, gid)
		assert.False(t, grant.Revoked)
		actor.checkState(rt)
	})

	t.Run("rejects a missing grant", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		gid := &vesting.GrantID{Beneficiary: beneficiary, Asset: asset}
		actor.expectRevokeAbort(rt, owner, gid, exitcode.ErrNotFound)
	})
}

func TestGetGrant(t *testing.T) {
	owner := tutil.NewIDAddr(t, 101)
	beneficiary := tutil.NewIDAddr(t, 102)
	asset := tutil.NewIDAddr(t, 90)

	t.Run("returns a snapshot without mutation", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)
		gid := actor.initializeGrant(rt, owner, grantParams(beneficiary, asset))

		before := rt.StateRoot()
		grant := actor.getGrant(rt, gid)
		assert.Equal(t, before, rt.StateRoot())
		assert.Equal(t, abi.NewTokenAmount(1_000_000), grant.TotalDeposited)
	})

	t.Run("rejects a missing grant", func(t *testing.T) {
		actor := newHarness(t)
		rt := actor.constructAndVerify(t)

		rt.ExpectValidateCallerAny()
		rt.ExpectAbort(exitcode.ErrNotFound, func() {
			rt.Call(actor.GetGrant, &vesting.GrantID{Beneficiary: beneficiary, Asset: asset})
		})
		rt.Verify()
	})
}

///// Test harness /////

func grantParams(beneficiary, asset addr.Address) *vesting.InitializeGrantParams {
	return &vesting.InitializeGrantParams{
		Beneficiary: beneficiary,
		Asset:       asset,
		Amount:      abi.NewTokenAmount(1_000_000),
		StartEpoch:  0,
		CliffEpoch:  0,
		Duration:    100,
		Revocable:   true,
	}
}

type vestingHarness struct {
	vesting.Actor
	t        testing.TB
	receiver addr.Address
}

func newHarness(t testing.TB) *vestingHarness {
	return &vestingHarness{t: t, receiver: tutil.NewIDAddr(t, 100)}
}

func (h *vestingHarness) constructAndVerify(t testing.TB) *mock.Runtime {
	rt := mock.NewBuilder(context.Background(), h.receiver).
		WithCaller(builtin.InitActorAddr, builtin.SystemActorCodeID).
		Build(t)
	rt.ExpectValidateCallerAddr(builtin.InitActorAddr)
	ret := rt.Call(h.Constructor, nil)
	assert.Nil(h.t, ret)
	rt.Verify()
	return rt
}

func (h *vestingHarness) initializeGrant(rt *mock.Runtime, owner addr.Address, params *vesting.InitializeGrantParams) *vesting.GrantID {
	rt.SetCaller(owner, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.ExpectSend(
		params.Asset,
		builtin.MethodsToken.TransferFrom,
		&token.TransferFromParams{From: owner, To: h.receiver, Amount: params.Amount},
		big.Zero(),
		nil,
		exitcode.Ok,
	)
	ret := rt.Call(h.InitializeGrant, params)
	rt.Verify()

	gid, ok := ret.(*vesting.GrantID)
	require.True(h.t, ok)
	return gid
}

func (h *vestingHarness) withdraw(rt *mock.Runtime, caller addr.Address, gid *vesting.GrantID, amount abi.TokenAmount) *vesting.TransferReturn {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.ExpectSend(
		gid.Asset,
		builtin.MethodsToken.Transfer,
		&token.TransferParams{To: gid.Beneficiary, Amount: amount},
		big.Zero(),
		nil,
		exitcode.Ok,
	)
	ret := rt.Call(h.Withdraw, gid)
	rt.Verify()

	tr, ok := ret.(*vesting.TransferReturn)
	require.True(h.t, ok)
	assert.Equal(h.t, amount, tr.Amount)
	return tr
}

func (h *vestingHarness) expectWithdrawAbort(rt *mock.Runtime, caller addr.Address, gid *vesting.GrantID, code exitcode.ExitCode) {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.ExpectAbort(code, func() {
		rt.Call(h.Withdraw, gid)
	})
	rt.Verify()
}

func (h *vestingHarness) revoke(rt *mock.Runtime, caller addr.Address, gid *vesting.GrantID, amount abi.TokenAmount) *vesting.TransferReturn {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.ExpectSend(
		gid.Asset,
		builtin.MethodsToken.Transfer,
		&token.TransferParams{To: caller, Amount: amount},
		big.Zero(),
		nil,
		exitcode.Ok,
	)
	ret := rt.Call(h.Revoke, gid)
	rt.Verify()

	tr, ok := ret.(*vesting.TransferReturn)
	require.True(h.t, ok)
	assert.Equal(h.t, amount, tr.Amount)
	return tr
}

func (h *vestingHarness) expectRevokeAbort(rt *mock.Runtime, caller addr.Address, gid *vesting.GrantID, code exitcode.ExitCode) {
	rt.SetCaller(caller, builtin.AccountActorCodeID)
	rt.ExpectValidateCallerType(builtin.CallerTypesSignable...)
	rt.ExpectAbort(code, func() {
		rt.Call(h.Revoke, gid)
	})
	rt.Verify()
}

func (h *vestingHarness) getGrant(rt *mock.Runtime, gid *vesting.GrantID) *vesting.Grant {
	rt.ExpectValidateCallerAny()
	ret := rt.Call(h.GetGrant, gid)
	rt.Verify()

	grant, ok := ret.(*vesting.Grant)
	require.True(h.t, ok)
	return grant
}

func (h *vestingHarness) checkState(rt *mock.Runtime) {
	var st vesting.State
	rt.GetState(&st)
	_, acc, err := vesting.CheckStateInvariants(&st, adt.AsStore(rt))
	require.NoError(h.t, err)
	assert.True(h.t, acc.IsEmpty(), strings.Join(acc.Messages(), "\n"))
}
