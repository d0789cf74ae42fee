package vesting

import (
	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"

	abi "github.com/tokenvest/vesting-actors/actors/abi"
	big "github.com/tokenvest/vesting-actors/actors/abi/big"
	adt "github.com/tokenvest/vesting-actors/actors/util/adt"
)

type State struct {
	// Grants indexed by the hash of beneficiary and asset addresses (HAMT of GrantKey -> Grant).
	Grants cid.Cid
}

func ConstructState(emptyMapCid cid.Cid) *State {
	return &State{Grants: emptyMapCid}
}

// Grant records the immutable terms and mutable accounting of one vesting
// position. At most one grant exists per (beneficiary, asset) pair.
type Grant struct {
	// The party entitled to the vested units, the only withdraw authority.
	Beneficiary addr.Address
	// The party that funded the grant, the only revoke authority.
	Owner addr.Address
	// The token ledger actor holding the custodied units.
	Asset addr.Address

	// Epoch at which vesting begins.
	StartEpoch abi.ChainEpoch
	// Epoch before which no withdrawal is permitted, regardless of vested amount.
	CliffEpoch abi.ChainEpoch
	// Length of the vesting window, in epochs. Always positive.
	Duration abi.ChainEpoch

	// Whether the owner may revoke the unvested remainder.
	Revocable bool
	// Whether the grant has been revoked. Transitions false to true at most once.
	Revoked bool

	// Units deposited at initialization. Never changes.
	TotalDeposited abi.TokenAmount
	// Cumulative units paid out to the beneficiary. Never decreases.
	Released abi.TokenAmount
	// Units of the actor's ledger holding still attributable to this grant.
	VaultBalance abi.TokenAmount
}

// VestedAmount computes the cumulative units vested at an epoch, a pure
// function of the grant's fixed terms.
//
// The full-vesting clamp is evaluated before the cliff so that a cliff at or
// beyond the end of the window still pays out in full once the window closes.
// Elapsed time before the start clamps to zero.
func (g *Grant) VestedAmount(now abi.ChainEpoch) abi.TokenAmount {
	if now >= g.StartEpoch+g.Duration {
		return g.TotalDeposited
	}
	if now < g.CliffEpoch {
		return big.Zero()
	}
	elapsed := now - g.StartEpoch
	if elapsed < 0 {
		return big.Zero()
	}
	// floor(TotalDeposited * elapsed / Duration)
	return big.Div(big.Mul(g.TotalDeposited, big.NewInt(int64(elapsed))), big.NewInt(int64(g.Duration)))
}

// Releasable computes the units the beneficiary could withdraw at an epoch:
// the vested amount not yet released, clamped to what the vault still holds
// for this grant. The clamp only binds after a revocation has reclaimed the
// unvested remainder; until then the vault covers all unreleased vesting.
func (g *Grant) Releasable(now abi.ChainEpoch) abi.TokenAmount {
	unreleased := big.Sub(g.VestedAmount(now), g.Released)
	releasable := big.Min(unreleased, g.VaultBalance)
	return big.Max(releasable, big.Zero())
}

// UnvestedAmount computes the units not yet vested at an epoch, the portion
// reclaimed by a revocation.
func (g *Grant) UnvestedAmount(now abi.ChainEpoch) abi.TokenAmount {
	return big.Sub(g.TotalDeposited, g.VestedAmount(now))
}

// A given beneficiary and asset pair identify at most one grant; their hash is
// its key in the grants map.
type grantKey []byte

func (k grantKey) Key() string {
	return string(k)
}

func GrantKey(hash func(data []byte) [32]byte, beneficiary, asset addr.Address) adt.Keyer {
	digest := hash(append(beneficiary.Bytes(), asset.Bytes()...))
	return grantKey(digest[:])
}

func (st *State) getGrant(store adt.Store, key adt.Keyer) (*Grant, bool, error) {
	grants := adt.AsMap(store, st.Grants)
	var grant Grant
	found, err := grants.Get(key, &grant)
	if err != nil {
		return nil, false, err
	}
	return &grant, found, nil
}

func (st *State) putGrant(store adt.Store, key adt.Keyer, grant *Grant) error {
	grants := adt.AsMap(store, st.Grants)
	if err := grants.Put(key, grant); err != nil {
		return err
	}
	st.Grants = grants.Root()
	return nil
}
