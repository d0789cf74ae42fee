package token

import (
	addr "github.com/filecoin-project/go-address"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	abi "github.com/tokenvest/vesting-actors/actors/abi"
	big "github.com/tokenvest/vesting-actors/actors/abi/big"
	"github.com/tokenvest/vesting-actors/actors/runtime/exitcode"
	adt "github.com/tokenvest/vesting-actors/actors/util/adt"
)

// State of a fungible-asset ledger actor. One actor instance exists per asset;
// the actor's address is the asset identifier.
type State struct {
	// Total units in existence. Fixed at construction: this ledger neither mints nor burns.
	Supply abi.TokenAmount

	// Balances of all holders (BalanceTable AMT of addr -> TokenAmount).
	Balances cid.Cid

	// Spending allowances (HAMT of holder+spender -> TokenAmount).
	Allowances cid.Cid
}

func ConstructState(store adt.Store, owner addr.Address, supply abi.TokenAmount) (*State, error) {
	balanceRoot, err := adt.MakeEmptyMap(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create balance table: %w", err)
	}
	balances := adt.AsBalanceTable(store, balanceRoot.Root())
	if err := balances.Add(owner, supply); err != nil {
		return nil, xerrors.Errorf("failed to credit initial supply: %w", err)
	}

	allowances, err := adt.MakeEmptyMap(store)
	if err != nil {
		return nil, xerrors.Errorf("failed to create allowance map: %w", err)
	}

	return &State{
		Supply:     supply,
		Balances:   balances.Root(),
		Allowances: allowances.Root(),
	}, nil
}

// Adapts a holder+spender address pair as a mapping key.
type allowanceKey struct {
	holder, spender addr.Address
}

func AllowanceKey(holder, spender addr.Address) adt.Keyer {
	return allowanceKey{holder, spender}
}

func (k allowanceKey) Key() string {
	return string(k.holder.Bytes()) + string(k.spender.Bytes())
}

// Balance returns the units held by an address, zero if it holds none.
func (st *State) Balance(store adt.Store, holder addr.Address) (abi.TokenAmount, error) {
	return adt.AsBalanceTable(store, st.Balances).Get(holder)
}

// Allowance returns the units a spender may move out of a holder's balance.
func (st *State) Allowance(store adt.Store, holder, spender addr.Address) (abi.TokenAmount, error) {
	allowances := adt.AsMap(store, st.Allowances)
	var amount abi.TokenAmount
	found, err := allowances.Get(AllowanceKey(holder, spender), &amount)
	if err != nil {
		return big.Zero(), xerrors.Errorf("failed to load allowance of %v for %v: %w", holder, spender, err)
	}
	if !found {
		return big.Zero(), nil
	}
	return amount, nil
}

// Moves units between holders. Fails without mutation if the source balance is short,
// carrying ErrInsufficientFunds for the caller to abort with.
func (st *State) transfer(store adt.Store, from, to addr.Address, amount abi.TokenAmount) error {
	balances := adt.AsBalanceTable(store, st.Balances)
	available, err := balances.Get(from)
	if err != nil {
		return xerrors.Errorf("failed to load balance of %v: %w", from, err)
	}
	if available.LessThan(amount) {
		return exitcode.ErrInsufficientFunds.Wrapf("balance %v of %v too low for transfer of %v", available, from, amount)
	}
	if err := balances.MustSubtract(from, amount); err != nil {
		return xerrors.Errorf("failed to debit %v: %w", from, err)
	}
	if err := balances.Add(to, amount); err != nil {
		return xerrors.Errorf("failed to credit %v: %w", to, err)
	}
	st.Balances = balances.Root()
	return nil
}

// Records a spending allowance, replacing any prior value. A zero amount clears the entry.
func (st *State) approve(store adt.Store, holder, spender addr.Address, amount abi.TokenAmount) error {
	allowances := adt.AsMap(store, st.Allowances)
	key := AllowanceKey(holder, spender)
	if amount.IsZero() {
		var prior abi.TokenAmount
		if found, err := allowances.Get(key, &prior); err != nil {
			return err
		} else if found {
			if err := allowances.Delete(key); err != nil {
				return err
			}
		}
	} else {
		if err := allowances.Put(key, &amount); err != nil {
			return err
		}
	}
	st.Allowances = allowances.Root()
	return nil
}

// Debits an allowance ahead of a delegated transfer. Fails if the remaining
// allowance is below the requested amount.
func (st *State) debitAllowance(store adt.Store, holder, spender addr.Address, amount abi.TokenAmount) error {
	remaining, err := st.Allowance(store, holder, spender)
	if err != nil {
		return err
	}
	if remaining.LessThan(amount) {
		return exitcode.ErrForbidden.Wrapf("allowance %v of %v for %v too low for transfer of %v", remaining, holder, spender, amount)
	}
	return st.approve(store, holder, spender, big.Sub(remaining, amount))
}
