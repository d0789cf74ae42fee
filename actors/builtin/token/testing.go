package token

import (
	abi "github.com/tokenvest/vesting-actors/actors/abi"
	big "github.com/tokenvest/vesting-actors/actors/abi/big"
	builtin "github.com/tokenvest/vesting-actors/actors/builtin"
	adt "github.com/tokenvest/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	Supply         abi.TokenAmount
	HolderCount    int
	AllowanceCount int
}

// Checks internal invariants of token ledger state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(st.Supply.Sign() > 0, "token supply %v is not positive", st.Supply)

	// every recorded balance is positive and the ledger sums to the supply
	balances := adt.AsMap(store, st.Balances)
	total := big.Zero()
	holders := 0
	var balance abi.TokenAmount
	err := balances.ForEach(&balance, func(key string) error {
		acc.Require(balance.Sign() > 0, "balance at %x is not positive: %v", key, balance)
		total = big.Add(total, balance)
		holders++
		return nil
	})
	if err != nil {
		return nil, acc, err
	}
	acc.Require(total.Equals(st.Supply), "sum of balances %v does not equal supply %v", total, st.Supply)

	allowances := adt.AsMap(store, st.Allowances)
	allowanceCount := 0
	var allowance abi.TokenAmount
	err = allowances.ForEach(&allowance, func(key string) error {
		acc.Require(allowance.Sign() > 0, "allowance at %x is not positive: %v", key, allowance)
		allowanceCount++
		return nil
	})
	if err != nil {
		return nil, acc, err
	}

	return &StateSummary{
		Supply:         st.Supply,
		HolderCount:    holders,
		AllowanceCount: allowanceCount,
	}, acc, nil
}
