package vesting

import (
	abi "github.com/tokenvest/vesting-actors/actors/abi"
	big "github.com/tokenvest/vesting-actors/actors/abi/big"
	builtin "github.com/tokenvest/vesting-actors/actors/builtin"
	adt "github.com/tokenvest/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	GrantCount   int
	RevokedCount int
	// Sum of per-grant custody, the amount the actor's ledger holding must cover.
	TotalVaultBalance abi.TokenAmount
}

// Checks internal invariants of vesting state.
func CheckStateInvariants(st *State, store adt.Store) (*StateSummary, *builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}

	grants := adt.AsMap(store, st.Grants)
	grantCount := 0
	revokedCount := 0
	totalVault := big.Zero()

	var grant Grant
	err := grants.ForEach(&grant, func(key string) error {
		acc := acc.WithPrefix("grant %x: ", key)

		acc.Require(grant.Duration > 0, "duration %d is not positive", grant.Duration)
		acc.Require(grant.TotalDeposited.Sign() > 0, "total deposited %v is not positive", grant.TotalDeposited)
		acc.Require(grant.Released.Sign() >= 0, "released %v is negative", grant.Released)
		acc.Require(grant.Released.LessThanEqual(grant.TotalDeposited),
			"released %v exceeds total deposited %v", grant.Released, grant.TotalDeposited)
		acc.Require(grant.VaultBalance.Sign() >= 0, "vault balance %v is negative", grant.VaultBalance)
		acc.Require(grant.Revocable || !grant.Revoked, "unrevocable grant marked revoked")

		retained := big.Add(grant.Released, grant.VaultBalance)
		if grant.Revoked {
			acc.Require(retained.LessThanEqual(grant.TotalDeposited),
				"released %v plus vault balance %v exceeds total deposited %v after revocation",
				grant.Released, grant.VaultBalance, grant.TotalDeposited)
		} else {
			acc.Require(retained.Equals(grant.TotalDeposited),
				"released %v plus vault balance %v does not equal total deposited %v",
				grant.Released, grant.VaultBalance, grant.TotalDeposited)
		}

		if grant.Revoked {
			revokedCount++
		}
		totalVault = big.Add(totalVault, grant.VaultBalance)
		grantCount++
		return nil
	})
	if err != nil {
		return nil, acc, err
	}

	return &StateSummary{
		GrantCount:        grantCount,
		RevokedCount:      revokedCount,
		TotalVaultBalance: totalVault,
	}, acc, nil
}
