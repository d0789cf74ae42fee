package adt_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvest/vesting-actors/actors/abi"
	"github.com/tokenvest/vesting-actors/actors/abi/big"
	"github.com/tokenvest/vesting-actors/actors/util/adt"
	"github.com/tokenvest/vesting-actors/support/mock"
	tutil "github.com/tokenvest/vesting-actors/support/testing"
)

func TestMapPutGetDelete(t *testing.T) {
	rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
	store := adt.AsStore(rt)

	m, err := adt.MakeEmptyMap(store)
	require.NoError(t, err)

	key := adt.AddrKey(tutil.NewIDAddr(t, 100))
	value := abi.NewTokenAmount(42)

	var out abi.TokenAmount
	found, err := m.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Put(key, &value))

	found, err = m.Get(key, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, value, out)

	keys, err := m.CollectKeys()
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	require.NoError(t, m.Delete(key))
	found, err = m.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBalanceTable(t *testing.T) {
	t.Run("Add creates and accumulates", func(t *testing.T) {
		addr := tutil.NewIDAddr(t, 100)
		rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
		store := adt.AsStore(rt)
		emptyMap, err := adt.MakeEmptyMap(store)
		require.NoError(t, err)

		bt := adt.AsBalanceTable(store, emptyMap.Root())

		has, err := bt.Has(addr)
		require.NoError(t, err)
		assert.False(t, has)

		// absent entries read as zero
		amount, err := bt.Get(addr)
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), amount)

		require.NoError(t, bt.Add(addr, abi.NewTokenAmount(10)))
		require.NoError(t, bt.Add(addr, abi.NewTokenAmount(20)))

		amount, err = bt.Get(addr)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(30), amount)

		total, err := bt.Total()
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(30), total)
	})

	t.Run("Add to zero deletes the entry", func(t *testing.T) {
		addr := tutil.NewIDAddr(t, 100)
		rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
		store := adt.AsStore(rt)
		emptyMap, err := adt.MakeEmptyMap(store)
		require.NoError(t, err)

		bt := adt.AsBalanceTable(store, emptyMap.Root())
		require.NoError(t, bt.Add(addr, abi.NewTokenAmount(10)))
		require.NoError(t, bt.Add(addr, abi.NewTokenAmount(-10)))

		has, err := bt.Has(addr)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("MustSubtract fails on shortfall without mutation", func(t *testing.T) {
		addr := tutil.NewIDAddr(t, 100)
		rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
		store := adt.AsStore(rt)
		emptyMap, err := adt.MakeEmptyMap(store)
		require.NoError(t, err)

		bt := adt.AsBalanceTable(store, emptyMap.Root())
		require.NoError(t, bt.Add(addr, abi.NewTokenAmount(10)))

		err = bt.MustSubtract(addr, abi.NewTokenAmount(11))
		assert.Error(t, err)

		amount, err := bt.Get(addr)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(10), amount)

		require.NoError(t, bt.MustSubtract(addr, abi.NewTokenAmount(10)))
		amount, err = bt.Get(addr)
		require.NoError(t, err)
		assert.Equal(t, big.Zero(), amount)
	})

	t.Run("SubtractWithMinimum stops at the floor", func(t *testing.T) {
		addr := tutil.NewIDAddr(t, 100)
		rt := mock.NewBuilder(context.Background(), address.Undef).Build(t)
		store := adt.AsStore(rt)
		emptyMap, err := adt.MakeEmptyMap(store)
		require.NoError(t, err)

		bt := adt.AsBalanceTable(store, emptyMap.Root())
		require.NoError(t, bt.Add(addr, abi.NewTokenAmount(10)))

		subtracted, err := bt.SubtractWithMinimum(addr, abi.NewTokenAmount(8), abi.NewTokenAmount(5))
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(5), subtracted)

		amount, err := bt.Get(addr)
		require.NoError(t, err)
		assert.Equal(t, abi.NewTokenAmount(5), amount)
	})
}
