package vesting

import (
	"github.com/tokenvest/vesting-actors/actors/runtime/exitcode"
)

// Exit codes specific to the vesting actor, continuing the range after the
// codes common to all actors.
const (
	// A grant already exists for the beneficiary and asset pair.
	ErrGrantExists = exitcode.ExitCode(32)
	// The cliff epoch has not been reached.
	ErrCliffNotReached = exitcode.ExitCode(33)
	// No units are releasable, including when the grant is fully drained.
	ErrNothingToRelease = exitcode.ExitCode(34)
	// The grant was created without the revocable flag.
	ErrNotRevocable = exitcode.ExitCode(35)
	// The grant has already been revoked.
	ErrAlreadyRevoked = exitcode.ExitCode(36)
	// Every unit has vested, leaving nothing to revoke.
	ErrFullyVested = exitcode.ExitCode(37)
)
