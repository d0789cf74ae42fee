package builtin

///// Code shared by multiple built-in actors. /////

import (
	"github.com/tokenvest/vesting-actors/actors/runtime"
	exitcode "github.com/tokenvest/vesting-actors/actors/runtime/exitcode"
)

// Propagates a failed send by aborting the current method with the same exit code.
func RequireSuccess(rt runtime.Runtime, e exitcode.ExitCode, msg string, args ...interface{}) {
	if !e.IsSuccess() {
		rt.Abortf(e, msg, args...)
	}
}

// Aborts with a formatted message if err is not nil.
// The provided exit code is used unless the error carries its own (via exitcode.Wrapf),
// in which case the carried code shadows the default.
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		code := exitcode.Unwrap(err, defaultExitCode)
		rt.Abortf(code, msg+": %s", append(args, err)...)
	}
}

// Aborts with an ErrIllegalArgument if predicate is not true.
func RequireParam(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalArgument, msg, args...)
	}
}
