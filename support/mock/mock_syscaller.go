package mock

import (
	"github.com/minio/blake2b-simd"

	"github.com/tokenvest/vesting-actors/actors/runtime"
)

type HasherFunc func(data []byte) [32]byte

type syscaller struct {
	Hasher HasherFunc
}

func (s *syscaller) HashBlake2b(data []byte) [32]byte {
	if s.Hasher == nil {
		return blake2b.Sum256(data)
	}
	return s.Hasher(data)
}

var _ runtime.Syscalls = &syscaller{}
