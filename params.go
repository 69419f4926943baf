package argon2

import (
	"math"
	"math/bits"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Type selects the Argon2 reference-indexing variant.
type Type int

const (
	TypeD Type = iota
	TypeI
	TypeID
)

func (t Type) String() string {
	switch t {
	case TypeD:
		return "argon2d"
	case TypeI:
		return "argon2i"
	case TypeID:
		return "argon2id"
	default:
		return "argon2?"
	}
}

func (t Type) variant() core.Variant {
	switch t {
	case TypeD:
		return core.VariantD
	case TypeI:
		return core.VariantI
	default:
		return core.VariantID
	}
}

// Version selects the Argon2 version. Version13 is recommended; Version10
// is accepted for backward compatibility and changes the fill loop's XOR
// feed-forward rule in the fill loop and omits the PHC "v=" field.
type Version uint32

const (
	Version10 Version = 0x10
	Version13 Version = 0x13
)

// Parameter range limits, matching the C reference implementation's
// ARGON2_MIN_*/ARGON2_MAX_* macros in argon2.h.
const (
	MinLanes uint32 = 1
	MaxLanes uint32 = 0xFFFFFF

	MinThreads uint32 = 1
	MaxThreads uint32 = 0xFFFFFF

	MinOutLen uint32 = 4
	MaxOutLen uint32 = 0xFFFFFFFF

	MinTime uint32 = 1
	MaxTime uint32 = 0xFFFFFFFF

	MinSaltLen uint32 = 8

	MinPwdLen uint32 = 0
	MaxPwdLen uint32 = 0xFFFFFFFF

	MinADLen uint32 = 0
	MaxADLen uint32 = 0xFFFFFFFF

	MinSecretLen uint32 = 0
	MaxSecretLen uint32 = 0xFFFFFFFF
)

// maxMemoryBits is min(32, ptrbits-10-1), the ARGON2_MAX_MEMORY_BITS
// formula from the reference header: the address space in KiB-sized units,
// halved.
func maxMemoryBits() uint32 {
	b := uint32(bits.UintSize) - 10 - 1
	if b > 32 {
		b = 32
	}
	return b
}

// MinMemory is the absolute memory-cost floor (2*ARGON2_SYNC_POINTS blocks,
// per the reference header), independent of lane count. A memory cost below
// 8*lanes is not a validation failure; the matrix shaping rounds it up to
// 8*lanes instead (see internal/core's laneLength).
const MinMemory uint32 = 2 * 4

func maxMemoryKiB() uint32 {
	bitsN := maxMemoryBits()
	if bitsN >= 32 {
		return math.MaxUint32
	}
	return uint32(1) << bitsN
}

// Params collects the cost parameters plus the Type/Version selecting the
// variant and wire format. Salt/Secret/AD are optional; Salt is
// auto-generated by Hash when nil.
type Params struct {
	// Time is t_cost, the number of passes over the memory matrix.
	Time uint32
	// Memory is m_cost in KiB.
	Memory uint32
	// Parallelism is the number of lanes. Threads defaults to Parallelism
	// when zero.
	Parallelism uint32
	// Threads caps in-flight lane workers; Threads==0 means
	// Threads=Parallelism. Effective concurrency is min(Threads, Parallelism).
	Threads uint32
	// KeyLen is the output tag length in bytes.
	KeyLen uint32
	// Type selects d/i/id.
	Type Type
	// Version selects 0x10 or 0x13; the zero value is treated as Version13.
	Version Version

	// Salt, Secret, and AD are borrowed for the duration of a single call;
	// callers wanting the secret zeroed after absorption should use
	// WipeSecret.
	Salt   []byte
	Secret []byte
	AD     []byte

	// WipeSecret zeroes Secret in place after it has been absorbed into the
	// initial hash, mirroring the reference ARGON2_FLAG_CLEAR_SECRET.
	WipeSecret bool

	// WipePassword zeroes the password slice passed to Key/Hash once it has
	// been absorbed, mirroring ARGON2_FLAG_CLEAR_PASSWORD. Verify takes no
	// Params and never wipes its password argument.
	WipePassword bool

	// NoWipe disables zeroing the memory matrix before release. Wiping the
	// matrix is the default. Intermediate values held outside the matrix
	// (H0, the lane-XOR block fed to the final H') are not zeroed either way.
	NoWipe bool
}

// resolvedVersion returns p.Version, defaulting the zero value to Version13.
func (p *Params) resolvedVersion() Version {
	if p.Version == 0 {
		return Version13
	}
	return p.Version
}

// validate checks every field against the ranges above. It never
// allocates; a caller gets an ErrorCode before any memory touches the
// matrix.
func (p *Params) validate(pwdLen int) ErrorCode {
	switch p.Type {
	case TypeD, TypeI, TypeID:
	default:
		return ErrIncorrectType
	}

	v := p.resolvedVersion()
	if v != Version10 && v != Version13 {
		return ErrIncorrectParameter
	}

	if p.Parallelism < MinLanes {
		return ErrLanesTooFew
	}
	if p.Parallelism > MaxLanes {
		return ErrLanesTooMany
	}

	threads := p.Threads
	if threads == 0 {
		threads = p.Parallelism
	}
	if threads < MinThreads {
		return ErrThreadsTooFew
	}
	if threads > MaxThreads {
		return ErrThreadsTooMany
	}

	if p.Time < MinTime {
		return ErrTimeTooSmall
	}
	if p.Time > MaxTime {
		return ErrTimeTooLarge
	}

	if p.Memory < MinMemory {
		return ErrMemoryTooLittle
	}
	if p.Memory > maxMemoryKiB() {
		return ErrMemoryTooMuch
	}

	if p.KeyLen < MinOutLen {
		return ErrOutputTooShort
	}
	if p.KeyLen > MaxOutLen {
		return ErrOutputTooLong
	}

	if uint32(pwdLen) < MinPwdLen {
		return ErrPwdTooShort
	}
	if uint64(pwdLen) > uint64(MaxPwdLen) {
		return ErrPwdTooLong
	}

	if len(p.Salt) > 0 && uint32(len(p.Salt)) < MinSaltLen {
		return ErrSaltTooShort
	}

	if len(p.Secret) > 0 && uint32(len(p.Secret)) > MaxSecretLen {
		return ErrSecretTooLong
	}
	if len(p.AD) > 0 && uint32(len(p.AD)) > MaxADLen {
		return ErrADTooLong
	}

	return ErrOK
}

func (p *Params) effectiveThreads() uint32 {
	if p.Threads == 0 {
		return p.Parallelism
	}
	return p.Threads
}
