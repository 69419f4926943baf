// Package argon2 implements the Argon2 memory-hard password-hashing /
// key-derivation function (RFC 9106) in its d, i, and id variants, built on
// a from-scratch BLAKE2b hash, plus the PHC encoded-string format used by
// every published Argon2 hash.
//
// The memory-filling engine lives in internal/core (blocks, the compression
// function, reference-index derivation, the lane scheduler, and
// finalization); the BLAKE2b primitive and its H' extension live in
// internal/blake2b; PHC string encode/decode lives in the standalone phc
// package. This package is the public driver: it validates a Params value,
// invokes the core, and translates the result into the encoded string /
// verification surface callers want.
package argon2

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/opd-ai/go-argon2/internal/core"
	"github.com/opd-ai/go-argon2/phc"
)

// DefaultSaltLen is a reasonable salt size for GenerateSalt/Hash's
// auto-salt path; it satisfies MinSaltLen with room to spare.
const DefaultSaltLen = 16

// Key derives a tag from password under p, returning the raw bytes (no PHC
// encoding). All three variants go through here; p.Type selects the
// indexing rule.
//
// The returned error wraps an ErrorCode; callers that want the stable
// numeric code can use errors.As.
func Key(password []byte, p Params) ([]byte, error) {
	if code := p.validate(len(password)); code != ErrOK {
		return nil, fmt.Errorf("argon2: invalid parameters: %w", code)
	}
	if len(p.Salt) == 0 {
		return nil, fmt.Errorf("argon2: invalid parameters: %w", ErrSaltTooShort)
	}

	ctx := core.Context{
		Variant:   p.Type.variant(),
		Version:   uint32(p.resolvedVersion()),
		Passes:    p.Time,
		MemoryKiB: p.Memory,
		Lanes:     p.Parallelism,
		Threads:   p.effectiveThreads(),
		KeyLen:    p.KeyLen,
		NoWipe:    p.NoWipe,
		Input: core.Input{
			Password: password,
			Salt:     p.Salt,
			Secret:   p.Secret,
			AD:       p.AD,
		},
	}

	tag, err := core.Derive(ctx)
	if p.WipeSecret {
		wipeBytes(p.Secret)
	}
	if p.WipePassword {
		wipeBytes(password)
	}
	if err != nil {
		return nil, fmt.Errorf("argon2: %w: %v", ErrMemoryAllocationError, err)
	}
	return tag, nil
}

// Hash derives a key and PHC-encodes it, generating a DefaultSaltLen-byte
// random salt via crypto/rand when p.Salt is nil.
func Hash(password []byte, p Params) (string, error) {
	if p.Salt == nil {
		salt, err := GenerateSalt(DefaultSaltLen)
		if err != nil {
			return "", err
		}
		p.Salt = salt
	}

	tag, err := Key(password, p)
	if err != nil {
		return "", err
	}

	return phc.Encode(phc.Params{
		Type:        phcType(p.Type),
		Version:     uint32(p.resolvedVersion()),
		MemoryKiB:   p.Memory,
		Time:        p.Time,
		Parallelism: p.Parallelism,
		Salt:        p.Salt,
		Tag:         tag,
	}), nil
}

// Verify decodes an encoded PHC string, re-derives the tag for password
// under the decoded parameters, and reports whether it matches in constant
// time. The thread count is not part of the PHC string (the tag does not
// depend on it), so Verify re-derives with Threads==Parallelism.
func Verify(password []byte, encoded string) (bool, error) {
	decoded, err := phc.Decode(encoded)
	if err != nil {
		return false, fmt.Errorf("argon2: %w: %v", ErrDecodingFail, err)
	}

	typ, err := typeFromPHC(decoded.Type)
	if err != nil {
		return false, err
	}

	p := Params{
		Time:        decoded.Time,
		Memory:      decoded.MemoryKiB,
		Parallelism: decoded.Parallelism,
		KeyLen:      uint32(len(decoded.Tag)),
		Type:        typ,
		Version:     Version(decoded.Version),
		Salt:        decoded.Salt,
	}

	tag, err := Key(password, p)
	if err != nil {
		return false, err
	}

	return ConstantTimeCompare(tag, decoded.Tag), nil
}

// ConstantTimeCompare reports whether a and b are equal using a branch-free
// XOR accumulation independent of where the first mismatch occurs.
// subtle.ConstantTimeCompare already implements exactly that, so no
// hand-rolled loop duplicates it.
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// GenerateSalt returns n cryptographically random bytes suitable for use
// as Params.Salt. internal/core only ever consumes a caller-supplied salt,
// so this helper lives at the package boundary.
func GenerateSalt(n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("argon2: generate salt: %w", err)
	}
	return salt, nil
}

func phcType(t Type) phc.Type {
	switch t {
	case TypeD:
		return phc.TypeD
	case TypeI:
		return phc.TypeI
	default:
		return phc.TypeID
	}
}

func typeFromPHC(t phc.Type) (Type, error) {
	switch t {
	case phc.TypeD:
		return TypeD, nil
	case phc.TypeI:
		return TypeI, nil
	case phc.TypeID:
		return TypeID, nil
	default:
		return 0, fmt.Errorf("argon2: %w: unrecognized type %q", ErrIncorrectType, t)
	}
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
