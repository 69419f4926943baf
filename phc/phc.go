// Package phc encodes and decodes the Argon2 PHC string format:
//
//	$argon2<type>$v=<version>$m=<memory>,t=<time>,p=<parallelism>$<salt>$<tag>
//
// The version field is omitted for version 0x10. Base64 fields use the
// standard alphabet without padding, matching the C reference
// implementation's encoding.c byte for byte. This package has no dependency
// on the argon2 root package or internal/core, so it stays usable as a
// standalone PHC codec.
package phc

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Type names the Argon2 variant as it appears in the PHC string.
type Type string

const (
	TypeD  Type = "argon2d"
	TypeI  Type = "argon2i"
	TypeID Type = "argon2id"
)

// Params holds every field the PHC string carries.
type Params struct {
	Type        Type
	Version     uint32
	MemoryKiB   uint32
	Time        uint32
	Parallelism uint32
	Salt        []byte
	Tag         []byte
}

var b64 = base64.RawStdEncoding

// Encode renders p as a PHC string. Version 0x10 predates the "v=" segment
// and omits it.
func Encode(p Params) string {
	var b strings.Builder
	b.WriteByte('$')
	b.WriteString(string(p.Type))
	if p.Version != 0x10 {
		b.WriteString("$v=")
		b.WriteString(strconv.FormatUint(uint64(p.Version), 10))
	}
	b.WriteString("$m=")
	b.WriteString(strconv.FormatUint(uint64(p.MemoryKiB), 10))
	b.WriteString(",t=")
	b.WriteString(strconv.FormatUint(uint64(p.Time), 10))
	b.WriteString(",p=")
	b.WriteString(strconv.FormatUint(uint64(p.Parallelism), 10))
	b.WriteByte('$')
	b.WriteString(b64.EncodeToString(p.Salt))
	b.WriteByte('$')
	b.WriteString(b64.EncodeToString(p.Tag))
	return b.String()
}

// EncodedLen returns the length Encode would produce for the given sizes
// without performing the base64 encoding, useful for callers sizing a
// buffer up front.
func EncodedLen(typ Type, version uint32, time, memory, parallelism uint32, saltLen, tagLen int) int {
	n := len("$") + len(typ)
	if version != 0x10 {
		n += len("$v=") + decLen(version)
	}
	n += len("$m=") + decLen(memory)
	n += len(",t=") + decLen(time)
	n += len(",p=") + decLen(parallelism)
	n += len("$") + b64.EncodedLen(saltLen)
	n += len("$") + b64.EncodedLen(tagLen)
	return n
}

func decLen(v uint32) int {
	return len(strconv.FormatUint(uint64(v), 10))
}

// Decode parses an Argon2 PHC string. Salt and Tag are returned as freshly
// allocated slices; callers who want a size ceiling should check len(Salt)/
// len(Tag) themselves, since Go slices don't need a pre-sized buffer the way
// the C reference's decode-into-caller-buffer API does.
//
// Decoding is strict: the type must match one of
// argon2d/argon2i/argon2id, the version field is optional (absence means
// 0x10), every decimal field must be in canonical form (no leading zeros
// except a lone "0") and fit in 32 bits, and nothing may follow the final
// base64 field.
func Decode(s string) (Params, error) {
	var p Params

	rest, typ, err := cutType(s)
	if err != nil {
		return p, err
	}
	p.Type = typ

	rest, version, err := cutVersion(rest)
	if err != nil {
		return p, err
	}
	p.Version = version

	rest, err = expectPrefix(rest, "$m=")
	if err != nil {
		return p, err
	}
	rest, p.MemoryKiB, err = cutDecimal(rest, ",")
	if err != nil {
		return p, fmt.Errorf("phc: bad m= field: %w", err)
	}

	rest, err = expectPrefix(rest, "t=")
	if err != nil {
		return p, err
	}
	rest, p.Time, err = cutDecimal(rest, ",")
	if err != nil {
		return p, fmt.Errorf("phc: bad t= field: %w", err)
	}

	rest, err = expectPrefix(rest, "p=")
	if err != nil {
		return p, err
	}
	// cutDecimal with sep "$" consumes through the "$" that separates the
	// parameter block from the salt field, leaving rest positioned at the
	// start of <salt>$<tag>.
	rest, p.Parallelism, err = cutDecimal(rest, "$")
	if err != nil {
		return p, fmt.Errorf("phc: bad p= field: %w", err)
	}

	rest, saltField, ok := cutField(rest, "$")
	if !ok {
		return p, fmt.Errorf("phc: missing salt/tag separator")
	}
	p.Salt, err = b64.DecodeString(saltField)
	if err != nil {
		return p, fmt.Errorf("phc: bad salt encoding: %w", err)
	}

	if rest == "" {
		return p, fmt.Errorf("phc: missing tag field")
	}
	p.Tag, err = b64.DecodeString(rest)
	if err != nil {
		return p, fmt.Errorf("phc: bad tag encoding: %w", err)
	}

	return p, nil
}

func cutType(s string) (rest string, typ Type, err error) {
	for _, t := range []Type{TypeID, TypeD, TypeI} {
		prefix := "$" + string(t)
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix):], t, nil
		}
	}
	return "", "", fmt.Errorf("phc: unrecognized type prefix")
}

// cutVersion consumes an optional "$v=<n>" segment, leaving the "$" that
// starts the following "$m=..." segment intact in rest so the caller can
// always expect a leading "$m=" regardless of whether a version was present.
func cutVersion(s string) (rest string, version uint32, err error) {
	if !strings.HasPrefix(s, "$v=") {
		return s, 0x10, nil
	}
	digits := s[len("$v="):]
	i := strings.IndexByte(digits, '$')
	if i < 0 {
		return "", 0, fmt.Errorf("phc: missing segment after v=")
	}
	_, version, err = cutDecimal(digits[:i]+"$", "$")
	if err != nil {
		return "", 0, fmt.Errorf("phc: bad v= field: %w", err)
	}
	return digits[i:], version, nil
}

func expectPrefix(s, prefix string) (string, error) {
	if !strings.HasPrefix(s, prefix) {
		return "", fmt.Errorf("phc: expected %q", prefix)
	}
	return s[len(prefix):], nil
}

// cutField splits s at the first occurrence of sep, requiring a match.
func cutField(s, sep string) (rest, field string, ok bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[i+len(sep):], s[:i], true
}

// cutDecimal reads a minimal (no leading-zero, except a lone "0") decimal
// u32 from the start of s up to the next occurrence of sep, returning the
// remainder starting just after sep.
func cutDecimal(s, sep string) (rest string, v uint32, err error) {
	i := strings.Index(s, sep)
	if i < 0 {
		return "", 0, fmt.Errorf("expected %q", sep)
	}
	digits := s[:i]
	if digits == "" {
		return "", 0, fmt.Errorf("empty decimal field")
	}
	if len(digits) > 1 && digits[0] == '0' {
		return "", 0, fmt.Errorf("leading zero in decimal field %q", digits)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return "", 0, fmt.Errorf("non-decimal character in %q", digits)
		}
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("decimal field %q out of range: %w", digits, err)
	}
	return s[i+len(sep):], uint32(n), nil
}
