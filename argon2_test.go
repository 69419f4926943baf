package argon2

import (
	"encoding/hex"
	"testing"
)

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// TestKeyRFC9106Vectors exercises the public Key() entry point against the
// same RFC 9106 reference vectors internal/core validates directly, making
// sure parameter translation (Type/Version/Threads) doesn't change the tag.
func TestKeyRFC9106Vectors(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		wantHex string
	}{
		{"argon2d", TypeD, "512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb"},
		{"argon2i", TypeI, "c814d9d1dc7f37aa13f0d77f2494bda1c8de6b016dd388d29952a4c4672b6ce8"},
		{"argon2id", TypeID, "0d640df58d78766c08c037a34a8b53c9d01ef0452d75b65eb52520e96b01e659"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.wantHex)
			if err != nil {
				t.Fatalf("bad test vector: %v", err)
			}

			p := Params{
				Time:        3,
				Memory:      32,
				Parallelism: 4,
				Threads:     4,
				KeyLen:      32,
				Type:        tt.typ,
				Version:     Version13,
				Salt:        bytesOf(0x02, 16),
				Secret:      bytesOf(0x03, 8),
				AD:          bytesOf(0x04, 12),
			}

			got, err := Key(bytesOf(0x01, 32), p)
			if err != nil {
				t.Fatalf("Key() error: %v", err)
			}
			if hex.EncodeToString(got) != hex.EncodeToString(want) {
				t.Errorf("Key() = %x, want %x", got, want)
			}
		})
	}
}

// TestHashKnownEncodedVectors checks the encoded strings published with
// the C reference's test suite: the same underlying parameters encoded
// under version 0x10 (no "v=" field) and 0x13.
func TestHashKnownEncodedVectors(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		want    string
	}{
		{"v0x10", Version10, "$argon2i$m=65536,t=2,p=1$c29tZXNhbHQ$9sTbSlTio3Biev89thdrlKKiCaYsjjYVJxGAL3swxpQ"},
		{"v0x13", Version13, "$argon2i$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{
				Time:        2,
				Memory:      65536,
				Parallelism: 1,
				KeyLen:      32,
				Type:        TypeI,
				Version:     tt.version,
				Salt:        []byte("somesalt"),
			}

			got, err := Hash([]byte("password"), p)
			if err != nil {
				t.Fatalf("Hash() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Hash() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestVerifyKnownEncodedVector verifies a known encoded string against the
// matching password and against a wrong one.
func TestVerifyKnownEncodedVector(t *testing.T) {
	const encoded = "$argon2i$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	ok, err := Verify([]byte("password"), encoded)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !ok {
		t.Error("Verify() = false, want true for the matching password")
	}

	ok, err = Verify([]byte("wrong password"), encoded)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if ok {
		t.Error("Verify() = true, want false for a mismatched password")
	}
}

func TestHashVerifyRoundTrip(t *testing.T) {
	p := Params{
		Time:        2,
		Memory:      1 << 12,
		Parallelism: 2,
		KeyLen:      32,
		Type:        TypeID,
		Version:     Version13,
	}

	encoded, err := Hash([]byte("correct horse battery staple"), p)
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	ok, err := Verify([]byte("correct horse battery staple"), encoded)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if !ok {
		t.Error("Verify() = false for a freshly hashed password")
	}

	ok, err = Verify([]byte("incorrect horse"), encoded)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if ok {
		t.Error("Verify() = true for a wrong password")
	}
}

func TestParamsValidateRejectsOutOfRangeFields(t *testing.T) {
	base := Params{
		Time:        1,
		Memory:      1 << 10,
		Parallelism: 1,
		KeyLen:      32,
		Type:        TypeID,
		Version:     Version13,
		Salt:        bytesOf(0x01, 16),
	}

	tests := []struct {
		name   string
		mutate func(*Params)
		want   ErrorCode
	}{
		{"zero time", func(p *Params) { p.Time = 0 }, ErrTimeTooSmall},
		{"zero lanes", func(p *Params) { p.Parallelism = 0 }, ErrLanesTooFew},
		{"too many lanes", func(p *Params) { p.Parallelism = MaxLanes + 1 }, ErrLanesTooMany},
		{"short key", func(p *Params) { p.KeyLen = 1 }, ErrOutputTooShort},
		{"unknown type", func(p *Params) { p.Type = Type(99) }, ErrIncorrectType},
		{"short salt", func(p *Params) { p.Salt = []byte("short") }, ErrSaltTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			if code := p.validate(8); code != tt.want {
				t.Errorf("validate() = %v, want %v", code, tt.want)
			}
		})
	}
}

func TestParamsValidateRoundsUpMemoryRatherThanRejecting(t *testing.T) {
	p := Params{
		Time:        1,
		Memory:      MinMemory, // below 8*lanes for lanes=4, but not a hard floor violation
		Parallelism: 4,
		KeyLen:      32,
		Type:        TypeD,
		Version:     Version13,
		Salt:        bytesOf(0x01, 16),
	}
	if code := p.validate(8); code != ErrOK {
		t.Errorf("validate() = %v, want ErrOK (memory below 8*lanes should round up, not reject)", code)
	}
}

func TestGenerateSaltLength(t *testing.T) {
	salt, err := GenerateSalt(DefaultSaltLen)
	if err != nil {
		t.Fatalf("GenerateSalt() error: %v", err)
	}
	if len(salt) != DefaultSaltLen {
		t.Errorf("len(salt) = %d, want %d", len(salt), DefaultSaltLen)
	}
}

func TestConstantTimeCompare(t *testing.T) {
	a := []byte("abcdef")
	b := []byte("abcdef")
	c := []byte("abcxyz")

	if !ConstantTimeCompare(a, b) {
		t.Error("ConstantTimeCompare() = false for equal slices")
	}
	if ConstantTimeCompare(a, c) {
		t.Error("ConstantTimeCompare() = true for unequal slices")
	}
	if ConstantTimeCompare(a, []byte("short")) {
		t.Error("ConstantTimeCompare() = true for different-length slices")
	}
}

func TestWipeFlagsZeroInputBuffers(t *testing.T) {
	password := []byte("hunter2hunter2")
	secret := []byte("pepper")

	p := Params{
		Time:         1,
		Memory:       8,
		Parallelism:  1,
		KeyLen:       32,
		Type:         TypeID,
		Version:      Version13,
		Salt:         bytesOf(0x01, 16),
		Secret:       secret,
		WipeSecret:   true,
		WipePassword: true,
	}

	if _, err := Key(password, p); err != nil {
		t.Fatalf("Key() error: %v", err)
	}

	for i, b := range password {
		if b != 0 {
			t.Fatalf("password[%d] = %#x after WipePassword, want 0", i, b)
		}
	}
	for i, b := range secret {
		if b != 0 {
			t.Fatalf("secret[%d] = %#x after WipeSecret, want 0", i, b)
		}
	}
}

func TestErrorCodeMessages(t *testing.T) {
	if ErrVerifyMismatch.Error() == "" {
		t.Error("ErrVerifyMismatch.Error() returned an empty message")
	}
	unknown := ErrorCode(-999)
	if unknown.Error() == "" {
		t.Error("unknown ErrorCode.Error() returned an empty message")
	}
}
