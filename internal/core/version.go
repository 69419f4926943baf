package core

// Argon2 version numbers. 0x10 predates the "version 1.3" XOR feed-forward
// rule; 0x13 is the current/default version.
const (
	Version0x10 uint32 = 0x10
	Version0x13 uint32 = 0x13
)
