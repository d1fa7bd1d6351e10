// Package common also provides small utility helpers for secure memory
// handling of user-entered secrets.
package common

// WipeByteArray overwrites the provided buffer with zeroes. It is used to
// clear passwords from memory as soon as they are no longer needed.
// Safe to call with a nil slice.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
