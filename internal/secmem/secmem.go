// Package secmem scrubs and pins buffers that hold credentials.
package secmem

// Zero overwrites b with zeroes.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Lock pins b in RAM so it is not written to swap. It is best-effort:
// callers should log and continue on error.
func Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return lock(b)
}

// Unlock releases a pin taken by Lock.
func Unlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unlock(b)
}
