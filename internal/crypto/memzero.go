package crypto

import "runtime"

// Wipe overwrites b with zeros. Best-effort only: Go gives no guarantee the
// stores survive optimization, so the function is kept out of inlining and
// the slice is pinned past the loop.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
