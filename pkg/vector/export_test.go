package vector

// SetAbort swaps the process abort hook and returns a func restoring it.
func SetAbort(fn func(reason string)) (restore func()) {
	prev := abort
	abort = fn
	return func() { abort = prev }
}
