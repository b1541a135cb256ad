package health

import "sync/atomic"

var notReady atomic.Bool

// SetReady flips the readiness gate. The server marks itself not ready at the
// start of graceful shutdown so load balancers drain before connections close.
func SetReady(ready bool) {
	notReady.Store(!ready)
}

func gateOpen() bool {
	return !notReady.Load()
}
