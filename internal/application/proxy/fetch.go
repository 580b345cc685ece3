package proxy

import (
	"log"

	"github.com/softcrates/fieldsync/pkg/connectivity"
)

// Fetch runs a remote-first read with local fallback. Connectivity is probed
// at call time; when the device is offline the remote call is skipped
// entirely. A remote failure is logged and swallowed, and the local source
// answers instead. Local failures always propagate: with no source left to
// try, the caller has to see the error.
func Fetch[T any](oracle connectivity.Oracle, op string, remote func() (T, error), local func() (T, error)) (T, error) {
	if oracle.IsConnected() {
		value, err := remote()
		if err == nil {
			return value, nil
		}
		log.Printf("[PROXY] %s: remote failed, falling back to local: %v", op, err)
	}
	return local()
}
