package connectivity

import (
	"context"
	"net"
	"time"
)

// Oracle reports whether the central server is currently reachable. The
// answer is a hint, not a guarantee: a true result can still be followed by a
// failed remote call, and callers must handle that without surfacing it.
type Oracle interface {
	IsConnected() bool
}

// Monitor probes the server address with a short TCP dial. IsConnected
// re-checks at call time instead of caching a reading, and Watch emits a
// notification whenever the observed state flips.
type Monitor struct {
	addr    string
	timeout time.Duration
}

// NewMonitor creates a monitor probing the given host:port
func NewMonitor(addr string, timeout time.Duration) *Monitor {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Monitor{addr: addr, timeout: timeout}
}

// IsConnected dials the server address and reports whether it answered
func (m *Monitor) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", m.addr, m.timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Watch probes on the given interval and sends the new state on the returned
// channel each time reachability flips. The channel is closed when ctx is
// cancelled.
func (m *Monitor) Watch(ctx context.Context, interval time.Duration) <-chan bool {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	changes := make(chan bool, 1)
	go func() {
		defer close(changes)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := m.IsConnected()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				state := m.IsConnected()
				if state == last {
					continue
				}
				last = state
				select {
				case changes <- state:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return changes
}

// Static is a fixed-answer oracle, useful for forcing offline mode and in
// tests.
type Static bool

// IsConnected returns the fixed answer
func (s Static) IsConnected() bool { return bool(s) }
