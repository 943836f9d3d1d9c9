package wt3000

import "time"

// Transport is the byte channel the analyzer talks through, typically the
// two bulk endpoints of the instrument's USB interface. Implementations are
// provided by the caller; the usb package has one backed by gousb.
//
// The analyzer owns exclusive access to its transport: it never issues two
// operations concurrently, and callers must not share one transport between
// sessions.
type Transport interface {
	// Write sends p to the instrument and returns the number of bytes
	// actually written.
	Write(p []byte) (int, error)

	// Read fills p with up to len(p) bytes from the instrument, blocking
	// until data arrives or the timeout elapses. A timeout of zero or less
	// means the implementation's default bound; it must never mean "block
	// forever".
	Read(p []byte, timeout time.Duration) (int, error)
}
