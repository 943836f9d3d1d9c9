// Package wt3000 provides a high-level driver for the Yokogawa WT3000 power
// analyzer over a bulk byte transport.
//
// # Overview
//
// The Analyzer composes GPIB command lines, runs the query/response exchange
// over an injected Transport, and keeps the session state the protocol
// depends on: the numeric format, the remote/verbose/header/overlap flags,
// and the logging verbosity.
//
// # Basic Usage
//
//	dev, err := usb.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	a := wt3000.New()
//	a.SetTransport(dev)
//
//	ctx := context.Background()
//	if err := a.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := a.Identify(ctx)
//	fmt.Println(id) // "YOKOGAWA,WT3000,91234,F1.05"
//
// # Reading Measurements
//
// Select the numeric format once, then query values; the session's format
// drives decoding:
//
//	if err := a.SetNumericFormat(ctx, protocol.FormatASCII); err != nil {
//	    log.Fatal(err)
//	}
//	values, err := a.GetNumericValuesAsFloats(ctx)
//
// # Configuration Options
//
//	a := wt3000.New(
//	    wt3000.WithLogger(wtlog.NewConsole("wt3000")),
//	    wt3000.WithLogLevel(wt3000.LevelInfo),
//	    wt3000.WithReadTimeout(2*time.Second),
//	    wt3000.WithResponseBufferSize(4096),
//	)
//
// # Error Handling
//
// Failures surface to the immediate caller; nothing is retried or swallowed:
//   - ErrNotConnected: no transport bound yet
//   - protocol.InvalidCommandError: malformed request, never sent
//   - TransportError: the channel failed mid-operation
//   - TruncatedError: response ended before the terminator (partial bytes
//     included)
//   - protocol.DecodeError: payload unparseable under the session format
//
// # Hardware Independence
//
// This package does NOT open or own hardware. Callers provide a Transport;
// the usb package implements one for the instrument's fixed VID/PID and bulk
// endpoints, and tests use in-memory mocks.
package wt3000
