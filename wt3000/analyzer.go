package wt3000

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/moffa90/go-wt3000/protocol"
)

// Analyzer is the stateful protocol session for one WT3000. It composes
// command lines, conducts the query/response exchange over its transport,
// and mirrors the device-side configuration it has set.
//
// An Analyzer is created unbound; every operation fails with ErrNotConnected
// until SetTransport binds it to a channel. Transport ownership stays with
// the caller: the analyzer never opens or closes anything.
//
// Analyzer is not safe for concurrent use. The instrument executes one
// command at a time, so callers running operations from multiple goroutines
// must serialize them externally.
type Analyzer struct {
	transport Transport
	config    Config
	level     LogLevel

	format  protocol.NumericFormat
	remote  bool
	verbose bool
	header  bool
	overlap bool
	eese    bool
}

// New creates an unbound Analyzer with the given options. Bind a transport
// with SetTransport before use.
//
// Example:
//
//	a := wt3000.New(wt3000.WithReadTimeout(2 * time.Second))
//	a.SetTransport(dev)
//	err := a.Connect(ctx)
func New(opts ...Option) *Analyzer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Analyzer{
		config: cfg,
		level:  cfg.LogLevel,
	}
}

// SetTransport binds the analyzer to a transport channel. The transport's
// lifetime is the caller's responsibility.
func (a *Analyzer) SetTransport(t Transport) {
	a.transport = t
}

// Connected reports whether a transport has been bound.
func (a *Analyzer) Connected() bool {
	return a.transport != nil
}

// LogLevel returns the currently set logging verbosity.
func (a *Analyzer) LogLevel() LogLevel {
	return a.level
}

// SetLogLevel sets the logging verbosity to the desired level.
func (a *Analyzer) SetLogLevel(level LogLevel) {
	a.level = level
}

// Connect prepares the device for communication: it clears the status
// registers and switches the instrument to remote mode. Both commands are
// idempotent device-side, so Connect is safe to call again to re-synchronize
// after an error.
func (a *Analyzer) Connect(ctx context.Context) error {
	if err := a.ClearStatus(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := a.SetRemote(ctx, true); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	a.logInfo("connected")
	return nil
}

// Identify queries the instrument model identification string, e.g.
// "YOKOGAWA,WT3000,91234,F1.05".
func (a *Analyzer) Identify(ctx context.Context) (string, error) {
	raw, err := a.query(ctx, protocol.BuildEvent(protocol.CmdIdentify), a.config.ResponseBufferSize)
	if err != nil {
		return "", err
	}
	return trimResponse(raw), nil
}

// ClearStatus clears the standard event register, extended event register,
// and error queue.
func (a *Analyzer) ClearStatus(ctx context.Context) error {
	return a.send(ctx, protocol.BuildEvent(protocol.CmdClearStatus))
}

// SetRemote switches the instrument between remote and local mode.
func (a *Analyzer) SetRemote(ctx context.Context, on bool) error {
	if err := a.sendSet(ctx, protocol.FormatBool(on), protocol.GroupCommunicate, protocol.CommRemote); err != nil {
		return err
	}
	a.remote = on
	return nil
}

// Remote reports the last remote mode set through this session.
func (a *Analyzer) Remote() bool { return a.remote }

// SetVerbose sets whether the instrument returns query responses using full
// spelling.
func (a *Analyzer) SetVerbose(ctx context.Context, on bool) error {
	if err := a.sendSet(ctx, protocol.FormatBool(on), protocol.GroupCommunicate, protocol.CommVerbose); err != nil {
		return err
	}
	a.verbose = on
	return nil
}

// Verbose reports the last verbose mode set through this session.
func (a *Analyzer) Verbose() bool { return a.verbose }

// SetHeader sets whether the instrument adds a header to query responses.
func (a *Analyzer) SetHeader(ctx context.Context, on bool) error {
	if err := a.sendSet(ctx, protocol.FormatBool(on), protocol.GroupCommunicate, protocol.CommHeader); err != nil {
		return err
	}
	a.header = on
	return nil
}

// Header reports the last header mode set through this session.
func (a *Analyzer) Header() bool { return a.header }

// SetOverlap sets the commands that will operate as overlap commands.
func (a *Analyzer) SetOverlap(ctx context.Context, on bool) error {
	if err := a.sendSet(ctx, protocol.FormatBool(on), protocol.GroupCommunicate, protocol.CommOverlap); err != nil {
		return err
	}
	a.overlap = on
	return nil
}

// Overlap reports the last overlap mode set through this session.
func (a *Analyzer) Overlap() bool { return a.overlap }

// SetExtendedEventStatusEnable configures the extended event status enable
// register.
func (a *Analyzer) SetExtendedEventStatusEnable(ctx context.Context, on bool) error {
	if err := a.sendSet(ctx, protocol.FormatBool(on), protocol.GroupStatus, protocol.StatusEESE); err != nil {
		return err
	}
	a.eese = on
	return nil
}

// ExtendedEventStatusEnabled reports the last EESE value set through this
// session.
func (a *Analyzer) ExtendedEventStatusEnabled() bool { return a.eese }

// SetStatusFilter configures which transition of the given status register
// bit produces an event. The register number is device-defined and is
// inserted into the command verbatim.
func (a *Analyzer) SetStatusFilter(ctx context.Context, register string, condition protocol.Transition) error {
	if register == "" {
		return &protocol.InvalidCommandError{Reason: "status filter register must not be empty"}
	}
	token := condition.Token()
	if token == "" {
		return &protocol.InvalidCommandError{
			Reason: fmt.Sprintf("unknown transition condition %d", int(condition)),
		}
	}
	return a.sendSet(ctx, token, protocol.GroupStatus, protocol.StatusFilter+register)
}

// GetInputModule queries the input element type for the given element
// number.
func (a *Analyzer) GetInputModule(ctx context.Context, number string) (string, error) {
	if number == "" {
		return "", &protocol.InvalidCommandError{Reason: "input module number must not be empty"}
	}
	raw, err := a.sendQuery(ctx, a.config.ResponseBufferSize, protocol.GroupInput, protocol.InputModule+number)
	if err != nil {
		return "", err
	}
	return trimResponse(raw), nil
}

// SetVoltageRange sets the voltage measurement range. The value is passed
// through verbatim, e.g. "100V" or "AUTO".
func (a *Analyzer) SetVoltageRange(ctx context.Context, value string) error {
	return a.sendSet(ctx, value, protocol.GroupInput, protocol.InputVoltage, protocol.InputRange)
}

// GetVoltageRange queries the current voltage measurement range.
func (a *Analyzer) GetVoltageRange(ctx context.Context) (string, error) {
	raw, err := a.sendQuery(ctx, a.config.ResponseBufferSize, protocol.GroupInput, protocol.InputVoltage, protocol.InputRange)
	if err != nil {
		return "", err
	}
	return trimResponse(raw), nil
}

// SetCurrentRange sets the current measurement range. The value is passed
// through verbatim.
func (a *Analyzer) SetCurrentRange(ctx context.Context, value string) error {
	return a.sendSet(ctx, value, protocol.GroupInput, protocol.InputCurrent, protocol.InputRange)
}

// GetCurrentRange queries the current measurement range.
func (a *Analyzer) GetCurrentRange(ctx context.Context) (string, error) {
	raw, err := a.sendQuery(ctx, a.config.ResponseBufferSize, protocol.GroupInput, protocol.InputCurrent, protocol.InputRange)
	if err != nil {
		return "", err
	}
	return trimResponse(raw), nil
}

// SetNumericFormat selects the on-wire representation for numeric responses
// and records it as the session's decode format. This is the only place the
// session's format changes; call it before any numeric query whose decoding
// depends on it. Use protocol.ParseNumericFormat to accept textual input at
// the boundary.
func (a *Analyzer) SetNumericFormat(ctx context.Context, format protocol.NumericFormat) error {
	token := format.Token()
	if token == "" {
		return &protocol.InvalidCommandError{
			Reason: fmt.Sprintf("unknown numeric format %d", int(format)),
		}
	}
	if err := a.sendSet(ctx, token, protocol.GroupNumeric, protocol.NumFormat); err != nil {
		return err
	}
	a.format = format
	return nil
}

// NumericFormat returns the session's current numeric format.
func (a *Analyzer) NumericFormat() protocol.NumericFormat {
	return a.format
}

// GetNumericValues queries the current numeric (measurement) data and
// returns the raw payload, for callers needing the untouched bytes. On
// truncation the bytes received so far are returned alongside the error.
func (a *Analyzer) GetNumericValues(ctx context.Context, maxLength int) ([]byte, error) {
	return a.sendQuery(ctx, maxLength, protocol.GroupNumeric, protocol.NumValue)
}

// GetNumericValuesAsFloats queries the current numeric data and decodes it
// under the session's numeric format, one value per reported channel, in the
// instrument's reporting order.
func (a *Analyzer) GetNumericValuesAsFloats(ctx context.Context) ([]float64, error) {
	raw, err := a.GetNumericValues(ctx, a.config.ResponseBufferSize)
	if err != nil {
		return nil, err
	}
	return protocol.DecodeNumericValues(raw, a.format)
}

// sendSet encodes and sends a setting command.
func (a *Analyzer) sendSet(ctx context.Context, param string, segments ...string) error {
	line, err := protocol.BuildSet(param, segments...)
	if err != nil {
		return err
	}
	return a.send(ctx, line)
}

// sendQuery encodes a query command, sends it, and reads the response.
func (a *Analyzer) sendQuery(ctx context.Context, maxLength int, segments ...string) ([]byte, error) {
	line, err := protocol.BuildQuery(segments...)
	if err != nil {
		return nil, err
	}
	return a.query(ctx, line, maxLength)
}

// send writes one encoded command line to the transport.
func (a *Analyzer) send(ctx context.Context, line string) error {
	if a.transport == nil {
		return ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload := []byte(line)
	n, err := a.transport.Write(payload)
	if err != nil {
		a.logError("write failed", "command", strings.TrimRight(line, "\n"), "error", err)
		return &TransportError{Op: "write", Err: err}
	}
	if n < len(payload) {
		return &TransportError{Op: "write", Err: io.ErrShortWrite}
	}

	a.logDebug("sent", "command", strings.TrimRight(line, "\n"))
	return nil
}

// query sends a command line and reads the response until a terminator is
// seen or maxLength bytes have arrived. The read is length-bounded because
// the instrument reports variable-length payloads; an unbounded read on a
// bulk channel can stall indefinitely if the device sends less than
// expected.
//
// With maxLength <= 0 the command is still sent but no read is issued; the
// result is empty and flagged truncated.
func (a *Analyzer) query(ctx context.Context, line string, maxLength int) ([]byte, error) {
	if err := a.send(ctx, line); err != nil {
		return nil, err
	}

	if maxLength <= 0 {
		return nil, &TruncatedError{Max: maxLength}
	}

	buf := make([]byte, maxLength)
	total := 0
	for total < maxLength {
		if err := ctx.Err(); err != nil {
			return buf[:total], err
		}

		n, err := a.transport.Read(buf[total:], a.config.ReadTimeout)
		total += n
		if err != nil {
			a.logError("read failed", "received", total, "error", err)
			return buf[:total], &TransportError{Op: "read", Err: err}
		}

		if n > 0 && bytes.IndexByte(buf[total-n:total], protocol.Terminator) >= 0 {
			a.logDebug("received", "bytes", total)
			return buf[:total], nil
		}
		if n == 0 {
			// End of data without a terminator.
			break
		}
	}

	return buf[:total], &TruncatedError{Data: buf[:total], Max: maxLength}
}

// trimResponse strips the trailing terminator from a text response.
func trimResponse(raw []byte) string {
	return strings.TrimRight(string(raw), "\r\n")
}

// logDebug logs a debug message if a logger is configured and the level
// allows it.
func (a *Analyzer) logDebug(msg string, keysAndValues ...interface{}) {
	if a.config.Logger != nil && a.level <= LevelDebug {
		a.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured and the level
// allows it.
func (a *Analyzer) logInfo(msg string, keysAndValues ...interface{}) {
	if a.config.Logger != nil && a.level <= LevelInfo {
		a.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured and the level
// allows it.
func (a *Analyzer) logError(msg string, keysAndValues ...interface{}) {
	if a.config.Logger != nil && a.level <= LevelError {
		a.config.Logger.Error(msg, keysAndValues...)
	}
}
