package protocol

// USB identity of the WT3000 as enumerated on the bus.
const (
	// VendorID is the Yokogawa USB vendor ID
	VendorID = 0x0b21

	// ProductID is the WT3000 USB product ID
	ProductID = 0x0025

	// EndpointTransmit is the host-to-device bulk endpoint address
	EndpointTransmit = 0x01

	// EndpointReceive is the device-to-host bulk endpoint address
	EndpointReceive = 0x83
)

// Terminator ends every command line sent to the instrument and every
// text response it returns.
const Terminator = '\n'

// IEEE 488.2 common commands. These are complete command lines on their
// own and never take a path prefix.
const (
	// CmdClearStatus clears the standard event register, extended event
	// register, and error queue
	CmdClearStatus = "*CLS"

	// CmdIdentify queries the instrument model identification string
	CmdIdentify = "*IDN?"
)

// Communicate group: settings for the remote interface itself.
const (
	GroupCommunicate = "COMMunicate"

	// CommHeader controls whether query responses carry a command header
	CommHeader = "HEADer"

	// CommOverlap selects which commands operate as overlap commands
	CommOverlap = "OVERlap"

	// CommRemote switches the instrument between remote and local mode
	CommRemote = "REMote"

	// CommVerbose selects full spelling for query responses
	CommVerbose = "VERBose"
)

// Input group: input element configuration.
const (
	GroupInput = "INPut"

	// InputModule queries the input element type; the element number is
	// appended to the segment
	InputModule = "MODUle"

	InputVoltage = "VOLTage"
	InputCurrent = "CURRent"

	// InputRange selects the measurement range below VOLTage or CURRent
	InputRange = "RANGe"
)

// Numeric group: measurement data retrieval.
const (
	GroupNumeric = "NUMeric"

	// NumFormat selects the on-wire representation for numeric responses
	NumFormat = "FORMat"

	// NumValue queries the current numeric (measurement) data
	NumValue = "VALue"

	// FormatTokenASCII is the parameter selecting ASCII numeric output
	FormatTokenASCII = "ASCii"

	// FormatTokenFloat is the parameter selecting IEEE single-precision
	// block output
	FormatTokenFloat = "FLOat"
)

// Status group: status register configuration.
const (
	GroupStatus = "STATus"

	// StatusEESE sets the extended event status enable register
	StatusEESE = "EESE"

	// StatusFilter configures a transition filter; the register number is
	// appended to the segment
	StatusFilter = "FILTer"
)
