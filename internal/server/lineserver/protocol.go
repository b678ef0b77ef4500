package lineserver

import "strings"

// Command tokens. Both must have the same length.
const (
	PutCommand = "PUT"
	GetCommand = "GET"
)

// Response lines, without the trailing newline.
const (
	ResponseOK    = "OK"
	ResponseError = "NO"
)

// commandLen is the width of the command token at the start of a line.
const commandLen = len(PutCommand)

// Fails to compile if the command tokens ever differ in length.
var _ = [1]struct{}{}[len(PutCommand)-len(GetCommand)]

// CommandKind identifies a parsed command.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandPut
	CommandGet
)

// String returns the lower-case command name used in logs and metrics.
func (k CommandKind) String() string {
	switch k {
	case CommandPut:
		return "put"
	case CommandGet:
		return "get"
	default:
		return "unknown"
	}
}

// Command is one parsed request line.
type Command struct {
	Kind CommandKind
	// Payload is everything after the command token.
	Payload string
}

// ParseLine splits a request line into its command and payload.
// Tokens are case-sensitive. A line too short to hold a token is unknown.
func ParseLine(line string) Command {
	if len(line) < commandLen {
		return Command{Kind: CommandUnknown}
	}

	switch line[:commandLen] {
	case PutCommand:
		return Command{Kind: CommandPut, Payload: line[commandLen:]}
	case GetCommand:
		return Command{Kind: CommandGet, Payload: line[commandLen:]}
	default:
		return Command{Kind: CommandUnknown}
	}
}

// TrimLine removes the line terminator ("\n" or "\r\n") from raw.
func TrimLine(raw string) string {
	raw = strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(raw, "\r")
}
