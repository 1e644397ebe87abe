package state

import "strings"

type CommandType string

const (
	CmdLeft    CommandType = "left"
	CmdRight   CommandType = "right"
	CmdEnd     CommandType = "end"
	CmdIdle    CommandType = "idle"    // Blank line
	CmdInvalid CommandType = "invalid" // Anything unrecognized
)

// ParseCommand maps a raw input line to a command. Only the first character
// counts, case-insensitively; the line terminator is ignored.
func ParseCommand(input string) CommandType {
	line := strings.TrimRight(input, "\r\n")
	if line == "" {
		return CmdIdle
	}
	known := map[byte]CommandType{
		'e': CmdLeft,
		'd': CmdRight,
		's': CmdEnd,
	}
	c := line[0]
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	cmd, ok := known[c]
	if !ok {
		return CmdInvalid
	}
	return cmd
}
