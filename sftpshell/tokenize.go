package sftpshell

import (
	"fmt"
	"strings"
)

// UnterminatedQuoteError is returned by SplitArgs when the input ends while a
// quote is still open.
type UnterminatedQuoteError struct {
	Index int
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated quote at index %d", e.Index)
}

// DanglingEscapeError is returned by SplitArgs when the input ends with a
// backslash that does not escape anything.
type DanglingEscapeError struct {
	Index int
}

func (e *DanglingEscapeError) Error() string {
	return fmt.Sprintf("escape sequence is not followed by a character at index %d", e.Index)
}

// SplitArgs splits a command line remainder into arguments. A backslash
// escapes the next character, inside or outside quotes. Single and double
// quotes group words but do not end up in the arguments, and a quote may open
// and close in the middle of a word (`ab"c d"e` is the single argument
// `abc de`). Unquoted runs of spaces separate arguments.
func SplitArgs(line string) ([]string, error) {
	var args []string
	var buf strings.Builder
	var escaping bool
	var quote rune
	index := 0

	for _, char := range line {
		index++
		switch {
		case escaping:
			buf.WriteRune(char)
			escaping = false
		case char == '\\':
			escaping = true
		case quote != 0 && char == quote:
			quote = 0
		case quote == 0 && (char == '"' || char == '\''):
			quote = char
		case quote == 0 && char == ' ':
			if buf.Len() > 0 {
				args = append(args, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteRune(char)
		}
	}

	if quote != 0 {
		return nil, &UnterminatedQuoteError{Index: index}
	}
	if escaping {
		return nil, &DanglingEscapeError{Index: index}
	}
	if buf.Len() > 0 {
		args = append(args, buf.String())
	}
	return args, nil
}
