package calc

import "strings"

// OptionSep separates a line's option prefix from its expression.
const OptionSep = '#'

// Options are per-line display settings given as a prefix like "df#1/3".
type Options struct {
	// Debug echoes each lexeme with its token.
	Debug bool
	// AsFloat displays the result as a decimal number instead of a fraction.
	AsFloat bool
}

// PreTokenize separates the option prefix from a line. If the line contains
// OptionSep, each character before the first one sets an option: 'd' for
// Debug and 'f' for AsFloat. Other characters are ignored. The text after the
// separator is returned. Without a separator, the line is returned unchanged
// with no options set.
func PreTokenize(line string) (string, Options) {
	var opts Options
	k := strings.IndexByte(line, OptionSep)
	if k < 0 {
		return line, opts
	}
	for _, r := range line[:k] {
		switch r {
		case 'd':
			opts.Debug = true
		case 'f':
			opts.AsFloat = true
		}
	}
	return line[k+1:], opts
}
