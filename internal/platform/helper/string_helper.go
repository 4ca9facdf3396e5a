package helper

import (
	"fmt"
	"strings"
)

// Stringify renders a single value the way it appears in a list display.
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case nil:
		return "null"
	default:
		return fmt.Sprint(val)
	}
}

// FormatList renders values as "[a, b, c]".
func FormatList(values []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v)
	}
	b.WriteByte(']')
	return b.String()
}
