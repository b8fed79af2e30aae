// Command tomltest reads a TOML document on stdin and writes the
// BurntSushi/toml-test tagged-JSON encoding of it on stdout, so this
// module's parser can be exercised against the standard TOML decoder
// test suite without shipping a general-purpose CLI as a product
// feature.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	toml "github.com/tomlgo/tomlcore"
)

func main() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading stdin: %v\n", err)
		os.Exit(1)
	}

	root, err := toml.ParseBytes(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	out, err := json.Marshal(tableToTagged(root))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func tableToTagged(t *toml.Table) map[string]any {
	result := make(map[string]any, t.Len())
	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		result[key] = valueToTagged(v)
	}
	return result
}

func valueToTagged(v any) any {
	switch x := v.(type) {
	case *toml.Table:
		return tableToTagged(x)
	case *toml.Array:
		items := make([]any, x.Len())
		for i := 0; i < x.Len(); i++ {
			items[i] = valueToTagged(x.Get(i))
		}
		return items
	case string:
		return tagged("string", x)
	case bool:
		return tagged("bool", strconv.FormatBool(x))
	case int64:
		return tagged("integer", strconv.FormatInt(x, 10))
	case float64:
		return tagged("float", formatFloat(x))
	case time.Time:
		return tagged("datetime", x.Format("2006-01-02T15:04:05.999999999Z07:00"))
	case toml.LocalDateTime:
		return tagged("datetime-local", fmt.Sprintf("%04d-%02d-%02dT%s",
			x.Date.Year, x.Date.Month, x.Date.Day, formatLocalTime(x.Time)))
	case toml.LocalDate:
		return tagged("date-local", fmt.Sprintf("%04d-%02d-%02d", x.Year, x.Month, x.Day))
	case toml.LocalTime:
		return tagged("time-local", formatLocalTime(x))
	default:
		return tagged("float", formatCustomFloat(x))
	}
}

func formatLocalTime(t toml.LocalTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%06d", t.Nanosecond/1000)
	}
	return s
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// formatCustomFloat renders whatever a custom FloatParser returned using
// its fmt.Stringer or %v form, for callers exercising tomltest with a
// non-default FloatParser.
func formatCustomFloat(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func tagged(typ, val string) map[string]string {
	return map[string]string{"type": typ, "value": val}
}
