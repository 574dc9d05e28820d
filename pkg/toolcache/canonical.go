package toolcache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CanonicalKey builds the cache key for a tool call: the tool name plus a
// deterministic serialization of its arguments. Map keys are sorted
// recursively, array elements are order-normalized, and nested structures
// flatten the same way regardless of how the LLM ordered them.
func CanonicalKey(tool string, args map[string]any) string {
	var b strings.Builder
	b.WriteString(tool)
	b.WriteByte(':')
	writeCanonical(&b, args)
	return b.String()
}

// CanonicalArgs returns just the canonical argument serialization. The
// scratchpad's retry-loop detection compares these across calls.
func CanonicalArgs(args map[string]any) string {
	var b strings.Builder
	writeCanonical(&b, args)
	return b.String()
}

func writeCanonical(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte('=')
			writeCanonical(b, val[k])
		}
		b.WriteByte('}')
	case []any:
		// Order-normalize: element order is not significant for argument
		// lists (services, regions), so sort by canonical form.
		parts := make([]string, len(val))
		for i, item := range val {
			var ib strings.Builder
			writeCanonical(&ib, item)
			parts[i] = ib.String()
		}
		sort.Strings(parts)
		b.WriteByte('[')
		b.WriteString(strings.Join(parts, ","))
		b.WriteByte(']')
	case string:
		b.WriteString(strconv.Quote(val))
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case float64:
		// JSON numbers decode as float64. Integral values print without a
		// trailing ".0" so 5 and 5.0 collide, as they should.
		if val == float64(int64(val)) {
			b.WriteString(strconv.FormatInt(int64(val), 10))
		} else {
			b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
		}
	case int:
		b.WriteString(strconv.Itoa(val))
	case int64:
		b.WriteString(strconv.FormatInt(val, 10))
	default:
		fmt.Fprintf(b, "%v", val)
	}
}
