package sequence

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Normalize turns any input into a fresh []any.
//
// nil becomes an empty sequence, slices and arrays are copied element by
// element, and any other value becomes a one-element sequence.
func Normalize(input any) []any {
	if input == nil {
		return []any{}
	}
	if items, ok := asSlice(input); ok {
		out := make([]any, len(items))
		copy(out, items)
		return out
	}
	return []any{input}
}

// asSlice reports whether v is a slice or array and, if so, returns its
// elements. A []any is returned without copying.
func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}, true
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// flattenOne spreads slice arguments one level, leaving other values as-is.
func flattenOne(values []any) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		if inner, ok := asSlice(v); ok {
			out = append(out, inner...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// jsonKey is the identity of a value that cannot be used as a map key.
type jsonKey string

// nanKey is the identity shared by every NaN.
type nanKey struct{}

// identityKey maps v to a comparable key. Integers key as int64 (uint64
// above math.MaxInt64), whole floats join the integer key space and other
// floats key as float64. Comparable values key as themselves and the rest
// by their JSON encoding.
func identityKey(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return u
		}
		return int64(u)
	case reflect.Float32, reflect.Float64:
		return floatKey(rv.Float())
	}
	if rv.Comparable() {
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return jsonKey(fmt.Sprintf("%#v", v))
	}
	return jsonKey(data)
}

func floatKey(f float64) any {
	switch {
	case math.IsNaN(f):
		return nanKey{}
	case f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64:
		return int64(f)
	case f == math.Trunc(f) && f >= 0 && f < math.MaxUint64:
		return uint64(f)
	default:
		return f
	}
}

// Truthy reports whether v is considered present: everything except nil,
// typed nil pointers, false, "", numeric zero and NaN.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// toNumber coerces numbers, json.Number and numeric strings to float64.
func toNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if isNumber(v) {
		f, err := cast.ToFloat64E(v)
		return f, err == nil
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(n))
		return f, err == nil && n != ""
	default:
		return 0, false
	}
}

// stringify renders v the way Join and GroupBy print it. nil renders empty.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// Field resolves a dot-notation path against maps, structs and slices
// (numeric segments index). The whole path is tried as a literal map key
// first.
func Field(item any, path string) (any, bool) {
	if m, ok := item.(map[string]any); ok {
		if v, ok := m[path]; ok {
			return v, true
		}
	}
	current := reflect.ValueOf(item)
	for _, seg := range strings.Split(path, ".") {
		next, ok := fieldOf(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	if !current.IsValid() {
		return nil, true
	}
	return current.Interface(), true
}

func fieldOf(v reflect.Value, name string) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		out := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !out.IsValid() {
			return reflect.Value{}, false
		}
		return out, true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(i), true
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if f.Name == name || tag == name {
				return v.Field(i), true
			}
		}
	}
	return reflect.Value{}, false
}

// setPath stores v under a dot-notation path, creating intermediate maps.
func setPath(m map[string]any, path string, v any) {
	segs := strings.Split(path, ".")
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[seg] = next
		}
		m = next
	}
	m[segs[len(segs)-1]] = v
}

// Compare is the default ordering: nil first, then numbers, then strings,
// then everything else by its fmt rendering.
func Compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case 0:
		return 0
	case 1:
		fa, _ := toNumber(a)
		fb, _ := toNumber(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case 2:
		return strings.Compare(a.(string), b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func rank(v any) int {
	switch {
	case v == nil:
		return 0
	case isNumber(v):
		return 1
	}
	if _, ok := v.(string); ok {
		return 2
	}
	return 3
}
