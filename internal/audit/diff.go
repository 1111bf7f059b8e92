package audit

import (
	"encoding/json"
	"time"
)

// Change is one field-level old/new value pair.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Snapshot produces a flat key/value view of an entity via a JSON
// round-trip, keyed by the struct's json tags. Nested objects and slices
// survive as maps/arrays and are later excluded by the scalar predicate.
func Snapshot(v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// bookkeepingKeys are auto-bumped on every write and would make any
// update look changed, so they never enter a diff.
var bookkeepingKeys = map[string]struct{}{
	"updated_at": {},
	"updatedAt":  {},
}

// Diff computes the field-level change set between two flat snapshots.
// before == nil means creation, after == nil means deletion. Keys whose
// value on either side is not scalar-like are skipped entirely: relations
// and embedded sub-entities must never leak into an audit record. Values
// are masked on emit; unchanged keys are omitted.
func Diff(before, after map[string]any) map[string]Change {
	changes := make(map[string]Change)

	keys := make(map[string]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}

	for k := range keys {
		if _, skip := bookkeepingKeys[k]; skip {
			continue
		}
		oldVal, hadOld := before[k]
		newVal, hadNew := after[k]
		if hadOld && !scalarLike(oldVal) {
			continue
		}
		if hadNew && !scalarLike(newVal) {
			continue
		}

		var o, n any
		if hadOld {
			o = normalize(oldVal)
		}
		if hadNew {
			n = normalize(newVal)
		}
		if o == n {
			continue
		}
		changes[k] = Change{Old: MaskValue(k, o), New: MaskValue(k, n)}
	}

	return changes
}

// scalarLike reports whether v belongs to the closed set of primitive
// kinds an audit record may carry: null, boolean, number, string, or a
// date/timestamp. This is a deliberate allow-list; anything structural
// (maps, slices, structs) fails it.
func scalarLike(v any) bool {
	switch v.(type) {
	case nil, bool, string, time.Time,
		float32, float64, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// normalize reduces every scalar to a comparable canonical form:
// timestamps (and strings that parse as RFC 3339) become UTC RFC 3339
// strings, all numeric kinds become float64.
func normalize(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts.UTC().Format(time.RFC3339Nano)
		}
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	}
	return v
}
