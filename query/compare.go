package query

import "reflect"

// compareValues orders two document values. The bool result reports whether
// the pair is comparable at all: numbers compare with numbers (across int
// and float representations), strings with strings, everything else is
// incomparable. Incomparable pairs are a no-match for the ordered
// operators, never an error.
func compareValues(a, b any) (int, bool) {
	if fa, oka := toFloat(a); oka {
		fb, okb := toFloat(b)
		if !okb {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	if sa, oka := toString(a); oka {
		sb, okb := toString(b)
		if !okb {
			return 0, false
		}
		switch {
		case sa < sb:
			return -1, true
		case sa > sb:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// equalValues is the loose equality used by $eq, $ne, $in and $nin.
// Numbers are equal across representations (an int 3 from caller-built
// filters equals a float64 3 from decoded JSON). Everything else falls back
// to deep equality, so nils, bools, strings, slices and maps behave like
// their JSON counterparts.
func equalValues(a, b any) bool {
	fa, oka := toFloat(a)
	fb, okb := toFloat(b)
	if oka && okb {
		return fa == fb
	}
	if oka != okb {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

func toString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
