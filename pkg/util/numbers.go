package util

import "strconv"

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
    if s == "" {
        return def
    }
    v, err := strconv.Atoi(s)
    if err != nil {
        return def
    }
    return v
}

// ParseFloatDefault parses string to float64 or returns default if empty/invalid.
func ParseFloatDefault(s string, def float64) float64 {
    if s == "" {
        return def
    }
    v, err := strconv.ParseFloat(s, 64)
    if err != nil {
        return def
    }
    return v
}

// CoerceFloat converts loosely-typed numeric values (float64, int, numeric
// string) to float64. Anything else yields 0.
func CoerceFloat(v interface{}) float64 {
    switch n := v.(type) {
    case float64:
        return n
    case float32:
        return float64(n)
    case int:
        return float64(n)
    case int64:
        return float64(n)
    case string:
        return ParseFloatDefault(n, 0)
    default:
        return 0
    }
}
