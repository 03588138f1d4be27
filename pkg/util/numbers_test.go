package util

import "testing"

func TestCoerceFloat(t *testing.T) {
    if got := CoerceFloat(99.5); got != 99.5 {
        t.Fatalf("float64: got %v", got)
    }
    if got := CoerceFloat("120.50"); got != 120.5 {
        t.Fatalf("string: got %v", got)
    }
    if got := CoerceFloat("abc"); got != 0 {
        t.Fatalf("garbage string: got %v", got)
    }
    if got := CoerceFloat(nil); got != 0 {
        t.Fatalf("nil: got %v", got)
    }
    if got := CoerceFloat(7); got != 7 {
        t.Fatalf("int: got %v", got)
    }
}
