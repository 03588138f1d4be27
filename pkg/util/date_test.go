package util

import (
    "strconv"
    "testing"
    "time"
)

func TestParseTimeRFC3339(t *testing.T) {
    s := "2025-03-10T10:10:10Z"
    got, ok := ParseTime(s)
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.UTC().Format(time.RFC3339) != s {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseTimeDateOnly(t *testing.T) {
    got, ok := ParseTime("2025-03-10")
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Day() != 10 || got.Month() != time.March {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseTimeUnix(t *testing.T) {
    ts := time.Date(2025, 3, 10, 10, 10, 10, 0, time.UTC).Unix()
    got, ok := ParseTime(strconv.FormatInt(ts, 10))
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Unix() != ts {
        t.Fatalf("unexpected unix %v", got.Unix())
    }
}

func TestParseTimeGarbage(t *testing.T) {
    if _, ok := ParseTime("not-a-date"); ok {
        t.Fatalf("expected not ok")
    }
}

func TestStartOfMonth(t *testing.T) {
    got := StartOfMonth(time.Date(2025, 3, 17, 14, 30, 0, 0, time.UTC))
    want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
    if !got.Equal(want) {
        t.Fatalf("got %v want %v", got, want)
    }
}
