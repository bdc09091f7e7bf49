package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := ParseDate("2024-02-29")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != "2024-02-29" {
			t.Errorf("expected 2024-02-29, got %s", d)
		}
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		if _, err := ParseDate("02/29/2024"); err == nil {
			t.Error("expected error for slash format")
		}
		if _, err := ParseDate("2024-13-01"); err == nil {
			t.Error("expected error for month 13")
		}
	})
}

func TestDateJSON(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		d, _ := ParseDate("2024-01-15")
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `"2024-01-15"` {
			t.Errorf("expected quoted date, got %s", data)
		}

		var back Date
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !back.Equal(d.Time) {
			t.Errorf("round trip changed value: %s -> %s", d, back)
		}
	})

	t.Run("null_is_tolerated", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte("null"), &d); err != nil {
			t.Errorf("unexpected error on null: %v", err)
		}
	})

	t.Run("unquoted_rejected", func(t *testing.T) {
		var d Date
		if err := d.UnmarshalJSON([]byte("20240115")); err == nil {
			t.Error("expected error for unquoted value")
		}
	})
}

func TestDateScan(t *testing.T) {
	t.Run("from_time", func(t *testing.T) {
		var d Date
		if err := d.Scan(time.Date(2024, 5, 20, 13, 45, 0, 0, time.UTC)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != "2024-05-20" {
			t.Errorf("expected time component dropped, got %s", d)
		}
	})

	t.Run("from_string_with_time_suffix", func(t *testing.T) {
		var d Date
		if err := d.Scan("2024-05-20 00:00:00"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != "2024-05-20" {
			t.Errorf("expected 2024-05-20, got %s", d)
		}
	})

	t.Run("from_nil", func(t *testing.T) {
		var d Date
		if err := d.Scan(nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
