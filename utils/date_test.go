package utils

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`"2026-08-30"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.August || d.Day() != 30 {
		t.Errorf("parsed date = %v", d.Time)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-08-30"` {
		t.Errorf("marshaled = %s, want \"2026-08-30\"", out)
	}
}

func TestCustomDateJSONNull(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("date = %v, want zero", d.Time)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(out) != `null` {
		t.Errorf("marshaled zero = %s, want null", out)
	}
}

func TestCustomDateJSONInvalid(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`"30/08/2026"`), &d); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestCustomDateScan(t *testing.T) {
	var d CustomDate
	if err := d.Scan("2026-08-30"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2026-08-30" {
		t.Errorf("String() = %q", d.String())
	}

	v, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2026-08-30" {
		t.Errorf("Value() = %v", v)
	}

	var zero CustomDate
	if v, _ := zero.Value(); v != nil {
		t.Errorf("zero Value() = %v, want nil", v)
	}
}
