package nestegg

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2023-01-01", want: NewDate(2023, time.January, 1)},
		{in: "2025-7-1", want: NewDate(2025, time.July, 1)}, // permissive single digits
		{in: " 2023-12-31 ", want: NewDate(2023, time.December, 31)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_Sub(t *testing.T) {
	a := MustParseDate("2023-01-01")
	b := MustParseDate("2024-01-01")
	if got := b.Sub(a); got != 365 {
		t.Errorf("Sub = %d days, want 365", got)
	}
	if got := a.Sub(b); got != -365 {
		t.Errorf("Sub = %d days, want -365", got)
	}
}

func TestDate_MonthKey(t *testing.T) {
	if got := MustParseDate("2023-07-09").MonthKey(); got != "2023-07" {
		t.Errorf("MonthKey = %q, want 2023-07", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	in := MustParseDate("2023-02-28")
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `"2023-02-28"` {
		t.Errorf("Marshal = %s, want \"2023-02-28\"", data)
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}
