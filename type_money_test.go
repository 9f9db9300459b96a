package nestegg

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		currency string
		want     string
	}{
		{"usd cents", "1500.5", "USD", "$1,500.50"},
		{"usd whole", "1000000", "USD", "$1,000,000.00"},
		{"eur", "42", "EUR", "€42.00"},
		{"zero", "0", "USD", "$0.00"},
		{"negative", "-12.34", "USD", "-$12.34"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := M(d(tc.value), tc.currency).String()
			if got != tc.want {
				t.Errorf("M(%s, %s).String() = %q, want %q", tc.value, tc.currency, got, tc.want)
			}
		})
	}
}

func TestMoneySignedString(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  string
	}{
		{"positive gains a plus", "10", "+$10.00"},
		{"negative keeps its sign", "-10", "-$10.00"},
		{"zero is a dash", "0", "-"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := M(d(tc.value), "USD").SignedString()
			if got != tc.want {
				t.Errorf("M(%s).SignedString() = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}
