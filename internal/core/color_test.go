package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"default", ColorDefault, ""},
		{"black is not default", RGB(0, 0, 0), "#000000"},
		{"hurray yellow", ColorHurray, "#ffff00"},
		{"number", ColorNumber, "#f9f7ea"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.color.Hex(); got != tc.expected {
				t.Errorf("Hex() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestColorRGBRoundTrip(t *testing.T) {
	c := RGB(12, 200, 7)
	if c.IsDefault() {
		t.Fatal("RGB color should not be default")
	}
	r, g, b := c.RGB()
	if r != 12 || g != 200 || b != 7 {
		t.Errorf("RGB() = (%d, %d, %d), expected (12, 200, 7)", r, g, b)
	}
}
