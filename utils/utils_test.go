package utils

import (
	"strings"
	"testing"
	"time"
)

func TestUtils_DecorateText(t *testing.T) {
	res := DecorateText("imshow", ErrorMessage)
	if !strings.HasPrefix(res, ErrorColor) {
		t.Errorf("an error message should start with the error color code")
	}
	if !strings.HasSuffix(res, DefaultColor) {
		t.Errorf("a decorated message should reset the color")
	}
}

func TestUtils_FormatTime(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{d: 500 * time.Millisecond, want: "0.50s"},
		{d: 90 * time.Second, want: "1m 30.00s"},
		{d: 3*time.Hour + 2*time.Minute + time.Second, want: "3h 2m 1.00s"},
	}

	for _, tc := range testCases {
		if res := FormatTime(tc.d); res != tc.want {
			t.Errorf("formatting %v: got %q want %q", tc.d, res, tc.want)
		}
	}
}

func TestUtils_MinMaxAbs(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Errorf("Min should return the smaller value")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Errorf("Max should return the bigger value")
	}
	if Abs(-2.5) != 2.5 || Abs(2.5) != 2.5 {
		t.Errorf("Abs should return the absolute value")
	}
}
