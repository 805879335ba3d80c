package delivery

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fee, rate           string
		commission, earning string
	}{
		{"20.00", "0.20", "4.00", "16.00"},
		{"0", "0.20", "0", "0"},
		{"9.99", "0.15", "1.50", "8.49"},
		{"5.00", "0", "0", "5.00"},
		{"5.00", "1", "5.00", "0"},
		{"3.33", "0.3333", "1.11", "2.22"},
	}
	for _, tc := range tests {
		c, e, err := Split(d(tc.fee), d(tc.rate))
		if err != nil {
			t.Fatalf("Split(%s, %s): %v", tc.fee, tc.rate, err)
		}
		if !c.Equal(d(tc.commission)) || !e.Equal(d(tc.earning)) {
			t.Errorf("Split(%s, %s) = %s/%s, want %s/%s", tc.fee, tc.rate, c, e, tc.commission, tc.earning)
		}
		if !c.Add(e).Equal(d(tc.fee)) {
			t.Errorf("Split(%s, %s): %s + %s != fee", tc.fee, tc.rate, c, e)
		}
	}
}

func TestSplit_Rejects(t *testing.T) {
	t.Parallel()

	for _, tc := range [][2]string{{"-1", "0.2"}, {"10", "-0.1"}, {"10", "1.01"}} {
		if _, _, err := Split(d(tc[0]), d(tc[1])); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Split(%s, %s) err=%v, want ErrInvalidAmount", tc[0], tc[1], err)
		}
	}
}

func TestSplitWithEarning(t *testing.T) {
	t.Parallel()

	c, err := SplitWithEarning(d("20.00"), d("17.50"))
	if err != nil || !c.Equal(d("2.50")) {
		t.Fatalf("got %s, %v; want 2.50", c, err)
	}
	for _, bad := range []string{"-0.01", "20.01"} {
		if _, err := SplitWithEarning(d("20.00"), d(bad)); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("earning %s: err=%v", bad, err)
		}
	}
}
