package delivery

import "testing"

func TestOptionalID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantNil bool
		wantOK  bool
	}{
		{in: "", wantNil: true, wantOK: true},
		{in: "7c1f3b0e-4b7a-4a52-9a0e-2f6d8f9e1c11", wantOK: true},
		{in: "not-a-uuid", wantNil: true},
	}
	for _, tc := range tests {
		got, ok := optionalID(tc.in)
		if ok != tc.wantOK || (got == nil) != tc.wantNil {
			t.Errorf("optionalID(%q)=%v,%t", tc.in, got, ok)
		}
	}
}
