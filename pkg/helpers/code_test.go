package helpers

import (
	"strconv"
	"testing"
)

func TestGenVerificationCode_Range(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		code, err := GenVerificationCode()
		if err != nil {
			t.Fatalf("GenVerificationCode error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range", n)
		}
		seen[code] = true
	}
	// Uniform draws over 900k values virtually never collapse to a handful.
	if len(seen) < 400 {
		t.Fatalf("suspiciously few distinct codes: %d", len(seen))
	}
}
