package checksum

import "testing"

func TestSHA256_Calculate(t *testing.T) {
	c := New()

	// sha256("") is a well-known constant
	if got := c.Calculate(nil); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("Calculate(nil) = %s", got)
	}

	a := c.Calculate([]byte("fetch('/users')"))
	b := c.Calculate([]byte("fetch('/users')"))
	if a != b {
		t.Error("Calculate should be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if a == c.Calculate([]byte("fetch('/users') ")) {
		t.Error("whitespace changes must change the checksum")
	}
}

func TestSHA256_ImplementsCalculator(t *testing.T) {
	var _ Calculator = New()
}
