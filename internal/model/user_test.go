package model

import (
	"errors"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("ana@example.com"); err != nil {
		t.Fatalf("expected valid email, got: %v", err)
	}
	if err := ValidateEmail("  "); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired for blank email, got: %v", err)
	}
	for _, bad := range []string{"not-an-email", "Ana <ana@example.com>", "@example.com"} {
		if err := ValidateEmail(bad); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got: %v", bad, err)
		}
	}
}
