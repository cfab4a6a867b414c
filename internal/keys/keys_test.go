package keys

import (
	"errors"
	"strings"
	"testing"
)

func TestComposeFormat(t *testing.T) {
	k, err := Compose("Student", FormatID(12))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if k != "000STUDENT#0000000012" {
		t.Fatalf("unexpected key: %q", k)
	}
}

func TestComposeDeterministic(t *testing.T) {
	a, err := Compose("order", "abc")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	b, err := Compose("order", "abc")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if a != b {
		t.Fatalf("composition not deterministic: %q vs %q", a, b)
	}
}

func TestComposeDistinctPairsDistinctKeys(t *testing.T) {
	pairs := [][2]string{
		{"order", "1"},
		{"order", "10"},
		{"orders", "1"},
		{"student", "1"},
	}
	seen := make(map[string][2]string, len(pairs))
	for _, p := range pairs {
		k, err := Compose(p[0], p[1])
		if err != nil {
			t.Fatalf("Compose(%q, %q): %v", p[0], p[1], err)
		}
		if prev, dup := seen[k]; dup {
			t.Fatalf("collision: %v and %v both map to %q", prev, p, k)
		}
		seen[k] = p
	}
}

func TestComposeLongNamespaceNotTruncated(t *testing.T) {
	ns := strings.Repeat("n", 16)
	k, err := Compose(ns, "1")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.HasPrefix(k, strings.ToUpper(ns)+Delimiter) {
		t.Fatalf("long namespace mangled: %q", k)
	}
}

func TestComposeRejections(t *testing.T) {
	cases := []struct {
		name     string
		ns, id   string
		sentinel error
	}{
		{"short_namespace", "ab", "1", ErrShortNamespace},
		{"empty_namespace", "", "1", ErrShortNamespace},
		{"delimiter_in_namespace", "stu#dent", "1", ErrDelimiter},
		{"delimiter_in_identity", "student", "1#2", ErrDelimiter},
		{"empty_identity", "student", "", ErrEmptyIdentity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compose(tc.ns, tc.id); !errors.Is(err, tc.sentinel) {
				t.Fatalf("Compose(%q, %q): got %v, want %v", tc.ns, tc.id, err, tc.sentinel)
			}
		})
	}
}

func TestValidateNamespace(t *testing.T) {
	if err := ValidateNamespace("student"); err != nil {
		t.Fatalf("valid namespace rejected: %v", err)
	}
	if err := ValidateNamespace("ab"); !errors.Is(err, ErrShortNamespace) {
		t.Fatalf("short namespace accepted: %v", err)
	}
}

func TestFormatID(t *testing.T) {
	if got := FormatID(12); got != "0000000012" {
		t.Fatalf("FormatID(12) = %q", got)
	}
	if got := FormatID(12345678901); got != "12345678901" {
		t.Fatalf("wide IDs must not be truncated: %q", got)
	}
}
