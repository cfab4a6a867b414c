// Package keys derives store-addressable key names from (namespace, identity)
// pairs. Composition is pure and deterministic: the same pair always yields
// the same key and distinct pairs never collide, because the delimiter is
// forbidden in both components.
package keys

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the namespace from the identity in a composed key.
const Delimiter = "#"

// nsWidth is the minimum rendered namespace width; shorter namespaces are
// left-padded with '0' so all keys of one deployment line up.
const nsWidth = 10

var (
	// ErrShortNamespace is returned for namespaces of 2 characters or fewer.
	ErrShortNamespace = errors.New("keys: namespace must be longer than 2 characters")

	// ErrEmptyIdentity is returned when the identity is the empty string.
	ErrEmptyIdentity = errors.New("keys: identity must not be empty")

	// ErrDelimiter is returned when a namespace or identity contains the
	// delimiter character.
	ErrDelimiter = errors.New("keys: component contains the delimiter")
)

// ValidateNamespace reports whether ns is usable as a key component.
// Intended for construction-time checks so misconfiguration fails before the
// first store call.
func ValidateNamespace(ns string) error {
	if len(ns) <= 2 {
		return fmt.Errorf("%w: %q", ErrShortNamespace, ns)
	}
	if strings.Contains(ns, Delimiter) {
		return fmt.Errorf("%w: namespace %q", ErrDelimiter, ns)
	}
	return nil
}

// Compose maps (namespace, identity) to a single store key of the shape
// "000STUDENT#0000000012". The namespace is uppercased and zero-padded to a
// fixed width; the identity is used verbatim.
func Compose(namespace, identity string) (string, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return "", err
	}
	if identity == "" {
		return "", ErrEmptyIdentity
	}
	if strings.Contains(identity, Delimiter) {
		return "", fmt.Errorf("%w: identity %q", ErrDelimiter, identity)
	}
	return pad(strings.ToUpper(namespace)) + Delimiter + identity, nil
}

// FormatID renders a numeric identity as the zero-padded decimal form used
// throughout composed keys.
func FormatID(id int64) string {
	return fmt.Sprintf("%010d", id)
}

func pad(s string) string {
	if len(s) >= nsWidth {
		return s
	}
	return strings.Repeat("0", nsWidth-len(s)) + s
}
