package codec

import (
	"strings"
	"testing"
)

func TestLimitDecodeBound(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}

	if v, err := c.Decode([]byte("abcd")); err != nil || v != "abcd" {
		t.Fatalf("payload at bound should pass: v=%q err=%v", v, err)
	}
	if _, err := c.Decode([]byte("abcde")); err == nil {
		t.Fatalf("oversized payload should fail before Inner runs")
	}
}

func TestLimitDisabled(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 0}
	long := strings.Repeat("x", 1<<16)
	if v, err := c.Decode([]byte(long)); err != nil || v != long {
		t.Fatalf("MaxDecode<=0 must disable the limit: err=%v", err)
	}
}

func TestLimitEncodePassThrough(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 1}
	b, err := c.Encode("a long value the limit must not touch")
	if err != nil || len(b) == 0 {
		t.Fatalf("Encode must forward unchanged: b=%q err=%v", b, err)
	}
}
