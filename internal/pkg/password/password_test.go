package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if !h.Verify("secret1", hash) {
		t.Fatalf("Verify rejected correct password")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("Verify accepted wrong password")
	}
}

func TestNewBcryptHasher_CostClamping(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultCost},
		{-3, DefaultCost},
		{4, MinCost},
		{31, MaxCost},
		{11, 11},
	}
	for _, tc := range cases {
		if got := NewBcryptHasher(tc.in).cost; got != tc.want {
			t.Errorf("NewBcryptHasher(%d).cost = %d, want %d", tc.in, got, tc.want)
		}
	}
}
