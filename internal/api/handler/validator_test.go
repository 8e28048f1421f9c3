package handler

import (
	"errors"
	"testing"
)

func TestValidator_ContactTag(t *testing.T) {
	v := NewValidator()

	type form struct {
		Contact string `validate:"required,contact"`
	}

	if err := v.Validate(&form{Contact: "0123456789"}); err != nil {
		t.Fatalf("valid contact rejected: %v", err)
	}

	for _, contact := range []string{"12345", "1234567890123456", "01234abcde"} {
		err := v.Validate(&form{Contact: contact})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Validate(contact=%q): expected *ValidationError, got %v", contact, err)
		}
	}
}

func TestSnakeCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ShopOwnerName", "shop_owner_name"},
		{"Email", "email"},
		{"ContactNumber", "contact_number"},
	}
	for _, tc := range cases {
		if got := snakeCase(tc.in); got != tc.want {
			t.Errorf("snakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
