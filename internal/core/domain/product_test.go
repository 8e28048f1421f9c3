package domain

import "testing"

func TestValidCategory(t *testing.T) {
	for _, category := range Categories {
		if !ValidCategory(category) {
			t.Errorf("ValidCategory(%q) = false", category)
		}
	}
	for _, category := range []string{"", "spices", "Gadgets"} {
		if ValidCategory(category) {
			t.Errorf("ValidCategory(%q) = true", category)
		}
	}
}
