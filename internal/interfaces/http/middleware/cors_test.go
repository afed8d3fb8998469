package middleware

import "testing"

func TestIsOriginAllowed(t *testing.T) {
	cases := []struct {
		origin  string
		allowed []string
		want    bool
	}{
		{"https://shop.example.com", []string{"*"}, true},
		{"https://shop.example.com", []string{"https://shop.example.com"}, true},
		{"https://evil.example.org", []string{"https://shop.example.com"}, false},
		{"https://app.example.com", []string{"*.example.com"}, true},
		{"https://example.org", []string{"*.example.com"}, false},
		{"", []string{"https://shop.example.com"}, false},
	}

	for _, tc := range cases {
		if got := isOriginAllowed(tc.origin, tc.allowed); got != tc.want {
			t.Fatalf("isOriginAllowed(%q, %v) = %v, want %v", tc.origin, tc.allowed, got, tc.want)
		}
	}
}
