package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusPerKind(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := Status(New(tc.kind, "boom")); got != tc.want {
			t.Fatalf("kind %d: got status %d want %d", tc.kind, got, tc.want)
		}
	}
}

func TestStatusUnclassified(t *testing.T) {
	if got := Status(errors.New("plain")); got != http.StatusInternalServerError {
		t.Fatalf("unclassified error: got %d", got)
	}
}

func TestPublicMessageNeverLeaksCause(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := Wrap(KindInternal, "Internal server error", cause)

	if msg := PublicMessage(err); msg != "Internal server error" {
		t.Fatalf("public message leaked: %q", msg)
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must remain reachable via errors.Is")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("adding context: %w", New(KindNotFound, "User not found"))

	if !IsKind(err, KindNotFound) {
		t.Fatal("expected KindNotFound through wrapping")
	}
	if IsKind(err, KindConflict) {
		t.Fatal("did not expect KindConflict")
	}
}
