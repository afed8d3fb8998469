package checkout

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateOrderIDFormat(t *testing.T) {
	before := time.Now().UnixMilli()
	id := GenerateOrderID()
	after := time.Now().UnixMilli()

	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 dash-separated parts, got %d in %q", len(parts), id)
	}
	if parts[0] != "ORD" {
		t.Fatalf("expected ORD prefix, got %q", parts[0])
	}

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("timestamp part not numeric: %v", err)
	}
	if millis < before || millis > after {
		t.Fatalf("timestamp %d outside [%d, %d]", millis, before, after)
	}

	if len(parts[2]) != orderTokenLength {
		t.Fatalf("token length mismatch: got %d want %d", len(parts[2]), orderTokenLength)
	}
	for _, r := range parts[2] {
		if !strings.ContainsRune(orderTokenAlphabet, r) {
			t.Fatalf("token contains character outside alphabet: %q", r)
		}
	}
}

func TestGenerateOrderIDUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateOrderID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate order id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
