// internal/domain/checkout/orderid.go
package checkout

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderTokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const orderTokenLength = 13

// GenerateOrderID produces an order identifier of the form
// "ORD-<unix-millis>-<13 random base36 chars>". Collisions require the
// same millisecond and the same random token; they are guarded by a
// unique index, not retried.
func GenerateOrderID() string {
	buf := make([]byte, orderTokenLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// fall back to the timestamp alone rather than panic.
		return fmt.Sprintf("ORD-%d-%013d", time.Now().UnixMilli(), time.Now().UnixNano()%1e13)
	}

	for i, b := range buf {
		buf[i] = orderTokenAlphabet[int(b)%len(orderTokenAlphabet)]
	}

	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), buf)
}
