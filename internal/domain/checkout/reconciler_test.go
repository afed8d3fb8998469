package checkout

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestReconcile(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("retries the cart clear for a landed payment", func(mt *mtest.T) {
		const orderID = "ORD-1-aaaaaaaaaaaaa"

		stub := &redisStub{
			scanKeys: []string{pendingClearPrefix + orderID},
			values:   map[string]string{pendingClearPrefix + orderID: "alice@example.com"},
		}
		svc := NewService(mt.DB, newStubClient(stub), testLogger())
		rec := NewReconciler(svc, time.Minute, testLogger())

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "Discount_App.payments", mtest.FirstBatch,
				paymentDoc(orderID, "alice@example.com")),
			mtest.CreateSuccessResponse(),
		)

		rec.reconcile(context.Background())

		var sawDelete bool
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName == "delete" {
				sawDelete = true
			}
		}
		if !sawDelete {
			t.Fatal("cart delete never happened")
		}

		seen := stub.seen()
		if seen[len(seen)-1] != "del" {
			t.Fatalf("marker must be dropped after the clear, got %v", seen)
		}
	})

	mt.Run("drops a marker whose payment never landed", func(mt *mtest.T) {
		const orderID = "ORD-1-bbbbbbbbbbbbb"

		stub := &redisStub{
			scanKeys: []string{pendingClearPrefix + orderID},
			values:   map[string]string{pendingClearPrefix + orderID: "alice@example.com"},
		}
		svc := NewService(mt.DB, newStubClient(stub), testLogger())
		rec := NewReconciler(svc, time.Minute, testLogger())

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "Discount_App.payments", mtest.FirstBatch),
		)

		rec.reconcile(context.Background())

		// An orphaned marker must not clear anyone's cart.
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName == "delete" {
				t.Fatal("cart was cleared for a payment that never landed")
			}
		}

		seen := stub.seen()
		if seen[len(seen)-1] != "del" {
			t.Fatalf("orphaned marker must be deleted, got %v", seen)
		}
	})

	mt.Run("an expired marker is skipped", func(mt *mtest.T) {
		stub := &redisStub{
			scanKeys: []string{pendingClearPrefix + "ORD-1-ccccccccccccc"},
		}
		svc := NewService(mt.DB, newStubClient(stub), testLogger())
		rec := NewReconciler(svc, time.Minute, testLogger())

		rec.reconcile(context.Background())

		if evs := mt.GetAllStartedEvents(); len(evs) != 0 {
			t.Fatalf("no Mongo traffic expected for an expired marker, got %d commands", len(evs))
		}
	})
}
