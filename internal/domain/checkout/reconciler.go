// internal/domain/checkout/reconciler.go
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reconciler retries cart clears whose payment landed but whose clear
// did not. It scans the pending markers and re-runs the idempotent
// delete for each.
type Reconciler struct {
	service  *Service
	interval time.Duration
	logger   *logrus.Logger
}

// NewReconciler creates a reconciler over the checkout service
func NewReconciler(service *Service, interval time.Duration, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Run reconciles once immediately and then on the configured interval
// until the context is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	r.reconcile(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context) {
	iter := r.service.redis.Scan(ctx, 0, pendingClearPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		email, err := r.service.redis.Get(ctx, key).Result()
		if err != nil {
			// Marker expired or Redis hiccup; the next pass will see it
			// if it still exists.
			continue
		}

		orderID := key[len(pendingClearPrefix):]

		// Only payments that actually landed get their cart cleared. A
		// marker without a payment row is an orphan from an insert that
		// failed after the marker write; drop it.
		err = r.service.payments.FindOne(ctx, bson.M{"orderId": orderID}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			if err := r.service.redis.Del(ctx, key).Err(); err != nil {
				r.logger.WithError(err).WithField("order_id", orderID).
					Warn("failed to drop orphaned cart-clear marker")
			}
			continue
		}
		if err != nil {
			r.logger.WithError(err).WithField("order_id", orderID).
				Warn("payment lookup failed during reconciliation")
			continue
		}

		if err := r.service.clearCart(ctx, orderID, email); err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"order_id": orderID,
				"email":    email,
			}).Warn("reconciler cart clear failed")
			continue
		}

		r.logger.WithFields(logrus.Fields{
			"order_id": orderID,
			"email":    email,
		}).Info("reconciled outstanding cart clear")
	}

	if err := iter.Err(); err != nil {
		r.logger.WithError(err).Warn("pending cart-clear scan failed")
	}
}
