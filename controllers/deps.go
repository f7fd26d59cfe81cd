package controllers

import (
	"pethotel-backend/services"
)

var (
	snapshotStore *services.SnapshotStore
	paymentClient *services.PaymentClient
)

// Init hands the controllers their shared collaborators. Called once from
// main before the routes are mounted.
func Init(store *services.SnapshotStore, payments *services.PaymentClient) {
	snapshotStore = store
	paymentClient = payments
}
