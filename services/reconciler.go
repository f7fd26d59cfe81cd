package services

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"pethotel-backend/services/logger"
)

// ReconcilerOptions carries the collaborators of the sweep.
type ReconcilerOptions struct {
	DB     *gorm.DB
	Store  *SnapshotStore
	Logger logger.Logger
}

// Reconciler runs the availability sweep on a schedule and pushes the
// findings to the websocket dashboards. It never corrects anything; a
// mismatch stays a warning until an operator acts on it.
type Reconciler struct {
	db     *gorm.DB
	store  *SnapshotStore
	logger logger.Logger
}

func NewReconciler(opts ReconcilerOptions) *Reconciler {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Reconciler{db: opts.DB, store: opts.Store, logger: opts.Logger}
}

// RefreshSnapshots reloads both snapshots. A failed fetch leaves the
// previous snapshot in place and is only logged.
func (r *Reconciler) RefreshSnapshots() {
	if err := RefreshRoomSnapshot(r.db, r.store); err != nil {
		r.logger.Error("room snapshot refresh failed: %v", err)
	}
	if err := RefreshReservationSnapshot(r.db, r.store); err != nil {
		r.logger.Error("reservation snapshot refresh failed: %v", err)
	}
}

// BroadcastMismatches refreshes the snapshots, sweeps them and, when
// something is off, tells every connected dashboard.
func (r *Reconciler) BroadcastMismatches(m *melody.Melody) error {
	r.RefreshSnapshots()

	findings := r.store.Mismatches(time.Now())
	if len(findings) == 0 {
		r.logger.Info("availability sweep clean, %d rooms checked", len(r.store.Rooms()))
		return nil
	}

	r.logger.Info("availability sweep found %d mismatched rooms", len(findings))

	payload, err := json.Marshal(map[string]interface{}{
		"type":       "availability_mismatch",
		"mismatches": findings,
	})
	if err != nil {
		return err
	}
	return m.Broadcast(payload)
}
