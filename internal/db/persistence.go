package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/wildraid/internal/structure"
	"github.com/udisondev/wildraid/internal/world"
)

// WorldPersistenceService periodically snapshots every structure into the
// structure_state table and restores saved state at startup. Structures
// destroyed for good keep their row so the settlement stays razed across
// restarts.
type WorldPersistenceService struct {
	repo     *StructureRepository
	world    *world.World
	interval time.Duration
}

// NewWorldPersistenceService creates the autosave service.
func NewWorldPersistenceService(repo *StructureRepository, w *world.World, interval time.Duration) *WorldPersistenceService {
	return &WorldPersistenceService{
		repo:     repo,
		world:    w,
		interval: interval,
	}
}

// RestoreAll applies persisted state to the structures already placed in
// the world. Rows without a matching structure are skipped with a
// warning (layout changed between runs).
func (s *WorldPersistenceService) RestoreAll(ctx context.Context) error {
	rows, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading structure state: %w", err)
	}

	restored := 0
	for _, row := range rows {
		st, ok := s.world.Structure(uint32(row.StructureID))
		if !ok {
			slog.Warn("persisted structure not present in world, skipping",
				"structureID", row.StructureID)
			continue
		}
		st.Restore(row.ToSnapshot())
		restored++
	}

	slog.Info("structure state restored", "rows", len(rows), "restored", restored)
	return nil
}

// SaveAll snapshots every structure. Per-row failures are logged and the
// sweep continues; the first error is returned for diagnostics.
func (s *WorldPersistenceService) SaveAll(ctx context.Context) error {
	var firstErr error
	saved := 0

	s.world.Structures(func(st *structure.Structure) bool {
		row := FromSnapshot(st.Snapshot())
		if err := s.repo.Save(ctx, row); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.Error("saving structure state", "structureID", row.StructureID, "error", err)
			return true
		}
		saved++
		return true
	})

	slog.Debug("structure state saved", "count", saved)
	return firstErr
}

// Start runs the autosave loop (blocks until context is canceled). A
// final save runs on shutdown.
func (s *WorldPersistenceService) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("world autosave started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("world autosave stopping, final save")
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.SaveAll(saveCtx); err != nil {
				slog.Error("final autosave failed", "error", err)
			}
			return ctx.Err()

		case <-ticker.C:
			if err := s.SaveAll(ctx); err != nil {
				slog.Error("autosave failed", "error", err)
			}
		}
	}
}
