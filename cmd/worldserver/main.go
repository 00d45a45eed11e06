package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/wildraid/internal/config"
	"github.com/udisondev/wildraid/internal/data"
	"github.com/udisondev/wildraid/internal/db"
	"github.com/udisondev/wildraid/internal/game/progress"
	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/item"
	"github.com/udisondev/wildraid/internal/structure"
	"github.com/udisondev/wildraid/internal/unit"
	"github.com/udisondev/wildraid/internal/world"
)

const WorldConfigPath = "config/worldserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := WorldConfigPath
	if p := os.Getenv("WILDRAID_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadWorldServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading world config: %w", err)
	}

	// Configure slog based on config.LogLevel
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("wildraid world server starting",
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.TickInterval)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// Load structure and unit templates
	data.LoadStructureTemplates(cfg.Rates.LootChanceMultiplier, cfg.Rates.LootAmountMultiplier)
	slog.Info("structure templates loaded")

	// Shared random source. The world tick owner is the only consumer, so
	// an unsynchronized source is fine.
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	// Wire collaborators
	w := world.New(cfg.TickInterval)
	units := unit.NewManager()
	ground := item.NewGroundManager(time.Duration(cfg.Rates.ItemAutoDestroyTime) * time.Second)
	tracker := progress.NewTracker()
	spawner := &unitSpawnerAdapter{units: units}

	// Place structures from the configured layout
	if err := buildWorld(w, cfg.Structures, rng, ground, tracker, spawner); err != nil {
		return fmt.Errorf("building world: %w", err)
	}
	slog.Info("world built", "structures", w.StructureCount())

	// Restore persisted structure state
	structRepo := db.NewStructureRepository(database.Pool())
	persister := db.NewWorldPersistenceService(structRepo, w, cfg.AutosaveInterval)
	if err := persister.RestoreAll(ctx); err != nil {
		return fmt.Errorf("restoring structure state: %w", err)
	}

	// Run tick loop, item sweeper and autosave in parallel
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := w.Start(gctx); err != nil {
			return fmt.Errorf("world tick loop: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := ground.Start(gctx); err != nil {
			return fmt.Errorf("ground item sweeper: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := persister.Start(gctx); err != nil {
			return fmt.Errorf("world autosave: %w", err)
		}
		return nil
	})

	slog.Info("wildraid world server started")
	return g.Wait()
}

// buildWorld places the configured structures. Unknown kinds and missing
// templates skip the entry with a warning rather than failing startup.
func buildWorld(
	w *world.World,
	placements []config.Placement,
	rng geom.Rand,
	ground *item.GroundManager,
	tracker *progress.Tracker,
	spawner structure.UnitSpawner,
) error {
	placed := 0
	for _, p := range placements {
		kind, ok := structure.KindFromString(p.Kind)
		if !ok {
			slog.Warn("unknown structure kind in layout, skipping", "kind", p.Kind)
			continue
		}
		tmpl := data.GetTemplate(kind)
		if tmpl == nil {
			slog.Warn("no template for structure kind, skipping", "kind", p.Kind)
			continue
		}

		s := structure.New(w.NextObjectID(), tmpl, geom.NewPoint(p.X, p.Y), rng, ground, tracker, spawner)
		w.AddStructure(s)
		placed++
	}

	if placed == 0 && len(placements) > 0 {
		return fmt.Errorf("no structure in layout could be placed")
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
