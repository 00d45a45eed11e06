package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/wildraid/internal/geom"
	"github.com/udisondev/wildraid/internal/model"
	"github.com/udisondev/wildraid/internal/structure"
)

// StructureStateRow represents a row from structure_state.
type StructureStateRow struct {
	StructureID    int64
	Kind           int32
	State          int16
	CurrentHP      int32
	RespawnElapsed int64 // milliseconds
	MineRemaining  int32
	StockMeat      int32
	StockWood      int32
	StockGold      int32
	PosX           float64
	PosY           float64
}

// FromSnapshot converts an engine snapshot into a DB row.
func FromSnapshot(snap structure.Snapshot) StructureStateRow {
	return StructureStateRow{
		StructureID:    int64(snap.ID),
		Kind:           int32(snap.Kind),
		State:          int16(snap.State),
		CurrentHP:      snap.CurrentHP,
		RespawnElapsed: snap.RespawnElapsed.Milliseconds(),
		MineRemaining:  snap.MineRemaining,
		StockMeat:      snap.Stockpile[model.ResourceMeat],
		StockWood:      snap.Stockpile[model.ResourceWood],
		StockGold:      snap.Stockpile[model.ResourceGold],
		PosX:           snap.Position.X,
		PosY:           snap.Position.Y,
	}
}

// ToSnapshot converts a DB row back into an engine snapshot.
func (r StructureStateRow) ToSnapshot() structure.Snapshot {
	return structure.Snapshot{
		ID:             uint32(r.StructureID),
		Kind:           structure.Kind(r.Kind),
		State:          structure.State(r.State),
		CurrentHP:      r.CurrentHP,
		RespawnElapsed: time.Duration(r.RespawnElapsed) * time.Millisecond,
		MineRemaining:  r.MineRemaining,
		Stockpile: map[model.ResourceKind]int32{
			model.ResourceMeat: r.StockMeat,
			model.ResourceWood: r.StockWood,
			model.ResourceGold: r.StockGold,
		},
		Position: geom.NewPoint(r.PosX, r.PosY),
	}
}

// StructureRepository provides CRUD for the structure_state table.
type StructureRepository struct {
	pool *pgxpool.Pool
}

// NewStructureRepository creates a new StructureRepository.
func NewStructureRepository(pool *pgxpool.Pool) *StructureRepository {
	return &StructureRepository{pool: pool}
}

// LoadAll loads all persisted structure state records.
func (r *StructureRepository) LoadAll(ctx context.Context) ([]StructureStateRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT structure_id, kind, state, current_hp, respawn_elapsed,
		        mine_remaining, stock_meat, stock_wood, stock_gold, pos_x, pos_y
		 FROM structure_state`)
	if err != nil {
		return nil, fmt.Errorf("query structure_state: %w", err)
	}
	defer rows.Close()

	var result []StructureStateRow
	for rows.Next() {
		var row StructureStateRow
		if err := rows.Scan(
			&row.StructureID, &row.Kind, &row.State, &row.CurrentHP, &row.RespawnElapsed,
			&row.MineRemaining, &row.StockMeat, &row.StockWood, &row.StockGold, &row.PosX, &row.PosY,
		); err != nil {
			return nil, fmt.Errorf("scan structure_state: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Get loads a single structure state record by ID.
func (r *StructureRepository) Get(ctx context.Context, structureID int64) (*StructureStateRow, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT structure_id, kind, state, current_hp, respawn_elapsed,
		        mine_remaining, stock_meat, stock_wood, stock_gold, pos_x, pos_y
		 FROM structure_state WHERE structure_id = $1`, structureID)

	var st StructureStateRow
	if err := row.Scan(
		&st.StructureID, &st.Kind, &st.State, &st.CurrentHP, &st.RespawnElapsed,
		&st.MineRemaining, &st.StockMeat, &st.StockWood, &st.StockGold, &st.PosX, &st.PosY,
	); err != nil {
		return nil, fmt.Errorf("get structure_state %d: %w", structureID, err)
	}
	return &st, nil
}

// Save inserts or updates a structure state record.
func (r *StructureRepository) Save(ctx context.Context, row StructureStateRow) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO structure_state
		   (structure_id, kind, state, current_hp, respawn_elapsed,
		    mine_remaining, stock_meat, stock_wood, stock_gold, pos_x, pos_y, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		 ON CONFLICT (structure_id) DO UPDATE SET
		   kind = EXCLUDED.kind,
		   state = EXCLUDED.state,
		   current_hp = EXCLUDED.current_hp,
		   respawn_elapsed = EXCLUDED.respawn_elapsed,
		   mine_remaining = EXCLUDED.mine_remaining,
		   stock_meat = EXCLUDED.stock_meat,
		   stock_wood = EXCLUDED.stock_wood,
		   stock_gold = EXCLUDED.stock_gold,
		   pos_x = EXCLUDED.pos_x,
		   pos_y = EXCLUDED.pos_y,
		   updated_at = now()`,
		row.StructureID, row.Kind, row.State, row.CurrentHP, row.RespawnElapsed,
		row.MineRemaining, row.StockMeat, row.StockWood, row.StockGold, row.PosX, row.PosY)
	if err != nil {
		return fmt.Errorf("upsert structure_state %d: %w", row.StructureID, err)
	}
	return nil
}

// Delete removes a structure state record.
func (r *StructureRepository) Delete(ctx context.Context, structureID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM structure_state WHERE structure_id = $1`, structureID)
	if err != nil {
		return fmt.Errorf("delete structure_state %d: %w", structureID, err)
	}
	return nil
}
