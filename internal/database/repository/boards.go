package repository

import (
	"context"
	"database/sql"
)

// BoardRepo handles saved boards.
type BoardRepo struct {
	db *sql.DB
}

func NewBoardRepo(db *sql.DB) *BoardRepo {
	return &BoardRepo{db: db}
}

func (r *BoardRepo) Save(ctx context.Context, b Board) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO boards(id, name, grid_size, agent_x, agent_y, dirt, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(name) DO UPDATE SET
	 grid_size=excluded.grid_size,
	 agent_x=excluded.agent_x,
	 agent_y=excluded.agent_y,
	 dirt=excluded.dirt,
	 updated_at=CURRENT_TIMESTAMP;
	`, b.ID, b.Name, b.GridSize, b.AgentX, b.AgentY, b.Dirt)
	return err
}

func (r *BoardRepo) Get(ctx context.Context, id string) (*Board, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, grid_size, agent_x, agent_y, dirt, created_at, updated_at FROM boards WHERE id = ?`, id)
	return scanBoard(row)
}

func (r *BoardRepo) GetByName(ctx context.Context, name string) (*Board, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, grid_size, agent_x, agent_y, dirt, created_at, updated_at FROM boards WHERE name = ?`, name)
	return scanBoard(row)
}

func (r *BoardRepo) List(ctx context.Context) ([]Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, grid_size, agent_x, agent_y, dirt, created_at, updated_at FROM boards ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Board
	for rows.Next() {
		var b Board
		if err := rows.Scan(&b.ID, &b.Name, &b.GridSize, &b.AgentX, &b.AgentY, &b.Dirt, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BoardRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	return err
}

func scanBoard(row *sql.Row) (*Board, error) {
	var b Board
	err := row.Scan(&b.ID, &b.Name, &b.GridSize, &b.AgentX, &b.AgentY, &b.Dirt, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
