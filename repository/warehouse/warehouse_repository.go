package warehouse

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-hub/model"
)

type SQL struct {
	conn *sqlx.DB
}

type WarehouseRepository interface {
	List(ctx context.Context) ([]model.Warehouse, error)
	GetByID(ctx context.Context, id uint64) (*model.Warehouse, error)
	Insert(ctx context.Context, req *model.WarehouseRequest) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.WarehouseRequest) error
	Delete(ctx context.Context, id uint64) error
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

func (r *SQL) List(ctx context.Context) ([]model.Warehouse, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, name FROM warehouse ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	warehouses := make([]model.Warehouse, 0)
	for rows.Next() {
		var w model.Warehouse
		if err := rows.StructScan(&w); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Warehouse, error) {
	var w model.Warehouse
	err := r.conn.QueryRowxContext(ctx, "SELECT id, name FROM warehouse WHERE id = ?", id).StructScan(&w)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SQL) Insert(ctx context.Context, req *model.WarehouseRequest) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, "INSERT INTO warehouse (name) VALUES (?)", req.Name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, id uint64, req *model.WarehouseRequest) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE warehouse SET name = ? WHERE id = ?", req.Name, id)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := r.conn.ExecContext(ctx, "DELETE FROM warehouse WHERE id = ?", id)
	return err
}
