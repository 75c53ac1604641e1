package stock

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

type StockRepository interface {
	List(ctx context.Context) ([]model.Stock, error)
	GetByID(ctx context.Context, id uint64) (*model.Stock, error)
	Insert(ctx context.Context, req *model.StockRequest) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.StockRequest) error
	Delete(ctx context.Context, id uint64) error
	AddStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID, productID uint64, quantity int) (int64, error)
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

func (r *SQL) List(ctx context.Context) ([]model.Stock, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, warehouse_id, product_id, quantity FROM stock ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stocks := make([]model.Stock, 0)
	for rows.Next() {
		var s model.Stock
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Stock, error) {
	var s model.Stock
	err := r.conn.QueryRowxContext(ctx, "SELECT id, warehouse_id, product_id, quantity FROM stock WHERE id = ?", id).StructScan(&s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) Insert(ctx context.Context, req *model.StockRequest) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, "INSERT INTO stock (warehouse_id, product_id, quantity) VALUES (?, ?, ?)",
		req.WarehouseID, req.ProductID, req.Quantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, id uint64, req *model.StockRequest) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE stock SET warehouse_id = ?, product_id = ?, quantity = ? WHERE id = ?",
		req.WarehouseID, req.ProductID, req.Quantity, id)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := r.conn.ExecContext(ctx, "DELETE FROM stock WHERE id = ?", id)
	return err
}

// AddStockTx increments the (warehouse, product) stock level, creating the
// row when none exists. The upsert is a single atomic statement relying on
// the UNIQUE(warehouse_id, product_id) constraint, so concurrent deliveries
// never lose updates. Returns the resulting stock level.
func (r *SQL) AddStockTx(ctx context.Context, tx *sqlx.Tx, warehouseID, productID uint64, quantity int) (int64, error) {
	q := "INSERT INTO stock (warehouse_id, product_id, quantity) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)"
	if _, err := tx.ExecContext(ctx, q, warehouseID, productID, quantity); err != nil {
		return 0, err
	}

	var level int64
	if err := tx.GetContext(ctx, &level, "SELECT quantity FROM stock WHERE warehouse_id = ? AND product_id = ?", warehouseID, productID); err != nil {
		return 0, err
	}
	return level, nil
}
