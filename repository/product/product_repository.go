package product

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

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error)
	GetBySKUTx(ctx context.Context, tx *sqlx.Tx, sku string) (*model.Product, error)
	Insert(ctx context.Context, req *model.ProductRequest) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.ProductRequest) error
	Delete(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (r *SQL) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, name, sku FROM product ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	err := r.conn.QueryRowxContext(ctx, "SELECT id, name, sku FROM product WHERE id = ?", id).StructScan(&p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Product, error) {
	var p model.Product
	err := tx.QueryRowxContext(ctx, "SELECT id, name, sku FROM product WHERE id = ?", id).StructScan(&p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQL) GetBySKUTx(ctx context.Context, tx *sqlx.Tx, sku string) (*model.Product, error) {
	var p model.Product
	err := tx.QueryRowxContext(ctx, "SELECT id, name, sku FROM product WHERE sku = ?", sku).StructScan(&p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQL) Insert(ctx context.Context, req *model.ProductRequest) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, "INSERT INTO product (name, sku) VALUES (?, ?)", req.Name, req.SKU)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, id uint64, req *model.ProductRequest) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE product SET name = ?, sku = ? WHERE id = ?", req.Name, req.SKU, id)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM product WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
