package purchaserequest

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-hub/constant"
	"github.com/muhammadheryan/inventory-hub/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PurchaseRequestRepository interface {
	ListAll(ctx context.Context) ([]model.PurchaseRequest, error)
	GetByID(ctx context.Context, id uint64) (*model.PurchaseRequest, error)
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PurchaseRequest, error)
	GetByReferenceForUpdateTx(ctx context.Context, tx *sqlx.Tx, reference string) (*model.PurchaseRequest, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertPurchaseRequestTxItem) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdatePurchaseRequestTxItem) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.PurchaseRequestStatus) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error

	ListAllItems(ctx context.Context) ([]model.PurchaseRequestItem, error)
	GetItemsByRequestID(ctx context.Context, requestID uint64) ([]model.PurchaseRequestItem, error)
	GetItemsByRequestIDTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) ([]model.PurchaseRequestItem, error)
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, items []model.PurchaseRequestItemRequest) error
	UpdateItemQuantityTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, quantity int) error
	DeleteItemTx(ctx context.Context, tx *sqlx.Tx, itemID uint64) error
	DeleteItemsByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) error
}

func NewPurchaseRequestRepository(conn *sqlx.DB) PurchaseRequestRepository {
	return &SQL{conn: conn}
}

const selectRequest = "SELECT id, reference, warehouse_id, status, created_at, updated_at FROM purchase_request"

func (r *SQL) ListAll(ctx context.Context) ([]model.PurchaseRequest, error) {
	rows, err := r.conn.QueryxContext(ctx, selectRequest+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]model.PurchaseRequest, 0)
	for rows.Next() {
		var pr model.PurchaseRequest
		if err := rows.StructScan(&pr); err != nil {
			return nil, err
		}
		requests = append(requests, pr)
	}
	return requests, rows.Err()
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.PurchaseRequest, error) {
	var pr model.PurchaseRequest
	err := r.conn.QueryRowxContext(ctx, selectRequest+" WHERE id = ?", id).StructScan(&pr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// GetByIDForUpdateTx reads the request row with a pessimistic lock so the
// status precondition check and the subsequent write cannot race with a
// concurrent transition.
func (r *SQL) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.PurchaseRequest, error) {
	var pr model.PurchaseRequest
	err := tx.QueryRowxContext(ctx, selectRequest+" WHERE id = ? FOR UPDATE", id).StructScan(&pr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *SQL) GetByReferenceForUpdateTx(ctx context.Context, tx *sqlx.Tx, reference string) (*model.PurchaseRequest, error) {
	var pr model.PurchaseRequest
	err := tx.QueryRowxContext(ctx, selectRequest+" WHERE reference = ? FOR UPDATE", reference).StructScan(&pr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertPurchaseRequestTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO purchase_request (reference, warehouse_id, status) VALUES (?, ?, ?)",
		req.Reference, req.WarehouseID, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdatePurchaseRequestTxItem) error {
	_, err := tx.ExecContext(ctx, "UPDATE purchase_request SET reference = ?, warehouse_id = ?, status = ? WHERE id = ?",
		req.Reference, req.WarehouseID, req.Status, id)
	return err
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.PurchaseRequestStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE purchase_request SET status = ? WHERE id = ?", status, id)
	return err
}

// DeleteTx removes the request; its items go with it via the cascading
// foreign key, but are deleted explicitly to keep the cleanup visible.
func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM purchase_request_item WHERE purchase_request_id = ?", id); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM purchase_request WHERE id = ?", id)
	return err
}

const selectItem = "SELECT id, purchase_request_id, product_id, quantity FROM purchase_request_item"

func (r *SQL) ListAllItems(ctx context.Context) ([]model.PurchaseRequestItem, error) {
	return r.scanItems(r.conn.QueryxContext(ctx, selectItem+" ORDER BY id"))
}

func (r *SQL) GetItemsByRequestID(ctx context.Context, requestID uint64) ([]model.PurchaseRequestItem, error) {
	return r.scanItems(r.conn.QueryxContext(ctx, selectItem+" WHERE purchase_request_id = ? ORDER BY id", requestID))
}

func (r *SQL) GetItemsByRequestIDTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) ([]model.PurchaseRequestItem, error) {
	return r.scanItems(tx.QueryxContext(ctx, selectItem+" WHERE purchase_request_id = ? ORDER BY id", requestID))
}

func (r *SQL) scanItems(rows *sqlx.Rows, err error) ([]model.PurchaseRequestItem, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PurchaseRequestItem, 0)
	for rows.Next() {
		var it model.PurchaseRequestItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQL) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, items []model.PurchaseRequestItemRequest) error {
	q := "INSERT INTO purchase_request_item (purchase_request_id, product_id, quantity) VALUES (?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, requestID, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) UpdateItemQuantityTx(ctx context.Context, tx *sqlx.Tx, itemID uint64, quantity int) error {
	_, err := tx.ExecContext(ctx, "UPDATE purchase_request_item SET quantity = ? WHERE id = ?", quantity, itemID)
	return err
}

func (r *SQL) DeleteItemTx(ctx context.Context, tx *sqlx.Tx, itemID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM purchase_request_item WHERE id = ?", itemID)
	return err
}

func (r *SQL) DeleteItemsByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM purchase_request_item WHERE purchase_request_id = ?", requestID)
	return err
}
