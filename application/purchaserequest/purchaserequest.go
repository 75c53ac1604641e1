package purchaserequest

import (
	"context"
	"encoding/json"
	goerrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-hub/constant"
	"github.com/muhammadheryan/inventory-hub/model"
	productrepo "github.com/muhammadheryan/inventory-hub/repository/product"
	purchaserequestrepo "github.com/muhammadheryan/inventory-hub/repository/purchaserequest"
	txrepo "github.com/muhammadheryan/inventory-hub/repository/tx"
	"github.com/muhammadheryan/inventory-hub/thirdparty/foomhub"
	"github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/muhammadheryan/inventory-hub/utils/logger"
	"go.uber.org/zap"
)

type PurchaseRequestApp interface {
	ListPurchaseRequests(ctx context.Context) ([]model.PurchaseRequestDetail, error)
	GetPurchaseRequest(ctx context.Context, id uint64) (*model.PurchaseRequestDetail, error)
	CreatePurchaseRequest(ctx context.Context, req *model.CreatePurchaseRequestRequest) (*model.PurchaseRequestDetail, error)
	UpdatePurchaseRequest(ctx context.Context, id uint64, req *model.UpdatePurchaseRequestRequest) (*model.UpdatePurchaseRequestResponse, error)
	DeletePurchaseRequest(ctx context.Context, id uint64) error
}

type purchaseRequestAppImpl struct {
	txRepo      txrepo.TxRepository
	prRepo      purchaserequestrepo.PurchaseRequestRepository
	productRepo productrepo.ProductRepository
	foomHub     foomhub.Client
}

func NewPurchaseRequestApp(txRepo txrepo.TxRepository, prRepo purchaserequestrepo.PurchaseRequestRepository, productRepo productrepo.ProductRepository, foomHub foomhub.Client) PurchaseRequestApp {
	return &purchaseRequestAppImpl{
		txRepo:      txRepo,
		prRepo:      prRepo,
		productRepo: productRepo,
		foomHub:     foomHub,
	}
}

// ListPurchaseRequests returns every request enriched with its items. Items
// are fetched in bulk and grouped by purchase_request_id rather than joined
// per row.
func (s *purchaseRequestAppImpl) ListPurchaseRequests(ctx context.Context) ([]model.PurchaseRequestDetail, error) {
	requests, err := s.prRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListPurchaseRequests] error prRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := s.prRepo.ListAllItems(ctx)
	if err != nil {
		logger.Error("[ListPurchaseRequests] error prRepo.ListAllItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	grouped := make(map[uint64][]model.PurchaseRequestItem, len(requests))
	for _, it := range items {
		grouped[it.PurchaseRequestID] = append(grouped[it.PurchaseRequestID], it)
	}

	details := make([]model.PurchaseRequestDetail, 0, len(requests))
	for _, pr := range requests {
		reqItems := grouped[pr.ID]
		if reqItems == nil {
			reqItems = []model.PurchaseRequestItem{}
		}
		details = append(details, model.PurchaseRequestDetail{PurchaseRequest: pr, Items: reqItems})
	}
	return details, nil
}

func (s *purchaseRequestAppImpl) GetPurchaseRequest(ctx context.Context, id uint64) (*model.PurchaseRequestDetail, error) {
	pr, err := s.prRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetPurchaseRequest] error prRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pr == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.prRepo.GetItemsByRequestID(ctx, id)
	if err != nil {
		logger.Error("[GetPurchaseRequest] error prRepo.GetItemsByRequestID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PurchaseRequestDetail{PurchaseRequest: *pr, Items: items}, nil
}

// CreatePurchaseRequest persists the request and all its items as one
// transaction; a failure on any item leaves no partial request behind.
func (s *purchaseRequestAppImpl) CreatePurchaseRequest(ctx context.Context, req *model.CreatePurchaseRequestRequest) (*model.PurchaseRequestDetail, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreatePurchaseRequest] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.prRepo.InsertTx(ctx, tx, &model.InsertPurchaseRequestTxItem{
		Reference:   req.Reference,
		WarehouseID: req.WarehouseID,
		Status:      constant.PurchaseRequestStatusDraft,
	})
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[CreatePurchaseRequest] insert request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.prRepo.InsertItemsTx(ctx, tx, id, req.Products); err != nil {
		logger.Error("[CreatePurchaseRequest] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items, err := s.prRepo.GetItemsByRequestIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[CreatePurchaseRequest] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreatePurchaseRequest] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.PurchaseRequestDetail{
		PurchaseRequest: model.PurchaseRequest{
			ID:          id,
			Reference:   req.Reference,
			WarehouseID: req.WarehouseID,
			Status:      constant.PurchaseRequestStatusDraft,
		},
		Items: items,
	}, nil
}

// UpdatePurchaseRequest applies a partial update to a DRAFT request inside
// one transaction: field defaults, the item diff, and, when the resulting
// status is PENDING, the synchronous FOOM Hub sync. Any failure, including
// a failed sync, rolls back the whole transaction.
func (s *purchaseRequestAppImpl) UpdatePurchaseRequest(ctx context.Context, id uint64, req *model.UpdatePurchaseRequestRequest) (*model.UpdatePurchaseRequestResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdatePurchaseRequest] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	pr, err := s.prRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[UpdatePurchaseRequest] get request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pr == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if pr.Status != constant.PurchaseRequestStatusDraft {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	updated := &model.UpdatePurchaseRequestTxItem{
		Reference:   pr.Reference,
		WarehouseID: pr.WarehouseID,
		Status:      pr.Status,
	}
	if req.Reference != nil {
		updated.Reference = *req.Reference
	}
	if req.WarehouseID != nil {
		updated.WarehouseID = *req.WarehouseID
	}
	if req.Status != nil {
		updated.Status = constant.PurchaseRequestStatus(*req.Status)
	}

	if len(req.Products) > 0 {
		if err := s.reconcileItems(ctx, tx, id, req.Products); err != nil {
			return nil, err
		}
	}

	if err := s.prRepo.UpdateTx(ctx, tx, id, updated); err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[UpdatePurchaseRequest] update request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var foomHubResponse json.RawMessage
	if updated.Status == constant.PurchaseRequestStatusPending {
		foomHubResponse, err = s.syncWithFoomHub(ctx, tx, id, updated.Reference, req.Products)
		if err != nil {
			return nil, err
		}
	}

	items, err := s.prRepo.GetItemsByRequestIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[UpdatePurchaseRequest] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdatePurchaseRequest] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.UpdatePurchaseRequestResponse{
		PurchaseRequest: model.PurchaseRequestDetail{
			PurchaseRequest: model.PurchaseRequest{
				ID:          id,
				Reference:   updated.Reference,
				WarehouseID: updated.WarehouseID,
				Status:      updated.Status,
				CreatedAt:   pr.CreatedAt,
				UpdatedAt:   pr.UpdatedAt,
			},
			Items: items,
		},
		FoomHubResponse: foomHubResponse,
	}, nil
}

// reconcileItems diffs the requested items against the stored ones by
// product_id: removed products are deleted, matching products get an
// in-place quantity update (row id preserved), new products are inserted.
// Matching by product_id keeps a reordered payload from churning rows.
func (s *purchaseRequestAppImpl) reconcileItems(ctx context.Context, tx *sqlx.Tx, requestID uint64, products []model.PurchaseRequestItemRequest) error {
	existing, err := s.prRepo.GetItemsByRequestIDTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("[UpdatePurchaseRequest] get existing items", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	existingByProduct := make(map[uint64]model.PurchaseRequestItem, len(existing))
	for _, it := range existing {
		existingByProduct[it.ProductID] = it
	}
	requestedProducts := make(map[uint64]struct{}, len(products))
	for _, p := range products {
		requestedProducts[p.ProductID] = struct{}{}
	}

	for _, it := range existing {
		if _, ok := requestedProducts[it.ProductID]; !ok {
			if err := s.prRepo.DeleteItemTx(ctx, tx, it.ID); err != nil {
				logger.Error("[UpdatePurchaseRequest] delete item", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	toCreate := make([]model.PurchaseRequestItemRequest, 0)
	for _, p := range products {
		if it, ok := existingByProduct[p.ProductID]; ok {
			if err := s.prRepo.UpdateItemQuantityTx(ctx, tx, it.ID, p.Quantity); err != nil {
				logger.Error("[UpdatePurchaseRequest] update item", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		} else {
			toCreate = append(toCreate, p)
		}
	}

	if len(toCreate) > 0 {
		if err := s.prRepo.InsertItemsTx(ctx, tx, requestID, toCreate); err != nil {
			logger.Error("[UpdatePurchaseRequest] insert items", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

// syncWithFoomHub resolves the authoritative item list, builds the sync
// payload and posts it to the partner. The request payload's items win when
// supplied; otherwise the persisted items are used. An empty resolved list
// rejects the PENDING transition.
func (s *purchaseRequestAppImpl) syncWithFoomHub(ctx context.Context, tx *sqlx.Tx, requestID uint64, reference string, products []model.PurchaseRequestItemRequest) (json.RawMessage, error) {
	lines := make([]model.PurchaseRequestItemRequest, 0)
	if len(products) > 0 {
		lines = append(lines, products...)
	} else {
		stored, err := s.prRepo.GetItemsByRequestIDTx(ctx, tx, requestID)
		if err != nil {
			logger.Error("[UpdatePurchaseRequest] get items for sync", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		for _, it := range stored {
			lines = append(lines, model.PurchaseRequestItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
		}
	}

	if len(lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyItems)
	}

	details := make([]model.FoomSyncDetail, 0, len(lines))
	qtyTotal := 0
	for _, line := range lines {
		product, err := s.productRepo.GetByIDTx(ctx, tx, line.ProductID)
		if err != nil {
			logger.Error("[UpdatePurchaseRequest] resolve product", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		detail := model.FoomSyncDetail{ProductName: "Unknown", Qty: line.Quantity}
		if product != nil {
			detail.ProductName = product.Name
			detail.SKUBarcode = product.SKU
		}
		details = append(details, detail)
		qtyTotal += line.Quantity
	}

	payload := &model.FoomSyncRequest{
		Vendor:    constant.VendorName,
		Reference: reference,
		QtyTotal:  qtyTotal,
		Details:   details,
	}

	logger.Info("[UpdatePurchaseRequest] syncing with FOOM Hub",
		zap.String("reference", reference),
		zap.Int("qty_total", qtyTotal),
		zap.Int("details", len(details)),
	)

	response, err := s.foomHub.SubmitPurchaseRequest(ctx, payload)
	if err != nil {
		var syncErr *foomhub.SyncError
		if goerrors.As(err, &syncErr) {
			logger.Error("[UpdatePurchaseRequest] FOOM Hub sync failed",
				zap.Int("status", syncErr.StatusCode),
				zap.String("body", syncErr.Body),
			)
			return nil, errors.SetCustomErrorWithDetail(constant.ErrUpstreamSync, syncErr.Body)
		}
		logger.Error("[UpdatePurchaseRequest] FOOM Hub sync failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUpstreamSync)
	}
	return response, nil
}

// DeletePurchaseRequest removes a DRAFT request and its items. Requests
// that left DRAFT are kept for the partner-facing audit trail.
func (s *purchaseRequestAppImpl) DeletePurchaseRequest(ctx context.Context, id uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeletePurchaseRequest] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	pr, err := s.prRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeletePurchaseRequest] get request", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if pr == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if pr.Status != constant.PurchaseRequestStatusDraft {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.prRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.Error("[DeletePurchaseRequest] delete request", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeletePurchaseRequest] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}
