package webhook

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory-hub/constant"
	"github.com/muhammadheryan/inventory-hub/model"
	productrepo "github.com/muhammadheryan/inventory-hub/repository/product"
	purchaserequestrepo "github.com/muhammadheryan/inventory-hub/repository/purchaserequest"
	stockrepo "github.com/muhammadheryan/inventory-hub/repository/stock"
	txrepo "github.com/muhammadheryan/inventory-hub/repository/tx"
	"github.com/muhammadheryan/inventory-hub/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/muhammadheryan/inventory-hub/utils/logger"
	"go.uber.org/zap"
)

type WebhookApp interface {
	ReceiveStock(ctx context.Context, req *model.WebhookStockRequest) (*model.WebhookStockResult, error)
}

type webhookAppImpl struct {
	txRepo      txrepo.TxRepository
	prRepo      purchaserequestrepo.PurchaseRequestRepository
	productRepo productrepo.ProductRepository
	stockRepo   stockrepo.StockRepository
	publisher   *rabbitmq.Publisher
}

func NewWebhookApp(txRepo txrepo.TxRepository, prRepo purchaserequestrepo.PurchaseRequestRepository, productRepo productrepo.ProductRepository, stockRepo stockrepo.StockRepository, publisher *rabbitmq.Publisher) WebhookApp {
	return &webhookAppImpl{
		txRepo:      txRepo,
		prRepo:      prRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		publisher:   publisher,
	}
}

// ReceiveStock applies a partner stock delivery against the referenced
// purchase request. Item-level failures are collected and skipped; the
// request still closes as long as at least one item lands. Only a delivery
// where every item fails rolls back.
func (s *webhookAppImpl) ReceiveStock(ctx context.Context, req *model.WebhookStockRequest) (*model.WebhookStockResult, error) {
	if req.Vendor != constant.VendorName {
		return nil, errors.SetCustomError(constant.ErrInvalidVendor)
	}

	logger.Info("[ReceiveStock] received stock webhook", zap.String("reference", req.Reference))

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReceiveStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	pr, err := s.prRepo.GetByReferenceForUpdateTx(ctx, tx, req.Reference)
	if err != nil {
		logger.Error("[ReceiveStock] get request by reference", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if pr == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if pr.Status == constant.PurchaseRequestStatusCompleted {
		// Idempotent replay: report success without touching anything.
		return &model.WebhookStockResult{
			PurchaseRequestID: pr.ID,
			Reference:         pr.Reference,
			WarehouseID:       pr.WarehouseID,
			AlreadyProcessed:  true,
		}, nil
	}

	if pr.Status != constant.PurchaseRequestStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	stockUpdates := make([]model.StockUpdateInfo, 0, len(req.Details))
	itemErrors := make([]model.WebhookItemError, 0)

	for _, item := range req.Details {
		if item.SKUBarcode == "" || item.Qty == nil || *item.Qty == 0 {
			itemErrors = append(itemErrors, model.WebhookItemError{
				ProductName: item.ProductName,
				SKUBarcode:  item.SKUBarcode,
				Error:       "Missing sku_barcode or qty",
			})
			continue
		}

		product, err := s.productRepo.GetBySKUTx(ctx, tx, item.SKUBarcode)
		if err != nil {
			logger.Error("[ReceiveStock] lookup product", zap.String("sku", item.SKUBarcode), zap.String("error", err.Error()))
			itemErrors = append(itemErrors, model.WebhookItemError{
				ProductName: item.ProductName,
				SKUBarcode:  item.SKUBarcode,
				Error:       err.Error(),
			})
			continue
		}
		if product == nil {
			itemErrors = append(itemErrors, model.WebhookItemError{
				ProductName: item.ProductName,
				SKUBarcode:  item.SKUBarcode,
				Error:       "Product not found in system",
			})
			continue
		}

		newLevel, err := s.stockRepo.AddStockTx(ctx, tx, pr.WarehouseID, product.ID, *item.Qty)
		if err != nil {
			// Increment failures stay item-scoped; the rest of the batch
			// continues.
			itemErrors = append(itemErrors, model.WebhookItemError{
				ProductName: item.ProductName,
				SKUBarcode:  item.SKUBarcode,
				Error:       err.Error(),
			})
			continue
		}

		stockUpdates = append(stockUpdates, model.StockUpdateInfo{
			ProductID:     product.ID,
			ProductName:   product.Name,
			SKUBarcode:    item.SKUBarcode,
			QuantityAdded: *item.Qty,
			NewStockLevel: newLevel,
		})

		logger.Info("[ReceiveStock] stock added",
			zap.String("product", product.Name),
			zap.String("sku", item.SKUBarcode),
			zap.Int("qty", *item.Qty),
			zap.Int64("new_level", newLevel),
		)
	}

	totalProcessed := 0
	for _, u := range stockUpdates {
		totalProcessed += u.QuantityAdded
	}
	if req.QtyTotal != 0 && totalProcessed != req.QtyTotal {
		logger.Warn("[ReceiveStock] qty_total mismatch",
			zap.String("reference", req.Reference),
			zap.Int("qty_total", req.QtyTotal),
			zap.Int("actual_total", totalProcessed),
		)
	}

	if len(stockUpdates) == 0 && len(itemErrors) > 0 {
		detail, _ := json.Marshal(itemErrors)
		return nil, errors.SetCustomErrorWithDetail(constant.ErrWebhookNoItems, string(detail))
	}

	if err := s.prRepo.UpdateStatusTx(ctx, tx, pr.ID, constant.PurchaseRequestStatusCompleted); err != nil {
		logger.Error("[ReceiveStock] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReceiveStock] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[ReceiveStock] purchase request completed", zap.String("reference", req.Reference))

	if s.publisher != nil {
		msg := rabbitmq.StockReceivedMessage{
			PurchaseRequestID: pr.ID,
			Reference:         pr.Reference,
			WarehouseID:       pr.WarehouseID,
			ItemsProcessed:    len(stockUpdates),
			ItemsFailed:       len(itemErrors),
			ReceivedAt:        time.Now(),
		}
		if err := s.publisher.PublishStockReceived(msg); err != nil {
			logger.Error("[ReceiveStock] publish stock received", zap.String("error", err.Error()))
		}
	}

	return &model.WebhookStockResult{
		PurchaseRequestID: pr.ID,
		Reference:         pr.Reference,
		WarehouseID:       pr.WarehouseID,
		QtyTotal:          req.QtyTotal,
		ItemsProcessed:    len(stockUpdates),
		ItemsFailed:       len(itemErrors),
		StockUpdates:      stockUpdates,
		Errors:            itemErrors,
	}, nil
}
