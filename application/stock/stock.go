package stock

import (
	"context"

	"github.com/muhammadheryan/inventory-hub/constant"
	"github.com/muhammadheryan/inventory-hub/model"
	stockrepo "github.com/muhammadheryan/inventory-hub/repository/stock"
	"github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/muhammadheryan/inventory-hub/utils/logger"
	"go.uber.org/zap"
)

// StockApp covers the raw stock CRUD collaborator surface. The webhook
// reconciliation path owns all workflow-driven increments.
type StockApp interface {
	ListStocks(ctx context.Context) ([]model.Stock, error)
	GetStock(ctx context.Context, id uint64) (*model.Stock, error)
	CreateStock(ctx context.Context, req *model.StockRequest) (*model.Stock, error)
	UpdateStock(ctx context.Context, id uint64, req *model.StockRequest) (*model.Stock, error)
	DeleteStock(ctx context.Context, id uint64) error
}

type stockAppImpl struct {
	stockRepo stockrepo.StockRepository
}

func NewStockApp(stockRepo stockrepo.StockRepository) StockApp {
	return &stockAppImpl{stockRepo: stockRepo}
}

func (s *stockAppImpl) ListStocks(ctx context.Context) ([]model.Stock, error) {
	stocks, err := s.stockRepo.List(ctx)
	if err != nil {
		logger.Error("[ListStocks] error stockRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stocks, nil
}

func (s *stockAppImpl) GetStock(ctx context.Context, id uint64) (*model.Stock, error) {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetStock] error stockRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stock == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return stock, nil
}

func (s *stockAppImpl) CreateStock(ctx context.Context, req *model.StockRequest) (*model.Stock, error) {
	id, err := s.stockRepo.Insert(ctx, req)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[CreateStock] error stockRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.Stock{ID: id, WarehouseID: req.WarehouseID, ProductID: req.ProductID, Quantity: req.Quantity}, nil
}

func (s *stockAppImpl) UpdateStock(ctx context.Context, id uint64, req *model.StockRequest) (*model.Stock, error) {
	existing, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateStock] error stockRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.stockRepo.Update(ctx, id, req); err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[UpdateStock] error stockRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.Stock{ID: id, WarehouseID: req.WarehouseID, ProductID: req.ProductID, Quantity: req.Quantity}, nil
}

func (s *stockAppImpl) DeleteStock(ctx context.Context, id uint64) error {
	existing, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteStock] error stockRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.stockRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteStock] error stockRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
