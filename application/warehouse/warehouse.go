package warehouse

import (
	"context"

	"github.com/muhammadheryan/inventory-hub/constant"
	"github.com/muhammadheryan/inventory-hub/model"
	warehouserepo "github.com/muhammadheryan/inventory-hub/repository/warehouse"
	"github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/muhammadheryan/inventory-hub/utils/logger"
	"go.uber.org/zap"
)

type WarehouseApp interface {
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	GetWarehouse(ctx context.Context, id uint64) (*model.Warehouse, error)
	CreateWarehouse(ctx context.Context, req *model.WarehouseRequest) (*model.Warehouse, error)
	UpdateWarehouse(ctx context.Context, id uint64, req *model.WarehouseRequest) (*model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id uint64) error
}

type warehouseAppImpl struct {
	warehouseRepo warehouserepo.WarehouseRepository
}

func NewWarehouseApp(warehouseRepo warehouserepo.WarehouseRepository) WarehouseApp {
	return &warehouseAppImpl{warehouseRepo: warehouseRepo}
}

func (s *warehouseAppImpl) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	warehouses, err := s.warehouseRepo.List(ctx)
	if err != nil {
		logger.Error("[ListWarehouses] error warehouseRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return warehouses, nil
}

func (s *warehouseAppImpl) GetWarehouse(ctx context.Context, id uint64) (*model.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetWarehouse] error warehouseRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return warehouse, nil
}

func (s *warehouseAppImpl) CreateWarehouse(ctx context.Context, req *model.WarehouseRequest) (*model.Warehouse, error) {
	id, err := s.warehouseRepo.Insert(ctx, req)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[CreateWarehouse] error warehouseRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.Warehouse{ID: id, Name: req.Name}, nil
}

func (s *warehouseAppImpl) UpdateWarehouse(ctx context.Context, id uint64, req *model.WarehouseRequest) (*model.Warehouse, error) {
	existing, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateWarehouse] error warehouseRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.warehouseRepo.Update(ctx, id, req); err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[UpdateWarehouse] error warehouseRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.Warehouse{ID: id, Name: req.Name}, nil
}

func (s *warehouseAppImpl) DeleteWarehouse(ctx context.Context, id uint64) error {
	existing, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteWarehouse] error warehouseRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.warehouseRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteWarehouse] error warehouseRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
