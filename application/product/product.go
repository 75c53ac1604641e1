package product

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory-hub/constant"
	"github.com/muhammadheryan/inventory-hub/model"
	productrepo "github.com/muhammadheryan/inventory-hub/repository/product"
	redisrepo "github.com/muhammadheryan/inventory-hub/repository/redis"
	"github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/muhammadheryan/inventory-hub/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

const (
	productListCacheKey = "products:list"
	productListCacheTTL = 5 * time.Minute
)

type productAppImpl struct {
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewProductApp(productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) ProductApp {
	return &productAppImpl{productRepo: productRepo, redisRepo: redisRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	if cached, err := s.redisRepo.Get(ctx, productListCacheKey); err == nil && cached != "" {
		var products []model.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if encoded, err := json.Marshal(products); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, productListCacheKey, string(encoded), productListCacheTTL); err != nil {
			logger.Warn("[ListProducts] cache set failed", zap.String("error", err.Error()))
		}
	}

	return products, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	id, err := s.productRepo.Insert(ctx, req)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[CreateProduct] error productRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)

	return &model.Product{ID: id, Name: req.Name, SKU: req.SKU}, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.ProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.Update(ctx, id, req); err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)

	return &model.Product{ID: id, Name: req.Name, SKU: req.SKU}, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *productAppImpl) invalidateListCache(ctx context.Context) {
	if err := s.redisRepo.Delete(ctx, productListCacheKey); err != nil {
		logger.Warn("[Product] cache invalidation failed", zap.String("error", err.Error()))
	}
}
