package service

import (
	"context"
	"errors"
	"fmt"

	"go-order-tracker/internal/cache"
	"go-order-tracker/internal/event"
	"go-order-tracker/internal/metrics"
	"go-order-tracker/internal/model"
	"go-order-tracker/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	PriceModal decimal.Decimal `json:"priceModal"`
	PriceJual  decimal.Decimal `json:"priceJual"`
	Link       *string         `json:"link"`
}

type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, req CreateProductRequest, actor string) (*model.Product, error)
	Delete(ctx context.Context, code, actor string) error
}

type productService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	db          *gorm.DB
	cache       cache.ProductCache
	events      event.Publisher
}

func NewProductService(pRepo repository.ProductRepository, oRepo repository.OrderRepository, db *gorm.DB,
	c cache.ProductCache, events event.Publisher) ProductService {
	return &productService{
		productRepo: pRepo,
		orderRepo:   oRepo,
		db:          db,
		cache:       c,
		events:      events,
	}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	if products, ok := s.cache.GetProducts(ctx); ok {
		return products, nil
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetProducts(ctx, products)
	return products, nil
}

func (s *productService) Create(ctx context.Context, req CreateProductRequest, actor string) (*model.Product, error) {
	product := &model.Product{
		Code:       model.GenerateProductCode(req.Name, req.Color),
		Name:       req.Name,
		Color:      req.Color,
		PriceModal: req.PriceModal,
		PriceJual:  req.PriceJual,
		Link:       req.Link,
	}
	if req.Link != nil && *req.Link == "" {
		product.Link = nil
	}

	// 1. Validasi struct dasar
	if err := validate(product); err != nil {
		return nil, err
	}

	// 2. Kode sudah dipakai produk lain: tolak, jangan timpa
	existing, err := s.productRepo.FindByCode(ctx, product.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductExists
	}

	// 3. Audit
	product.CreatedBy = actor
	product.UpdatedBy = actor

	// 4. Simpan; a concurrent insert of the same code surfaces as a duplicate key
	err = s.productRepo.Create(ctx, product)
	metrics.RecordOperation("product", "create", err)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProductExists
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.events.Publish(ctx, event.New(event.ProductCreated, product, actor,
		fmt.Sprintf("%s created product %s", actor, product.Code)))

	return product, nil
}

// Delete removes a product only when no order references it. The lock, the
// count and the delete share one transaction so a concurrent order insert
// cannot slip in between the check and the delete.
func (s *productService) Delete(ctx context.Context, code, actor string) error {
	var deleted *model.Product

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.LockByCode(tx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		count, err := s.orderRepo.CountByProductCode(tx, code)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrProductInUse
		}

		if err := s.productRepo.Delete(tx, code); err != nil {
			return err
		}
		deleted = product
		return nil
	})
	metrics.RecordOperation("product", "delete", err)
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.events.Publish(ctx, event.New(event.ProductDeleted, deleted, actor,
		fmt.Sprintf("%s deleted product %s", actor, code)))

	return nil
}
