package service

import (
	"context"
	"errors"
	"fmt"

	"go-order-tracker/internal/event"
	"go-order-tracker/internal/metrics"
	"go-order-tracker/internal/model"
	"go-order-tracker/internal/report"
	"go-order-tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Date        string            `json:"date"`
	ProductCode string            `json:"productCode"`
	Quantity    int               `json:"quantity"`
	Discount    decimal.Decimal   `json:"discount"`
	Admin       decimal.Decimal   `json:"admin"`
	Status      model.OrderStatus `json:"status"`
}

// UpdateOrderRequest carries a partial update; nil fields keep their value.
type UpdateOrderRequest struct {
	Date        *string            `json:"date"`
	ProductCode *string            `json:"productCode"`
	Quantity    *int               `json:"quantity"`
	Discount    *decimal.Decimal   `json:"discount"`
	Admin       *decimal.Decimal   `json:"admin"`
	Status      *model.OrderStatus `json:"status"`
}

type OrderService interface {
	List(ctx context.Context, r report.DateRange) ([]model.Order, error)
	Summary(ctx context.Context, r report.DateRange) (report.Summary, error)
	Create(ctx context.Context, req CreateOrderRequest, actor string) (*model.Order, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest, actor string) (*model.Order, error)
	Delete(ctx context.Context, id uuid.UUID, actor string) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	events      event.Publisher
}

func NewOrderService(oRepo repository.OrderRepository, pRepo repository.ProductRepository,
	events event.Publisher) OrderService {
	return &orderService{
		orderRepo:   oRepo,
		productRepo: pRepo,
		events:      events,
	}
}

// List returns orders whose date falls inside r, newest first.
func (s *orderService) List(ctx context.Context, r report.DateRange) ([]model.Order, error) {
	return s.orderRepo.FindAll(ctx, repository.OrderFilter{
		From:  r.From,
		Until: r.UpperExclusive(),
	})
}

func (s *orderService) Summary(ctx context.Context, r report.DateRange) (report.Summary, error) {
	orders, err := s.List(ctx, r)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Aggregate(orders, r), nil
}

func (s *orderService) Create(ctx context.Context, req CreateOrderRequest, actor string) (*model.Order, error) {
	if req.Date == "" {
		return nil, invalid("Field 'Order.Date' failed on tag 'required'")
	}
	day, err := report.ParseDate(req.Date)
	if err != nil {
		return nil, invalid("%v", err)
	}

	order := &model.Order{
		Date:        datatypes.Date(day),
		ProductCode: req.ProductCode,
		Quantity:    req.Quantity,
		Discount:    req.Discount,
		Admin:       req.Admin,
		Status:      req.Status,
	}
	if order.Status == "" {
		order.Status = model.StatusUnpaid
	}

	if err := validate(order); err != nil {
		return nil, err
	}

	product, err := s.resolveProduct(ctx, order.ProductCode)
	if err != nil {
		return nil, err
	}

	order.CreatedBy = actor
	order.UpdatedBy = actor

	err = s.orderRepo.Create(ctx, order)
	metrics.RecordOperation("order", "create", err)
	if err != nil {
		return nil, err
	}
	order.Product = product

	sale, _ := report.Calculate(*order).TotalSale.Float64()
	metrics.RecordOrderValue(string(order.Status), sale)

	s.events.Publish(ctx, event.New(event.OrderCreated, order, actor,
		fmt.Sprintf("%s recorded order of %d x %s", actor, order.Quantity, order.ProductCode)))

	return order, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest, actor string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if req.Date != nil {
		day, err := report.ParseDate(*req.Date)
		if err != nil {
			return nil, invalid("%v", err)
		}
		order.Date = datatypes.Date(day)
	}
	if req.ProductCode != nil && *req.ProductCode != order.ProductCode {
		product, err := s.resolveProduct(ctx, *req.ProductCode)
		if err != nil {
			return nil, err
		}
		order.ProductCode = product.Code
		order.Product = product
	}
	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.Discount != nil {
		order.Discount = *req.Discount
	}
	if req.Admin != nil {
		order.Admin = *req.Admin
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	if err := validate(order); err != nil {
		return nil, err
	}

	order.UpdatedBy = actor

	err = s.orderRepo.Update(ctx, order)
	metrics.RecordOperation("order", "update", err)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, event.New(event.OrderUpdated, order, actor,
		fmt.Sprintf("%s updated order %s", actor, order.ID)))

	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID, actor string) error {
	err := s.orderRepo.Delete(ctx, id)
	metrics.RecordOperation("order", "delete", err)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	s.events.Publish(ctx, event.New(event.OrderDeleted, map[string]string{"id": id.String()}, actor,
		fmt.Sprintf("%s deleted order %s", actor, id)))

	return nil
}

// resolveProduct loads the referenced product; an unknown code is a client error.
func (s *orderService) resolveProduct(ctx context.Context, code string) (*model.Product, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, code)
		}
		return nil, err
	}
	return product, nil
}
