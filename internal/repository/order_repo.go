package repository

import (
	"context"
	"time"

	"go-order-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFilter narrows FindAll by order date: From <= date < Until. Nil is open.
type OrderFilter struct {
	From  *time.Time
	Until *time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByProductCode(tx *gorm.DB, code string) (int64, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *orderRepo) FindAll(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	orders := []model.Order{}

	query := r.db.WithContext(ctx).Preload("Product")
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.Until != nil {
		query = query.Where("date < ?", *filter.Until)
	}

	err := query.Order("date DESC, created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Product").First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) Update(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByProductCode runs on tx so the deletion guard sees a consistent count.
func (r *orderRepo) CountByProductCode(tx *gorm.DB, code string) (int64, error) {
	var count int64
	err := tx.Model(&model.Order{}).Where("product_code = ?", code).Count(&count).Error
	return count, err
}
