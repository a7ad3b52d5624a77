package service

import (
	"context"
	"time"

	"go-order-tracker/internal/model"
	"go-order-tracker/internal/repository"
)

type BackupData struct {
	Products []model.Product `json:"products"`
	Orders   []model.Order   `json:"orders"`
}

// Backup is a point in time copy of every product and order.
type Backup struct {
	Timestamp string     `json:"timestamp"`
	Data      BackupData `json:"data"`
}

type BackupService interface {
	Snapshot(ctx context.Context) (*Backup, error)
}

type backupService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	now         func() time.Time
}

func NewBackupService(pRepo repository.ProductRepository, oRepo repository.OrderRepository) BackupService {
	return &backupService{productRepo: pRepo, orderRepo: oRepo, now: time.Now}
}

func (s *backupService) Snapshot(ctx context.Context) (*Backup, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindAll(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, err
	}

	return &Backup{
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Data: BackupData{
			Products: products,
			Orders:   orders,
		},
	}, nil
}

// BackupFileName is the file a snapshot taken at t is written to.
func BackupFileName(t time.Time) string {
	return "backup_" + t.Format("2006-01-02_15-04-05") + ".json"
}
