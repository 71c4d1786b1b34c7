package repository

import (
	"context"
	"errors"

	"github.com/meetcal/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type HostRepository interface {
	FindDefault(ctx context.Context) (*models.Host, error)
	EnsureDefault(ctx context.Context, name, email string) (*models.Host, error)
	Update(ctx context.Context, host *models.Host) error
}

type hostRepository struct {
	db *gorm.DB
}

func NewHostRepository(db *gorm.DB) HostRepository {
	return &hostRepository{db: db}
}

// FindDefault returns the earliest-created host.
func (r *hostRepository) FindDefault(ctx context.Context) (*models.Host, error) {
	var host models.Host
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&host).Error; err != nil {
		return nil, err
	}
	return &host, nil
}

// EnsureDefault seeds a host on first start so the service is usable without
// a separate seeding step.
func (r *hostRepository) EnsureDefault(ctx context.Context, name, email string) (*models.Host, error) {
	host, err := r.FindDefault(ctx)
	if err == nil {
		return host, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	host = &models.Host{Name: name, Email: email, Timezone: "UTC"}
	if err := r.db.WithContext(ctx).Create(host).Error; err != nil {
		return nil, err
	}
	return host, nil
}

func (r *hostRepository) Update(ctx context.Context, host *models.Host) error {
	return r.db.WithContext(ctx).Save(host).Error
}
