package service

import (
	"context"
	"errors"
	"strings"

	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/repository"
	"gorm.io/gorm"
)

var ErrHostNotFound = errors.New("host not found")

type HostService interface {
	CurrentHost(ctx context.Context) (*models.Host, error)
	UpdateHost(ctx context.Context, update HostUpdate) (*models.Host, error)
}

type HostUpdate struct {
	Name     *string
	Email    *string
	Timezone *string
}

type hostService struct {
	repo repository.HostRepository
}

func NewHostService(repo repository.HostRepository) HostService {
	return &hostService{repo: repo}
}

func (s *hostService) CurrentHost(ctx context.Context) (*models.Host, error) {
	host, err := s.repo.FindDefault(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, err
	}
	return host, nil
}

func (s *hostService) UpdateHost(ctx context.Context, update HostUpdate) (*models.Host, error) {
	host, err := s.CurrentHost(ctx)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		host.Name = *update.Name
	}
	if update.Email != nil {
		host.Email = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.Timezone != nil {
		host.Timezone = *update.Timezone
	}

	if err := s.repo.Update(ctx, host); err != nil {
		return nil, err
	}
	return host, nil
}
