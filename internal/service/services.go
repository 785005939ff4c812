package service

import (
	"context"
	"sort"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// OfferingsService assembles the offered-services page and detail views.
type OfferingsService interface {
	GetServicesPage(ctx context.Context, username string) models.ServicesPage
	GetServiceByID(ctx context.Context, username string, serviceID int) (*models.OfferedService, bool)
	GetServicesByCategory(ctx context.Context, username, category string) []models.OfferedService
}

type offeringsService struct {
	services repository.ServiceRepository
}

// NewOfferingsService creates a new offered-services service.
func NewOfferingsService(services repository.ServiceRepository) OfferingsService {
	return &offeringsService{services: services}
}

func (s *offeringsService) GetServicesPage(ctx context.Context, username string) models.ServicesPage {
	ctx, span := observability.TracePageAggregation(ctx, "services", username)
	defer span.End()

	services := s.services.All(ctx)
	if services == nil {
		services = []models.OfferedService{}
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, service := range services {
		name := string(service.Category)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		categories = append(categories, name)
	}
	sort.Strings(categories)

	return models.ServicesPage{
		Services:      services,
		Categories:    categories,
		TotalServices: len(services),
	}
}

func (s *offeringsService) GetServiceByID(ctx context.Context, username string, serviceID int) (*models.OfferedService, bool) {
	return s.services.ByID(ctx, serviceID)
}

func (s *offeringsService) GetServicesByCategory(ctx context.Context, username, category string) []models.OfferedService {
	return s.services.ByCategory(ctx, category)
}
