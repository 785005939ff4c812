package repository

import (
	"context"
	"strconv"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/store"
)

// ServiceRepository defines lookups over the offered services table.
type ServiceRepository interface {
	All(ctx context.Context) []models.OfferedService
	ByID(ctx context.Context, serviceID int) (*models.OfferedService, bool)
	ByCategory(ctx context.Context, category string) []models.OfferedService
}

type serviceRepository struct {
	store *store.Store
}

// NewServiceRepository creates a new offered-service repository.
func NewServiceRepository(s *store.Store) ServiceRepository {
	return &serviceRepository{store: s}
}

// All returns every offered service. Rows with an unparseable id or an
// unknown category are skipped.
func (r *serviceRepository) All(ctx context.Context) []models.OfferedService {
	rows := r.store.Fetch(ctx, store.TableServices, "", "")

	services := make([]models.OfferedService, 0, len(rows))
	for _, row := range rows {
		service, ok := serviceFromRow(ctx, row)
		if !ok {
			continue
		}
		services = append(services, service)
	}
	return services
}

func (r *serviceRepository) ByID(ctx context.Context, serviceID int) (*models.OfferedService, bool) {
	for _, service := range r.All(ctx) {
		if service.ID == serviceID {
			return &service, true
		}
	}
	return nil, false
}

func (r *serviceRepository) ByCategory(ctx context.Context, category string) []models.OfferedService {
	var matched []models.OfferedService
	for _, service := range r.All(ctx) {
		if string(service.Category) == category {
			matched = append(matched, service)
		}
	}
	return matched
}

func serviceFromRow(ctx context.Context, row store.Row) (models.OfferedService, bool) {
	id, err := strconv.Atoi(row.Get("id"))
	if err != nil {
		observability.GlobalLogger.WarnContext(ctx, "skipping service row with bad id",
			"id", row.Get("id"))
		return models.OfferedService{}, false
	}
	if !models.ValidServiceCategory(row.Get("category")) {
		observability.GlobalLogger.WarnContext(ctx, "skipping service row with unknown category",
			"category", row.Get("category"))
		return models.OfferedService{}, false
	}

	features := splitList(row.Get("features"), ";")
	if features == nil {
		features = []string{}
	}
	return models.OfferedService{
		ID:          id,
		Title:       row.Get("title"),
		Description: row.Get("description"),
		Category:    models.ServiceCategory(row.Get("category")),
		Email:       row.Get("email"),
		IconName:    row.Get("icon_name"),
		Gradient:    row.Get("gradient"),
		Features:    features,
	}, true
}
