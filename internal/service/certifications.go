package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/observability"
	"portfolio/internal/repository"
)

// CertificationsService assembles the certifications page.
type CertificationsService interface {
	GetCertificationsPage(ctx context.Context, username string) models.CertificationsPage
}

type certificationsService struct {
	certifications repository.CertificationRepository
}

// NewCertificationsService creates a new certifications service.
func NewCertificationsService(certifications repository.CertificationRepository) CertificationsService {
	return &certificationsService{certifications: certifications}
}

func (s *certificationsService) GetCertificationsPage(ctx context.Context, username string) models.CertificationsPage {
	ctx, span := observability.TracePageAggregation(ctx, "certifications", username)
	defer span.End()

	certifications := s.certifications.ByUsername(ctx, username)
	if certifications == nil {
		certifications = []models.Certification{}
	}
	return models.CertificationsPage{
		Certifications: certifications,
		WelcomeText:    models.WelcomeCertifications,
	}
}
