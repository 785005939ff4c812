package repository

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// CertificationRepository defines lookups over the certification tables.
type CertificationRepository interface {
	ByUsername(ctx context.Context, username string) []models.Certification
}

type certificationRepository struct {
	store  *store.Store
	skills SkillRepository
}

// NewCertificationRepository creates a new certification repository.
func NewCertificationRepository(s *store.Store, skills SkillRepository) CertificationRepository {
	return &certificationRepository{store: s, skills: skills}
}

// ByUsername returns the user's certifications with the attested skill
// names resolved through the certification_skills junction.
func (r *certificationRepository) ByUsername(ctx context.Context, username string) []models.Certification {
	rows := r.store.Fetch(ctx, store.TableCertifications, "username", username)

	certifications := make([]models.Certification, 0, len(rows))
	for _, row := range rows {
		certifications = append(certifications, models.Certification{
			ID:            row.Get("_id"),
			Name:          row.Get("name"),
			Issuer:        row.Get("issuer"),
			IssueDate:     row.Get("issue_date"),
			ExpiryDate:    row.Get("expiry_date"),
			CredentialID:  row.Get("credential_id"),
			CredentialURL: row.Get("credential_url"),
			Skills:        r.certificationSkills(ctx, row.Get("_id")),
		})
	}
	return certifications
}

func (r *certificationRepository) certificationSkills(ctx context.Context, certificationID string) []string {
	junctions := r.store.Fetch(ctx, store.TableCertificationSkills, "certification_id", certificationID)

	ids := make([]string, 0, len(junctions))
	for _, junction := range junctions {
		ids = append(ids, junction.Get("skill_id"))
	}
	names := r.skills.NamesByIDs(ctx, ids)
	if names == nil {
		return []string{}
	}
	return names
}
