package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/cache"
	"portfolio/internal/models"
)

// parsePageRequest reads the shared POST body. An unreadable body or a blank
// username is a validation failure.
func parsePageRequest(c *fiber.Ctx) (models.PageRequest, error) {
	var req models.PageRequest
	if err := c.BodyParser(&req); err != nil {
		return req, models.NewValidationError("Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return req, models.NewValidationError("username is required")
	}
	return req, nil
}

func (s *Server) cacheTTL() time.Duration {
	return time.Duration(s.config.CacheTTLSeconds) * time.Second
}

// servePage runs the aggregation through the response cache when one is
// configured.
func servePage(s *Server, c *fiber.Ctx, page, username string, dest any, build func() error) error {
	if s.redis == nil {
		if err := build(); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(dest)
	}

	key := cache.PageKey(page, username)
	if err := cache.CacheAside(c.UserContext(), key, dest, s.cacheTTL(), build); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(dest)
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
	})
}

// HomeInfo handles GET / using the configured default username.
func (s *Server) HomeInfo(c *fiber.Ctx) error {
	page := s.homeService.GetHomePage(c.UserContext(), s.config.DefaultUsername)
	return c.JSON(page)
}

// Home handles POST /
func (s *Server) Home(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var page models.HomePage
	return servePage(s, c, "home", req.Username, &page, func() error {
		page = s.homeService.GetHomePage(c.UserContext(), req.Username)
		return nil
	})
}

// About handles POST /about
func (s *Server) About(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var page models.AboutPage
	return servePage(s, c, "about", req.Username, &page, func() error {
		page = s.aboutService.GetAboutPage(c.UserContext(), req.Username)
		return nil
	})
}

// Skills handles POST /skills
func (s *Server) Skills(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var page models.SkillsPage
	return servePage(s, c, "skills", req.Username, &page, func() error {
		page = s.skillsService.GetSkillsPage(c.UserContext(), req.Username)
		return nil
	})
}

// Projects handles POST /projects
func (s *Server) Projects(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var page models.ProjectsPage
	return servePage(s, c, "projects", req.Username, &page, func() error {
		page = s.projectsService.GetProjectsPage(c.UserContext(), req.Username)
		return nil
	})
}

// ProjectDetail handles POST /projects/:projectId
func (s *Server) ProjectDetail(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	projectID := c.Params("projectId")
	project, ok := s.projectsService.GetProjectByID(c.UserContext(), req.Username, projectID)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project", projectID))
	}

	return c.JSON(models.ProjectDetail{
		Success: true,
		Message: fmt.Sprintf("Successfully retrieved project details for %s", projectID),
		Project: *project,
	})
}

// Certifications handles POST /certifications
func (s *Server) Certifications(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var page models.CertificationsPage
	return servePage(s, c, "certifications", req.Username, &page, func() error {
		page = s.certificationsService.GetCertificationsPage(c.UserContext(), req.Username)
		return nil
	})
}

// Timeline handles POST /timeline
func (s *Server) Timeline(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var page models.TimelinePage
	return servePage(s, c, "timeline", req.Username, &page, func() error {
		page = s.timelineService.GetTimelinePage(c.UserContext(), req.Username)
		return nil
	})
}

// Services handles POST /services
func (s *Server) Services(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var page models.ServicesPage
	return servePage(s, c, "services", req.Username, &page, func() error {
		page = s.offeringsService.GetServicesPage(c.UserContext(), req.Username)
		return nil
	})
}

// ServiceDetail handles POST /services/:serviceId
func (s *Server) ServiceDetail(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	serviceID, err := c.ParamsInt("serviceId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid service ID"))
	}

	service, ok := s.offeringsService.GetServiceByID(c.UserContext(), req.Username, serviceID)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Service", serviceID))
	}

	return c.JSON(models.ServiceDetail{
		Success: true,
		Message: fmt.Sprintf("Successfully retrieved service details for %d", serviceID),
		Service: *service,
	})
}

// ResumeDefault handles GET /resume with the configured default username.
func (s *Server) ResumeDefault(c *fiber.Ctx) error {
	return s.respondResume(c, s.config.DefaultUsername)
}

// Resume handles POST /resume
func (s *Server) Resume(c *fiber.Ctx) error {
	req, err := parsePageRequest(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	return s.respondResume(c, req.Username)
}

func (s *Server) respondResume(c *fiber.Ctx, username string) error {
	var page models.ResumePage
	return servePage(s, c, "resume", username, &page, func() error {
		page = models.ResumePage{
			Success:    true,
			Message:    "Resume data retrieved successfully",
			ResumeData: s.resumeService.GetResumeData(c.UserContext(), username),
		}
		return nil
	})
}
