// Package seed generates demo CSV datasets for the portfolio backend.
// These helpers are intended for development and local testing only.
package seed

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"portfolio/internal/store"
)

// Options controls the shape of the generated dataset.
type Options struct {
	Username string
	Projects int
	Skills   int
	Seed     int64 // 0 means time-based
	Clean    bool
}

// Generator writes a coherent CSV dataset under a data root directory.
type Generator struct {
	root  string
	opts  Options
	faker *gofakeit.Faker
}

// NewGenerator creates a Generator rooted at the given data directory.
func NewGenerator(root string, opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.Projects <= 0 {
		opts.Projects = 4
	}
	if opts.Skills <= 0 {
		opts.Skills = 8
	}
	if opts.Skills > len(skillPool) {
		opts.Skills = len(skillPool)
	}
	return &Generator{root: root, opts: opts, faker: gofakeit.New(seed)}
}

// Run generates every table the backend reads. Existing files are
// overwritten; with Clean set the whole data root is removed first.
func (g *Generator) Run() error {
	if g.opts.Clean {
		if err := os.RemoveAll(g.root); err != nil {
			return fmt.Errorf("clean data root: %w", err)
		}
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"personal", g.writePersonal},
		{"skills", g.writeSkills},
		{"work experience", g.writeWorkExperience},
		{"projects", g.writeProjects},
		{"certifications", g.writeCertifications},
		{"services", g.writeServices},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		log.Printf("seeded %s tables", step.name)
	}
	return nil
}

func (g *Generator) writeTable(table string, header []string, rows [][]string) error {
	rel, ok := store.TableFile(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}
	path := filepath.Join(g.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// date formats a date the way the source tables store them.
func date(t time.Time) string {
	return t.Format("2006-01-02")
}

// month formats a year-month the way engagement dates are stored.
func month(t time.Time) string {
	return t.Format("2006-01")
}

func (g *Generator) writePersonal() error {
	user := g.opts.Username
	fullName := g.faker.Name()
	company := g.faker.Company()
	city := g.faker.City()
	state := g.faker.State()

	workStart := time.Now().AddDate(-3, -2, 0)
	dob := time.Now().AddDate(-27, 0, 0)

	err := g.writeTable(store.TablePersonalProfiles,
		[]string{"_id", "full_name", "tagline", "short_summary", "long_descriptive_summary", "resume_summary", "email", "phone_num", "dob", "place_of_birth", "address_city", "address_state", "address_country", "profile_image", "work_start_date"},
		[][]string{{
			user, fullName, "ML Engineer at " + company,
			g.faker.Sentence(8), g.faker.Paragraph(2, 4, 8, " "), g.faker.Sentence(12),
			g.faker.Email(), g.faker.Phone(), date(dob), city, city, state, "India",
			"/img/profile.png", date(workStart),
		}})
	if err != nil {
		return err
	}

	// One profile per classification bucket plus a couple of coding sites.
	platforms := []struct{ platform, url string }{
		{"LinkedIn", "https://linkedin.com/in/" + user},
		{"GitHub", "https://github.com/" + user},
		{"Twitter", "https://twitter.com/" + user},
		{"Medium", "https://medium.com/@" + user},
		{"Kaggle", "https://kaggle.com/" + user},
		{"LeetCode", "https://leetcode.com/" + user},
		{"Portfolio Website", "https://" + user + ".dev"},
	}
	social := make([][]string, 0, len(platforms))
	for i, p := range platforms {
		social = append(social, []string{
			fmt.Sprintf("social_%03d", i+1), user, p.platform, p.url, user,
		})
	}
	err = g.writeTable(store.TableSocialProfiles,
		[]string{"_id", "personal_profile_id", "platform", "url", "handler"},
		social)
	if err != nil {
		return err
	}

	err = g.writeTable(store.TableFamilyMembers,
		[]string{"_id", "personal_profile_id", "relationship", "name", "occupation", "dob"},
		[][]string{
			{"fam_001", user, "Father", g.faker.Name(), g.faker.JobTitle(), date(time.Now().AddDate(-58, 0, 0))},
			{"fam_002", user, "Mother", g.faker.Name(), g.faker.JobTitle(), date(time.Now().AddDate(-55, 0, 0))},
		})
	if err != nil {
		return err
	}

	err = g.writeTable(store.TableHobbies,
		[]string{"_id", "personal_profile_id", "hobby"},
		[][]string{
			{"hob_001", user, "Photography"},
			{"hob_002", user, "Trekking"},
			{"hob_003", user, g.faker.Hobby()},
		})
	if err != nil {
		return err
	}

	return g.writeTable(store.TableEducation,
		[]string{"_id", "personal_profile_id", "degree", "institution", "institution_url", "field_of_study", "start_date", "end_date", "gpa"},
		[][]string{
			{"edu_001", user, "BTech", "CUSAT", "https://cusat.ac.in", "Computer Science", "2016-08-01", "2020-06-30", "8.2"},
			{"edu_002", user, "MTech", "IIT Madras", "https://iitm.ac.in", "Machine Learning", "2020-08-01", "2022-06-30", "8.9"},
		})
}

var skillPool = []struct{ name, category string }{
	{"Python", "Programming Languages"},
	{"Go", "Programming Languages"},
	{"SQL", "Programming Languages"},
	{"PyTorch", "ML Frameworks"},
	{"TensorFlow", "ML Frameworks"},
	{"scikit-learn", "ML Frameworks"},
	{"Airflow", "MLOps"},
	{"Docker", "MLOps"},
	{"Kubernetes", "MLOps"},
	{"AWS", "Cloud"},
	{"GCP", "Cloud"},
	{"Grafana", "Monitoring"},
}

func (g *Generator) writeSkills() error {
	user := g.opts.Username
	n := g.opts.Skills

	catIDs := map[string]string{}
	var categories [][]string
	var skills [][]string
	for i := 0; i < n; i++ {
		s := skillPool[i]
		catID, ok := catIDs[s.category]
		if !ok {
			catID = fmt.Sprintf("cat_%03d", len(catIDs)+1)
			catIDs[s.category] = catID
			categories = append(categories, []string{catID, s.category, g.faker.Sentence(6)})
		}
		rating := strconv.Itoa(g.faker.Number(3, 5))
		skills = append(skills, []string{
			fmt.Sprintf("skill_%03d", i+1), user, s.name, rating, g.faker.Sentence(5), catID,
		})
	}

	err := g.writeTable(store.TableSkillCategories,
		[]string{"_id", "name", "description"}, categories)
	if err != nil {
		return err
	}
	return g.writeTable(store.TableSkills,
		[]string{"_id", "username", "name", "rating", "description", "skill_category_id"}, skills)
}

func (g *Generator) writeWorkExperience() error {
	user := g.opts.Username
	now := time.Now()

	err := g.writeTable(store.TableWorkExperience,
		[]string{"_id", "username", "company_name", "company_location", "designation", "company_url", "start_date", "end_date", "references"},
		[][]string{
			{"work_exp_001", user, g.faker.Company(), g.faker.City(), "ML Engineer", g.faker.URL(), month(now.AddDate(-1, -5, 0)), "Present", "ref_001"},
			{"work_exp_002", user, g.faker.Company(), g.faker.City(), "Software Engineer", g.faker.URL(), month(now.AddDate(-3, -2, 0)), month(now.AddDate(-1, -6, 0)), ""},
		})
	if err != nil {
		return err
	}

	return g.writeTable(store.TableCompanyReferences,
		[]string{"_id", "username", "reference_name", "designation", "email", "phone", "linkedin_url", "relationship"},
		[][]string{
			{"ref_001", user, g.faker.Name(), "Engineering Manager", g.faker.Email(), g.faker.Phone(), "https://linkedin.com/in/manager", "Manager"},
		})
}

var projectTypes = []string{"Model Building", "MVP", "Data Analysis", "Research"}

func (g *Generator) writeProjects() error {
	user := g.opts.Username
	now := time.Now()

	var projects, projectSkills, projectModels, achievements [][]string
	var models, metrics, useCases, trainingParams [][]string

	for i := 0; i < g.opts.Projects; i++ {
		id := fmt.Sprintf("proj_%03d", i+1)
		start := now.AddDate(0, -6*(i+1), 0)
		end := ""
		status := "In Progress"
		if i > 0 {
			end = date(now.AddDate(0, -6*i, 0))
			status = "Completed"
		}

		company := ""
		if i%2 == 0 {
			company = "work_exp_001"
		}
		projects = append(projects, []string{
			id, user, g.faker.AppName(), g.faker.Sentence(7), g.faker.Paragraph(1, 3, 8, " "),
			projectTypes[i%len(projectTypes)], status, date(start), end, "Lead", company,
			"https://github.com/" + user + "/" + id, "", "", "AWS", "GitHub Actions", "Grafana",
		})

		// Each project carries two skills from the seeded pool.
		for j := 0; j < 2; j++ {
			projectSkills = append(projectSkills, []string{
				fmt.Sprintf("ps_%03d", len(projectSkills)+1), id,
				fmt.Sprintf("skill_%03d", (i+j)%g.opts.Skills+1),
			})
		}

		achievements = append(achievements, []string{
			fmt.Sprintf("ach_%03d", i+1), id, "Shipped to production", g.faker.Sentence(8),
		})

		// Every other project trains a model.
		if i%2 == 0 {
			modelID := fmt.Sprintf("model_%03d", len(models)+1)
			models = append(models, []string{
				modelID, g.faker.AppName(), "Time Series", "PyTorch", "1.0",
				fmt.Sprintf("%.2f", g.faker.Float64Range(0.80, 0.97)), "2M rows", "Production", g.faker.Sentence(6),
			})
			projectModels = append(projectModels, []string{
				fmt.Sprintf("pmm_%03d", len(projectModels)+1), id, modelID, "primary", "1.0",
			})
			metrics = append(metrics, []string{
				fmt.Sprintf("metric_%03d", len(metrics)+1), modelID, "rmse",
				fmt.Sprintf("%.2f", g.faker.Float64Range(0.05, 0.30)), "regression",
			})
			useCases = append(useCases, []string{
				fmt.Sprintf("uc_%03d", len(useCases)+1), modelID, g.faker.BuzzWord() + " planning", g.faker.Sentence(6),
			})
			trainingParams = append(trainingParams, []string{
				fmt.Sprintf("tp_%03d", len(trainingParams)+1), modelID, "learning_rate", "0.001", "float",
			})
		}
	}

	writes := []struct {
		table  string
		header []string
		rows   [][]string
	}{
		{store.TableProjects, []string{"_id", "username", "title", "short_description", "long_description", "project_type", "status", "start_date", "end_date", "role", "company", "github_url", "live_url", "notion_url", "hosting_platform", "cicd_pipeline", "monitoring_tracking"}, projects},
		{store.TableProjectSkills, []string{"_id", "project_id", "skill_id"}, projectSkills},
		{store.TableMLModels, []string{"_id", "name", "model_type", "framework", "version", "accuracy", "training_data_size", "deployment_status", "description"}, models},
		{store.TableProjectMLModels, []string{"_id", "project_id", "ml_model_id", "model_role", "model_version"}, projectModels},
		{store.TableMLModelMetrics, []string{"_id", "ml_model_id", "metric_name", "metric_value", "metric_type"}, metrics},
		{store.TableMLModelUseCases, []string{"_id", "ml_model_id", "use_case_name", "business_impact"}, useCases},
		{store.TableMLModelTrainingParams, []string{"_id", "ml_model_id", "parameter_name", "parameter_value", "parameter_type"}, trainingParams},
		{store.TableProjectAchievements, []string{"_id", "project_id", "achievement_title", "achievement_description"}, achievements},
	}
	for _, w := range writes {
		if err := g.writeTable(w.table, w.header, w.rows); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeCertifications() error {
	user := g.opts.Username

	err := g.writeTable(store.TableCertifications,
		[]string{"_id", "username", "name", "issuer", "issue_date", "expiry_date", "credential_id", "credential_url"},
		[][]string{
			{"cert_001", user, "AWS ML Specialty", "AWS", "2023-05-01", "2026-05-01", "AWS-123", "https://aws.example.com/cert"},
			{"cert_002", user, "TensorFlow Developer", "Google", "2022-11-15", "", "TF-456", "https://google.example.com/cert"},
		})
	if err != nil {
		return err
	}

	return g.writeTable(store.TableCertificationSkills,
		[]string{"_id", "certification_id", "skill_id"},
		[][]string{
			{"cs_001", "cert_001", "skill_001"},
			{"cs_002", "cert_001", "skill_004"},
			{"cs_003", "cert_002", "skill_005"},
		})
}

func (g *Generator) writeServices() error {
	email := g.faker.Email()
	return g.writeTable(store.TableServices,
		[]string{"id", "title", "description", "category", "email", "icon_name", "gradient", "features"},
		[][]string{
			{"1", "ML Consulting", "End to end model delivery", "AI/ML", email, "brain", "purple", "Scoping;Modeling;Deployment"},
			{"2", "Backend Development", "API design and build", "Development", email, "server", "blue", "Design;Build;Operate"},
			{"3", "ML Mentoring", "One on one coaching", "Consulting", email, "users", "green", "Roadmaps;Code review"},
		})
}
