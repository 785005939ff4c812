// Package testutil builds CSV fixture trees for store-backed tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// Username is the fixture profile id used across the seeded dataset.
const Username = "sreeragh"

// Dataset is a CSV data root under a per-test temp directory.
type Dataset struct {
	root  string
	faker *gofakeit.Faker
}

// NewDataset creates an empty dataset root.
func NewDataset(t *testing.T) *Dataset {
	t.Helper()
	// Fixed seed keeps filler values stable across runs.
	return &Dataset{root: t.TempDir(), faker: gofakeit.New(11)}
}

// Root returns the dataset root directory.
func (d *Dataset) Root() string {
	return d.root
}

// WriteTable writes one CSV file under the root. Values containing commas
// must be pre-quoted by the caller; fixture data avoids them.
func (d *Dataset) WriteTable(t *testing.T, rel string, header string, rows ...string) {
	t.Helper()
	path := filepath.Join(d.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	content := header + "\n"
	if len(rows) > 0 {
		content += strings.Join(rows, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// Seed writes a small coherent dataset for the fixture user, covering every
// table the page aggregators touch.
func (d *Dataset) Seed(t *testing.T) {
	t.Helper()

	d.WriteTable(t, "personal/personal_profiles.csv",
		"_id,full_name,tagline,short_summary,long_descriptive_summary,resume_summary,email,phone_num,dob,place_of_birth,address_city,address_state,address_country,profile_image,work_start_date",
		Username+",Sreeragh S,ML Engineer at Air India,Builds ML systems,Long summary here,Resume summary,sreeragh@example.com,+91 9000000000,1998-03-10,Kochi,Kochi,Kerala,India,/img/profile.png,2022-07-01")

	d.WriteTable(t, "personal/social_profiles.csv",
		"_id,personal_profile_id,platform,url,handler",
		"social_001,"+Username+",LinkedIn,https://linkedin.com/in/sreeragh,sreeragh",
		"social_002,"+Username+",GitHub,https://github.com/sreeragh,sreeragh",
		"social_003,"+Username+",Medium,https://medium.com/@sreeragh,sreeragh",
		"social_004,"+Username+",Stack Overflow,https://stackoverflow.com/users/1,sreeragh")

	d.WriteTable(t, "personal/family_members.csv",
		"_id,personal_profile_id,relationship,name,occupation,dob",
		"fam_001,"+Username+",Father,Father Name,Teacher,1965-01-15",
		"fam_002,"+Username+",Mother,Mother Name,Homemaker,1970-05-20")

	d.WriteTable(t, "personal/hobbies.csv",
		"_id,personal_profile_id,hobby",
		"hob_001,"+Username+",Photography",
		"hob_002,"+Username+",Trekking")

	d.WriteTable(t, "personal/education.csv",
		"_id,personal_profile_id,degree,institution,institution_url,field_of_study,start_date,end_date,gpa",
		"edu_001,"+Username+",BTech,CUSAT,https://cusat.ac.in,Computer Science,2016-08-01,2020-06-30,8.2",
		"edu_002,"+Username+",MTech,IIT Madras,https://iitm.ac.in,Machine Learning,2020-08-01,2022-06-30,8.9")

	d.WriteTable(t, "skills/skill_categories.csv",
		"_id,name,description",
		"cat_001,Programming Languages,Languages used day to day",
		"cat_002,ML Frameworks,Model training stacks")

	d.WriteTable(t, "skills/skills.csv",
		"_id,username,name,rating,description,skill_category_id",
		"skill_001,"+Username+",Python,5,Primary language,cat_001",
		"skill_002,"+Username+",Go,4,Services,cat_001",
		"skill_003,"+Username+",PyTorch,4,Deep learning,cat_002",
		"skill_004,"+Username+",Airflow,3,Orchestration,cat_missing")

	d.WriteTable(t, "projects/projects.csv",
		"_id,username,title,short_description,long_description,project_type,status,start_date,end_date,role,company,github_url,live_url,notion_url,hosting_platform,cicd_pipeline,monitoring_tracking",
		"proj_001,"+Username+",Demand Forecaster,Forecasts cargo demand,Long project story,Model Building,Completed,2023-01-10,2024-03-15,Lead,work_exp_001,https://github.com/sreeragh/forecaster,,,AWS,GitHub Actions,Grafana",
		"proj_002,"+Username+",Portfolio Site,Personal site,Long site story,MVP,In Progress,2024-06-01,,Owner,,,,https://notion.so/site,,,")

	d.WriteTable(t, "projects/project_skills.csv",
		"_id,project_id,skill_id",
		"ps_001,proj_001,skill_001",
		"ps_002,proj_001,skill_003")

	d.WriteTable(t, "projects/ml_models.csv",
		"_id,name,model_type,framework,version,accuracy,training_data_size,deployment_status,description",
		"model_001,Demand LSTM,Time Series,PyTorch,1.2,0.91,2M rows,Production,Forecasting model")

	d.WriteTable(t, "projects/project_ml_models.csv",
		"_id,project_id,ml_model_id,model_role,model_version",
		"pmm_001,proj_001,model_001,primary,1.2")

	d.WriteTable(t, "projects/ml_model_evaluation_metrics.csv",
		"_id,ml_model_id,metric_name,metric_value,metric_type",
		"metric_001,model_001,rmse,0.12,regression")

	d.WriteTable(t, "projects/ml_model_use_cases.csv",
		"_id,ml_model_id,use_case_name,business_impact",
		"uc_001,model_001,Capacity planning,Cut overbooking by 8%")

	d.WriteTable(t, "projects/ml_model_training_parameters.csv",
		"_id,ml_model_id,parameter_name,parameter_value,parameter_type",
		"tp_001,model_001,learning_rate,0.001,float")

	d.WriteTable(t, "projects/project_achievements.csv",
		"_id,project_id,achievement_title,achievement_description",
		"ach_001,proj_001,Shipped to production,Rolled out across three routes")

	d.WriteTable(t, "work_experience/work_experience.csv",
		"_id,username,company_name,company_location,designation,company_url,start_date,end_date,references",
		"work_exp_001,"+Username+",Air India,Kochi,ML Engineer,https://airindia.com,2024-01,Present,ref_001",
		"work_exp_002,"+Username+",NeST Digital,Thiruvananthapuram,Software Engineer,https://nestdigital.com,2022-07,2023-12,")

	d.WriteTable(t, "work_experience/company_references.csv",
		"_id,username,reference_name,designation,email,phone,linkedin_url,relationship",
		"ref_001,"+Username+",Manager Name,Engineering Manager,manager@example.com,+91 9111111111,https://linkedin.com/in/manager,Manager")

	d.WriteTable(t, "certifications/certifications.csv",
		"_id,username,name,issuer,issue_date,expiry_date,credential_id,credential_url",
		"cert_001,"+Username+",AWS ML Specialty,AWS,2023-05-01,2026-05-01,AWS-123,https://aws.example.com/cert")

	d.WriteTable(t, "certifications/certification_skills.csv",
		"_id,certification_id,skill_id",
		"cs_001,cert_001,skill_001",
		"cs_002,cert_001,skill_003")

	d.WriteTable(t, "services/services.csv",
		"id,title,description,category,email,icon_name,gradient,features",
		"1,ML Consulting,End to end model delivery,AI/ML,sreeragh@example.com,brain,purple,Scoping;Modeling;Deployment",
		"2,Backend Development,API design and build,Development,sreeragh@example.com,server,blue,Design;Build",
		"3,Ghost Service,Should be skipped,Photography,sreeragh@example.com,camera,red,Shoots")
}

// RandomSentence returns stable filler text for fields tests never assert.
func (d *Dataset) RandomSentence() string {
	return d.faker.Sentence(6)
}
