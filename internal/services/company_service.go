package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/team-dbase/dbase-ai/internal/extract"
	"github.com/team-dbase/dbase-ai/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// deadlineLayout matches dates like "2025년 7월 10일".
const deadlineLayout = "2006년 1월 2일"

var yearPattern = regexp.MustCompile(`\d{4}`)

// companyUpdateColumns are the mutable fields overwritten when a known
// company is seen again. The name itself never changes.
var companyUpdateColumns = []string{
	"establishment_year", "deadline", "business_type", "employee_count",
	"main_business", "website", "address", "search_summary", "ai_analysis",
	"updated_at",
}

// SaveExtraction upserts the company by name and appends a new job
// posting to it, in one transaction. Either both rows land or neither
// does. Concurrent requests for the same name are resolved by the
// unique index plus ON CONFLICT DO UPDATE rather than a racy
// find-then-create.
func (s *CompanyService) SaveExtraction(rec *extract.Record, searchSummary, aiAnalysis string) (companyID, jobPostingID uint, err error) {
	if !rec.Usable() {
		return 0, 0, errors.New("record has no company name")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		company := models.Company{CompanyName: *rec.CompanyName}
		applyCompanyFields(&company, rec, searchSummary, aiAnalysis)

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_name"}},
			DoUpdates: clause.AssignmentColumns(companyUpdateColumns),
		}).Create(&company).Error; err != nil {
			return err
		}
		if company.ID == 0 {
			// conflict path on drivers that do not return the id
			if err := tx.Where("company_name = ?", company.CompanyName).First(&company).Error; err != nil {
				return err
			}
		}

		posting := models.JobPosting{
			CompanyID:           company.ID,
			RecruitmentYear:     rec.RecruitmentYear,
			ApplicationDeadline: rec.ApplicationDeadline,
			JobCategory:         rec.JobCategory,
			Positions:           rec.Positions,
			JobDescription:      rec.JobDescription,
			Qualifications:      rec.Qualifications,
			WorkHours:           rec.WorkHours,
			EmploymentType:      rec.EmploymentType,
			RequiredDocuments:   rec.RequiredDocuments,
			InternStipend:       rec.InternStipend,
			Salary:              rec.Salary,
			OtherRequirements:   rec.OtherRequirements,
		}
		if err := tx.Create(&posting).Error; err != nil {
			return err
		}

		companyID = company.ID
		jobPostingID = posting.ID
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return companyID, jobPostingID, nil
}

func (s *CompanyService) ListCompanies() ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.Order("id").Find(&companies).Error
	return companies, err
}

func (s *CompanyService) GetCompany(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.Preload("JobPostings").First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func applyCompanyFields(c *models.Company, rec *extract.Record, searchSummary, aiAnalysis string) {
	c.EstablishmentYear = parseEstablishmentYear(rec.Established)
	c.Deadline = parseDeadline(rec.ApplicationDeadline)
	c.BusinessType = rec.BusinessType
	c.EmployeeCount = rec.NumEmployees
	c.MainBusiness = rec.MainBusiness
	c.Website = rec.Website
	c.Address = rec.Location
	c.SearchSummary = &searchSummary
	c.AIAnalysis = &aiAnalysis
}

// parseEstablishmentYear pulls the year out of strings like
// "2015. 03. 21". No four-digit run means nil, never an error.
func parseEstablishmentYear(established *string) *int {
	if established == nil {
		return nil
	}
	m := yearPattern.FindString(*established)
	if m == "" {
		return nil
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &year
}

// parseDeadline parses "2025년 7월 10일"; any other shape means nil.
func parseDeadline(deadline *string) *time.Time {
	if deadline == nil {
		return nil
	}
	t, err := time.Parse(deadlineLayout, strings.TrimSpace(*deadline))
	if err != nil {
		return nil
	}
	return &t
}
