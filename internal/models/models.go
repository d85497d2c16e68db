package models

import (
	"time"

	"gorm.io/gorm"
)

// Company is the business profile, keyed by its unique name.
// Fields other than the name are overwritten on every successful
// extraction for the same company (last write wins).
type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyName string `gorm:"uniqueIndex;not null;size:256" json:"company_name"`

	EstablishmentYear *int       `json:"establishment_year"`
	Deadline          *time.Time `json:"deadline"`
	BusinessType      *string    `gorm:"size:256" json:"business_type"`
	EmployeeCount     *int       `json:"employee_count"`
	MainBusiness      *string    `gorm:"type:text" json:"main_business"`
	Website           *string    `gorm:"size:512" json:"website"`
	Address           *string    `gorm:"type:text" json:"address"`
	AIAnalysis        *string    `gorm:"type:text" json:"ai_analysis"`
	SearchSummary     *string    `gorm:"type:text" json:"search_summary"`

	// Deleting a company removes its postings with it.
	JobPostings []JobPosting `gorm:"constraint:OnDelete:CASCADE" json:"job_postings,omitempty"`
}

// JobPosting is one recruitment announcement. Postings are append-only:
// every processed document inserts a new row, even for a known company.
type JobPosting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint `gorm:"not null" json:"company_id"`

	RecruitmentYear     *string `gorm:"size:10" json:"recruitment_year"`
	ApplicationDeadline *string `gorm:"size:50" json:"application_deadline"`
	JobCategory         *string `gorm:"size:256" json:"job_category"`
	Positions           *int    `json:"positions"`
	JobDescription      *string `gorm:"type:text" json:"job_description"`
	Qualifications      *string `gorm:"type:text" json:"qualifications"`
	WorkHours           *string `gorm:"type:text" json:"work_hours"`
	EmploymentType      *string `gorm:"type:text" json:"employment_type"`
	RequiredDocuments   *string `gorm:"type:text" json:"required_documents"`
	InternStipend       *string `gorm:"size:100" json:"intern_stipend"`
	Salary              *string `gorm:"size:100" json:"salary"`
	OtherRequirements   *string `gorm:"type:text" json:"other_requirements"`
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"size:100" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	Address     string `gorm:"size:256" json:"address"`
	Category    string `gorm:"size:50" json:"category"`
	Affiliation string `gorm:"size:100" json:"affiliation"`
	Skills      string `gorm:"type:text" json:"skills"`
}

type Token struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null" json:"user_id"`
	RefreshToken string `gorm:"size:512" json:"-"`
}

// UserCompany records where a user is (or was) employed.
type UserCompany struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID           uint       `gorm:"not null" json:"user_id"`
	CompanyID        uint       `json:"company_id"`
	EmploymentStatus string     `gorm:"size:50" json:"employment_status"`
	DesiredPosition  string     `gorm:"size:100" json:"desired_position"`
	WorkStartDate    *time.Time `json:"work_start_date"`
	WorkEndDate      *time.Time `json:"work_end_date"`
}

// Experience is a user's project, activity, or award entry.
type Experience struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID      uint       `gorm:"not null" json:"user_id"`
	Type        string     `gorm:"size:20" json:"type"`
	Date        *time.Time `json:"date"`
	Name        string     `gorm:"size:256" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Skills      string     `gorm:"type:text" json:"skills"`
	URL         string     `gorm:"size:512" json:"url"`
}

type ApplicationStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint   `gorm:"not null" json:"user_id"`
	JobID  uint   `gorm:"not null" json:"job_id"`
	Status string `gorm:"size:50" json:"status"`
}

// PresentCompany is the address-lookup record for a company a user
// currently works at.
type PresentCompany struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `gorm:"not null" json:"company_id"`
	Address   string `gorm:"type:text" json:"address"`
}
