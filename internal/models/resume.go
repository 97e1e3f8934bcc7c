package models

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedResume stores one résumé built through the builder form, as the
// raw JSON payload the renderer consumes.
type GeneratedResume struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Data      string    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GeneratedResume) TableName() string {
	return "generated_resumes"
}

// ResumeData is the structured builder payload.
type ResumeData struct {
	PersonalDetails     PersonalDetails   `json:"personal_details"`
	ProfessionalSummary string            `json:"professional_summary"`
	TechnicalSkills     map[string]string `json:"technical_skills"`
	IsFresher           bool              `json:"is_fresher"`
	WorkExperience      []WorkExperience  `json:"work_experience"`
	Education           []Education       `json:"education"`
	Certifications      []Certification   `json:"certifications"`
}

type PersonalDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type WorkExperience struct {
	JobTitle     string `json:"job_title"`
	Company      string `json:"company"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	BulletPoints string `json:"bullet_points"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationYear string `json:"graduation_year"`
}

type Certification struct {
	CertificationName string `json:"certification_name"`
	Organization      string `json:"organization"`
	CompletionDate    string `json:"completion_date"`
}
