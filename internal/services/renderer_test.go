package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rezumai/resume-analyzer/internal/models"
)

func sampleResumeData() *models.ResumeData {
	return &models.ResumeData{
		PersonalDetails: models.PersonalDetails{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 123 4567",
			Location: "Austin, TX",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		ProfessionalSummary: "Data analyst with 4 years of experience.",
		TechnicalSkills: map[string]string{
			"Programming": "Python, SQL",
			"Tools":       "Tableau, Excel",
		},
		WorkExperience: []models.WorkExperience{
			{
				JobTitle:     "Data Analyst",
				Company:      "InsightWorks",
				StartDate:    "Jan 2021",
				EndDate:      "",
				BulletPoints: "Improved reporting speed by 40%\nBuilt 12 dashboards",
			},
		},
		Education: []models.Education{
			{Degree: "BSc Statistics", Institution: "State University", GraduationYear: "2020"},
		},
		Certifications: []models.Certification{
			{CertificationName: "Google Data Analytics Certificate", Organization: "Google", CompletionDate: "2022"},
		},
	}
}

func TestRenderResume(t *testing.T) {
	renderer := NewRendererService()

	pdfBytes, err := renderer.RenderResume(sampleResumeData())
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderResumeDeterministic(t *testing.T) {
	renderer := NewRendererService()
	data := sampleResumeData()

	first, err := renderer.RenderResume(data)
	require.NoError(t, err)
	second, err := renderer.RenderResume(data)
	require.NoError(t, err)

	// Map iteration must not leak into the output; skill categories are
	// rendered in sorted order.
	assert.Equal(t, len(first), len(second))
}

func TestRenderResumeFresher(t *testing.T) {
	renderer := NewRendererService()

	data := sampleResumeData()
	data.IsFresher = true
	data.WorkExperience = nil

	pdfBytes, err := renderer.RenderResume(data)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}

func TestRenderResumeEmptySectionsSkipped(t *testing.T) {
	renderer := NewRendererService()

	data := &models.ResumeData{
		PersonalDetails: models.PersonalDetails{FullName: "Jane Doe"},
		WorkExperience:  []models.WorkExperience{{}},
		Education:       []models.Education{{}},
		Certifications:  []models.Certification{{}},
	}

	pdfBytes, err := renderer.RenderResume(data)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
