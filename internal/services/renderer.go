package services

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"rezumai/resume-analyzer/internal/models"
)

// RendererService turns a builder payload into an ATS-friendly PDF.
// Layout keeps to a single column with standard Helvetica so parsers
// read it cleanly.
type RendererService interface {
	RenderResume(data *models.ResumeData) ([]byte, error)
}

type rendererService struct{}

func NewRendererService() RendererService {
	return &rendererService{}
}

const (
	pdfMargin      = 12.7 // 0.5 inch in mm
	bodyLineHeight = 5.0
)

// resumeWriter wraps fpdf with the cp1252 translator the core fonts need.
type resumeWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// Heading color #2c3e50.
func (w *resumeWriter) headingColor() {
	w.pdf.SetTextColor(44, 62, 80)
}

func (w *resumeWriter) bodyColor() {
	w.pdf.SetTextColor(0, 0, 0)
}

func (w *resumeWriter) heading(title string) {
	w.pdf.SetFont("Helvetica", "B", 12)
	w.headingColor()
	w.pdf.CellFormat(0, 6, w.tr(title), "B", 1, "L", false, 0, "")
	w.pdf.Ln(1)
}

func (w *resumeWriter) body(text string) {
	w.pdf.SetFont("Helvetica", "", 10)
	w.bodyColor()
	w.pdf.MultiCell(0, bodyLineHeight, w.tr(text), "", "L", false)
}

func (w *resumeWriter) boldLine(text string) {
	w.pdf.SetFont("Helvetica", "B", 10)
	w.bodyColor()
	w.pdf.MultiCell(0, bodyLineHeight, w.tr(text), "", "L", false)
}

func (r *rendererService) RenderResume(data *models.ResumeData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	w := &resumeWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	writePersonalDetails(w, data.PersonalDetails)

	if summary := strings.TrimSpace(data.ProfessionalSummary); summary != "" {
		w.heading("PROFESSIONAL SUMMARY")
		w.body(summary)
		pdf.Ln(2)
	}

	writeTechnicalSkills(w, data.TechnicalSkills)

	if data.IsFresher {
		w.heading("CAREER OBJECTIVE")
		w.body("Recent graduate with strong academic background and technical skills. Seeking to apply knowledge and contribute to organizational success.")
		pdf.Ln(2)
	} else {
		writeWorkExperience(w, data.WorkExperience)
	}

	writeEducation(w, data.Education)
	writeCertifications(w, data.Certifications)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render resume PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func writePersonalDetails(w *resumeWriter, details models.PersonalDetails) {
	if name := strings.TrimSpace(details.FullName); name != "" {
		w.pdf.SetFont("Helvetica", "B", 16)
		w.headingColor()
		w.pdf.CellFormat(0, 8, w.tr(strings.ToUpper(name)), "", 1, "L", false, 0, "")
	}

	var contact []string
	if details.Phone != "" {
		contact = append(contact, details.Phone)
	}
	if details.Email != "" {
		contact = append(contact, details.Email)
	}
	if details.Location != "" {
		contact = append(contact, details.Location)
	}
	if details.LinkedIn != "" {
		contact = append(contact, "LinkedIn: "+details.LinkedIn)
	}
	if details.GitHub != "" {
		contact = append(contact, "GitHub: "+details.GitHub)
	}

	if len(contact) > 0 {
		w.body(strings.Join(contact, " | "))
	}

	w.pdf.Ln(4)
}

func writeTechnicalSkills(w *resumeWriter, skills map[string]string) {
	if len(skills) == 0 {
		return
	}

	// Sorted keys keep output stable across renders of the same payload.
	categories := make([]string, 0, len(skills))
	for category := range skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var parts []string
	for _, category := range categories {
		if entry := strings.TrimSpace(skills[category]); entry != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", category, entry))
		}
	}
	if len(parts) == 0 {
		return
	}

	w.heading("TECHNICAL SKILLS")
	w.body(strings.Join(parts, " | "))
	w.pdf.Ln(2)
}

func writeWorkExperience(w *resumeWriter, entries []models.WorkExperience) {
	hasExperience := false
	for _, exp := range entries {
		if strings.TrimSpace(exp.JobTitle) != "" ||
			strings.TrimSpace(exp.Company) != "" ||
			strings.TrimSpace(exp.BulletPoints) != "" {
			hasExperience = true
			break
		}
	}
	if !hasExperience {
		return
	}

	w.heading("WORK EXPERIENCE")

	for _, exp := range entries {
		if strings.TrimSpace(exp.JobTitle) == "" &&
			strings.TrimSpace(exp.Company) == "" &&
			strings.TrimSpace(exp.BulletPoints) == "" {
			continue
		}

		header := exp.JobTitle
		if exp.Company != "" {
			header += " | " + exp.Company
		}
		if exp.StartDate != "" {
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			header += fmt.Sprintf(" | %s - %s", exp.StartDate, end)
		}

		w.boldLine(header)

		w.pdf.SetFont("Helvetica", "", 10)
		for _, point := range strings.Split(exp.BulletPoints, "\n") {
			if point = strings.TrimSpace(point); point != "" {
				w.pdf.MultiCell(0, bodyLineHeight, w.tr("• "+point), "", "L", false)
			}
		}

		w.pdf.Ln(1)
	}

	w.pdf.Ln(2)
}

func writeEducation(w *resumeWriter, entries []models.Education) {
	hasEducation := false
	for _, edu := range entries {
		if strings.TrimSpace(edu.Degree) != "" || strings.TrimSpace(edu.Institution) != "" {
			hasEducation = true
			break
		}
	}
	if !hasEducation {
		return
	}

	w.heading("EDUCATION")

	for _, edu := range entries {
		if strings.TrimSpace(edu.Degree) == "" && strings.TrimSpace(edu.Institution) == "" {
			continue
		}

		line := edu.Degree
		if edu.Institution != "" {
			line += " | " + edu.Institution
		}
		if edu.Location != "" {
			line += " | " + edu.Location
		}
		if edu.GraduationYear != "" {
			line += " | " + edu.GraduationYear
		}

		w.boldLine(line)
		w.pdf.Ln(1)
	}

	w.pdf.Ln(2)
}

func writeCertifications(w *resumeWriter, entries []models.Certification) {
	hasCertifications := false
	for _, cert := range entries {
		if strings.TrimSpace(cert.CertificationName) != "" || strings.TrimSpace(cert.Organization) != "" {
			hasCertifications = true
			break
		}
	}
	if !hasCertifications {
		return
	}

	w.heading("CERTIFICATIONS")

	for _, cert := range entries {
		if strings.TrimSpace(cert.CertificationName) == "" && strings.TrimSpace(cert.Organization) == "" {
			continue
		}

		line := cert.CertificationName
		if cert.Organization != "" {
			line += " | " + cert.Organization
		}
		if cert.CompletionDate != "" {
			line += " | " + cert.CompletionDate
		}

		w.boldLine(line)
		w.pdf.Ln(1)
	}
}
