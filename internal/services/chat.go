package services

import (
	"fmt"
	"strings"
)

// ChatService is a rule based career assistant. Replies are canned text
// selected by keyword, optionally personalized with the caller's latest
// analysis context.
type ChatService interface {
	Reply(message, context string) string
}

type chatService struct{}

func NewChatService() ChatService {
	return &chatService{}
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// Reply implements ChatService.
func (c *chatService) Reply(message, context string) string {
	messageLower := strings.ToLower(message)

	// Degree and track specific summaries take priority.
	if containsAny(messageLower, "summary", "about", "profile", "objective") {
		if strings.Contains(messageLower, "mca") {
			return "MCA Summary (Experienced): Results-driven Software Engineer with an MCA and [X]+ years in full-stack development. " +
				"Expertise in designing scalable systems using Python/Java, REST APIs, and relational/NoSQL databases. " +
				"Delivered [quantified results] by optimizing services and implementing CI/CD on cloud platforms. " +
				"Seeking to drive impact in a product-focused team.\n\n" +
				"MCA Summary (Fresher): MCA graduate with strong fundamentals in Data Structures, OOPs, and DBMS. " +
				"Built projects in Python/JavaScript, including [project name] using Flask/React and SQL. " +
				"Quick learner with hands-on Git, Docker basics, and cloud fundamentals. " +
				"Eager to contribute to a high-growth engineering team."
		}
		if strings.Contains(messageLower, "bca") {
			return "BCA Summary (Experienced): Technology professional with a BCA and [X]+ years across application development and support. " +
				"Skilled in scripting (Python/JS), data handling (SQL), and automation for operational efficiency. " +
				"Improved processes by [quantified result]. Seeking roles in application development or data-centric teams.\n\n" +
				"BCA Summary (Fresher): BCA graduate with solid understanding of programming, web technologies, and databases. " +
				"Built [project] demonstrating clean code and problem-solving. " +
				"Motivated to learn modern frameworks and contribute to real-world products."
		}
		if containsAny(messageLower, "sales", "marketing") {
			return "Sales Summary (Experienced): Target-driven Sales Professional with [X] years in B2B/B2C environments. " +
				"Proven success in pipeline building, consultative selling, and CRM-driven forecasting, achieving [quantified achievements]. " +
				"Adept at stakeholder management and cross-functional collaboration.\n\n" +
				"Marketing Summary (Experienced): Marketing Specialist with [X] years across digital campaigns, SEO/SEM, content strategy, and analytics (GA, Search Console). " +
				"Drove acquisition and retention with [quantified impact]. Comfortable with A/B testing and performance optimization.\n\n" +
				"Fresher Template (Sales/Marketing): Graduate with internships/projects in digital marketing/sales enablement. " +
				"Familiar with SEO/SEM, social media tools, and campaign analytics. Strong communication, research, and presentation skills."
		}
	}

	if containsAny(messageLower, "skill", "skills", "technical", "programming") {
		if strings.Contains(messageLower, "mca") {
			return "MCA Skill Focus:\n" +
				"- Programming: Python/Java, OOPs, data structures\n" +
				"- Backend & APIs: REST, Flask/Django/Spring\n" +
				"- Databases: SQL, normalization, basic NoSQL\n" +
				"- DevOps Basics: Git, CI/CD, Docker\n" +
				"- Cloud Fundamentals: AWS/Azure basics"
		}
		if strings.Contains(messageLower, "bca") {
			return "BCA Skill Focus:\n" +
				"- Core: Programming fundamentals, web (HTML/CSS/JS)\n" +
				"- Data: SQL, basic analytics with Excel/Python\n" +
				"- Tools: Git/GitHub, basic scripting\n" +
				"- Projects: CRUD apps, simple dashboards"
		}
		if containsAny(messageLower, "sales", "marketing") {
			return "Sales/Marketing Skills:\n" +
				"- Sales: Prospecting, pipeline management, CRM (HubSpot/Salesforce)\n" +
				"- Marketing: SEO/SEM, content, campaign analytics (GA, Ads)\n" +
				"- Communication: Presentation, negotiation, stakeholder mgmt"
		}
		if containsAny(messageLower, "fresher", "new", "beginner") {
			return "Fresher Skill Roadmap:\n" +
				"- Programming: Python/Java/JS\n" +
				"- Web basics: HTML/CSS, HTTP\n" +
				"- Databases: SQL\n" +
				"- Version Control: Git\n" +
				"- Projects: 2-3 hands-on projects\n" +
				"Want suggestions tailored to MCA/BCA/Sales/Marketing? Tell me your target role."
		}
		return "Experienced Skills by Role:\n" +
			"- Software Engineer: Advanced programming, system design, cloud, DevOps\n" +
			"- Data Analyst: Advanced SQL, Python/R, Tableau/Power BI, statistics\n" +
			"- Project Manager: Agile/Scrum, JIRA, stakeholder mgmt, risk\n" +
			"- Marketing: Digital marketing, SEO/SEM, analytics tools, campaigns\n" +
			"Universal: Leadership, strategy, collaboration, certifications.\n" +
			"What specific role or industry are you targeting?"
	}

	if containsAny(messageLower, "summary", "about", "profile", "objective") {
		if strings.Contains(messageLower, "fresher") {
			return "Fresher Summary Template: Recent [Degree] graduate with strong foundation in [relevant skills]. " +
				"Passionate about [field] with hands-on experience in [projects/internships]. " +
				"Demonstrated ability to [specific achievement]. Seeking to contribute to [company type].\n" +
				"Key elements: degree and relevant skills, projects/internships/certifications, keep 3-4 sentences, action verbs and specifics.\n" +
				"Want me to personalize this? Share role, experience, and key skills."
		}
		return "Experienced Summary Template: Results-driven [Role] with [X] years in [industry/domain]. " +
			"Expertise in [key skills] with demonstrated success in [quantified achievements]. " +
			"Strong background in [technologies/methodologies]. Seeking to drive [specific goals] in [target company type].\n" +
			"Key elements: role and years of experience, 2-3 role-relevant skills, 1-2 quantified achievements, relevant tech/methodologies, career goal.\n" +
			"Share your role/domain for a customized version (MCA/BCA/IT/Sales/Marketing)."
	}

	if containsAny(messageLower, "ats", "optimization", "optimize", "score") {
		return "ATS Optimization Tips:\n" +
			"Keywords & Skills: use exact keywords from job descriptions, add industry terminology, include technical and soft skills, use key term variations.\n" +
			"Formatting: standard headings (Experience, Education, Skills), avoid tables/graphics, clean fonts (Arial/Calibri), text-based PDF or .docx.\n" +
			"Content Structure: quantifiable achievements, strong action verbs, concise bullet points, clear contact info.\n" +
			"Length: 1-2 pages, 400-1000 words, prioritize relevance.\n" +
			"Want targeted ATS improvements? Share your role and sample JD keywords."
	}

	if containsAny(messageLower, "job", "interview", "application", "search") {
		return "Job Search Strategy:\n" +
			"Resume Optimization: tailor for each application, use JD keywords, quantify achievements, highlight relevant experience.\n" +
			"Application Process: apply within 24-48 hours, custom cover letters, follow up after 1-2 weeks, professional contact info.\n" +
			"Interview Preparation: research company/role, prepare STAR stories, practice common questions, prepare questions for interviewer.\n" +
			"Networking: optimize LinkedIn, connect with professionals, attend events/webinars, leverage alumni.\n" +
			"Tell me your target role to tailor this further."
	}

	if context == "" {
		context = "No resume analysis available. Upload a resume for personalized advice."
	}

	return fmt.Sprintf("I'm here to help with your resume and career development! Based on your message about '%s', here are ways I can assist:\n"+
		"- Skill suggestions for your target roles\n"+
		"- Professional summaries and objectives\n"+
		"- ATS optimization and keywords\n"+
		"- Job search and interview prep\n"+
		"- Career transitions\n"+
		"- Resume formatting/structure\n"+
		"Current Context: %s\n"+
		"Try asking: suggest skills for a data analyst fresher, help write a summary for a software engineer, how to improve my ATS score, interview tips for project manager roles.\n"+
		"What would you like to focus on today?", message, context)
}
