package analysis

// DictionaryVersion identifies the bundled skill/industry tables. Bump when
// any of the lists below change so persisted analyses can be told apart.
const DictionaryVersion = "2024.1"

// RoleSkills maps one canonical role to its ordered skill list. Skill tokens
// are lower-case; multi-word skills match as substrings of the document text.
type RoleSkills struct {
	Role   string
	Skills []string
}

// IndustrySet maps one industry to its keyword list.
type IndustrySet struct {
	Industry string
	Keywords []string
}

// VerbSet groups action verbs by scoring category.
type VerbSet struct {
	Category string
	Verbs    []string
}

// Dictionaries is the full static vocabulary the engine scores against.
type Dictionaries struct {
	Version    string
	Roles      []RoleSkills
	Industries []IndustrySet
	Verbs      []VerbSet
}

// DefaultDictionaries returns the bundled role/industry/verb tables.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		Version:    DictionaryVersion,
		Roles:      baseSkills,
		Industries: industryKeywords,
		Verbs:      actionVerbs,
	}
}

var baseSkills = []RoleSkills{
	{"Python Developer", []string{"python", "django", "flask", "fastapi", "pandas", "numpy", "scikit-learn"}},
	{"Java Developer", []string{"java", "spring", "spring boot", "hibernate", "maven", "gradle", "microservices"}},
	{"Frontend Developer", []string{"react", "javascript", "typescript", "html", "css", "angular", "vue", "ui", "ux", "responsive design"}},
	{"Backend Developer", []string{"node", "php", "express", "laravel", "api", "rest", "graphql", "microservices"}},
	{"Full Stack Developer", []string{"fullstack", "mern", "mean", "lamp", "jamstack", "nextjs", "nuxt"}},
	{"Data Analyst", []string{"sql", "excel", "tableau", "powerbi", "data", "analytics", "statistics", "r", "python"}},
	{"Data Scientist", []string{"python", "r", "machine learning", "deep learning", "tensorflow", "pytorch", "data science", "nlp"}},
	{"Project Manager", []string{"management", "agile", "scrum", "jira", "communication", "leadership", "budget", "stakeholder"}},
	{"HR Specialist", []string{"hr", "recruitment", "onboarding", "hris", "compliance", "employee relations", "talent acquisition"}},
	{"Cloud Engineer", []string{"aws", "azure", "gcp", "cloud", "terraform", "kubernetes", "docker", "ci/cd"}},
	{"DevOps Engineer", []string{"devops", "docker", "kubernetes", "jenkins", "gitlab", "linux", "ansible", "terraform"}},
	{"Cybersecurity Analyst", []string{"cybersecurity", "security", "penetration testing", "vulnerability assessment", "siem", "compliance"}},
	{"Software Engineer", []string{"c", "c++", ".net", "c#", "algorithms", "data structures", "software development", "testing"}},
	{"Content Writer", []string{"content", "writer", "copywriting", "seo", "marketing", "social media", "blogging"}},
	{"Marketing Specialist", []string{"marketing", "digital marketing", "seo", "sem", "social media", "analytics", "campaigns"}},
	{"Sales Representative", []string{"sales", "crm", "lead generation", "negotiation", "customer relationship", "revenue"}},
	{"Business Analyst", []string{"business analysis", "requirements", "documentation", "stakeholder", "process improvement", "data analysis"}},
	{"UX/UI Designer", []string{"ux", "ui", "design", "figma", "sketch", "adobe", "user research", "wireframing", "prototyping"}},
	{"Product Manager", []string{"product management", "roadmap", "strategy", "user stories", "agile", "stakeholder management"}},
	{"Quality Assurance", []string{"qa", "testing", "manual testing", "automation", "selenium", "test cases", "bug tracking"}},
	{"Medical Professional", []string{"nurse", "doctor", "pharma", "radiology", "medical", "healthcare", "patient care"}},
	{"Financial Analyst", []string{"finance", "financial analysis", "excel", "vba", "budgeting", "forecasting", "financial modeling"}},
	{"Operations Manager", []string{"operations", "process improvement", "supply chain", "logistics", "quality control", "lean"}},
	{"Customer Success", []string{"customer success", "customer support", "retention", "satisfaction", "onboarding", "account management"}},
}

var industryKeywords = []IndustrySet{
	{"Technology", []string{"software", "development", "programming", "coding", "api", "database", "cloud", "ai", "ml", "data"}},
	{"Healthcare", []string{"patient", "medical", "healthcare", "clinical", "diagnosis", "treatment", "pharmaceutical", "nursing"}},
	{"Finance", []string{"financial", "banking", "investment", "risk", "compliance", "audit", "accounting", "trading"}},
	{"Marketing", []string{"marketing", "campaign", "brand", "digital", "social media", "seo", "content", "analytics"}},
	{"Sales", []string{"sales", "revenue", "client", "customer", "lead", "prospect", "crm", "negotiation"}},
	{"HR", []string{"hr", "human resources", "recruitment", "talent", "employee", "onboarding", "training", "compliance"}},
	{"Operations", []string{"operations", "process", "efficiency", "quality", "supply chain", "logistics", "management"}},
	{"Education", []string{"education", "teaching", "training", "curriculum", "student", "learning", "instruction", "academic"}},
}

var actionVerbs = []VerbSet{
	{"achievement", []string{"achieved", "accomplished", "delivered", "completed", "exceeded", "surpassed"}},
	{"improvement", []string{"improved", "increased", "enhanced", "optimized", "streamlined", "reduced", "accelerated"}},
	{"leadership", []string{"led", "managed", "supervised", "directed", "coordinated", "mentored", "guided"}},
	{"development", []string{"developed", "created", "built", "designed", "implemented", "launched", "established"}},
	{"analysis", []string{"analyzed", "evaluated", "assessed", "researched", "investigated", "identified", "measured"}},
}

// SkillCategory is one named group inside a role's technical-skill inventory.
// Category order matters: the flattened list drives gap severity.
type SkillCategory struct {
	Name   string
	Skills []string
}

// RoleRecommendation is the static coaching record for one role.
type RoleRecommendation struct {
	TechnicalSkills []SkillCategory
	SoftSkills      []string
	Certifications  []string
	Projects        []string
	LearningPath    []string
}

var roleRecommendations = map[string]RoleRecommendation{
	"Data Analyst": {
		TechnicalSkills: []SkillCategory{
			{"programming", []string{"Python", "R", "SQL", "JavaScript", "VBA"}},
			{"tools", []string{"Excel", "Tableau", "Power BI", "Google Analytics", "Jupyter Notebook", "Pandas", "NumPy"}},
			{"databases", []string{"MySQL", "PostgreSQL", "MongoDB", "SQL Server", "Oracle"}},
			{"statistics", []string{"Statistical Analysis", "A/B Testing", "Regression Analysis", "Data Visualization"}},
		},
		SoftSkills:     []string{"Analytical Thinking", "Problem Solving", "Communication", "Attention to Detail", "Critical Thinking"},
		Certifications: []string{"Google Data Analytics Certificate", "Microsoft Power BI Certification", "Tableau Desktop Specialist", "AWS Certified Data Analytics"},
		Projects:       []string{"Sales Dashboard", "Customer Segmentation Analysis", "Predictive Analytics Model", "Business Intelligence Report"},
		LearningPath: []string{
			"Week 1-2: Master Excel advanced functions and pivot tables",
			"Week 3-4: Learn SQL fundamentals and practice queries",
			"Week 5-8: Complete Python for Data Analysis course",
			"Week 9-12: Build 2-3 data visualization projects using Tableau/Power BI",
		},
	},
	"Software Engineer": {
		TechnicalSkills: []SkillCategory{
			{"programming", []string{"Python", "Java", "JavaScript", "C++", "C#", "Go", "Rust"}},
			{"frameworks", []string{"React", "Angular", "Vue.js", "Django", "Flask", "Spring Boot", "Node.js"}},
			{"tools", []string{"Git", "Docker", "Kubernetes", "Jenkins", "AWS", "Azure", "Linux"}},
			{"databases", []string{"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch"}},
		},
		SoftSkills:     []string{"Problem Solving", "Team Collaboration", "Code Review", "Technical Writing", "Agile Development"},
		Certifications: []string{"AWS Certified Developer", "Google Cloud Professional Developer", "Microsoft Azure Developer", "Oracle Java Certification"},
		Projects:       []string{"Full-Stack Web Application", "REST API Development", "Microservices Architecture", "Mobile App Development"},
		LearningPath: []string{
			"Week 1-4: Master one programming language (Python/Java)",
			"Week 5-8: Learn web development frameworks (React/Django)",
			"Week 9-12: Build 2-3 full-stack projects with database integration",
			"Week 13-16: Learn cloud platforms and DevOps tools",
		},
	},
	"Project Manager": {
		TechnicalSkills: []SkillCategory{
			{"methodologies", []string{"Agile", "Scrum", "Kanban", "Waterfall", "Lean", "Six Sigma"}},
			{"tools", []string{"JIRA", "Asana", "Trello", "Microsoft Project", "Confluence", "Slack"}},
			{"analytics", []string{"Project Analytics", "Risk Management", "Budget Planning", "Resource Allocation"}},
		},
		SoftSkills:     []string{"Leadership", "Communication", "Negotiation", "Time Management", "Stakeholder Management", "Conflict Resolution"},
		Certifications: []string{"PMP (Project Management Professional)", "Certified ScrumMaster (CSM)", "PRINCE2", "Agile Certified Practitioner"},
		Projects:       []string{"Software Development Project", "Marketing Campaign Management", "Process Improvement Initiative", "Team Restructuring Project"},
		LearningPath: []string{
			"Week 1-2: Master project management fundamentals and methodologies",
			"Week 3-4: Learn Agile/Scrum frameworks and tools",
			"Week 5-8: Practice with project management software (JIRA, Asana)",
			"Week 9-12: Lead a small project and document lessons learned",
		},
	},
	"HR Specialist": {
		TechnicalSkills: []SkillCategory{
			{"systems", []string{"Workday", "BambooHR", "ADP", "SuccessFactors", "Taleo", "HRIS"}},
			{"analytics", []string{"HR Analytics", "Recruitment Metrics", "Employee Engagement Analysis", "Performance Management"}},
			{"compliance", []string{"Labor Law", "Employment Regulations", "Diversity & Inclusion", "Workplace Safety"}},
		},
		SoftSkills:     []string{"Interpersonal Skills", "Empathy", "Confidentiality", "Cultural Awareness", "Conflict Resolution", "Coaching"},
		Certifications: []string{"SHRM-CP", "PHR (Professional in Human Resources)", "CIPD", "HR Analytics Certificate"},
		Projects:       []string{"Employee Onboarding Program", "Performance Review System", "Diversity Initiative", "Training Program Development"},
		LearningPath: []string{
			"Week 1-2: Master HR fundamentals and employment law",
			"Week 3-4: Learn HRIS systems and recruitment tools",
			"Week 5-8: Develop skills in employee relations and performance management",
			"Week 9-12: Create HR policies and procedures documentation",
		},
	},
	"Marketing Specialist": {
		TechnicalSkills: []SkillCategory{
			{"digital_marketing", []string{"SEO", "SEM", "Google Ads", "Facebook Ads", "Email Marketing", "Content Marketing"}},
			{"analytics", []string{"Google Analytics", "Facebook Analytics", "HubSpot", "Mailchimp", "Hootsuite"}},
			{"design", []string{"Canva", "Adobe Creative Suite", "Figma", "Video Editing", "Graphic Design"}},
		},
		SoftSkills:     []string{"Creativity", "Communication", "Strategic Thinking", "Brand Management", "Customer Focus", "Data Interpretation"},
		Certifications: []string{"Google Ads Certification", "Facebook Blueprint", "HubSpot Content Marketing", "Google Analytics Certification"},
		Projects:       []string{"Digital Marketing Campaign", "Brand Awareness Strategy", "Lead Generation Campaign", "Social Media Strategy"},
		LearningPath: []string{
			"Week 1-2: Master digital marketing fundamentals and platforms",
			"Week 3-4: Learn SEO/SEM and paid advertising strategies",
			"Week 5-8: Develop content creation and social media skills",
			"Week 9-12: Execute a complete marketing campaign and measure results",
		},
	},
	"Sales Representative": {
		TechnicalSkills: []SkillCategory{
			{"crm", []string{"Salesforce", "HubSpot", "Pipedrive", "Zoho CRM", "Microsoft Dynamics"}},
			{"tools", []string{"LinkedIn Sales Navigator", "ZoomInfo", "Calendly", "DocuSign", "Sales Analytics"}},
			{"platforms", []string{"B2B Sales", "B2C Sales", "E-commerce", "Lead Generation", "Sales Automation"}},
		},
		SoftSkills:     []string{"Persuasion", "Active Listening", "Relationship Building", "Negotiation", "Resilience", "Goal Orientation"},
		Certifications: []string{"Salesforce Certified Sales Cloud Consultant", "HubSpot Sales Software", "Challenger Sale Methodology", "SPIN Selling"},
		Projects:       []string{"Sales Territory Development", "Customer Acquisition Campaign", "Sales Process Optimization", "Client Retention Program"},
		LearningPath: []string{
			"Week 1-2: Master sales fundamentals and CRM systems",
			"Week 3-4: Learn prospecting and lead generation techniques",
			"Week 5-8: Develop negotiation and closing skills",
			"Week 9-12: Build a sales pipeline and track performance metrics",
		},
	},
	"Business Analyst": {
		TechnicalSkills: []SkillCategory{
			{"analysis", []string{"Requirements Gathering", "Process Mapping", "Data Analysis", "Business Process Modeling"}},
			{"tools", []string{"Visio", "Lucidchart", "JIRA", "Confluence", "Power BI", "Tableau"}},
			{"methodologies", []string{"Agile", "Waterfall", "Six Sigma", "Lean", "BPMN"}},
		},
		SoftSkills:     []string{"Critical Thinking", "Communication", "Stakeholder Management", "Problem Solving", "Documentation", "Presentation Skills"},
		Certifications: []string{"CBAP (Certified Business Analysis Professional)", "PMI-PBA", "Agile Analysis Certification", "Six Sigma Green Belt"},
		Projects:       []string{"Business Process Improvement", "Requirements Documentation", "System Implementation", "Data Analysis Project"},
		LearningPath: []string{
			"Week 1-2: Master business analysis fundamentals and methodologies",
			"Week 3-4: Learn requirements gathering and documentation techniques",
			"Week 5-8: Develop skills in process mapping and data analysis",
			"Week 9-12: Complete a business analysis project from start to finish",
		},
	},
}

var genericRecommendation = RoleRecommendation{
	TechnicalSkills: []SkillCategory{
		{"general", []string{"Problem Solving", "Analytical Thinking", "Communication"}},
	},
	SoftSkills:     []string{"Communication", "Teamwork", "Adaptability"},
	Certifications: []string{"Industry-specific certifications"},
	Projects:       []string{"Relevant project experience"},
	LearningPath:   []string{"Focus on role-specific skills and experience"},
}

// BulletRewrite is one weak-to-strong quantified bullet-point example.
type BulletRewrite struct {
	Weak        string `json:"weak_example"`
	Strong      string `json:"strong_example"`
	Role        string `json:"role"`
	Explanation string `json:"formula_explanation"`
}

var roleBulletExamples = map[string][]BulletRewrite{
	"Data Analyst": {
		{
			Weak:        "Responsible for data analysis tasks",
			Strong:      "Analyzed 15+ datasets using Python and SQL, improving data accuracy by 25% and reducing processing time by 40%",
			Explanation: "Concrete example: 15+ datasets (Achievement) + Python/SQL (Tools) + 25% accuracy improvement (Measurable Result)",
		},
		{
			Weak:        "Created reports for management",
			Strong:      "Created 12 automated weekly reports using Tableau and Power BI, reducing manual work by 8 hours per week",
			Explanation: "Specific metrics: 12 reports (Achievement) + Tableau/Power BI (Tools) + 8 hours saved (Measurable Result)",
		},
	},
	"Software Engineer": {
		{
			Weak:        "Developed software applications",
			Strong:      "Developed 3 new features using React and Node.js, increasing user engagement by 35% and reducing page load time by 2.5 seconds",
			Explanation: "Measurable impact: 3 features (Achievement) + React/Node.js (Technology) + 35% engagement increase (Result)",
		},
		{
			Weak:        "Worked on bug fixes and maintenance",
			Strong:      "Resolved 50+ critical bugs using Python and automated testing tools, improving system stability by 40%",
			Explanation: "Quantified results: 50+ bugs fixed (Achievement) + Python/testing tools (Method) + 40% stability improvement (Result)",
		},
	},
	"Project Manager": {
		{
			Weak:        "Managed project teams",
			Strong:      "Led 4 cross-functional projects using Agile methodology, delivering all projects 15% under budget and 2 weeks ahead of schedule",
			Explanation: "Project metrics: 4 projects (Achievement) + Agile methodology (Method) + 15% budget savings (Result)",
		},
		{
			Weak:        "Coordinated team activities",
			Strong:      "Managed 8 team members using JIRA and Slack, improving team productivity by 30% and reducing project delivery time by 25%",
			Explanation: "Team impact: 8 team members (Scale) + JIRA/Slack (Tools) + 30% productivity increase (Result)",
		},
	},
	"HR Specialist": {
		{
			Weak:        "Handled recruitment processes",
			Strong:      "Streamlined hiring process using Workday HRIS, reducing time-to-hire by 20 days and improving candidate satisfaction by 45%",
			Explanation: "HR metrics: Streamlined process (Achievement) + Workday HRIS (Tool) + 20 days reduction (Result)",
		},
		{
			Weak:        "Managed employee relations",
			Strong:      "Implemented employee wellness program using HR analytics, increasing retention by 25% and reducing turnover costs by $150K annually",
			Explanation: "Retention impact: Wellness program (Achievement) + HR analytics (Method) + 25% retention increase (Result)",
		},
	},
	"Marketing Specialist": {
		{
			Weak:        "Managed marketing campaigns",
			Strong:      "Executed 8 digital marketing campaigns using Google Ads and Facebook Ads, generating 2,500+ qualified leads and increasing ROI by 60%",
			Explanation: "Campaign results: 8 campaigns (Achievement) + Google/Facebook Ads (Platforms) + 2,500 leads generated (Result)",
		},
		{
			Weak:        "Created marketing content",
			Strong:      "Optimized website content using SEO tools and A/B testing, increasing organic traffic by 80% and conversion rate by 35%",
			Explanation: "SEO impact: Content optimization (Achievement) + SEO tools/A/B testing (Method) + 80% traffic increase (Result)",
		},
	},
	"Sales Representative": {
		{
			Weak:        "Responsible for sales targets",
			Strong:      "Exceeded quarterly sales targets by 35% using CRM tools and consultative selling, generating $2.5M in revenue",
			Explanation: "Sales achievement: 35% target exceed (Achievement) + CRM tools/consultative selling (Method) + $2.5M revenue (Result)",
		},
		{
			Weak:        "Managed client relationships",
			Strong:      "Built and maintained 150+ client relationships using Salesforce CRM, increasing customer retention by 40% and upsell revenue by $500K",
			Explanation: "Relationship metrics: 150+ clients (Achievement) + Salesforce CRM (Tool) + 40% retention increase (Result)",
		},
	},
	"Business Analyst": {
		{
			Weak:        "Analyzed business processes",
			Strong:      "Analyzed 12 business processes using data analytics and process mapping, identifying cost savings of $300K annually",
			Explanation: "Process impact: 12 processes analyzed (Achievement) + Data analytics/process mapping (Method) + $300K savings (Result)",
		},
		{
			Weak:        "Created business requirements",
			Strong:      "Documented 25+ business requirements using Visio and JIRA, reducing project delivery time by 30% and improving stakeholder satisfaction by 50%",
			Explanation: "Requirements impact: 25+ requirements (Achievement) + Visio/JIRA (Tools) + 30% time reduction (Result)",
		},
	},
}

var genericBulletExamples = []BulletRewrite{
	{
		Weak:        "Responsible for general tasks",
		Strong:      "Improved operational efficiency by 25% using process optimization and team collaboration, resulting in $100K cost savings",
		Explanation: "General improvement: 25% efficiency increase (Achievement) + Process optimization (Method) + $100K savings (Result)",
	},
	{
		Weak:        "Worked on various projects",
		Strong:      "Completed 5 major projects using project management methodologies, delivering 100% on-time with 20% cost reduction",
		Explanation: "Project success: 5 projects (Achievement) + Project management methodologies (Method) + 20% cost reduction (Result)",
	},
}

var industryContext = map[string]string{
	"Data Analyst":         "data professional",
	"Software Engineer":    "software developer",
	"Project Manager":      "project management professional",
	"HR Specialist":        "human resources professional",
	"Marketing Specialist": "marketing professional",
	"Sales Representative": "sales professional",
}

func recommendationFor(role string) RoleRecommendation {
	if rec, ok := roleRecommendations[role]; ok {
		return rec
	}
	return genericRecommendation
}

func bulletExamplesFor(role string) []BulletRewrite {
	if ex, ok := roleBulletExamples[role]; ok {
		return ex
	}
	return genericBulletExamples
}
