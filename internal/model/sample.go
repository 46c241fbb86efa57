package model

import "time"

// SampleResume returns the seeded template document for the given language
// ("en" or "ar"; anything else falls back to English). The returned value is
// freshly built on every call, so callers may hand it straight to a store.
func SampleResume(lang string) *Resume {
	if lang == "ar" {
		return sampleResumeAr()
	}
	return sampleResumeEn()
}

// FromTemplate clones the sample for lang and restamps it with a fresh id and
// timestamps so it can coexist with earlier template-based documents.
func FromTemplate(userID, lang string) *Resume {
	r := SampleResume(lang)
	r.UserID = userID
	r.Restamp()
	return r
}

func sampleResumeEn() *Resume {
	now := time.Now().UTC()
	const resumeID = "resume-sample-en"
	return &Resume{
		ID:        resumeID,
		UserID:    "user-sample",
		Title:     "Professional Resume",
		CreatedAt: now,
		UpdatedAt: now,
		BasicInfo: BasicInfo{
			Name:     "Sarah Johnson",
			Email:    "sarah.johnson@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			Headline: "Senior Software Engineer",
			Links: []Link{
				{Label: "LinkedIn", URL: "linkedin.com/in/sarahjohnson"},
				{Label: "GitHub", URL: "github.com/sarahj-dev"},
			},
		},
		Metadata: Metadata{
			Locale:       "en-US",
			Theme:        "light",
			FontFamily:   "Inter",
			LineHeight:   1.4,
			AccentColor:  "#0F172A",
			PrimaryColor: "#0F172A",
		},
		Sections: []Section{
			{
				ID:            "section-summary",
				ResumeID:      resumeID,
				Type:          SectionSummary,
				TitleOverride: "Summary",
				Position:      0,
				Entries: []Entry{
					{
						ID:          "summary-entry",
						SectionID:   "section-summary",
						Position:    0,
						Title:       "Summary",
						Description: "Results-driven software engineer with 5+ years of experience building scalable web applications and leading cross-functional teams. Passionate about clean code, user experience, and mentoring junior developers. Proven track record of delivering projects on time while maintaining high code quality standards.",
						Bullets:     []Bullet{},
					},
				},
			},
			{
				ID:            "section-experience",
				ResumeID:      resumeID,
				Type:          SectionWorkExperience,
				TitleOverride: "Work Experience",
				Position:      1,
				Entries: []Entry{
					{
						ID:           "exp-entry-1",
						SectionID:    "section-experience",
						Position:     0,
						Title:        "Senior Software Engineer",
						CompanyOrOrg: "TechCorp Inc.",
						Location:     "San Francisco, CA",
						StartDate:    "2022-03-01",
						IsCurrent:    true,
						Bullets: []Bullet{
							{ID: "bullet-exp-1-1", EntryID: "exp-entry-1", Position: 0, Text: "Led a team of 5 engineers to rebuild the customer dashboard, resulting in 40% faster load times"},
							{ID: "bullet-exp-1-2", EntryID: "exp-entry-1", Position: 1, Text: "Architected microservices infrastructure handling 10M+ daily requests with 99.9% uptime"},
							{ID: "bullet-exp-1-3", EntryID: "exp-entry-1", Position: 2, Text: "Mentored 3 junior developers, conducting code reviews and pair programming sessions"},
						},
					},
					{
						ID:           "exp-entry-2",
						SectionID:    "section-experience",
						Position:     1,
						Title:        "Software Engineer",
						CompanyOrOrg: "StartupXYZ",
						Location:     "Remote",
						StartDate:    "2020-01-01",
						EndDate:      "2022-02-01",
						Bullets: []Bullet{
							{ID: "bullet-exp-2-1", EntryID: "exp-entry-2", Position: 0, Text: "Developed RESTful APIs using Node.js and Express, serving 50K+ active users"},
							{ID: "bullet-exp-2-2", EntryID: "exp-entry-2", Position: 1, Text: "Implemented CI/CD pipelines reducing deployment time by 60%"},
							{ID: "bullet-exp-2-3", EntryID: "exp-entry-2", Position: 2, Text: "Collaborated with product team to ship 15+ features using agile methodologies"},
						},
					},
				},
			},
			{
				ID:            "section-education",
				ResumeID:      resumeID,
				Type:          SectionEducation,
				TitleOverride: "Education",
				Position:      2,
				Entries: []Entry{
					{
						ID:        "edu-entry-1",
						SectionID: "section-education",
						Position:  0,
						Title:     "Stanford University",
						Subtitle:  "B.S. in Computer Science",
						Location:  "Stanford, CA",
						StartDate: "2015-09-01",
						EndDate:   "2019-06-01",
						Bullets: []Bullet{
							{ID: "bullet-edu-1", EntryID: "edu-entry-1", Position: 0, Text: "GPA: 3.8/4.0, Dean's List"},
							{ID: "bullet-edu-2", EntryID: "edu-entry-1", Position: 1, Text: "Relevant coursework: Data Structures, Algorithms, Database Systems, Machine Learning"},
						},
					},
				},
			},
			{
				ID:            "section-skills",
				ResumeID:      resumeID,
				Type:          SectionSkill,
				TitleOverride: "Technical Skills",
				Position:      3,
				Entries: []Entry{
					{
						ID:          "skills-entry-1",
						SectionID:   "section-skills",
						Position:    0,
						Title:       "Languages",
						Description: "JavaScript, TypeScript, Python, Go, SQL",
						Bullets:     []Bullet{},
					},
					{
						ID:          "skills-entry-2",
						SectionID:   "section-skills",
						Position:    1,
						Title:       "Frameworks & Tools",
						Description: "React, Node.js, Next.js, PostgreSQL, Docker, AWS, Git",
						Bullets:     []Bullet{},
					},
				},
			},
			{
				ID:            "section-projects",
				ResumeID:      resumeID,
				Type:          SectionProject,
				TitleOverride: "Projects",
				Position:      4,
				Entries: []Entry{
					{
						ID:         "project-entry-1",
						SectionID:  "section-projects",
						Position:   0,
						Title:      "Open Source Task Manager",
						StartDate:  "2023-01-01",
						EndDate:    "2023-06-01",
						ProjectURL: "github.com/sarahj-dev/taskmaster",
						TechStack:  []string{"React", "Node.js", "MongoDB"},
						Bullets: []Bullet{
							{ID: "bullet-proj-1-1", EntryID: "project-entry-1", Position: 0, Text: "Built a full-stack task management app with 500+ GitHub stars"},
							{ID: "bullet-proj-1-2", EntryID: "project-entry-1", Position: 1, Text: "Implemented real-time collaboration features using WebSockets"},
						},
					},
				},
			},
		},
	}
}

func sampleResumeAr() *Resume {
	now := time.Now().UTC()
	const resumeID = "resume-sample-ar"
	return &Resume{
		ID:        resumeID,
		UserID:    "user-sample",
		Title:     "السيرة الذاتية",
		CreatedAt: now,
		UpdatedAt: now,
		BasicInfo: BasicInfo{
			Name:     "سارة أحمد",
			Email:    "sara.ahmed@email.com",
			Phone:    "+966 55 123 4567",
			Location: "الرياض، المملكة العربية السعودية",
			Headline: "مهندسة برمجيات أولى",
			Links: []Link{
				{Label: "LinkedIn", URL: "linkedin.com/in/saraahmed"},
				{Label: "GitHub", URL: "github.com/sara-dev"},
			},
		},
		Metadata: Metadata{
			Locale:       "ar-SA",
			Theme:        "light",
			FontFamily:   "IBM Plex Sans Arabic",
			LineHeight:   1.4,
			AccentColor:  "#0F172A",
			PrimaryColor: "#0F172A",
		},
		Sections: []Section{
			{
				ID:            "section-summary-ar",
				ResumeID:      resumeID,
				Type:          SectionSummary,
				TitleOverride: "الملخص",
				Position:      0,
				Entries: []Entry{
					{
						ID:          "summary-entry-ar",
						SectionID:   "section-summary-ar",
						Position:    0,
						Title:       "الملخص",
						Description: "مهندسة برمجيات ذات خبرة تزيد عن 5 سنوات في بناء تطبيقات ويب قابلة للتوسع وقيادة فرق متعددة التخصصات. شغوفة بالكود النظيف وتجربة المستخدم وتوجيه المطورين المبتدئين.",
						Bullets:     []Bullet{},
					},
				},
			},
			{
				ID:            "section-experience-ar",
				ResumeID:      resumeID,
				Type:          SectionWorkExperience,
				TitleOverride: "الخبرة العملية",
				Position:      1,
				Entries: []Entry{
					{
						ID:           "exp-entry-1-ar",
						SectionID:    "section-experience-ar",
						Position:     0,
						Title:        "مهندسة برمجيات أولى",
						CompanyOrOrg: "شركة التقنية المتقدمة",
						Location:     "الرياض",
						StartDate:    "2022-03-01",
						IsCurrent:    true,
						Bullets: []Bullet{
							{ID: "bullet-exp-1-1-ar", EntryID: "exp-entry-1-ar", Position: 0, Text: "قيادة فريق من 5 مهندسين لإعادة بناء لوحة تحكم العملاء، مما أدى إلى تحسين سرعة التحميل بنسبة 40٪"},
							{ID: "bullet-exp-1-2-ar", EntryID: "exp-entry-1-ar", Position: 1, Text: "تصميم بنية خدمات مصغرة تتعامل مع أكثر من 10 ملايين طلب يومي بنسبة تشغيل 99.9٪"},
							{ID: "bullet-exp-1-3-ar", EntryID: "exp-entry-1-ar", Position: 2, Text: "توجيه 3 مطورين مبتدئين من خلال مراجعة الكود وجلسات البرمجة الثنائية"},
						},
					},
					{
						ID:           "exp-entry-2-ar",
						SectionID:    "section-experience-ar",
						Position:     1,
						Title:        "مهندسة برمجيات",
						CompanyOrOrg: "شركة الابتكار",
						Location:     "عن بُعد",
						StartDate:    "2020-01-01",
						EndDate:      "2022-02-01",
						Bullets: []Bullet{
							{ID: "bullet-exp-2-1-ar", EntryID: "exp-entry-2-ar", Position: 0, Text: "تطوير واجهات برمجة التطبيقات RESTful باستخدام Node.js و Express لخدمة أكثر من 50 ألف مستخدم نشط"},
							{ID: "bullet-exp-2-2-ar", EntryID: "exp-entry-2-ar", Position: 1, Text: "تنفيذ خطوط CI/CD مما أدى إلى تقليل وقت النشر بنسبة 60٪"},
						},
					},
				},
			},
		},
	}
}
