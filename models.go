package main

// Project is a single portfolio entry. Images hold either remote URLs or
// data URIs; CreatedAt is epoch milliseconds, set once at creation.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"` // completed | underway | future
	Year        string   `json:"year,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Progress    *int     `json:"progress,omitempty"` // 0-100, only while underway
	Images      []string `json:"images"`
	Video       string   `json:"video,omitempty"`
	Tech        []string `json:"tech"`
	GitHub      string   `json:"github,omitempty"`
	Link        string   `json:"link,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
}

// Profile is the singleton hero/contact record, replaced wholesale on update.
type Profile struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Bio      string `json:"bio"`
	Email    string `json:"email,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// SkillGroup is one category on the skills section.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Seed content served until the first edit lands. Once the admin panel
// saves anything, the stored document wins.
func defaultProfile() Profile {
	return Profile{
		Title:    "Machine Learning Engineer",
		Subtitle: "Specializing in Quantitative Finance & Algorithmic Trading",
		Bio: "Focused on building intelligent systems for financial markets, developing machine " +
			"learning models for algorithmic trading, and analyzing complex financial data patterns.",
		Email:    "contact@example.com",
		GitHub:   "https://github.com/CoderNjoro",
		LinkedIn: "https://linkedin.com",
	}
}

func defaultSkills() []SkillGroup {
	return []SkillGroup{
		{Category: "ML & AI", Skills: []string{"TensorFlow", "PyTorch", "Scikit-learn", "Neural Networks", "Deep Learning"}},
		{Category: "Quantitative Finance", Skills: []string{"Algorithmic Trading", "Risk Analysis", "Portfolio Optimization", "Time Series Analysis"}},
		{Category: "Data & Tools", Skills: []string{"Python", "SQL", "Pandas", "NumPy", "AWS", "Docker"}},
	}
}
