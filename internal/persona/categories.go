package persona

import "strings"

// OccupationCategories is the fixed classification table for generated
// personas.
//
//nolint:gochecknoglobals // static data table
var OccupationCategories = []string{
	// Healthcare
	"Physician/Doctor",
	"Nurse/Nursing",
	"Mental Health",
	"Allied Health",
	// Education
	"K-12 Education",
	"Higher Education",
	"Training/Coaching",
	// Technology
	"Software/Engineering",
	"IT/Systems",
	"Data/Analytics",
	// Business
	"Finance/Banking",
	"Accounting",
	"Management/Executive",
	"Marketing/Advertising",
	"Human Resources",
	"Consulting",
	// Trades
	"Construction",
	"Electrical/Plumbing",
	"Automotive/Mechanical",
	// Creative
	"Visual Arts/Design",
	"Performing Arts",
	"Writing/Journalism",
	"Media/Entertainment",
	// Service
	"Food Service/Hospitality",
	"Retail/Sales",
	"Personal Services",
	"Customer Service",
	// Public Sector
	"Government/Civil Service",
	"Military/Defense",
	"Law Enforcement",
	"Legal/Law",
	// Science
	"Research/Academia",
	"Laboratory/Technical",
	"Environmental/Conservation",
	// Other
	"Agriculture/Farming",
	"Transportation/Logistics",
	"Manufacturing/Production",
	"Real Estate",
	"Non-profit/Social Work",
	"Religious/Ministry",
	"Student",
	"Retired",
	"Homemaker",
	"Unemployed",
	"Other",
}

// MatchOccupationCategory maps a model-produced category string to a known
// category, with a fuzzy substring fallback. Unmatchable input becomes
// "Other".
func MatchOccupationCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return "Other"
	}

	for _, cat := range OccupationCategories {
		if cat == category {
			return category
		}
	}

	lower := strings.ToLower(category)
	for _, cat := range OccupationCategories {
		catLower := strings.ToLower(cat)
		if strings.Contains(lower, catLower) || strings.Contains(catLower, lower) {
			return cat
		}
	}

	return "Other"
}
