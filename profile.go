package finboard

// UserProfile is the onboarding capture. It is stored verbatim by the store,
// with no validation: the wizard owns the input quality, and the budget stays
// the raw form string the user typed.
type UserProfile struct {
	Name            string   `json:"name"`
	MonthlyBudget   string   `json:"monthlyBudget"`
	Experience      string   `json:"investmentExperience"`
	RiskTolerance   string   `json:"riskTolerance"`
	Goals           []string `json:"goals"`
	PreferredAssets []string `json:"preferredAssets"`
}
