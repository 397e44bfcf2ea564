package config

// DashboardConfig holds dashboard service configuration
type DashboardConfig struct {
	DefaultOwner    string
	DefaultRepo     string
	TopContributors int
}

// DefaultDashboardConfig returns the default dashboard configuration
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		DefaultOwner:    "pandas-dev",
		DefaultRepo:     "pandas",
		TopContributors: 10,
	}
}
