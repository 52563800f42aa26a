package config

// FaresConfig locates the fare table and selects the method under analysis.
type FaresConfig struct {
	// CSVPath is the fare table file, relative to the working directory.
	CSVPath string `yaml:"csvPath" validate:"required"`
	// Method is the fare column to analyze, e.g. OCT_ADT_FARE.
	// Empty means every method discovered from the header.
	Method string `yaml:"method" validate:"omitempty"`
}

// ReportConfig controls report formatting.
type ReportConfig struct {
	// TopSavings is how many best pairs to list; 0 disables the listing.
	TopSavings int `yaml:"topSavings" validate:"gte=0"`
	// Currency is the symbol used for amounts; defaults to "$".
	Currency string `yaml:"currency"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Fares  FaresConfig  `yaml:"fares" validate:"required"`
	Report ReportConfig `yaml:"report"`
}
