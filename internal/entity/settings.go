package entity

// Settings configures the upstream chat-completions endpoint used for
// scoring, persona chat and scenario generation. It is stored as a single
// blob and overwritten wholesale on save.
type Settings struct {
	Endpoint string `json:"apiEndpoint"`
	APIKey   string `json:"apiKey"`
	Model    string `json:"model"`
}

// Merge fills empty fields from defaults. Stored values win; only fields the
// stored blob never set fall back.
func (s Settings) Merge(defaults Settings) Settings {
	if s.Endpoint == "" {
		s.Endpoint = defaults.Endpoint
	}
	if s.APIKey == "" {
		s.APIKey = defaults.APIKey
	}
	if s.Model == "" {
		s.Model = defaults.Model
	}
	return s
}
