package dto

// TestMenuResponse is the diagnostic payload of GET /api/test-menu: catalog
// stats plus a live completion-service round trip.
type TestMenuResponse struct {
	Success       bool     `json:"success"`
	MenuLoaded    bool     `json:"menuLoaded"`
	Categories    []string `json:"categories"`
	TotalProducts int      `json:"totalProducts"`
	PromptLength  int      `json:"promptLength"`
	TestResponse  string   `json:"testResponse"`
}
