package domain

// KnowledgeRecord is one FAQ-style entry in the static knowledge source.
// Records are loaded once at startup and never mutated afterwards.
type KnowledgeRecord struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Tags      []string `json:"tags"`
	SourceURL string   `json:"source_url"`
	Type      string   `json:"type"`
}
