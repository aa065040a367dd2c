package types

// Requirements lists what a posting asks for. The sequences are externally
// supplied and read-only; empty sequences contribute nothing to scoring.
type Requirements struct {
	Skills    []string `json:"skills"`
	Education []string `json:"education"`
	Sectors   []string `json:"sectors"`
}

// PostingLocation is where an internship is based.
type PostingLocation struct {
	State string `json:"state"`
	City  string `json:"city,omitempty"`
}

// InternshipPosting is one opportunity record in the read-only catalog.
// Descriptive fields (title, company, stipend, duration, benefits) are
// passthrough data; only Requirements, Location.State and Posted feed the
// scorer.
type InternshipPosting struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Description  string          `json:"description,omitempty"`
	Location     PostingLocation `json:"location"`
	Stipend      string          `json:"stipend,omitempty"`
	Duration     string          `json:"duration,omitempty"`
	Type         string          `json:"type,omitempty"`
	Posted       string          `json:"posted,omitempty"`
	Benefits     []string        `json:"benefits,omitempty"`
	Requirements Requirements    `json:"requirements"`
}
