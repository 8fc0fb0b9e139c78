package core

// LoadIssue describes a non-fatal problem encountered while reading startup data.
type LoadIssue struct {
	Stage   string
	Line    int
	Message string
}

// LoadSummary describes what was loaded into an engine.
type LoadSummary struct {
	Words     int
	BoardSize int
	Issues    []LoadIssue
}

// HasIssues reports whether any load issues were recorded.
func (s LoadSummary) HasIssues() bool {
	return len(s.Issues) > 0
}
