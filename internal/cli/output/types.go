package output

// LintOutput is the JSON document written by `lint --format json`.
type LintOutput struct {
	RunID   string           `json:"run_id"`
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}

// LintSummary totals a lint run.
type LintSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	FilesFailed   int `json:"files_failed"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// LintFileResult holds the diagnostics for one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
	Failures    []RuleFailure    `json:"rule_failures,omitempty"`
}

// LintDiagnostic is one reported violation.
type LintDiagnostic struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	RuleID           string `json:"rule_id"`
	Severity         string `json:"severity"`
	Message          string `json:"message"`
	Line             int    `json:"line"`
	Column           int    `json:"column"`
	EndLine          int    `json:"end_line,omitempty"`
	EndColumn        int    `json:"end_column,omitempty"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}

// RuleFailure reports a rule that faulted on a file.
type RuleFailure struct {
	RuleID string `json:"rule_id"`
	Phase  string `json:"phase"`
	Error  string `json:"error"`
}

// RulesOutput is the JSON document written by `rules --format json`.
type RulesOutput struct {
	Rules []RuleDoc `json:"rules"`
	Count int       `json:"count"`
}

// RuleDoc documents one rule and the violations it reports.
type RuleDoc struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Group       string         `json:"group"`
	Description string         `json:"description"`
	ConfigKeys  []string       `json:"config_keys,omitempty"`
	Violations  []ViolationDoc `json:"violations"`
}

// ViolationDoc documents one violation code.
type ViolationDoc struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	Severity         string `json:"severity"`
	Message          string `json:"message"`
	Description      string `json:"description"`
	Rationale        string `json:"rationale,omitempty"`
	BadExample       string `json:"bad_example,omitempty"`
	GoodExample      string `json:"good_example,omitempty"`
	Fix              string `json:"fix,omitempty"`
	DocumentationURL string `json:"documentation_url"`
}
