package lint

// Config controls which rules and violations are enabled, their severity
// and the thresholds handed to rules.
type Config struct {
	// DisabledRules contains rule IDs whose checkers are never constructed
	DisabledRules map[string]bool

	// DisabledCodes contains violation codes that are dropped from results
	DisabledCodes map[Code]bool

	// Selected, when non-empty, restricts results to these codes
	Selected map[Code]bool

	// SeverityOverrides changes the default severity of violations
	SeverityOverrides map[Code]Severity

	// Options are the thresholds passed to every rule
	Options Options
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		DisabledCodes:     make(map[Code]bool),
		Selected:          make(map[Code]bool),
		SeverityOverrides: make(map[Code]Severity),
		Options:           DefaultOptions(),
	}
}

// IsDisabled returns true if the violation code should be skipped.
func (c *Config) IsDisabled(code Code) bool {
	if c == nil {
		return false
	}
	if len(c.Selected) > 0 && !c.Selected[code] {
		return true
	}
	return c.DisabledCodes[code]
}

// IsRuleDisabled returns true if the rule should not run at all.
// A rule is also skipped when every code it can emit is disabled.
func (c *Config) IsRuleDisabled(rule RuleDef) bool {
	if c == nil {
		return false
	}
	if c.DisabledRules[rule.ID] {
		return true
	}
	if len(rule.Violations) == 0 {
		return false
	}
	for _, v := range rule.Violations {
		if !c.IsDisabled(v.Code) {
			return false
		}
	}
	return true
}

// GetSeverity returns the severity for a code, applying any override.
func (c *Config) GetSeverity(code Code, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[code]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Disable disables a violation code.
func (c *Config) Disable(code Code) *Config {
	c.DisabledCodes[code] = true
	return c
}

// DisableRule disables a rule by ID.
func (c *Config) DisableRule(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// Select restricts results to the given codes.
func (c *Config) Select(codes ...Code) *Config {
	for _, code := range codes {
		c.Selected[code] = true
	}
	return c
}

// SetSeverity overrides the severity for a code.
func (c *Config) SetSeverity(code Code, severity Severity) *Config {
	c.SeverityOverrides[code] = severity
	return c
}

// WithOptions replaces the thresholds.
func (c *Config) WithOptions(opts Options) *Config {
	c.Options = opts
	return c
}
