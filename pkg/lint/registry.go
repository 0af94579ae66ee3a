package lint

import (
	"fmt"
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all rules.
var globalRegistry = newRegistry()

// Registry stores registered rules and indexes their violation codes.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
	codes map[Code]codeEntry
}

type codeEntry struct {
	violation ViolationDef
	ruleID    string
}

func newRegistry() *Registry {
	return &Registry{
		rules: make(map[string]RuleDef),
		codes: make(map[Code]codeEntry),
	}
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
//
// Register panics if the rule has no constructor or if one of its codes is
// already claimed by another rule: codes are stable identifiers.
func Register(rule RuleDef) {
	if err := globalRegistry.Register(rule); err != nil {
		panic(err)
	}
}

// Register adds a rule to r.
func (r *Registry) Register(rule RuleDef) error {
	if rule.ID == "" || rule.New == nil {
		return fmt.Errorf("rule %q: missing ID or constructor", rule.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range rule.Violations {
		if prev, ok := r.codes[v.Code]; ok && prev.ruleID != rule.ID {
			return fmt.Errorf("rule %q: code %s already registered by %q", rule.ID, v.Code, prev.ruleID)
		}
	}
	if old, ok := r.rules[rule.ID]; ok {
		for _, v := range old.Violations {
			delete(r.codes, v.Code)
		}
	}
	r.rules[rule.ID] = rule
	for _, v := range rule.Violations {
		r.codes[v.Code] = codeEntry{violation: v, ruleID: rule.ID}
	}
	return nil
}

// Rules returns all rules in r sorted by ID.
func (r *Registry) Rules() []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]RuleDef, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// AllRules returns all registered rules sorted by ID.
func AllRules() []RuleDef {
	return globalRegistry.Rules()
}

// GetRule returns a rule by its ID.
func GetRule(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// RulesByGroup returns all rules in a specific group, sorted by ID.
func RulesByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range AllRules() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Groups returns the sorted set of rule groups.
func Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, rule := range AllRules() {
		if !seen[rule.Group] {
			seen[rule.Group] = true
			groups = append(groups, rule.Group)
		}
	}
	sort.Strings(groups)
	return groups
}

// LookupCode returns the violation definition for code and the ID of the
// rule emitting it.
func LookupCode(code Code) (ViolationDef, string, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	entry, ok := globalRegistry.codes[code]
	return entry.violation, entry.ruleID, ok
}

// AllViolations returns every registered violation definition sorted by code.
func AllViolations() []ViolationDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]ViolationDef, 0, len(globalRegistry.codes))
	for _, entry := range globalRegistry.codes {
		defs = append(defs, entry.violation)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}
