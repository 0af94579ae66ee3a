package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopChecker struct{}

func (nopChecker) Register(*Dispatch) {}

func newNop(Options) Checker { return nopChecker{} }

func TestRegistry_Register(t *testing.T) {
	r := newRegistry()

	first := RuleDef{
		ID:         "b.first",
		Group:      "b",
		Violations: []ViolationDef{{Code: 100}, {Code: 101}},
		New:        newNop,
	}
	second := RuleDef{
		ID:         "a.second",
		Group:      "a",
		Violations: []ViolationDef{{Code: 200}},
		New:        newNop,
	}
	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	rules := r.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "a.second", rules[0].ID)
	assert.Equal(t, "b.first", rules[1].ID)
	assert.Equal(t, []Code{100, 101}, rules[1].Codes())

	t.Run("code claimed by another rule", func(t *testing.T) {
		err := r.Register(RuleDef{ID: "c.third", Violations: []ViolationDef{{Code: 101}}, New: newNop})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "b.first")
	})

	t.Run("re-registering a rule replaces its codes", func(t *testing.T) {
		require.NoError(t, r.Register(RuleDef{ID: "b.first", Violations: []ViolationDef{{Code: 102}}, New: newNop}))
		_, claimed := r.codes[101]
		assert.False(t, claimed)
		assert.Equal(t, "b.first", r.codes[102].ruleID)
	})

	t.Run("missing constructor", func(t *testing.T) {
		require.Error(t, r.Register(RuleDef{ID: "d.fourth"}))
	})
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in   string
		want Code
		ok   bool
	}{
		{in: "223", want: 223, ok: true},
		{in: "WPS601", want: 601, ok: true},
		{in: " wps202 ", want: 202, ok: true},
		{in: "WPS", ok: false},
		{in: "-1", ok: false},
		{in: "abc", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCode(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
	assert.Equal(t, "WPS223", Code(223).String())
}

func TestViolationDef_Format(t *testing.T) {
	def := ViolationDef{Template: "Found too many `elif` branches: {0} > {1}"}
	assert.Equal(t, "Found too many `elif` branches: 5 > 3", def.Format("5", 3, true))

	shadow := ViolationDef{Template: "Found shadowed class attribute: {0}"}
	assert.Equal(t, "Found shadowed class attribute: _x", shadow.Format("_x", 0, false))
}

func TestOptions_Apply(t *testing.T) {
	opts := DefaultOptions().Apply(map[string]any{
		OptMaxDecorators:    float64(2),
		OptMaxTypeParams:    int64(9),
		OptMaxModuleMembers: "ten",
	})
	assert.Equal(t, 2, opts.MaxDecorators)
	assert.Equal(t, 9, opts.MaxTypeParams)
	assert.Equal(t, 7, opts.MaxModuleMembers, "unparseable values keep the default")
	assert.Equal(t, DefaultOptions().MaxTryBodyLength, opts.MaxTryBodyLength)
	assert.Equal(t, 2, opts.Map()[OptMaxDecorators])
}

func TestSeverity(t *testing.T) {
	sev, ok := ParseSeverity("WARN")
	assert.True(t, ok)
	assert.Equal(t, SeverityWarning, sev)

	_, ok = ParseSeverity("fatal")
	assert.False(t, ok)

	assert.True(t, SeverityError.AtLeast(SeverityWarning))
	assert.False(t, SeverityHint.AtLeast(SeverityInfo))

	text, err := SeverityInfo.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "info", string(text))
}

func TestConfig_NilSafe(t *testing.T) {
	var c *Config
	assert.False(t, c.IsDisabled(223))
	assert.False(t, c.IsRuleDisabled(RuleDef{ID: "x"}))
	assert.Equal(t, SeverityHint, c.GetSeverity(223, SeverityHint))
}
