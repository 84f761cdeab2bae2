package guidelines

import (
	"fmt"
	"strings"

	"github.com/mshree/jreview/internal/logger"
)

// Engine evaluates the guideline table against code samples. It holds
// no mutable state: every Evaluate call reads the fixed table and
// produces a fresh result.
type Engine struct {
	rules []Rule
	log   *logger.Logger
}

// NewEngine creates an engine over the default guideline table.
func NewEngine() *Engine {
	return NewEngineWithRules(DefaultTable())
}

// NewEngineWithRules creates an engine over an explicit rule table.
func NewEngineWithRules(rules []Rule) *Engine {
	return &Engine{
		rules: rules,
		log:   logger.Default().WithPrefix("GUIDELINES"),
	}
}

// Rules returns the engine's rule table in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Evaluate runs every rule against the sample.
//
// Detection always reads the pristine original text, so no rule can
// see another rule's rewrite. Triggered rewrites apply sequentially to
// the accumulating improved text, so all edits stack in table order.
func (e *Engine) Evaluate(code, language string) *Evaluation {
	if language != "java" {
		return &Evaluation{
			Supported: false,
			Improved:  code,
			Score:     100,
		}
	}

	var findings []Finding
	improved := code

	for _, rule := range e.rules {
		if rule.Detect == nil || !rule.Detect(code) {
			continue
		}

		findings = append(findings, Finding{
			RuleID:      rule.ID,
			Explanation: rule.Explanation,
		})

		if rule.Rewrite != nil {
			improved = rule.Rewrite(improved)
		}
	}

	e.log.Debug("evaluated %d rules, %d triggered", len(e.rules), len(findings))

	return &Evaluation{
		Supported: true,
		Findings:  findings,
		Improved:  improved,
		Score:     ComplianceScore(len(findings), len(e.rules)),
	}
}

// FormatFindings renders an evaluation's findings as the suggestion
// text shown to the user, one line per triggered rule.
func FormatFindings(eval *Evaluation) string {
	if !eval.Supported {
		return MsgUnsupportedLanguage
	}
	if len(eval.Findings) == 0 {
		return MsgNoViolations
	}

	lines := make([]string, 0, len(eval.Findings))
	for _, f := range eval.Findings {
		lines = append(lines, fmt.Sprintf("Guideline %d. %s", f.RuleID, f.Explanation))
	}
	return strings.Join(lines, "\n")
}
