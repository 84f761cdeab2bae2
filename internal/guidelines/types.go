// Package guidelines implements the best-practice rule engine: a fixed
// ordered table of text-pattern rules evaluated against a code sample,
// producing findings, a best-effort rewritten copy, and a compliance
// score.
package guidelines

// Rule is one entry in the guideline table. Identity is its position
// (ID) in the fixed ordered list; rules are immutable and defined at
// process start.
//
// Detect is nil for reserved slots that carry an explanation but no
// wired detection. Rewrite is nil for suggestion-only rules.
type Rule struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Explanation string `json:"explanation"`

	Detect  func(code string) bool   `json:"-"`
	Rewrite func(code string) string `json:"-"`
}

// Wired reports whether the rule has detection logic attached.
func (r Rule) Wired() bool { return r.Detect != nil }

// Finding records that one rule matched the original input. At most
// one finding is produced per rule per evaluation.
type Finding struct {
	RuleID      int    `json:"rule_id"`
	Explanation string `json:"explanation"`
}

// Evaluation is the ephemeral result of a single review request.
type Evaluation struct {
	Supported bool      `json:"supported"`
	Findings  []Finding `json:"findings"`
	Improved  string    `json:"improved"`
	Score     int       `json:"score"`
}

// MsgUnsupportedLanguage is returned in place of suggestions for
// languages the rule engine does not cover.
const MsgUnsupportedLanguage = "Best practice checks are currently only available for Java."

// MsgNoViolations is the suggestion text when no rule triggers.
const MsgNoViolations = "No best practice violations found."
