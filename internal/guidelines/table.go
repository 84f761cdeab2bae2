package guidelines

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/guidelines.yaml
var embeddedGuidelines []byte

// guidelineDoc is the shape of the embedded guideline document.
type guidelineDoc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Guidelines  []struct {
		ID          int    `yaml:"id"`
		Name        string `yaml:"name"`
		Explanation string `yaml:"explanation"`
	} `yaml:"guidelines"`
}

// Detection patterns. Detection always runs against the original,
// unmodified sample; rewrites apply to the accumulating improved text.
var (
	capsTokenPattern = regexp.MustCompile(`\b[A-Z_]+\b`)

	indexedLoopPattern = regexp.MustCompile(`for\s*\(.*:.*\)`)
	// Greedy multi-line match; wrong on nested braces. Best-effort only.
	indexedLoopRewrite = regexp.MustCompile(`(?s)for\s*\((.*):(.*)\)\s*\{(.*?)\}`)

	nullCompareRewrite = regexp.MustCompile(`(\w+)\s*==\s*null`)

	finalListFieldPattern = regexp.MustCompile(`private\s+final\s+List<\w+>\s+\w+;`)

	genericCatchPattern = regexp.MustCompile(`catch\s*\(\s*Exception\s+`)

	publicMethodPattern = regexp.MustCompile(`public\s+\w+\s+\w+\(`)
	publicMethodRewrite = regexp.MustCompile(`public\s+(\w+\s+\w+\()`)
)

// detection pairs a rule ID with its wired behavior. Slots absent from
// this map are reserved: explanation only, never fire.
type detection struct {
	detect  func(code string) bool
	rewrite func(code string) string
}

var detections = map[int]detection{
	1: {
		detect: capsTokenPattern.MatchString,
	},
	2: {
		detect: indexedLoopPattern.MatchString,
		rewrite: func(code string) string {
			return indexedLoopRewrite.ReplaceAllString(code, `${2}.stream().forEach(${1} -> {${3}})`)
		},
	},
	3: {
		detect: func(code string) bool { return strings.Contains(code, "== null") },
		rewrite: func(code string) string {
			return nullCompareRewrite.ReplaceAllString(code, `Optional.ofNullable(${1}).isEmpty()`)
		},
	},
	4: {
		detect: finalListFieldPattern.MatchString,
	},
	5: {
		detect: genericCatchPattern.MatchString,
	},
	6: {
		detect: func(code string) bool { return strings.Contains(code, "Vector<") },
	},
	7: {
		detect: publicMethodPattern.MatchString,
		rewrite: func(code string) string {
			return publicMethodRewrite.ReplaceAllString(code, `private ${1}`)
		},
	},
}

// defaultTable is the fixed ordered rule table, built once at process
// start from the embedded guideline document.
var defaultTable = mustLoadTable()

func mustLoadTable() []Rule {
	var doc guidelineDoc
	if err := yaml.Unmarshal(embeddedGuidelines, &doc); err != nil {
		panic(fmt.Sprintf("guidelines: parsing embedded table: %v", err))
	}

	table := make([]Rule, 0, len(doc.Guidelines))
	for _, g := range doc.Guidelines {
		rule := Rule{
			ID:          g.ID,
			Name:        g.Name,
			Explanation: g.Explanation,
		}
		if d, ok := detections[g.ID]; ok {
			rule.Detect = d.detect
			rule.Rewrite = d.rewrite
		}
		table = append(table, rule)
	}
	return table
}

// DefaultTable returns a copy of the fixed guideline table in
// evaluation order.
func DefaultTable() []Rule {
	out := make([]Rule, len(defaultTable))
	copy(out, defaultTable)
	return out
}
