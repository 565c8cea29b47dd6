package organizer

import (
	"os"
	"strings"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// contentSampleSize bounds how much of a file is read for classification.
// Headers sit at the top of every export these sources produce.
const contentSampleSize = 500

// contentRule maps a content predicate to the category it produces.
// Rules are evaluated in fixed priority order; first match wins.
type contentRule struct {
	category model.Category
	match    func(content string) bool
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// contentRules classify by file content, which is authoritative: browsers
// rename files on collision, but headers survive. SOS is checked first
// because its exports also mention "fantasy".
var contentRules = []contentRule{
	{model.CategorySOS, func(c string) bool {
		return strings.Contains(c, "strength of schedule") ||
			(strings.Contains(c, "opp avg") && strings.Contains(c, "fpa"))
	}},
	{model.CategoryProjections, func(c string) bool {
		return containsAny(c, "projpts", "projown", "fantasy", "footballers")
	}},
	{model.CategoryDraftKings, func(c string) bool {
		return containsAny(c, "draftkings", "salary", "roster position")
	}},
	{model.CategoryOdds, func(c string) bool {
		return containsAny(c, "spread", "moneyline") ||
			(strings.Contains(c, "total") && containsAny(c, "odds", "line", "bet"))
	}},
}

// filenameRule mirrors contentRule for the filename fallback.
type filenameRule struct {
	category model.Category
	match    func(name string) bool
}

var filenameRules = []filenameRule{
	{model.CategorySOS, func(n string) bool {
		return strings.Contains(n, "strength of schedule") && strings.Contains(n, "fantasy")
	}},
	{model.CategoryProjections, func(n string) bool {
		return containsAny(n, "projection", "fantasy", "footballers")
	}},
	{model.CategoryDraftKings, func(n string) bool {
		return containsAny(n, "draftkings", "dk", "salaries")
	}},
	{model.CategoryOdds, func(n string) bool {
		return containsAny(n, "odds", "lines", "betting")
	}},
}

// Classify decides which category a file belongs to from its name and
// content sample. Content wins over filename; an empty sample (unreadable
// file) falls through to filename matching. Never errors: a file matching
// nothing is CategoryUnknown.
func Classify(filename, content string) model.Category {
	lowered := strings.ToLower(content)
	if lowered != "" {
		for _, rule := range contentRules {
			if rule.match(lowered) {
				return rule.category
			}
		}
	}

	name := strings.ToLower(filename)
	for _, rule := range filenameRules {
		if rule.match(name) {
			return rule.category
		}
	}
	return model.CategoryUnknown
}

// readContentSample reads the classification prefix of a file. Unreadable
// files yield an empty sample, which means "no content signal available".
func readContentSample(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, contentSampleSize)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return ""
	}
	return string(buf[:n])
}
