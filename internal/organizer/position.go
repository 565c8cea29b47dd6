package organizer

import (
	"strings"

	"github.com/gridiron-tools/dfs-cli/internal/model"
)

// ExtractPosition pulls the roster position out of a strength-of-schedule
// filename. Several historical naming conventions appear in the wild: a
// SOS_QB_ prefix token, a bare _QB_ token, and for the defense unit the
// slash form SOS_D/ST_, the _DST_ token, or the URL-encoded D%2FST.
// Returns empty when no marker is recognized; such files are organized
// under the bare category.
func ExtractPosition(filename string) model.Position {
	upper := strings.ToUpper(filename)

	for _, pos := range []model.Position{model.PositionQB, model.PositionRB, model.PositionWR, model.PositionTE} {
		token := string(pos)
		if strings.Contains(upper, "SOS_"+token+"_") || strings.Contains(upper, "_"+token+"_") {
			return pos
		}
	}

	if strings.Contains(upper, "SOS_D/ST_") ||
		strings.Contains(upper, "_DST_") ||
		strings.Contains(upper, "D%2FST") {
		return model.PositionDST
	}

	return ""
}

// baseName returns the slug used for a file's timestamped and latest
// names: the category slug, refined to sos-qb style when a position is
// tagged.
func baseName(category model.Category, position model.Position) string {
	if category == model.CategorySOS && position != "" {
		return "sos-" + strings.ToLower(string(position))
	}
	return category.Slug()
}
