package sqb

import (
	"strings"

	"github.com/samber/lo"
)

// trimmed trims every entry and drops the ones left blank.
func trimmed(cols []string) []string {
	return lo.FilterMap(cols, func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return c, c != ""
	})
}
