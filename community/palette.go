// SPDX-License-Identifier: MIT

package community

import "sort"

// Palette is the fixed cycle of community colors.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
}

// Color returns the palette entry at position i, cycling past the end.
func Color(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// colorize maps each distinct community id, in ascending id order, to the
// next palette entry.
func colorize(assignment map[string]int) map[int]string {
	seen := make(map[int]struct{}, len(assignment))
	ids := make([]int, 0, len(assignment))
	for _, id := range assignment {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	colors := make(map[int]string, len(ids))
	for i, id := range ids {
		colors[id] = Color(i)
	}
	return colors
}
