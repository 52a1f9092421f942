package calendar

import "strings"

// Category is one legend entry: events grouped by the first word of their
// title and their color.
type Category struct {
	Label string
	Color string
	Count int
}

// Categories groups events in order of first appearance.
func Categories(events []Event) []Category {
	type key struct{ label, color string }

	var out []Category
	seen := make(map[key]int)
	for _, e := range events {
		k := key{label: firstWord(e.Title), color: e.Color}
		if i, ok := seen[k]; ok {
			out[i].Count++
			continue
		}
		seen[k] = len(out)
		out = append(out, Category{Label: k.label, Color: k.color, Count: 1})
	}
	return out
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
