package notifier

import (
	"strings"
	"unicode/utf8"
)

// truncateString truncates s to maxLength characters with an ellipsis
func truncateString(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string([]rune(s)[:maxLength])
	}
	return string([]rune(s)[:maxLength-3]) + "..."
}

// joinCells joins column cells line by line. A missing cell renders as
// MissingCell and a column without lines as EmptyColumn.
func joinCells(cells []string) string {
	if len(cells) == 0 {
		return EmptyColumn
	}
	lines := make([]string, len(cells))
	for i, c := range cells {
		lines[i] = cellText(c)
	}
	return strings.Join(lines, "\n")
}

func cellText(c string) string {
	if c == "" {
		return MissingCell
	}
	return c
}

// splitByWidth cuts rows into consecutive groups whose joined columns stay
// within limit characters. A row wider than limit on its own forms a group
// alone.
func splitByWidth(rows [][]string, columns, limit int) [][][]string {
	var groups [][][]string
	var current [][]string
	widths := make([]int, columns)

	for _, row := range rows {
		if len(current) > 0 && !rowFits(widths, row, limit) {
			groups = append(groups, current)
			current = nil
			clear(widths)
		}
		for c, cell := range row {
			if len(current) > 0 {
				widths[c]++
			}
			widths[c] += utf8.RuneCountInString(cell)
		}
		current = append(current, row)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// rowFits reports whether appending row on a new line keeps every column
// within limit.
func rowFits(widths []int, row []string, limit int) bool {
	for c, cell := range row {
		if widths[c]+1+utf8.RuneCountInString(cell) > limit {
			return false
		}
	}
	return true
}
