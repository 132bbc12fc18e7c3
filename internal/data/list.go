package data

import "strings"

const (
	sortDirAsc  = "ASC"
	sortDirDesc = "DESC"

	defaultListLimit = 50
)

// normalizeListWindow clamps paging parameters to sane values.
func normalizeListWindow(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// validateSortOptions returns a safe sort column and direction. Columns not in
// allowed fall back to created_at descending.
func validateSortOptions(sort, dir string, allowed map[string]string) (string, string) {
	sortCol := "created_at"
	sortDir := sortDirDesc

	if sort != "" {
		if validSort, ok := allowed[strings.ToLower(strings.TrimSpace(sort))]; ok {
			sortCol = validSort
		}
	}
	if dir != "" {
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "asc":
			sortDir = sortDirAsc
		case "desc":
			sortDir = sortDirDesc
		}
	}
	return sortCol, sortDir
}
