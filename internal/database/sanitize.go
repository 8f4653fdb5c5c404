package database

import (
	"fmt"
	"strings"
)

// SanitizeColumnName sanitizes a column name for SQL compatibility.
// - Replaces invalid characters with underscores
// - Prefixes with "col_" if the name starts with a digit
// - Returns "unnamed" for empty names
func SanitizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unnamed"
	}

	result := make([]rune, 0, len(name))
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}

	sanitized := string(result)
	if sanitized != "" && sanitized[0] >= '0' && sanitized[0] <= '9' {
		sanitized = "col_" + sanitized
	}

	return sanitized
}

// ColumnNames sanitizes headers and disambiguates names that collide after
// sanitizing by appending _2, _3, ... SQLite compares identifiers case-insensitively.
func ColumnNames(headers []string) []string {
	names := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	for i, h := range headers {
		base := SanitizeColumnName(h)
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}
