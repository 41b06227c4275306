package service

import "strings"

// sanitizeUTF8 drops invalid UTF-8 sequences and surrounding blanks so that
// free-text fields are accepted by Postgres text columns.
func sanitizeUTF8(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, ""))
}
