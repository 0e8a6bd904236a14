package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusLabel turns a stored status value into display text:
// "audit_assigned" -> "Audit Assigned".
func StatusLabel(status string) string {
	if status == "" {
		return ""
	}
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(status))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
