package service

import (
	"strings"

	"doctor-directory/internal/domain/entity"
)

const DefaultSuggestionLimit = 3

// SuggestDoctors returns up to limit doctors whose name contains query,
// ignoring case, in input order. An empty query suggests nothing.
func SuggestDoctors(doctors []entity.Doctor, query string, limit int) []entity.Doctor {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	suggestions := []entity.Doctor{}
	if query == "" {
		return suggestions
	}

	query = strings.ToLower(query)
	for i := range doctors {
		if len(suggestions) == limit {
			break
		}
		if strings.Contains(strings.ToLower(doctors[i].Name), query) {
			suggestions = append(suggestions, doctors[i])
		}
	}

	return suggestions
}
