package service

import (
	"strings"

	"doctor-directory/internal/domain/entity"
)

// FilterDoctors keeps the doctors that pass every active criterion, in input
// order. Search is a case-insensitive substring match on the name, the mode
// must be supported, and at least one selected specialty must match exactly.
// Inactive criteria keep everything. The input slice is not modified.
func FilterDoctors(doctors []entity.Doctor, criteria entity.FilterCriteria) []entity.Doctor {
	query := strings.ToLower(criteria.SearchText)

	filtered := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		d := &doctors[i]
		if query != "" && !strings.Contains(strings.ToLower(d.Name), query) {
			continue
		}
		if !supportsMode(d, criteria.ConsultationMode) {
			continue
		}
		if len(criteria.Specialties) > 0 && !hasAnySpecialty(d, criteria.Specialties) {
			continue
		}
		filtered = append(filtered, *d)
	}

	return filtered
}

// ApplyCriteria produces the display list: filter, then sort.
func ApplyCriteria(doctors []entity.Doctor, criteria entity.FilterCriteria) []entity.Doctor {
	return SortDoctors(FilterDoctors(doctors, criteria), criteria.SortKey)
}

func supportsMode(d *entity.Doctor, mode entity.ConsultationMode) bool {
	switch mode {
	case entity.ConsultationVideo:
		return d.SupportsVideoConsult
	case entity.ConsultationInClinic:
		return d.SupportsInClinic
	default:
		return true
	}
}

func hasAnySpecialty(d *entity.Doctor, selected []string) bool {
	for _, name := range selected {
		if d.HasSpecialty(name) {
			return true
		}
	}
	return false
}
