package service

import (
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// UniqueSpecialties lists every specialty present in doctors, sorted and
// without duplicates. Nil or empty input yields an empty list.
func UniqueSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	names := []string{}

	for i := range doctors {
		for _, name := range doctors[i].Specialties {
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	slices.Sort(names)
	return names
}

// FilterSpecialtyOptions narrows a specialty list to the names containing
// text, ignoring case. Empty text keeps all of them.
func FilterSpecialtyOptions(names []string, text string) []string {
	text = strings.ToLower(text)
	options := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), text) {
			options = append(options, name)
		}
	}
	return options
}
