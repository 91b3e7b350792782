package service

import (
	"cmp"
	"slices"

	"doctor-directory/internal/domain/entity"
)

// SortDoctors returns a stably sorted copy: fee ascending, experience
// descending, or unchanged order for SortNone. Ties keep their input order.
func SortDoctors(doctors []entity.Doctor, key entity.SortKey) []entity.Doctor {
	sorted := slices.Clone(doctors)
	if sorted == nil {
		sorted = []entity.Doctor{}
	}

	switch key {
	case entity.SortFeeAscending:
		slices.SortStableFunc(sorted, func(a, b entity.Doctor) int {
			return cmp.Compare(a.FeeAmount, b.FeeAmount)
		})
	case entity.SortExperienceDescending:
		slices.SortStableFunc(sorted, func(a, b entity.Doctor) int {
			return cmp.Compare(b.ExperienceYears, a.ExperienceYears)
		})
	}

	return sorted
}
