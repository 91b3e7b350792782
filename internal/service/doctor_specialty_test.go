package service

import (
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestUniqueSpecialties(t *testing.T) {
	got := UniqueSpecialties(directory())
	assert.Equal(t, []string{"Dentist", "ENT", "General Physician"}, got)

	assert.Equal(t, []string{}, UniqueSpecialties(nil))
	assert.Equal(t, []string{}, UniqueSpecialties([]entity.Doctor{{Name: "x"}}))
}

func TestFilterSpecialtyOptions(t *testing.T) {
	all := []string{"Dentist", "ENT", "General Physician"}

	assert.Equal(t, all, FilterSpecialtyOptions(all, ""))
	assert.Equal(t, []string{"Dentist", "ENT"}, FilterSpecialtyOptions(all, "ent"))
	assert.Empty(t, FilterSpecialtyOptions(all, "cardio"))
}
