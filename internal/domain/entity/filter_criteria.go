package entity

// ConsultationMode values are the tokens written to the "consult" query parameter.
type ConsultationMode string

const (
	ConsultationAny      ConsultationMode = ""
	ConsultationVideo    ConsultationMode = "Video Consult"
	ConsultationInClinic ConsultationMode = "In Clinic"
)

// SortKey values are the tokens written to the "sort" query parameter.
type SortKey string

const (
	SortNone                 SortKey = ""
	SortFeeAscending         SortKey = "fees"
	SortExperienceDescending SortKey = "experience"
)

// FilterCriteria is the complete view state of the directory. It is passed by
// value; the URL query string is only ever derived from it.
type FilterCriteria struct {
	SearchText       string
	ConsultationMode ConsultationMode
	Specialties      []string
	SortKey          SortKey
}

// IsEmpty reports whether no criterion is active.
func (c FilterCriteria) IsEmpty() bool {
	return c.SearchText == "" &&
		c.ConsultationMode == ConsultationAny &&
		len(c.Specialties) == 0 &&
		c.SortKey == SortNone
}

// ToggleSpecialty selects name when it is not selected and deselects it otherwise.
func (c FilterCriteria) ToggleSpecialty(name string) FilterCriteria {
	next := make([]string, 0, len(c.Specialties)+1)
	found := false
	for _, s := range c.Specialties {
		if s == name {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found && name != "" {
		next = append(next, name)
	}
	c.Specialties = next
	return c
}

// ClearAll resets mode, sort and specialty selection. Search text is kept.
func (c FilterCriteria) ClearAll() FilterCriteria {
	c.ConsultationMode = ConsultationAny
	c.SortKey = SortNone
	c.Specialties = []string{}
	return c
}
