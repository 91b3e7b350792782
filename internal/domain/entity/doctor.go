package entity

// Doctor is the canonical, fully defaulted doctor record. It is built once per
// fetch by the converter and never mutated afterwards.
type Doctor struct {
	ID                   string
	Name                 string
	NameInitials         string
	Photo                string
	Qualification        string
	Education            string
	Introduction         string
	FeeAmount            int64
	ExperienceYears      int64
	Specialties          []string
	Languages            []string
	SupportsVideoConsult bool
	SupportsInClinic     bool
	Clinic               Clinic
}

type Clinic struct {
	Name         string
	AddressLine1 string
	Locality     string
	City         string
}

// HasSpecialty reports whether name exactly matches one of the doctor's specialties.
func (d Doctor) HasSpecialty(name string) bool {
	for _, s := range d.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// RawDoctor mirrors both generations of the remote record shape. Fields whose
// type differs between sources are left untyped and resolved by the converter.
// Availability holds {videoConsult, inClinic}; Clinic holds
// {name, address: {locality, city, address_line1}}.
type RawDoctor struct {
	ID            any `json:"id"`
	Name          any `json:"name"`
	NameInitials  any `json:"name_initials"`
	Photo         any `json:"photo"`
	Qualification any `json:"qualification"`
	Education     any `json:"education"`
	Introduction  any `json:"doctor_introduction"`
	Fees          any `json:"fees"`
	Experience    any `json:"experience"`
	Languages     any `json:"languages"`
	Specialities  any `json:"specialities"`
	Specialty     any `json:"specialty"`
	VideoConsult  any `json:"video_consult"`
	InClinic      any `json:"in_clinic"`
	Availability  any `json:"availability"`
	Clinic        any `json:"clinic"`
	ProfileImage  any `json:"profileImage"`
}
