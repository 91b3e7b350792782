package converter

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// RawToDoctor maps one raw record of either shape to the canonical Doctor.
// It never fails: every missing or malformed field takes its zero default.
// The returned ID is empty when the source carried none.
func RawToDoctor(raw *entity.RawDoctor) entity.Doctor {
	if raw == nil {
		return entity.Doctor{Specialties: []string{}, Languages: []string{}}
	}

	availability := asMap(raw.Availability)

	photo := toText(raw.Photo)
	if photo == "" {
		photo = toText(raw.ProfileImage)
	}

	specialties := mergeNames(raw.Specialities, raw.Specialty)

	// cards headline the first specialty when no qualification is given
	qualification := toText(raw.Qualification)
	if qualification == "" && len(specialties) > 0 {
		qualification = specialties[0]
	}

	return entity.Doctor{
		ID:                   toText(raw.ID),
		Name:                 strings.TrimSpace(toText(raw.Name)),
		NameInitials:         toText(raw.NameInitials),
		Photo:                photo,
		Qualification:        qualification,
		Education:            toText(raw.Education),
		Introduction:         toText(raw.Introduction),
		FeeAmount:            ExtractAmount(raw.Fees),
		ExperienceYears:      ExtractAmount(raw.Experience),
		Specialties:          specialties,
		Languages:            mergeNames(raw.Languages),
		SupportsVideoConsult: cast.ToBool(raw.VideoConsult) || cast.ToBool(availability["videoConsult"]),
		SupportsInClinic:     cast.ToBool(raw.InClinic) || cast.ToBool(availability["inClinic"]),
		Clinic:               rawToClinic(raw.Clinic),
	}
}

// RawsToDoctors normalizes a whole record set. Records without a name are
// skipped. Missing or repeated ids are replaced with fresh uuids so that every
// id in the result is unique.
func RawsToDoctors(raws []entity.RawDoctor, log *logrus.Logger) []entity.Doctor {
	doctors := make([]entity.Doctor, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))

	for i := range raws {
		doctor := RawToDoctor(&raws[i])
		if doctor.Name == "" {
			log.Warnf("Skipping doctor record %d: missing name", i)
			continue
		}

		if _, dup := seen[doctor.ID]; doctor.ID == "" || dup {
			if doctor.ID != "" {
				log.Warnf("Doctor record %d repeats id %q, assigning a new one", i, doctor.ID)
			}
			doctor.ID = uuid.NewString()
		}
		seen[doctor.ID] = struct{}{}

		doctors = append(doctors, doctor)
	}

	return doctors
}

// ExtractAmount turns a fee or experience value into a non-negative integer.
// Numbers keep their integer part. Text keeps only its ASCII digits, so
// "₹ 500" is 500 and "13 Years of experience" is 13. Anything else is 0.
func ExtractAmount(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case string:
		return parseDigits(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return 0
		}
		return clampAmount(d)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return clampAmount(decimal.NewFromFloat(n))
	case float32:
		return ExtractAmount(float64(n))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return clampAmount(decimal.NewFromInt(cast.ToInt64(n)))
	default:
		return 0
	}
}

func clampAmount(d decimal.Decimal) int64 {
	d = d.Truncate(0)
	if d.IsNegative() {
		return 0
	}
	if d.GreaterThan(maxAmount) {
		return math.MaxInt64
	}
	return d.IntPart()
}

func parseDigits(s string) int64 {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		// only digits remain, so the one possible failure is overflow
		return math.MaxInt64
	}
	return n
}

// mergeNames flattens lists of strings or {name} objects into one list with
// empty entries dropped and duplicates removed, keeping first occurrences.
func mergeNames(lists ...any) []string {
	names := []string{}
	seen := make(map[string]struct{})

	for _, list := range lists {
		items, ok := list.([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			var name string
			switch it := item.(type) {
			case string:
				name = it
			case map[string]any:
				name = toText(it["name"])
			}
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

	return names
}

func rawToClinic(v any) entity.Clinic {
	clinic := asMap(v)
	address := asMap(clinic["address"])

	return entity.Clinic{
		Name:         toText(clinic["name"]),
		AddressLine1: toText(address["address_line1"]),
		Locality:     toText(address["locality"]),
		City:         toText(address["city"]),
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// toText accepts strings and numbers; objects, lists and booleans become "".
func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64, int, int64:
		return cast.ToString(t)
	default:
		return ""
	}
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		NameInitials:    doctor.NameInitials,
		Photo:           doctor.Photo,
		Qualification:   doctor.Qualification,
		Education:       doctor.Education,
		Introduction:    doctor.Introduction,
		FeeAmount:       doctor.FeeAmount,
		ExperienceYears: doctor.ExperienceYears,
		Specialties:     doctor.Specialties,
		Languages:       doctor.Languages,
		VideoConsult:    doctor.SupportsVideoConsult,
		InClinic:        doctor.SupportsInClinic,
	}
	if doctor.Clinic != (entity.Clinic{}) {
		resp.Clinic = &dto.ClinicResponse{
			Name:         doctor.Clinic.Name,
			AddressLine1: doctor.Clinic.AddressLine1,
			Locality:     doctor.Clinic.Locality,
			City:         doctor.Clinic.City,
		}
	}
	return resp
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
