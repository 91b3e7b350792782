package converter

import (
	"net/url"
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCriteriaFromQuery(t *testing.T) {
	values, _ := url.ParseQuery("search=dr.+a&consult=Video+Consult&specialties=Dentist,,ENT,Dentist&sort=fees")

	criteria := CriteriaFromQuery(values)

	assert.Equal(t, entity.FilterCriteria{
		SearchText:       "dr. a",
		ConsultationMode: entity.ConsultationVideo,
		Specialties:      []string{"Dentist", "ENT"},
		SortKey:          entity.SortFeeAscending,
	}, criteria)
}

func TestCriteriaFromQuery_UnknownTokensAreInactive(t *testing.T) {
	values, _ := url.ParseQuery("consult=Phone&sort=rating")

	criteria := CriteriaFromQuery(values)

	assert.Equal(t, entity.ConsultationAny, criteria.ConsultationMode)
	assert.Equal(t, entity.SortNone, criteria.SortKey)
	assert.True(t, criteria.IsEmpty())
}

func TestCriteriaFromQuery_ToggleAndClear(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "toggle adds", query: "specialties=ENT&toggle=Dentist", want: "specialties=ENT%2CDentist"},
		{name: "toggle removes", query: "specialties=ENT,Dentist&toggle=ENT", want: "specialties=Dentist"},
		{name: "toggle last off", query: "specialties=ENT&toggle=ENT&sort=fees", want: "sort=fees"},
		{name: "clear keeps search", query: "search=rao&consult=In+Clinic&specialties=ENT&sort=experience&clear=true", want: "search=rao"},
		{name: "clear then toggle", query: "specialties=ENT&sort=fees&clear=1&toggle=Dentist", want: "specialties=Dentist"},
		{name: "clear false is ignored", query: "sort=fees&clear=no", want: "sort=fees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, CriteriaToQuery(CriteriaFromQuery(values)).Encode())
		})
	}
}

func TestCriteriaToQuery_OmitsInactive(t *testing.T) {
	assert.Empty(t, CriteriaToQuery(entity.FilterCriteria{}).Encode())

	values := CriteriaToQuery(entity.FilterCriteria{
		ConsultationMode: entity.ConsultationInClinic,
		Specialties:      []string{"", "General Physician"},
	})
	assert.Equal(t, "consult=In+Clinic&specialties=General+Physician", values.Encode())
}

func TestCriteriaQueryRoundTrip(t *testing.T) {
	cases := []entity.FilterCriteria{
		{Specialties: []string{}},
		{SearchText: "Sharma", Specialties: []string{}},
		{ConsultationMode: entity.ConsultationVideo, Specialties: []string{}, SortKey: entity.SortExperienceDescending},
		{
			SearchText:       "dr & co",
			ConsultationMode: entity.ConsultationInClinic,
			Specialties:      []string{"Ayurveda", "Dentist", "General Physician"},
			SortKey:          entity.SortFeeAscending,
		},
	}

	for _, want := range cases {
		encoded := CriteriaToQuery(want).Encode()
		values, err := url.ParseQuery(encoded)
		assert.NoError(t, err)
		assert.Equal(t, want, CriteriaFromQuery(values), "query %q", encoded)
	}
}

func TestCriteriaToResponse_NeverNilSpecialties(t *testing.T) {
	resp := CriteriaToResponse(entity.FilterCriteria{SortKey: entity.SortFeeAscending})
	assert.NotNil(t, resp.Specialties)
	assert.Equal(t, "fees", resp.Sort)
}
