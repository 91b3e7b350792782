package converter

import (
	"net/url"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/spf13/cast"
)

// Query parameter names shared with the browser client.
const (
	ParamSearch      = "search"
	ParamConsult     = "consult"
	ParamSpecialties = "specialties"
	ParamSort        = "sort"

	// Edit parameters. They are applied on top of the criteria above and are
	// never written back by CriteriaToQuery.
	ParamToggle = "toggle"
	ParamClear  = "clear"
)

// QueryToRequest lifts raw query values into the DTO that gets validated.
func QueryToRequest(values url.Values) *dto.DoctorQueryRequest {
	return &dto.DoctorQueryRequest{
		Search:      values.Get(ParamSearch),
		Consult:     values.Get(ParamConsult),
		Specialties: splitSpecialties(values.Get(ParamSpecialties)),
		Sort:        values.Get(ParamSort),
		Toggle:      values.Get(ParamToggle),
		Clear:       cast.ToBool(values.Get(ParamClear)),
	}
}

// RequestToCriteria maps a validated request onto FilterCriteria. Unknown mode
// or sort tokens fall back to "any" and "none". A clear request resets
// everything but the search text; a toggle is applied after it.
func RequestToCriteria(req *dto.DoctorQueryRequest) entity.FilterCriteria {
	criteria := entity.FilterCriteria{
		SearchText:  req.Search,
		Specialties: dedupe(req.Specialties),
	}

	switch mode := entity.ConsultationMode(req.Consult); mode {
	case entity.ConsultationVideo, entity.ConsultationInClinic:
		criteria.ConsultationMode = mode
	}

	switch key := entity.SortKey(req.Sort); key {
	case entity.SortFeeAscending, entity.SortExperienceDescending:
		criteria.SortKey = key
	}

	if req.Clear {
		criteria = criteria.ClearAll()
	}
	if req.Toggle != "" {
		criteria = criteria.ToggleSpecialty(req.Toggle)
	}

	return criteria
}

// CriteriaFromQuery is the query-string to criteria direction of the URL state.
func CriteriaFromQuery(values url.Values) entity.FilterCriteria {
	return RequestToCriteria(QueryToRequest(values))
}

// CriteriaToQuery is the criteria to query-string direction. Inactive criteria
// are omitted, so empty criteria encode to no parameters at all.
func CriteriaToQuery(criteria entity.FilterCriteria) url.Values {
	values := url.Values{}

	if criteria.SearchText != "" {
		values.Set(ParamSearch, criteria.SearchText)
	}
	if criteria.ConsultationMode != entity.ConsultationAny {
		values.Set(ParamConsult, string(criteria.ConsultationMode))
	}
	if specialties := dedupe(criteria.Specialties); len(specialties) > 0 {
		values.Set(ParamSpecialties, strings.Join(specialties, ","))
	}
	if criteria.SortKey != entity.SortNone {
		values.Set(ParamSort, string(criteria.SortKey))
	}

	return values
}

// CriteriaToResponse echoes the criteria in token form.
func CriteriaToResponse(criteria entity.FilterCriteria) dto.CriteriaResponse {
	specialties := criteria.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return dto.CriteriaResponse{
		Search:      criteria.SearchText,
		Consult:     string(criteria.ConsultationMode),
		Specialties: specialties,
		Sort:        string(criteria.SortKey),
	}
}

func splitSpecialties(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return dedupe(strings.Split(joined, ","))
}

func dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
