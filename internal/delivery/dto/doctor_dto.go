package dto

import "time"

// Request DTOs

type DoctorQueryRequest struct {
	Search      string   `query:"search" validate:"omitempty,max=100"`
	Consult     string   `query:"consult" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
	Specialties []string `query:"specialties" validate:"omitempty,max=50,dive,max=100"`
	Sort        string   `query:"sort" validate:"omitempty,oneof=fees experience"`
	Toggle      string   `query:"toggle" validate:"omitempty,max=100"`
	Clear       bool     `query:"clear"`
}

type SuggestionQueryRequest struct {
	Query string `query:"q" validate:"omitempty,max=100"`
	Limit int    `query:"limit" validate:"gte=0,lte=20"`
}

type SpecialtyQueryRequest struct {
	Query string `query:"q" validate:"omitempty,max=100"`
}

// Response DTOs

type ClinicResponse struct {
	Name         string `json:"name,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	Locality     string `json:"locality,omitempty"`
	City         string `json:"city,omitempty"`
}

type DoctorResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	NameInitials    string          `json:"name_initials,omitempty"`
	Photo           string          `json:"photo,omitempty"`
	Qualification   string          `json:"qualification,omitempty"`
	Education       string          `json:"education,omitempty"`
	Introduction    string          `json:"doctor_introduction,omitempty"`
	FeeAmount       int64           `json:"fee_amount"`
	ExperienceYears int64           `json:"experience_years"`
	Specialties     []string        `json:"specialties"`
	Languages       []string        `json:"languages"`
	VideoConsult    bool            `json:"video_consult"`
	InClinic        bool            `json:"in_clinic"`
	Clinic          *ClinicResponse `json:"clinic,omitempty"`
}

type CriteriaResponse struct {
	Search      string   `json:"search"`
	Consult     string   `json:"consult"`
	Specialties []string `json:"specialties"`
	Sort        string   `json:"sort"`
}

type DoctorListResponse struct {
	Doctors  []DoctorResponse `json:"doctors"`
	Total    int              `json:"total"`
	Criteria CriteriaResponse `json:"criteria"`
	Query    string           `json:"query"`
}

type SuggestionResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Query       string   `json:"query"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type DirectoryStatusResponse struct {
	State    string     `json:"state"`
	Version  string     `json:"version,omitempty"`
	Total    int        `json:"total"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Error    string     `json:"error,omitempty"`
}
