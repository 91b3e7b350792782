package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDirectoryLoading     = errors.New("doctor directory is loading")
	ErrDirectoryUnavailable = errors.New("doctor directory is unavailable")
)

// DirectoryState is the load lifecycle of the doctor set.
type DirectoryState string

const (
	StateLoading DirectoryState = "loading"
	StateReady   DirectoryState = "ready"
	StateFailed  DirectoryState = "failed"
)

type DoctorDirectoryUsecase interface {
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
	Search(ctx context.Context, criteria entity.FilterCriteria) (*dto.DoctorListResponse, error)
	Suggest(ctx context.Context, query string, limit int) ([]dto.SuggestionResponse, error)
	Specialties(ctx context.Context, text string) (*dto.SpecialtyListResponse, error)
	Status() *dto.DirectoryStatusResponse
	Version() string
}

// snapshot is one loaded doctor set. It is never modified after it is stored.
type snapshot struct {
	state       DirectoryState
	version     string
	doctors     []entity.Doctor
	specialties []string
	loadedAt    time.Time
	err         error
}

type doctorDirectoryUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	suggestionLimit int

	current atomic.Pointer[snapshot]
	loading atomic.Bool
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	suggestionLimit int,
) DoctorDirectoryUsecase {
	u := &doctorDirectoryUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		suggestionLimit: suggestionLimit,
	}
	u.current.Store(&snapshot{state: StateLoading})
	return u
}

func (u *doctorDirectoryUsecase) Load(ctx context.Context) error {
	if !u.loading.CompareAndSwap(false, true) {
		return ErrDirectoryLoading
	}
	defer u.loading.Store(false)

	start := time.Now()
	raws, err := u.doctorRepo.FetchAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		u.current.Store(&snapshot{state: StateFailed, err: err})
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	doctors := converter.RawsToDoctors(raws, u.log)
	next := &snapshot{
		state:       StateReady,
		version:     uuid.NewString(),
		doctors:     doctors,
		specialties: service.UniqueSpecialties(doctors),
		loadedAt:    time.Now().UTC(),
	}
	u.current.Store(next)

	u.log.WithFields(logrus.Fields{
		"doctors":     len(next.doctors),
		"specialties": len(next.specialties),
		"version":     next.version,
		"duration":    time.Since(start).String(),
	}).Info("Doctor directory loaded")

	return nil
}

// Reload refetches the whole set. The previous snapshot stays visible until
// the fetch completes; on failure the directory moves to the failed state.
func (u *doctorDirectoryUsecase) Reload(ctx context.Context) error {
	if u.loading.Load() {
		return ErrDirectoryLoading
	}
	u.log.Info("Reloading doctor directory")
	return u.Load(ctx)
}

func (u *doctorDirectoryUsecase) Search(ctx context.Context, criteria entity.FilterCriteria) (*dto.DoctorListResponse, error) {
	snap, err := u.ready()
	if err != nil {
		return nil, err
	}

	doctors := service.ApplyCriteria(snap.doctors, criteria)

	return &dto.DoctorListResponse{
		Doctors:  converter.DoctorsToResponses(doctors),
		Total:    len(doctors),
		Criteria: converter.CriteriaToResponse(criteria),
		Query:    converter.CriteriaToQuery(criteria).Encode(),
	}, nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, query string, limit int) ([]dto.SuggestionResponse, error) {
	snap, err := u.ready()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = u.suggestionLimit
	}

	doctors := service.SuggestDoctors(snap.doctors, query, limit)
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, d := range doctors {
		suggestions[i] = dto.SuggestionResponse{
			ID:          d.ID,
			Name:        d.Name,
			Specialties: d.Specialties,
			Query:       converter.CriteriaToQuery(entity.FilterCriteria{SearchText: d.Name}).Encode(),
		}
	}
	return suggestions, nil
}

func (u *doctorDirectoryUsecase) Specialties(ctx context.Context, text string) (*dto.SpecialtyListResponse, error) {
	snap, err := u.ready()
	if err != nil {
		return nil, err
	}

	names := service.FilterSpecialtyOptions(snap.specialties, text)
	return &dto.SpecialtyListResponse{
		Specialties: names,
		Total:       len(names),
	}, nil
}

func (u *doctorDirectoryUsecase) Status() *dto.DirectoryStatusResponse {
	snap := u.current.Load()
	state := snap.state
	if u.loading.Load() {
		state = StateLoading
	}

	status := &dto.DirectoryStatusResponse{
		State:   string(state),
		Version: snap.version,
		Total:   len(snap.doctors),
	}
	if !snap.loadedAt.IsZero() {
		loadedAt := snap.loadedAt
		status.LoadedAt = &loadedAt
	}
	if snap.err != nil {
		status.Error = snap.err.Error()
	}
	return status
}

func (u *doctorDirectoryUsecase) Version() string {
	return u.current.Load().version
}

func (u *doctorDirectoryUsecase) ready() (*snapshot, error) {
	snap := u.current.Load()
	switch snap.state {
	case StateReady:
		return snap, nil
	case StateFailed:
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, snap.err)
	default:
		return nil, ErrDirectoryLoading
	}
}
