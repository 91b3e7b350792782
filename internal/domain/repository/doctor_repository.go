package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

// DoctorRepository reads the complete raw doctor list from its source.
type DoctorRepository interface {
	FetchAll(ctx context.Context) ([]entity.RawDoctor, error)
}
