package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ErrFetchFailed covers transport errors, non-2xx responses and bodies that
// are not a JSON array.
var ErrFetchFailed = errors.New("failed to fetch doctors")

type doctorRepository struct {
	url        string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewDoctorRepository(url string, httpClient *http.Client, log *logrus.Logger) domainRepo.DoctorRepository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &doctorRepository{
		url:        url,
		httpClient: httpClient,
		log:        log,
	}
}

func (r *doctorRepository) FetchAll(ctx context.Context) ([]entity.RawDoctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array: %v", ErrFetchFailed, err)
	}

	raws := make([]entity.RawDoctor, 0, len(items))
	for i, item := range items {
		var raw entity.RawDoctor
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			r.log.Warnf("Skipping doctor record %d: %+v", i, err)
			continue
		}
		raws = append(raws, raw)
	}

	r.log.WithField("count", len(raws)).Info("Fetched doctor records")
	return raws, nil
}
