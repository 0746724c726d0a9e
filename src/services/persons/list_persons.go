package persons

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func (s *PersonService) List(ctx context.Context, limit int, offset int) ([]entities.Person, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	persons, err := s.personRepository.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("PersonService.List - %w", err)
	}

	return persons, nil
}
