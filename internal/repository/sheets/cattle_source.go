package sheets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/domain/models"
)

// Column order of the cattle register sheet.
const (
	colID = iota
	colType
	colNumber
	colName
	colGender
	colBreed
	colBirthDate
	colAcquisitionMethod
	colLossMethod
	colEntryDate
	colEndDate
	colComments
	colDeleted
)

const minCattleColumns = colEntryDate + 1

var errShortRow = errors.New("row has too few columns")

// CattleSource reads the cattle register from a sheet range.
type CattleSource struct {
	repo       Repository
	sheetRange string
	logger     *zap.Logger
}

// NewCattleSource builds a population source over the given range, e.g. "Cattle!A:M".
func NewCattleSource(repository Repository, sheetRange string, logger *zap.Logger) *CattleSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CattleSource{repo: repository, sheetRange: sheetRange, logger: logger}
}

// FetchPopulation returns every parsable, non-deleted animal row.
func (s *CattleSource) FetchPopulation(ctx context.Context) ([]models.Animal, error) {
	rows, err := s.repo.ReadRange(ctx, s.sheetRange)
	if err != nil {
		return nil, fmt.Errorf("load cattle range: %w", err)
	}

	animals := make([]models.Animal, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}

		animal, err := parseAnimalRow(row)
		if err != nil {
			s.logger.Debug("skip cattle row", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		if animal.Deleted {
			continue
		}
		animals = append(animals, animal)
	}

	return animals, nil
}

func isHeader(row []interface{}) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(cell(row, colID)), "id")
}

func parseAnimalRow(row []interface{}) (models.Animal, error) {
	if len(row) < minCattleColumns {
		return models.Animal{}, errShortRow
	}

	id := cell(row, colID)
	if id == "" {
		return models.Animal{}, fmt.Errorf("empty id")
	}

	birth, err := parseDate(cell(row, colBirthDate))
	if err != nil {
		return models.Animal{}, fmt.Errorf("birth_date: %w", err)
	}

	entry, err := parseDate(cell(row, colEntryDate))
	if err != nil {
		return models.Animal{}, fmt.Errorf("entry_date: %w", err)
	}

	animal := models.Animal{
		ID:                id,
		Type:              cell(row, colType),
		Number:            cell(row, colNumber),
		Name:              cell(row, colName),
		Gender:            models.Gender(cell(row, colGender)),
		Breed:             cell(row, colBreed),
		BirthDate:         birth,
		AcquisitionMethod: models.AcquisitionMethod(cell(row, colAcquisitionMethod)),
		LossMethod:        models.LossMethod(cell(row, colLossMethod)),
		EntryDate:         entry,
		Comments:          cell(row, colComments),
	}

	if raw := cell(row, colEndDate); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			return models.Animal{}, fmt.Errorf("end_date: %w", err)
		}
		animal.EndDate = &end
	}

	if raw := cell(row, colDeleted); raw != "" {
		deleted, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return models.Animal{}, fmt.Errorf("deleted: %w", err)
		}
		animal.Deleted = deleted
	}

	return animal, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return models.ParseDate(value)
}
