package catalog

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped catalog files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a gzipped catalog CSV file and returns its medicines.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Medicine, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalog file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	meds, err := parseCatalog(ctx, gzipReader, l.logger)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("medicines_loaded", len(meds)).
		Msg("catalog file loaded successfully")

	return meds, nil
}

// parseCatalog reads medicine records from CSV. Malformed lines are
// logged and skipped so one bad row cannot sink a whole import.
func parseCatalog(ctx context.Context, r io.Reader, logger zerolog.Logger) ([]model.Medicine, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var meds []model.Medicine
	lineNo := 0
	for {
		// Check context cancellation periodically
		if lineNo%10_000 == 0 {
			select {
			case <-ctx.Done():
				logger.Warn().Msg("catalog loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lineNo++

		med, ok := parseRecord(record)
		if !ok {
			logger.Warn().
				Int("line", lineNo).
				Strs("record", record).
				Msg("skipping malformed catalog line")
			continue
		}

		meds = append(meds, med)
	}

	return meds, nil
}

func parseRecord(record []string) (model.Medicine, bool) {
	if len(record) != 6 {
		return model.Medicine{}, false
	}

	id, err := uuid.Parse(strings.TrimSpace(record[0]))
	if err != nil {
		return model.Medicine{}, false
	}

	name := strings.TrimSpace(record[1])
	if name == "" {
		return model.Medicine{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil || price < 0 {
		return model.Medicine{}, false
	}

	return model.Medicine{
		ID:          id,
		Name:        name,
		Type:        strings.TrimSpace(record[2]),
		CompanyName: strings.TrimSpace(record[3]),
		Composition: strings.TrimSpace(record[4]),
		Price:       price,
	}, true
}
