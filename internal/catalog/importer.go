package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"medimart/internal/repository"

	"github.com/rs/zerolog"
)

// Importer loads catalog files and upserts their medicines into the
// database. Imports run at startup and are idempotent: a medicine that
// already exists is replaced by its file version.
type Importer struct {
	loader       Loader
	medicineRepo repository.MedicineRepository
	logger       zerolog.Logger
}

// NewImporter creates a new catalog importer.
func NewImporter(loader Loader, medicineRepo repository.MedicineRepository, logger zerolog.Logger) *Importer {
	return &Importer{
		loader:       loader,
		medicineRepo: medicineRepo,
		logger:       logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// ImportFile loads one catalog file and upserts its medicines. Returns
// the number of medicines imported.
func (i *Importer) ImportFile(ctx context.Context, filePath string) (int, error) {
	meds, err := i.loader.Load(ctx, filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog %s: %w", filePath, err)
	}

	if len(meds) == 0 {
		i.logger.Warn().Str("file", filePath).Msg("catalog file contained no usable medicines")
		return 0, nil
	}

	if err := i.medicineRepo.BulkUpsert(ctx, meds); err != nil {
		return 0, fmt.Errorf("failed to upsert catalog %s: %w", filePath, err)
	}

	i.logger.Info().
		Str("file", filePath).
		Int("count", len(meds)).
		Msg("catalog imported")

	return len(meds), nil
}

// ImportDir imports every catalog file matching *.csv.gz in a
// directory. One bad file does not stop the others.
func (i *Importer) ImportDir(ctx context.Context, dir string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv.gz"))
	if err != nil {
		return 0, fmt.Errorf("failed to list catalog dir %s: %w", dir, err)
	}

	if len(files) == 0 {
		i.logger.Info().Str("dir", dir).Msg("no catalog files found")
		return 0, nil
	}

	total := 0
	for _, file := range files {
		n, err := i.ImportFile(ctx, file)
		if err != nil {
			i.logger.Error().Err(err).Str("file", file).Msg("catalog import failed")
			continue
		}
		total += n
	}

	return total, nil
}
