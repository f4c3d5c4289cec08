// Package catalog imports medicine catalog files into the database.
// Catalog files are gzipped CSVs with one medicine per line:
//
//	id,name,type,company,composition,price
//
// Files can live on the local file system or in an S3 bucket, with S3
// falling back to local when the object is unavailable.
package catalog

import (
	"context"

	"medimart/internal/model"
)

// Loader defines the interface for loading catalog files.
type Loader interface {
	// Load reads a gzipped catalog file and returns its medicines.
	// Malformed lines are skipped, not fatal.
	Load(ctx context.Context, filePath string) ([]model.Medicine, error)
}
