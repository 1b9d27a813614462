package upload

import (
	"fmt"

	domain "portfolio-api/internal/domain/upload"
)

// StorageWriteError aborts a save: no record is created and variants written
// before the failure are left behind.
type StorageWriteError struct {
	Variant domain.Variant
	Path    string
	Err     error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("write %s variant %q: %v", e.Variant, e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// RecordPersistError means every file was written but the audit record was
// not, so the files are orphaned and the save must be retried.
type RecordPersistError struct {
	NormalPath string
	Err        error
}

func (e *RecordPersistError) Error() string {
	return fmt.Sprintf("persist upload record for %q: %v", e.NormalPath, e.Err)
}

func (e *RecordPersistError) Unwrap() error { return e.Err }
