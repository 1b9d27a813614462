// Package upload implements the compressed image upload field: every saved
// image is stored as four variants plus one audit record keyed by the normal
// variant's path, which is the only value the owning entity persists.
package upload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"portfolio-api/internal/actor"
	"portfolio-api/internal/application/ports"
	domain "portfolio-api/internal/domain/upload"
)

// Policy decides what happens to content the generator cannot decode.
type Policy string

const (
	PolicyReject   Policy = "reject"
	PolicyStoreRaw Policy = "store_raw"
)

type Config struct {
	// OwnerField names the entity attribute, e.g. "profile.avatar".
	OwnerField    string
	UploadPath    string
	Unprocessable Policy
}

type Generator interface {
	Generate(filename string, content []byte) (domain.VariantSet, error)
}

type (
	// Saved is the outcome of Field.Save. Record is nil when the raw fallback
	// stored the upload without variants.
	Saved struct {
		Path      string
		Record    *domain.Record
		Unchanged bool
	}

	// URLs holds resolved variant URLs; empty strings are unknown variants.
	URLs struct {
		Original string
		Icon     string
		Normal   string
		Large    string
	}
)

type Field struct {
	cfg       Config
	storage   ports.Storage
	records   domain.Repository
	generator Generator
	logger    *zap.Logger
	mCounter  *prometheus.CounterVec
	mDuration *prometheus.HistogramVec
}

func NewField(
	cfg Config,
	storage ports.Storage,
	records domain.Repository,
	generator Generator,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
	mDuration *prometheus.HistogramVec,
) *Field {
	if cfg.Unprocessable == "" {
		cfg.Unprocessable = PolicyReject
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Field{
		cfg:       cfg,
		storage:   storage,
		records:   records,
		generator: generator,
		logger:    logger.With(zap.String("field", cfg.OwnerField)),
		mCounter:  mCounter,
		mDuration: mDuration,
	}
}

// Slot returns a field writing under <UploadPath>/<key>. Owners sharing one
// field get a slot each so equal filenames never land on each other's files.
func (f *Field) Slot(key string) *Field {
	cp := *f
	cp.cfg.UploadPath = path.Join(f.cfg.UploadPath, SanitizeFileName(key))
	return &cp
}

// Save stores content as a new value of the field and returns the normal path
// to persist on the owning entity. previous is the currently stored value; its
// files are only touched when the new upload lands on the same paths, the rest
// is left to Release once the entity points at the new value.
func (f *Field) Save(ctx context.Context, previous, filename string, content []byte) (*Saved, error) {
	start := time.Now()
	result := "error"
	defer func() { f.observe(start, result) }()

	checksum := sum(content)
	if prev := f.lookup(ctx, previous); prev != nil &&
		prev.Checksum == checksum && prev.OriginalFilename == filename {
		result = "unchanged"
		f.count("upload_unchanged_total")
		return &Saved{Path: previous, Record: prev, Unchanged: true}, nil
	}

	set, err := f.generator.Generate(filename, content)
	if err != nil {
		if !errors.Is(err, domain.ErrUnprocessable) {
			return nil, fmt.Errorf("generate variants: %w", err)
		}
		saved, err := f.saveRaw(ctx, previous, filename, content, err)
		if err == nil {
			result = "raw"
		}
		return saved, err
	}
	if !set.Complete() {
		return nil, fmt.Errorf("generate variants: incomplete set for %q", filename)
	}

	var dest domain.Paths
	for _, v := range domain.Variants {
		dest.Set(v, f.destination(v, set[v].Filename))
	}

	live, err := f.claim(ctx, previous, dest.Normal)
	if err != nil {
		return nil, err
	}
	// The previous value sits on our normal path. Its record goes before any
	// file is overwritten, so a failed write leaves no record describing
	// replaced files; the entity then degrades to its normal path only.
	if live != nil {
		if err := f.purge(ctx, live, dest); err != nil {
			return nil, err
		}
	}

	var written domain.Paths
	for _, v := range domain.Variants {
		p, err := f.write(ctx, v, dest.Get(v), set[v].Content)
		if err != nil {
			f.count("upload_storage_failed_total")
			return nil, err
		}
		written.Set(v, p)
	}

	rec, err := f.records.Create(ctx, &domain.Record{
		Uploader:         actor.UploaderID(ctx),
		OriginalFilename: filename,
		OriginalSize:     uint64(len(content)),
		Checksum:         checksum,
		Paths:            written,
		OwnerField:       f.cfg.OwnerField,
	})
	if err != nil {
		f.count("upload_record_failed_total")
		return nil, &RecordPersistError{NormalPath: written.Normal, Err: err}
	}

	result = "saved"
	f.count("upload_saved_total")
	f.logger.Info("upload saved",
		zap.String("path", written.Normal),
		zap.Uint64("record_id", rec.ID),
		zap.Int("size", len(content)),
	)

	return &Saved{Path: written.Normal, Record: rec}, nil
}

func (f *Field) saveRaw(ctx context.Context, previous, filename string, content []byte, cause error) (*Saved, error) {
	if f.cfg.Unprocessable != PolicyStoreRaw {
		f.count("upload_rejected_total")
		return nil, fmt.Errorf("%s: %w", f.cfg.OwnerField, cause)
	}

	dest := f.destination(domain.VariantNormal, filename)
	live, err := f.claim(ctx, previous, dest)
	if err != nil {
		return nil, err
	}
	if live != nil {
		if err := f.purge(ctx, live, domain.Paths{Normal: dest}); err != nil {
			return nil, err
		}
	}

	p, err := f.write(ctx, domain.VariantNormal, dest, content)
	if err != nil {
		f.count("upload_storage_failed_total")
		return nil, err
	}

	f.count("upload_raw_total")
	f.logger.Warn("stored unprocessable upload as-is", zap.String("path", p), zap.Error(cause))

	return &Saved{Path: p}, nil
}

// claim fails when another live value already owns normalPath. The returned
// record is the previous value's own record when it sits on normalPath.
func (f *Field) claim(ctx context.Context, previous, normalPath string) (*domain.Record, error) {
	live, err := f.records.FindByNormalPath(ctx, normalPath)
	if err != nil {
		return nil, fmt.Errorf("find upload record %q: %w", normalPath, err)
	}
	if live == nil {
		return nil, nil
	}
	if previous == "" || live.Paths.Normal != previous {
		f.count("upload_conflict_total")
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateRecord, normalPath)
	}
	return live, nil
}

// write replaces whatever occupies p and returns the path storage assigned.
func (f *Field) write(ctx context.Context, v domain.Variant, p string, content []byte) (string, error) {
	exists, err := f.storage.Exists(ctx, p)
	if err != nil {
		return "", &StorageWriteError{Variant: v, Path: p, Err: err}
	}
	if exists {
		if err := f.storage.Delete(ctx, p); err != nil {
			return "", &StorageWriteError{Variant: v, Path: p, Err: err}
		}
	}

	actual, err := f.storage.Save(ctx, p, content)
	if err != nil {
		return "", &StorageWriteError{Variant: v, Path: p, Err: err}
	}
	return actual, nil
}

// Release removes the files and record of previous once the owning entity
// stores current instead. Nothing happens when the value did not change.
func (f *Field) Release(ctx context.Context, previous, current string) error {
	if previous == "" || previous == current {
		return nil
	}

	keep := domain.Paths{Normal: current}
	if rec := f.lookup(ctx, current); rec != nil {
		keep = rec.Paths
	}

	rec, err := f.records.FindByNormalPath(ctx, previous)
	if err != nil {
		f.logger.Warn("upload lookup failed, nothing to clean up",
			zap.String("path", previous), zap.Error(err))
		return nil
	}
	if rec == nil {
		// Raw fallback values and legacy data own exactly one file.
		if f.ownsBare(previous) && !keep.Contains(previous) {
			if err := f.storage.Delete(ctx, previous); err != nil {
				return fmt.Errorf("delete %q: %w", previous, err)
			}
			f.count("upload_files_removed_total")
		}
		return nil
	}

	return f.purge(ctx, rec, keep)
}

// Delete removes every file and the record behind current, for use when the
// owning entity is destroyed or the field is cleared.
func (f *Field) Delete(ctx context.Context, current string) error {
	return f.Release(ctx, current, "")
}

// Replace saves a new upload, lets persist store the returned path on the
// owning entity and then releases the previous value. When persist fails the
// new upload is released instead and previous stays intact.
func (f *Field) Replace(
	ctx context.Context,
	previous, filename string,
	content []byte,
	persist func(ctx context.Context, path string) error,
) (string, error) {
	saved, err := f.Save(ctx, previous, filename, content)
	if err != nil {
		return "", err
	}
	if saved.Unchanged || saved.Path == previous {
		return saved.Path, nil
	}

	if err := persist(ctx, saved.Path); err != nil {
		if rerr := f.Release(ctx, saved.Path, previous); rerr != nil {
			f.logger.Error("rollback of new upload failed", zap.String("path", saved.Path), zap.Error(rerr))
		}
		return "", err
	}

	if err := f.Release(ctx, previous, saved.Path); err != nil {
		f.logger.Error("cleanup of previous upload failed", zap.String("path", previous), zap.Error(err))
	}

	return saved.Path, nil
}

// URLs resolves every known variant of current. Without an audit record only
// the normal URL can be derived.
func (f *Field) URLs(ctx context.Context, current string) URLs {
	if current == "" {
		return URLs{}
	}

	rec := f.lookup(ctx, current)
	if rec == nil {
		return URLs{Normal: f.storage.URL(current)}
	}

	return URLs{
		Original: f.storage.URL(rec.Paths.Original),
		Icon:     f.storage.URL(rec.Paths.Icon),
		Normal:   f.storage.URL(rec.Paths.Normal),
		Large:    f.storage.URL(rec.Paths.Large),
	}
}

func (f *Field) URL(ctx context.Context, current string, v domain.Variant) (string, bool) {
	if current == "" {
		return "", false
	}
	if rec := f.lookup(ctx, current); rec != nil {
		if p := rec.Paths.Get(v); p != "" {
			return f.storage.URL(p), true
		}
		return "", false
	}
	if v == domain.VariantNormal {
		return f.storage.URL(current), true
	}
	return "", false
}

// lookup returns the complete record for normalPath or nil. Errors and
// incomplete records are logged and read as "no record".
func (f *Field) lookup(ctx context.Context, normalPath string) *domain.Record {
	if normalPath == "" {
		return nil
	}

	rec, err := f.records.FindByNormalPath(ctx, normalPath)
	if err != nil {
		f.logger.Warn("upload lookup failed", zap.String("path", normalPath), zap.Error(err))
		return nil
	}
	if rec != nil && !rec.Paths.Complete() {
		f.logger.Warn("upload lookup failed",
			zap.String("path", normalPath), zap.Error(domain.ErrCorruptRecord))
		return nil
	}
	return rec
}

// purge deletes the files of rec that keep does not reference, then rec itself.
func (f *Field) purge(ctx context.Context, rec *domain.Record, keep domain.Paths) error {
	for _, v := range domain.Variants {
		p := rec.Paths.Get(v)
		if p == "" || keep.Contains(p) {
			continue
		}
		if err := f.storage.Delete(ctx, p); err != nil {
			return fmt.Errorf("delete %s variant %q: %w", v, p, err)
		}
		f.count("upload_files_removed_total")
	}

	if err := f.records.Delete(ctx, rec.ID); err != nil {
		return fmt.Errorf("delete upload record %d: %w", rec.ID, err)
	}
	return nil
}

func (f *Field) destination(v domain.Variant, filename string) string {
	return path.Join(f.cfg.UploadPath, string(v), SanitizeFileName(filename))
}

func (f *Field) ownsBare(p string) bool {
	return strings.HasPrefix(p, path.Join(f.cfg.UploadPath, string(domain.VariantNormal))+"/")
}

func (f *Field) count(name string) {
	if f.mCounter != nil {
		f.mCounter.WithLabelValues(name).Inc()
	}
}

func (f *Field) observe(start time.Time, result string) {
	if f.mDuration != nil {
		f.mDuration.WithLabelValues(f.cfg.OwnerField, result).Observe(time.Since(start).Seconds())
	}
}

func sum(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}
