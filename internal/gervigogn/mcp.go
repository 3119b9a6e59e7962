package gervigogn

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	apierrors "github.com/olgasafonova/iceland-registry-mcp-server/internal/errors"
	"github.com/olgasafonova/iceland-registry-mcp-server/internal/infra"
	"github.com/olgasafonova/iceland-registry-mcp-server/internal/kennitala"
	"github.com/olgasafonova/iceland-registry-mcp-server/metrics"
)

// cacheTTL bounds how long validated files are reused. Entries are also
// keyed by modification time, so an edited file is never served stale.
const cacheTTL = 5 * time.Minute

// Service exposes dataset loading and bulk validation to the MCP tool
// layer, caching validated files by path and modification time.
type Service struct {
	logger *slog.Logger
	cache  *infra.Cache
}

// NewService creates a dataset service.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
		cache:  infra.NewCache(32),
	}
}

// ValidateDatasetMCP loads an Einstaklingar XML file and validates the
// kennitala of every record.
func (s *Service) ValidateDatasetMCP(ctx context.Context, args ValidateDatasetArgs) (ValidateDatasetResult, error) {
	if args.Path == "" {
		return ValidateDatasetResult{}, apierrors.NewValidationError("path", "", "is required")
	}

	validated, err := s.validatedRecords(args.Path)
	if err != nil {
		return ValidateDatasetResult{}, err
	}

	result := ValidateDatasetResult{Records: len(validated)}
	for _, rec := range validated {
		if rec.Validation.Relaxed {
			result.RelaxedValid++
		}
		if rec.Validation.Strict {
			result.StrictValid++
		}
		if rec.Validation.IsDataset {
			result.DatasetMarked++
		}
		if rec.Validation.EntityType != nil && *rec.Validation.EntityType == kennitala.EntityCompany {
			result.Companies++
		}
	}
	if args.IncludeRecords {
		result.Results = validated
	}
	return result, nil
}

// validatedRecords loads, validates, and caches one dataset file.
func (s *Service) validatedRecords(path string) ([]ValidatedRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apierrors.NewDatasetError(path, "stat failed", err)
	}
	key := fmt.Sprintf("%s|%d", path, info.ModTime().UnixNano())

	if cached, ok := s.cache.Get(key); ok {
		metrics.RecordCacheAccess(true)
		s.logger.Debug("Dataset served from cache", "path", path)
		return cached.([]ValidatedRecord), nil
	}
	metrics.RecordCacheAccess(false)

	records, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	validated := ValidateRecords(records)

	strictValid := 0
	for _, rec := range validated {
		if rec.Validation.Strict {
			strictValid++
		}
	}
	metrics.RecordDatasetRecords(strictValid, len(validated))

	s.cache.Set(key, validated, cacheTTL)
	metrics.SetCacheSize(int64(s.cache.Size()))
	s.logger.Info("Dataset validated", "path", path, "records", len(validated))
	return validated, nil
}
