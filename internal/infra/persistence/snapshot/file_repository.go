// Package snapshot reads the merchant catalog from a YAML or JSON snapshot file.
package snapshot

import (
	"context"
	"log/slog"
	"strings"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/infra/persistence/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Neighborhood names may contain dots, so keys are split on a character they never use.
const keyDelimiter = "/"

// fileRepository implements the repository.MerchantRepository interface.
type fileRepository struct {
	path     string
	logger   *slog.Logger
	reporter service.DiagnosticsReporter
	validate *validator.Validate
}

// NewFileRepository is the constructor for fileRepository. reporter may be nil.
// The file is read on every call so an updated snapshot is picked up without a restart.
func NewFileRepository(cfg *config.Config, logger *slog.Logger, reporter service.DiagnosticsReporter) repository.MerchantRepository {
	path := ""
	if cfg.Snapshot != nil {
		path = cfg.Snapshot.Path
	}

	return &fileRepository{
		path:     path,
		logger:   logger,
		reporter: reporter,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListApprovedMerchants loads the snapshot and converts every valid record.
// Invalid records are skipped and reported; only an unreadable file is an error.
func (repo *fileRepository) ListApprovedMerchants(ctx context.Context) ([]*entity.Merchant, error) {
	if strings.TrimSpace(repo.path) == "" {
		return nil, errors.Wrap(repository.ErrSnapshotUnavailable, "snapshot path is empty")
	}

	doc, err := repo.load()
	if err != nil {
		return nil, err
	}

	merchants := make([]*entity.Merchant, 0, len(doc.Merchants))
	for i := range doc.Merchants {
		record := &doc.Merchants[i]

		if err := repo.validate.StructCtx(ctx, record); err != nil {
			repo.skip(ctx, i, record, err)
			continue
		}

		merchant, err := repo.toMerchantDomain(ctx, record)
		if err != nil {
			repo.skip(ctx, i, record, err)
			continue
		}

		merchants = append(merchants, merchant)
	}

	repo.logger.DebugContext(ctx, "merchant snapshot loaded",
		slog.String("path", repo.path),
		slog.Int("records", len(doc.Merchants)),
		slog.Int("merchants", len(merchants)),
	)

	return merchants, nil
}

func (repo *fileRepository) load() (*model.SnapshotDocument, error) {
	k := koanf.New(keyDelimiter)

	// YAML is a superset of JSON, so the same parser reads both formats.
	if err := k.Load(file.Provider(repo.path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(repository.ErrSnapshotUnavailable, "read snapshot %s: %v", repo.path, err)
	}

	doc := new(model.SnapshotDocument)
	if err := k.UnmarshalWithConf("", doc, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           doc,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook:       decimalHookFunc(),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(repository.ErrSnapshotUnavailable, "decode snapshot %s: %v", repo.path, err)
	}

	return doc, nil
}

func (repo *fileRepository) skip(ctx context.Context, index int, record *model.MerchantDocument, cause error) {
	repo.logger.WarnContext(ctx, "skipping invalid merchant record",
		slog.Int("index", index),
		slog.String("id", record.ID),
		slog.String("name", record.Name),
		slog.Any("error", cause),
	)

	merchantID, _ := uuid.Parse(record.ID)
	repo.report(ctx, service.Diagnostic{
		Kind:       service.DiagnosticInvalidRecord,
		MerchantID: merchantID,
		Field:      "merchants",
		Value:      record.ID,
		Detail:     cause.Error(),
	})
}

func (repo *fileRepository) report(ctx context.Context, diagnostic service.Diagnostic) {
	if repo.reporter != nil {
		repo.reporter.Report(ctx, diagnostic)
	}
}
