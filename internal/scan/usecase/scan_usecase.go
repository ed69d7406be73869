package usecase

import (
	"context"
	"strings"
	"time"

	"ecoshopper-backend/internal/scan/domain/model"
	"ecoshopper-backend/internal/scan/domain/repository"
	"ecoshopper-backend/internal/scan/domain/service"
	apperrors "ecoshopper-backend/internal/shared/errors"
	"ecoshopper-backend/internal/shared/logger"

	"go.uber.org/zap" // For logging fields
)

// Manufacture dates fall within the past nine months; expiry follows
// manufacture by twelve to twenty-four months.
const (
	maxManufactureMonths = 9
	minShelfLifeMonths   = 12
	maxShelfLifeMonths   = 24
)

// ScanUsecase defines the scan-ingestion and history-retrieval operations.
type ScanUsecase interface {
	Scan(ctx context.Context, code string) (*model.ScanRecord, error)
	History(ctx context.Context, limit int) ([]*model.ScanRecord, error)
}

type scanUsecaseImpl struct {
	repo         repository.ScanRepository
	src          service.Source
	log          logger.Logger
	defaultLimit int
}

// NewScanUsecase creates a new instance of ScanUsecase. The randomness source
// backs the fabrication functions; tests pass a deterministic one.
func NewScanUsecase(
	repo repository.ScanRepository,
	src service.Source,
	log logger.Logger,
	defaultLimit int,
) ScanUsecase {
	return &scanUsecaseImpl{
		repo:         repo,
		src:          src,
		log:          log,
		defaultLimit: defaultLimit,
	}
}

// Scan validates the barcode, fabricates sustainability metadata around the
// enrichment fields, persists the record, and returns it with its assigned
// identifier.
func (uc *scanUsecaseImpl) Scan(ctx context.Context, code string) (*model.ScanRecord, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.ErrInvalidBarcode
	}

	base := service.Lookup(code)

	mfg := service.RandomPastDate(uc.src, maxManufactureMonths)
	exp := service.AddMonths(mfg, minShelfLifeMonths+uc.src.Intn(maxShelfLifeMonths-minShelfLifeMonths+1))

	record := &model.ScanRecord{
		Code:            code,
		Name:            base.Name,
		Manufacturer:    base.Manufacturer,
		Category:        base.Category,
		MfgDate:         mfg.Format(time.RFC3339),
		ExpDate:         exp.Format(time.RFC3339),
		Rating:          service.RandomRating(uc.src),
		FootprintKgCO2e: service.RandomFootprint(uc.src),
		ScannedAt:       time.Now().UTC().UnixMilli(),
	}

	persisted, err := uc.repo.Insert(ctx, record)
	if err != nil {
		uc.log.WithContext(ctx).Error("Failed to persist scan", zap.Error(err), zap.String("code", code))
		return nil, err
	}

	uc.log.WithContext(ctx).Info("Scan persisted", zap.String("code", code), zap.String("id", persisted.ID))
	return persisted, nil
}

// History returns up to limit records, most recently created first. A
// non-positive limit falls back to the configured default.
func (uc *scanUsecaseImpl) History(ctx context.Context, limit int) ([]*model.ScanRecord, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	records, err := uc.repo.FindRecent(ctx, limit)
	if err != nil {
		uc.log.WithContext(ctx).Error("Failed to fetch scan history", zap.Error(err), zap.Int("limit", limit))
		return nil, err
	}
	return records, nil
}
