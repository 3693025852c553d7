package repository

import (
	"cryptometrics/internal/db/models/postgres/public/model"
	. "cryptometrics/internal/db/models/postgres/public/table"
	"cryptometrics/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// CryptoFeaturesRepository reads the daily per-asset table produced by
// the ingestion models. It never writes.
type CryptoFeaturesRepository interface {
	ListAssets(tx *sql.Tx) ([]string, error)
	GetDateRange(tx *sql.Tx) (*domain.DateRange, error)
	List(tx *sql.Tx, assets []string, start, end time.Time) ([]domain.Observation, error)
}

type cryptoFeaturesRepositoryHandler struct{}

func NewCryptoFeaturesRepository() CryptoFeaturesRepository {
	return cryptoFeaturesRepositoryHandler{}
}

func (h cryptoFeaturesRepositoryHandler) ListAssets(tx *sql.Tx) ([]string, error) {
	query := IntCryptoFeatures.
		SELECT(IntCryptoFeatures.Asset).
		GROUP_BY(IntCryptoFeatures.Asset).
		ORDER_BY(IntCryptoFeatures.Asset.ASC())

	result := []model.IntCryptoFeatures{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	out := make([]string, 0, len(result))
	for _, r := range result {
		out = append(out, r.Asset)
	}
	return out, nil
}

// GetDateRange returns the first and last date in the table, or nil if
// the table is empty
func (h cryptoFeaturesRepositoryHandler) GetDateRange(tx *sql.Tx) (*domain.DateRange, error) {
	first, err := h.edgeDate(tx, IntCryptoFeatures.Date.ASC())
	if err != nil {
		return nil, fmt.Errorf("failed to get min date: %w", err)
	}
	if first == nil {
		return nil, nil
	}
	last, err := h.edgeDate(tx, IntCryptoFeatures.Date.DESC())
	if err != nil {
		return nil, fmt.Errorf("failed to get max date: %w", err)
	}
	if last == nil {
		return nil, nil
	}

	return &domain.DateRange{
		Start: *first,
		End:   *last,
	}, nil
}

func (h cryptoFeaturesRepositoryHandler) edgeDate(tx *sql.Tx, orderBy OrderByClause) (*time.Time, error) {
	query := IntCryptoFeatures.
		SELECT(IntCryptoFeatures.Date, IntCryptoFeatures.Asset).
		ORDER_BY(orderBy).
		LIMIT(1)

	result := model.IntCryptoFeatures{}
	err := query.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &result.Date, nil
}

// List returns rows for the given assets between start and end
// (inclusive), ordered by asset then date
func (h cryptoFeaturesRepositoryHandler) List(tx *sql.Tx, assets []string, start, end time.Time) ([]domain.Observation, error) {
	if len(assets) == 0 {
		return []domain.Observation{}, nil
	}

	assetExpressions := []Expression{}
	for _, a := range assets {
		assetExpressions = append(assetExpressions, String(a))
	}

	query := IntCryptoFeatures.
		SELECT(IntCryptoFeatures.AllColumns).
		WHERE(
			AND(
				IntCryptoFeatures.Asset.IN(assetExpressions...),
				IntCryptoFeatures.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(
			IntCryptoFeatures.Asset.ASC(),
			IntCryptoFeatures.Date.ASC(),
		)

	result := []model.IntCryptoFeatures{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations for %d assets: %w", len(assets), err)
	}

	out := make([]domain.Observation, 0, len(result))
	for _, r := range result {
		out = append(out, observationFromModel(r))
	}

	return out, nil
}

// a NULL column stays nil. upstream leaves daily_return NULL on an
// asset's first day since there is no prior close
func observationFromModel(m model.IntCryptoFeatures) domain.Observation {
	return domain.Observation{
		Date:        m.Date,
		Asset:       m.Asset,
		OpenPrice:   m.OpenPrice,
		HighPrice:   m.High,
		LowPrice:    m.Low,
		ClosePrice:  m.ClosePrice,
		Volume:      m.Volume,
		DailyReturn: m.DailyReturn,
		LogReturn:   m.LogReturn,
	}
}
