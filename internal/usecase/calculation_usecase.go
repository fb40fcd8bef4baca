package usecase

import (
	"context"
	"errors"
	"house_calculator/internal/domain/entities"
	"house_calculator/internal/domain/estimator"
	"house_calculator/internal/infrastructure/metrics"
	"house_calculator/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCalculationNotFound  = errors.New("calculation not found")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidCalculationID = errors.New("invalid calculation id")
	ErrInvalidPagination    = errors.New("invalid pagination")
	ErrUnsupportedHouseType = entities.ErrUnsupportedHouseType
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

//go:generate mockgen -source=calculation_usecase.go -destination=../adapter/http/handlers/mocks/mock_calculation_usecase.go -package=mocks

// ICalculationUseCase exposes the house calculation operations:
//   - POST /calculations/calculate => Calculate() (no persistence)
//   - POST /calculations => CreateCalculation()
//   - GET /calculations => ListByUser()
//   - GET /calculations/{id} => GetByID()

type ICalculationUseCase interface {
	Calculate(ctx context.Context, input entities.CalculationInput) (entities.EstimationResult, error)
	CreateCalculation(ctx context.Context, userID string, input entities.CalculationInput) (entities.Calculation, error)
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]entities.Calculation, error)
	GetByID(ctx context.Context, userID, id string) (entities.Calculation, error)
}

type CalculationUseCase struct {
	repo      interfaces.ICalculationRepository
	materials interfaces.IMaterialRepository
	log       *zap.Logger
}

var _ ICalculationUseCase = (*CalculationUseCase)(nil)

// NewCalculationUseCase wires the use case. A nil materials repository
// disables pricing.
func NewCalculationUseCase(repo interfaces.ICalculationRepository, materials interfaces.IMaterialRepository, log *zap.Logger) *CalculationUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalculationUseCase{repo: repo, materials: materials, log: log}
}

func (u *CalculationUseCase) Calculate(ctx context.Context, input entities.CalculationInput) (entities.EstimationResult, error) {
	result, err := estimator.Estimate(input.HouseType, input)
	if err != nil {
		metrics.RecordEstimation(metrics.LabelUnsupported, metrics.StatusError)
		u.log.Warn("[calculation][usecase] estimate failed", zap.String("house_type", string(input.HouseType)), zap.Error(err))
		return entities.EstimationResult{}, err
	}
	metrics.RecordEstimation(string(input.HouseType), metrics.StatusSuccess)

	return u.price(ctx, input.HouseType, result), nil
}

// price fills catalog prices in. Catalog failures never fail the estimation.
func (u *CalculationUseCase) price(ctx context.Context, houseType entities.HouseType, result entities.EstimationResult) entities.EstimationResult {
	if u.materials == nil {
		return result
	}
	catalog, err := u.materials.List(ctx, nil)
	if err != nil {
		u.log.Warn("[calculation][usecase] catalog unavailable; returning unpriced result", zap.String("house_type", string(houseType)), zap.Error(err))
		return result
	}
	return estimator.ApplyPrices(result, estimator.NewPriceList(houseType, catalog))
}

func (u *CalculationUseCase) CreateCalculation(ctx context.Context, userID string, input entities.CalculationInput) (entities.Calculation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Calculation{}, ErrInvalidUserID
	}

	result, err := u.Calculate(ctx, input)
	if err != nil {
		return entities.Calculation{}, err
	}

	c := entities.Calculation{
		ID:         uuid.NewString(),
		UserID:     userID,
		HouseType:  input.HouseType,
		InputData:  input,
		ResultData: result,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error("[calculation][usecase] repository create failed", zap.String("user_id", userID), zap.String("calculation_id", c.ID), zap.Error(err))
		return entities.Calculation{}, err
	}
	u.log.Info("[calculation][usecase] calculation saved",
		zap.String("user_id", userID),
		zap.String("calculation_id", created.ID),
		zap.String("house_type", string(created.HouseType)),
		zap.Int("materials", len(created.ResultData.Materials)),
	)
	return created, nil
}

// ListByUser returns the user's calculations oldest first. A zero limit
// means DefaultListLimit; larger limits are capped at MaxListLimit.
func (u *CalculationUseCase) ListByUser(ctx context.Context, userID string, skip, limit int) ([]entities.Calculation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if skip < 0 || limit < 0 {
		return nil, ErrInvalidPagination
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	if skip >= len(items) {
		return []entities.Calculation{}, nil
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end], nil
}

func (u *CalculationUseCase) GetByID(ctx context.Context, userID, id string) (entities.Calculation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Calculation{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Calculation{}, ErrInvalidCalculationID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Calculation{}, err
	}
	// Another user's calculation is reported as missing.
	if c.ID == "" || c.UserID != userID {
		return entities.Calculation{}, ErrCalculationNotFound
	}
	return c, nil
}
