package usecase

import (
	"context"
	"errors"
	"house_calculator/internal/domain/entities"
	"house_calculator/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMaterialNotFound        = errors.New("material not found")
	ErrNoMaterialsForHouseType = errors.New("no materials found for house type")
	ErrInvalidMaterialID       = errors.New("invalid material id")
	ErrInvalidMaterial         = errors.New("invalid material")
	ErrForbidden               = errors.New("not authorized to manage materials")
)

//go:generate mockgen -source=material_usecase.go -destination=../adapter/http/handlers/mocks/mock_material_usecase.go -package=mocks

// IMaterialUseCase exposes the material price catalog.
//
// Reads are public. Create is restricted to administrators; Seed loads the
// default catalog into an empty store.

type IMaterialUseCase interface {
	List(ctx context.Context, houseType *entities.HouseType) ([]entities.Material, error)
	ListByHouseType(ctx context.Context, houseType entities.HouseType) ([]entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	Create(ctx context.Context, isAdmin bool, m entities.Material) (entities.Material, error)
	Seed(ctx context.Context) (int, error)
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
	log  *zap.Logger
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, log *zap.Logger) *MaterialUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &MaterialUseCase{repo: repo, log: log}
}

func (u *MaterialUseCase) List(ctx context.Context, houseType *entities.HouseType) ([]entities.Material, error) {
	if houseType != nil && !houseType.Valid() {
		return nil, ErrUnsupportedHouseType
	}
	return u.repo.List(ctx, houseType)
}

func (u *MaterialUseCase) ListByHouseType(ctx context.Context, houseType entities.HouseType) ([]entities.Material, error) {
	if !houseType.Valid() {
		return nil, ErrUnsupportedHouseType
	}
	items, err := u.repo.List(ctx, &houseType)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoMaterialsForHouseType
	}
	return items, nil
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) Create(ctx context.Context, isAdmin bool, m entities.Material) (entities.Material, error) {
	if !isAdmin {
		return entities.Material{}, ErrForbidden
	}

	m.Name = strings.TrimSpace(m.Name)
	m.Unit = strings.TrimSpace(m.Unit)
	switch {
	case m.Name == "", m.Unit == "", m.PricePerUnit < 0, !m.Type.Valid():
		return entities.Material{}, ErrInvalidMaterial
	case m.HouseType != nil && !m.HouseType.Valid():
		return entities.Material{}, ErrUnsupportedHouseType
	}

	m.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		u.log.Error("[material][usecase] repository create failed", zap.String("name", m.Name), zap.Error(err))
		return entities.Material{}, err
	}
	u.log.Info("[material][usecase] material created", zap.String("material_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Seed inserts DefaultCatalog when the catalog is empty and returns the
// number of materials inserted.
func (u *MaterialUseCase) Seed(ctx context.Context) (int, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.log.Info("[material][usecase] catalog already seeded", zap.Int("materials", n))
		return 0, nil
	}

	inserted := 0
	for _, m := range DefaultCatalog() {
		m.ID = uuid.NewString()
		if _, err := u.repo.Create(ctx, m); err != nil {
			return inserted, err
		}
		inserted++
	}
	u.log.Info("[material][usecase] sample materials added", zap.Int("materials", inserted))
	return inserted, nil
}
