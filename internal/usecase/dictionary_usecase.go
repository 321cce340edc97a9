package usecase

import (
	"context"

	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/validator"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// DictionaryUseCase - операции над справочниками (типы транспорта,
// города, размеры подвижного состава)
type DictionaryUseCase struct {
	dictRepo repository.DictionaryRepository
	logger   *zap.Logger
}

func NewDictionaryUseCase(dictRepo repository.DictionaryRepository, logger *zap.Logger) *DictionaryUseCase {
	return &DictionaryUseCase{
		dictRepo: dictRepo,
		logger:   logger,
	}
}

func (uc *DictionaryUseCase) ListTypes(ctx context.Context) ([]*domain.RouteType, error) {
	return uc.dictRepo.ListTypes(ctx)
}

func (uc *DictionaryUseCase) SaveType(ctx context.Context, req dto.TypeRequest) (*domain.RouteType, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	t := &domain.RouteType{ID: req.ID, Name: req.Name, Color: req.Color}
	if err := uc.dictRepo.SaveType(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Info("Route type saved", zap.String("id", t.ID))
	return t, nil
}

func (uc *DictionaryUseCase) DeleteType(ctx context.Context, id string) error {
	return uc.dictRepo.DeleteType(ctx, id)
}

func (uc *DictionaryUseCase) ListCities(ctx context.Context) ([]*domain.City, error) {
	return uc.dictRepo.ListCities(ctx)
}

func (uc *DictionaryUseCase) SaveCity(ctx context.Context, req dto.CityRequest) (*domain.City, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	c := &domain.City{ID: req.ID, Name: req.Name}
	if err := uc.dictRepo.SaveCity(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("City saved", zap.Int("id", c.ID))
	return c, nil
}

func (uc *DictionaryUseCase) DeleteCity(ctx context.Context, id int) error {
	return uc.dictRepo.DeleteCity(ctx, id)
}

func (uc *DictionaryUseCase) ListSizes(ctx context.Context) ([]*domain.VehicleSize, error) {
	return uc.dictRepo.ListSizes(ctx)
}

func (uc *DictionaryUseCase) SaveSize(ctx context.Context, req dto.SizeRequest) (*domain.VehicleSize, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	s := &domain.VehicleSize{ID: req.ID, Name: req.Name}
	if err := uc.dictRepo.SaveSize(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("Vehicle size saved", zap.String("id", s.ID))
	return s, nil
}

func (uc *DictionaryUseCase) DeleteSize(ctx context.Context, id string) error {
	return uc.dictRepo.DeleteSize(ctx, id)
}
