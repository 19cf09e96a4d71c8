package partnerrepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portal-server/internal/domain/partner"
	"portal-server/internal/infrastructure/database/dbschema"
	"portal-server/internal/utils/platformerrors"
)

type PartnerGormRepository struct {
	db *gorm.DB
}

var _ partner.Repository = (*PartnerGormRepository)(nil)

func NewPartnerGormRepository(db *gorm.DB) partner.Repository {
	return &PartnerGormRepository{db: db}
}

func (repo *PartnerGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var entity dbschema.Partner
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find partner by ID",
			err,
			"9e5c1b7f-3a48-4d20-8c6e-f2b9d4a6c013",
		)
	}
	return entity.EtoD(), nil
}

func (repo *PartnerGormRepository) List(ctx context.Context) ([]partner.Partner, error) {
	var entities []dbschema.Partner
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&entities).
		Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list partners",
			err,
			"1f7a3e9c-8b52-4d64-a0c1-6e4b2d8f5a39",
		)
	}

	partners := make([]partner.Partner, 0, len(entities))
	for i := range entities {
		partners = append(partners, *entities[i].EtoD())
	}
	return partners, nil
}

func (repo *PartnerGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&dbschema.Partner{}).
		Count(&count).
		Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count partners",
			err,
			"5d2e8a4b-7c91-4f35-b8d0-2a6f9c1e4b87",
		)
	}
	return count, nil
}
