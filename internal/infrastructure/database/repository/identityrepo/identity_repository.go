package identityrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal-server/internal/domain/identity"
	"portal-server/internal/infrastructure/database/dbschema"
	"portal-server/internal/utils/platformerrors"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

var _ identity.Repository = (*IdentityGormRepository)(nil)

func NewIdentityGormRepository(db *gorm.DB) identity.Repository {
	return &IdentityGormRepository{db: db}
}

func (repo *IdentityGormRepository) FindBySubject(ctx context.Context, subject string) (*identity.IdentityRecord, error) {
	var entity dbschema.IdentityRecord
	err := repo.db.WithContext(ctx).
		Where("subject = ?", subject).
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
			"failed to find identity record by subject",
			err,
			"c4e1a8f2-9d36-47b5-a2c8-5f1e3b9d7a60",
		)
	}
	return entity.EtoD(), nil
}

func (repo *IdentityGormRepository) FindByID(ctx context.Context, id uint) (*identity.IdentityRecord, error) {
	var entity dbschema.IdentityRecord
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
			"failed to find identity record by ID",
			err,
			"8a2f6c4d-1e7b-4950-b3a9-d6c8e2f4a1b7",
		)
	}
	return entity.EtoD(), nil
}

func (repo *IdentityGormRepository) List(ctx context.Context) ([]*identity.IdentityRecord, error) {
	var entities []dbschema.IdentityRecord
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entities).
		Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list identity records",
			err,
			"2d9b5e7a-4c81-4f63-9e0d-7b3a1f8c6e25",
		)
	}

	records := make([]*identity.IdentityRecord, 0, len(entities))
	for i := range entities {
		records = append(records, entities[i].EtoD())
	}
	return records, nil
}

func (repo *IdentityGormRepository) Upsert(ctx context.Context, record *identity.IdentityRecord) (*identity.IdentityRecord, error) {
	entity := dbschema.NewSchemaIdentityRecord(record)

	assignments := map[string]any{
		"email":      entity.Email,
		"role":       entity.Role,
		"partner_id": entity.PartnerID,
		"updated_at": gorm.Expr("NOW()"),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to upsert identity record",
			err,
			"e7c3a9f1-5b24-4d86-8f0a-3c6d9e2b4f78",
		)
	}

	// Reload to capture ID and timestamps.
	var persisted dbschema.IdentityRecord
	if err := repo.db.WithContext(ctx).
		Where("subject = ?", entity.Subject).
		First(&persisted).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to reload upserted identity record",
			err,
			"6b8d2f4e-0a95-4c17-b6e3-9f1c5a7d3e82",
		)
	}

	return persisted.EtoD(), nil
}
