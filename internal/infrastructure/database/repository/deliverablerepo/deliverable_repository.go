package deliverablerepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portal-server/internal/domain/deliverable"
	"portal-server/internal/infrastructure/database/dbschema"
	"portal-server/internal/utils/platformerrors"
)

type DeliverableGormRepository struct {
	db *gorm.DB
}

var _ deliverable.Repository = (*DeliverableGormRepository)(nil)

func NewDeliverableGormRepository(db *gorm.DB) deliverable.Repository {
	return &DeliverableGormRepository{db: db}
}

func (repo *DeliverableGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*deliverable.Deliverable, error) {
	var entity dbschema.Deliverable
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
			"failed to find deliverable by ID",
			err,
			"b3f8d1a6-2e74-4c09-9a5b-8d6e0f2c7a41",
		)
	}
	return entity.EtoD(), nil
}

func (repo *DeliverableGormRepository) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]deliverable.Deliverable, error) {
	var entities []dbschema.Deliverable
	if err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("due_date ASC NULLS LAST, created_at DESC").
		Find(&entities).
		Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list deliverables by partner",
			err,
			"7a4c2f9e-6b13-4d85-8e0a-1c5d3b9f6e27",
		)
	}

	deliverables := make([]deliverable.Deliverable, 0, len(entities))
	for i := range entities {
		deliverables = append(deliverables, *entities[i].EtoD())
	}
	return deliverables, nil
}

func (repo *DeliverableGormRepository) CountByStatus(ctx context.Context) (map[deliverable.Status]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	if err := repo.db.WithContext(ctx).
		Model(&dbschema.Deliverable{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).
		Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count deliverables by status",
			err,
			"0e9b4d7a-5f28-4c61-a3b8-d2e6f1c9a054",
		)
	}

	counts := make(map[deliverable.Status]int64, len(rows))
	for _, row := range rows {
		counts[deliverable.Status(row.Status)] = row.Count
	}
	return counts, nil
}
