package notificationrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portal-server/internal/domain/notification"
	"portal-server/internal/infrastructure/database/dbschema"
	"portal-server/internal/utils/platformerrors"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

var _ notification.Repository = (*NotificationGormRepository)(nil)

func NewNotificationGormRepository(db *gorm.DB) notification.Repository {
	return &NotificationGormRepository{db: db}
}

func (repo *NotificationGormRepository) ListFeed(ctx context.Context, partnerID *uuid.UUID, includeFleetWide bool) ([]notification.Notification, error) {
	sql := repo.db.WithContext(ctx).
		Where("expires_at IS NULL OR expires_at > NOW()")

	switch {
	case partnerID != nil && includeFleetWide:
		sql = sql.Where("partner_id = ? OR partner_id IS NULL", *partnerID)
	case partnerID != nil:
		sql = sql.Where("partner_id = ?", *partnerID)
	case includeFleetWide:
		sql = sql.Where("partner_id IS NULL")
	default:
		// No tenant scope and no fleet visibility: empty feed.
		return []notification.Notification{}, nil
	}

	var entities []dbschema.Notification
	if err := sql.Order("created_at DESC").Find(&entities).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list notification feed",
			err,
			"f1d6a3c8-9e45-4b72-8c0d-5a2b7e4f9c16",
		)
	}

	notifications := make([]notification.Notification, 0, len(entities))
	for i := range entities {
		notifications = append(notifications, *entities[i].EtoD())
	}
	return notifications, nil
}

func (repo *NotificationGormRepository) Create(ctx context.Context, n *notification.Notification) (*notification.Notification, error) {
	entity := dbschema.NewSchemaNotification(n)
	if entity.ID == uuid.Nil {
		entity.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create notification",
			err,
			"4c7e9b2d-1a58-4f36-b0c9-8e3d6f5a2b74",
		)
	}
	return entity.EtoD(), nil
}

func (repo *NotificationGormRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&dbschema.Notification{})
	if result.Error != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete expired notifications",
			result.Error,
			"a8b5f2e7-3d91-4c04-9f6a-2e7c1d8b4f53",
		)
	}
	return result.RowsAffected, nil
}

func (repo *NotificationGormRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&dbschema.Notification{}).
		Where("expires_at IS NULL OR expires_at > NOW()").
		Count(&count).
		Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count active notifications",
			err,
			"3e1c7d9a-6f42-4b85-a0d3-9c5e2f8b6a17",
		)
	}
	return count, nil
}
