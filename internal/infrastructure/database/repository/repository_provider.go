package repository

import (
	"portal-server/internal/infrastructure/database/repository/deliverablerepo"
	"portal-server/internal/infrastructure/database/repository/identityrepo"
	"portal-server/internal/infrastructure/database/repository/notificationrepo"
	"portal-server/internal/infrastructure/database/repository/partnerrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	identityrepo.NewIdentityGormRepository,
	partnerrepo.NewPartnerGormRepository,
	deliverablerepo.NewDeliverableGormRepository,
	notificationrepo.NewNotificationGormRepository,
)
