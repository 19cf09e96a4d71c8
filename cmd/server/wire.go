//go:build wireinject

package main

import (
	"portal-server/internal/domain"
	"portal-server/internal/infrastructure"
	"portal-server/internal/interfaces"
	"portal-server/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
