//go:build wireinject
// +build wireinject

package main

import (
	"Board/config"
	"Board/dao"
	"Board/dao/cache"
	"Board/handler"
	"Board/pkg/client"
	"Board/pkg/database"
	"Board/pkg/jwt"
	"Board/pkg/server"
	"Board/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		jwt.NewIssuer,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil
}

// InitAccountService 运维命令使用，不启动 http 服务
func InitAccountService(cfg *config.Config) (service.IAccountService, error) {
	wire.Build(
		database.NewDB,
		jwt.NewIssuer,
		dao.NewAccounts,
		wire.Struct(new(service.AccountService), "*"),
		wire.Bind(new(service.IAccountService), new(*service.AccountService)),
	)
	return nil, nil
}
