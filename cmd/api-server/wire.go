//go:build wireinject
// +build wireinject

package main

import (
	"tradeverse/config"
	"tradeverse/dao"
	"tradeverse/handler"
	"tradeverse/pkg/client"
	"tradeverse/pkg/database"
	"tradeverse/pkg/oss"
	"tradeverse/pkg/server"
	"tradeverse/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		oss.GetOssClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.ReadingList), "*"),
		wire.Struct(new(handler.Template), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Upload), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
