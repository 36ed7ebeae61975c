package service

import (
	"Pulse/dao"
	"Pulse/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Bind(new(UserRepository), new(*dao.Users)),
	wire.Bind(new(PostRepository), new(*dao.PostDAO)),
	wire.Bind(new(LikeRepository), new(*dao.LikeDAO)),
	wire.Bind(new(LikeCountCache), new(*cache.LikeCountStorage)),
)
