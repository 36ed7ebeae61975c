package server

import (
	"Pulse/handler"
)

type Handlers struct {
	Auth *handler.Auth
	User *handler.User
	Post *handler.Post
}
