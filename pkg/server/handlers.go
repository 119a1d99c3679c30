package server

import (
	"Board/handler"
)

type Handlers struct {
	User     *handler.User
	Post     *handler.Post
	Comments *handler.CommentsHandler
}
