package server

import (
	"tradeverse/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	User        *handler.User
	Post        *handler.Post
	Follow      *handler.Follow
	Comment     *handler.Comment
	Category    *handler.Category
	ReadingList *handler.ReadingList
	Template    *handler.Template
	Feed        *handler.Feed
	Upload      *handler.Upload
}
