package types

type CreateReadingListRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type UpdateReadingListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

type ListPostOpRequest struct {
	PostID uint64 `json:"post_id,string" binding:"required"`
}
