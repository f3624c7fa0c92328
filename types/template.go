package types

type CreateTemplateRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Description     string   `json:"description"`
	TitleTemplate   string   `json:"title_template"`
	ContentTemplate string   `json:"content_template"`
	TagsTemplate    []string `json:"tags_template"`
	CategoryID      *uint64  `json:"category_id,string"`
	IsPublic        bool     `json:"is_public"`
}

type UpdateTemplateRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	TitleTemplate   string   `json:"title_template"`
	ContentTemplate string   `json:"content_template"`
	TagsTemplate    []string `json:"tags_template"`
	IsPublic        *bool    `json:"is_public"`
}

// TemplateDraft 由模板实例化出来的草稿内容
type TemplateDraft struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	CategoryID *uint64  `json:"category_id,string,omitempty"`
}
