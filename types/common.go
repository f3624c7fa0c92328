package types

const (
	DefaultPageSize int = 20 // 默认每页数量
	MaxPageSize     int = 100
)

type PageRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize 统一分页参数边界
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

func (p *PageRequest) Limit() int  { return p.PageSize }
func (p *PageRequest) Offset() int { return (p.Page - 1) * p.PageSize }
