package handler

import (
	"net/http"

	"tradeverse/config"
	"tradeverse/middleware"
	"tradeverse/pkg/context"
	"tradeverse/pkg/response"
	"tradeverse/service"
	"tradeverse/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	PostService      service.IPostService
	LikeService      service.ILikeService
	BookmarkService  service.IBookmarkService
	RecommendService service.IRecommendService
	ExportService    service.IExportService
	Config           *config.Config
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt.Secret)
	optional := middleware.OptionalAuth(h.Config.Jwt.Secret)

	g := r.Group("/v1/post")
	g.GET("/list", context.Wrap(h.List))
	g.GET("/search", context.Wrap(h.Search))
	g.GET("/series", context.Wrap(h.Series))
	g.GET("/private", authorize, context.Wrap(h.ListPrivate))
	g.GET("/mine", authorize, context.Wrap(h.ListMine))
	g.GET("/bookmarks", authorize, context.Wrap(h.ListBookmarks))
	g.GET("/recommend", authorize, context.Wrap(h.Recommend))
	g.POST("/create", authorize, context.Wrap(h.Create))
	g.GET("/:id", optional, context.Wrap(h.Detail))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/like", authorize, context.Wrap(h.ToggleLike))
	g.POST("/:id/bookmark", authorize, context.Wrap(h.ToggleBookmark))
	g.GET("/:id/export", optional, context.Wrap(h.Export))
}

func (h *Post) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	postID, err := h.PostService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"post_id": postID})
	return nil
}

func (h *Post) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.PostService.Update(c.Request.Context(), userID, context.IsAdmin(c), postID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Post) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.PostService.Delete(c.Request.Context(), userID, context.IsAdmin(c), postID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// Detail 帖子详情，匿名可看公开内容
func (h *Post) Detail(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	viewerID, _ := context.GetUserID(c)

	detail, err := h.PostService.GetDetail(c.Request.Context(), postID, viewerID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Post) List(c *gin.Context) error {
	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.PostService.ListFeed(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) ListPrivate(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.PostService.ListPrivate(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) ListMine(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.PostService.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) Search(c *gin.Context) error {
	var req types.SearchPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.PostService.Search(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) Series(c *gin.Context) error {
	name := c.Query("name")
	if name == "" {
		return response.NewError(http.StatusBadRequest, "缺少系列名")
	}

	items, err := h.PostService.ListSeries(c.Request.Context(), name)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"posts": items})
	return nil
}

func (h *Post) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.LikeService.Toggle(c.Request.Context(), postID, userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) ToggleBookmark(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.BookmarkService.Toggle(c.Request.Context(), postID, userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) ListBookmarks(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.BookmarkService.ListBookmarks(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Post) Recommend(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	items, err := h.RecommendService.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"posts": items})
	return nil
}

// Export 导出帖子，format=html/pdf，默认 html
func (h *Post) Export(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	viewerID, _ := context.GetUserID(c)

	format := c.DefaultQuery("format", "html")
	result, err := h.ExportService.Export(c.Request.Context(), postID, viewerID, format)
	if err != nil {
		return err
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
	return nil
}
