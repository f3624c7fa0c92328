package service

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"tradeverse/config"
	"tradeverse/pkg/response"
	"tradeverse/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// 允许上传的扩展名
var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

const defaultMaxUploadSize = 10 << 20 // 10MB

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*types.UploadResponse, error)
}

type UploadService struct {
	Config    *config.Config
	OssClient *oss.Client
}

// Upload 上传附件。文件名用 uuid 重新生成，按日期分目录，
// 根据配置落到本地磁盘或 OSS
func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader) (*types.UploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExts[ext] {
		return nil, response.NewError(400, "不支持的文件类型")
	}

	maxSize := s.Config.Upload.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxUploadSize
	}
	if file.Size > maxSize {
		return nil, response.NewError(400, "文件大小超过限制")
	}

	object := path.Join("upload", time.Now().Format("2006/0102"), uuid.NewString()+ext)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// 图片类文件按内容校验，防止改后缀混进来
	if ext != ".pdf" {
		if _, _, err := image.DecodeConfig(src); err != nil {
			return nil, response.NewError(400, "文件内容不是有效的图片")
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	if s.Config.Upload.Driver == "oss" && s.OssClient != nil {
		_, err = s.OssClient.PutObject(ctx, &oss.PutObjectRequest{
			Bucket: oss.Ptr(s.Config.Oss.Bucket),
			Key:    oss.Ptr(object),
			Body:   src,
		})
		if err != nil {
			return nil, err
		}
		url := fmt.Sprintf("https://%s.%s/%s", s.Config.Oss.Bucket, s.Config.Oss.Endpoint, object)
		return &types.UploadResponse{URL: url, Size: file.Size}, nil
	}

	dst := filepath.Join(s.Config.Upload.StaticRoot, filepath.FromSlash(object))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, err
	}
	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer out.Close()
	if _, err := out.ReadFrom(src); err != nil {
		return nil, err
	}

	return &types.UploadResponse{URL: "/static/" + object, Size: file.Size}, nil
}
