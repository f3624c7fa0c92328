package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/log"
	"tradeverse/pkg/response"
	"tradeverse/pkg/utils"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

var _ IExportService = (*ExportService)(nil)

type IExportService interface {
	Export(ctx context.Context, postID uint64, viewerID uint64, format string) (*ExportResult, error)
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportService struct {
	PostDAO  *dao.PostDAO
	UsersDAO *dao.Users
}

// Export 把帖子导出为独立文档。format 支持 html 和 pdf，
// PDF 生成失败时回退到 HTML
func (s *ExportService) Export(ctx context.Context, postID uint64, viewerID uint64, format string) (*ExportResult, error) {
	post, err := s.loadPost(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}

	author := ""
	if user, err := s.UsersDAO.FindById(ctx, post.UserID); err == nil {
		author = user.Username
	}

	if format == "pdf" {
		data, err := s.renderPDF(post, author)
		if err == nil {
			return &ExportResult{
				Filename:    fmt.Sprintf("post-%d.pdf", post.ID),
				ContentType: "application/pdf",
				Data:        data,
			}, nil
		}
		log.L.Warn("pdf export failed, falling back to html",
			zap.Uint64("post_id", post.ID), zap.Error(err))
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("post-%d.html", post.ID),
		ContentType: "text/html; charset=utf-8",
		Data:        s.renderHTML(post, author),
	}, nil
}

func (s *ExportService) loadPost(ctx context.Context, postID uint64, viewerID uint64) (*models.Post, error) {
	post, err := s.PostDAO.GetVisible(ctx, postID, time.Now())
	if err != nil {
		return nil, err
	}
	if post != nil {
		return post, nil
	}

	owned, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(404, "帖子不存在")
		}
		return nil, err
	}
	if viewerID == 0 || owned.UserID != viewerID {
		return nil, response.NewError(404, "帖子不存在")
	}
	return owned, nil
}

func (s *ExportService) renderHTML(post *models.Post, author string) []byte {
	var tags []string
	_ = json.Unmarshal(post.Tags, &tags)

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n</head>\n<body>\n", html.EscapeString(post.Title))
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(post.Title))
	fmt.Fprintf(&buf, "<p>%s · %s · 约 %d 分钟</p>\n",
		html.EscapeString(author),
		post.CreatedAt.Format("2006-01-02"),
		utils.ReadingTime(post.Content))
	if len(tags) > 0 {
		fmt.Fprintf(&buf, "<p>%s</p>\n", html.EscapeString(strings.Join(tags, " / ")))
	}
	fmt.Fprintf(&buf, "<div>%s</div>\n", post.Content)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

func (s *ExportService) renderPDF(post *models.Post, author string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(post.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 10, post.Title, "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s · %s", author, post.CreatedAt.Format("2006-01-02")), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, utils.StripHTML(post.Content), "", "L", false)

	var buf bytes.Buffer
	if err := pdfOutput(pdf, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var pdfOutput = func(pdf *gofpdf.Fpdf, w io.Writer) error {
	return pdf.Output(w)
}
