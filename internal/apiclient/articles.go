package apiclient

import (
	"context"
	"net/http"

	"github.com/walkingguide-web/internal/models"
)

// Articles returns the /articles collection
func (c *Client) Articles() *Resource[models.Article] {
	return NewResource[models.Article](c, "/articles")
}

// ReportArticle files a report against an article
func (c *Client) ReportArticle(ctx context.Context, articleID int64, reason string) error {
	return c.do(ctx, http.MethodPost, idPath("/articles", articleID)+"/report", nil, map[string]string{"reason": reason}, nil)
}

// ArticleReports lists all reports (admin)
func (c *Client) ArticleReports(ctx context.Context) ([]models.ArticleReport, error) {
	var reports []models.ArticleReport
	if err := c.do(ctx, http.MethodGet, "/article-reports", nil, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// ResolveArticleReport closes a report (admin)
func (c *Client) ResolveArticleReport(ctx context.Context, reportID int64, status string) error {
	return c.do(ctx, http.MethodPut, idPath("/article-reports", reportID), nil, map[string]string{"status": status}, nil)
}

// LikeStatus returns the like count and whether the caller liked the article
func (c *Client) LikeStatus(ctx context.Context, articleID int64) (*models.LikeStatus, error) {
	var status models.LikeStatus
	if err := c.do(ctx, http.MethodGet, idPath("/article-likes/article", articleID), nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ToggleLike likes or unlikes an article
func (c *Client) ToggleLike(ctx context.Context, articleID int64) (*models.LikeStatus, error) {
	var status models.LikeStatus
	body := map[string]int64{"article_id": articleID}
	if err := c.do(ctx, http.MethodPost, "/article-likes/toggle", nil, body, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Comments lists comments on an article
func (c *Client) Comments(ctx context.Context, articleID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, idPath("/article-comments/article", articleID), nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment posts a comment
func (c *Client) AddComment(ctx context.Context, articleID int64, content string) (*models.Comment, error) {
	var comment models.Comment
	body := map[string]any{"article_id": articleID, "content": content}
	if err := c.do(ctx, http.MethodPost, "/article-comments", nil, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/article-comments", commentID), nil, nil, nil)
}
