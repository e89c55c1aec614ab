package drive

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// FileInfo is the subset of Drive file metadata the verify listing
// reports.
type FileInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimeType"`
	ModifiedTime time.Time `json:"modifiedTime,omitempty"`
}

// Client wraps the Google Drive API service.
type Client struct {
	service *drive.Service
}

// NewClient creates a Drive client authenticated by ts. The token
// source refreshes transparently, so a short-lived access token behind
// a valid refresh token is enough.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{service: service}, nil
}

// ListFiles returns metadata for up to limit non-trashed files, newest
// first.
func (c *Client) ListFiles(ctx context.Context, limit int64) ([]*FileInfo, error) {
	fileList, err := c.service.Files.List().
		Context(ctx).
		Q("trashed=false").
		OrderBy("modifiedTime desc").
		PageSize(limit).
		Fields("files(id, name, mimeType, modifiedTime)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, 0, len(fileList.Files))
	for _, f := range fileList.Files {
		info := &FileInfo{
			ID:       f.Id,
			Name:     f.Name,
			MimeType: f.MimeType,
		}
		if f.ModifiedTime != "" {
			if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
				info.ModifiedTime = t
			}
		}
		files = append(files, info)
	}
	return files, nil
}
