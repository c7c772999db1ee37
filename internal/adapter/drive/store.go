// Package drive uploads place photos into per-card Google Drive folders.
package drive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/guidecr/placebot/internal/domain"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Store is a blob store backed by the Google Drive API. Photos land in a
// folder named after the card, created under the configured parent.
type Store struct {
	svc            *gdrive.Service
	httpClient     *http.Client
	parentFolderID string
	log            *slog.Logger
}

// NewStore creates a Store over an authenticated Drive service.
func NewStore(logger *slog.Logger, svc *gdrive.Service, parentFolderID string) *Store {
	return &Store{
		svc:            svc,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		parentFolderID: parentFolderID,
		log:            logger.With("adapter", "drive"),
	}
}

// Upload downloads every source URL and stores the bytes in the card's
// folder, creating the folder if needed. Returns the folder's shareable
// link. Any failure aborts the whole batch.
func (s *Store) Upload(ctx context.Context, folderName string, sourceURLs []string) (string, error) {
	folderID, err := s.findFolder(ctx, folderName)
	if err != nil {
		return "", err
	}
	if folderID == "" {
		folderID, err = s.createFolder(ctx, folderName)
		if err != nil {
			return "", err
		}
	}

	if err := s.shareFolder(ctx, folderID); err != nil {
		return "", err
	}

	for i, src := range sourceURLs {
		name := fmt.Sprintf("%s_%02d.png", folderName, i+1)
		if err := s.uploadOne(ctx, folderID, name, src); err != nil {
			return "", err
		}
	}

	link := fmt.Sprintf("https://drive.google.com/drive/folders/%s?usp=drive_link", folderID)
	s.log.InfoContext(ctx, "photos uploaded",
		slog.String("folder", folderName),
		slog.Int("count", len(sourceURLs)),
	)
	return link, nil
}

// findFolder returns the ID of the first folder matching the name, or ""
// when none exists. Listing is paged.
func (s *Store) findFolder(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false",
		folderMimeType, strings.ReplaceAll(name, `'`, `\'`))

	pageToken := ""
	for {
		call := s.svc.Files.List().Q(query).Fields("nextPageToken, files(id, name)").Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return "", upstream("list folders", err)
		}
		if len(resp.Files) > 0 {
			return resp.Files[0].Id, nil
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			return "", nil
		}
	}
}

func (s *Store) createFolder(ctx context.Context, name string) (string, error) {
	meta := &gdrive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{s.parentFolderID},
	}
	folder, err := s.svc.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", upstream("create folder", err)
	}
	s.log.InfoContext(ctx, "folder created",
		slog.String("name", name),
		slog.String("folder_id", folder.Id),
	)
	return folder.Id, nil
}

// shareFolder grants anyone-with-the-link read access so the returned
// folder URL actually opens for notification recipients and sheet readers.
func (s *Store) shareFolder(ctx context.Context, folderID string) error {
	perm := &gdrive.Permission{Type: "anyone", Role: "reader"}
	if _, err := s.svc.Permissions.Create(folderID, perm).Context(ctx).Do(); err != nil {
		return upstream("share folder", err)
	}
	return nil
}

func (s *Store) uploadOne(ctx context.Context, folderID, name, sourceURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return fmt.Errorf("drive: build download request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return upstream("download photo", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return upstream("download photo", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	meta := &gdrive.File{Name: name, Parents: []string{folderID}}
	_, err = s.svc.Files.Create(meta).
		Media(resp.Body, googleapi.ContentType("image/png")).
		Context(ctx).Do()
	if err != nil {
		return upstream("upload photo", err)
	}
	return nil
}

func upstream(op string, err error) error {
	return fmt.Errorf("drive: %s: %w", op, errors.Join(domain.ErrUpstream, err))
}
