package drive

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/guidecr/placebot/internal/domain"
)

// fakeDrive records folder lookups, folder creations, permission grants,
// and media uploads.
type fakeDrive struct {
	mu            sync.Mutex
	existing      []*gdrive.File // folders returned by files.list
	createdFolder string
	sharedFolder  string
	sharedWith    *gdrive.Permission
	uploads       []string // query-escaped upload request paths
}

func (f *fakeDrive) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case strings.Contains(r.URL.Path, "/upload/"):
			f.uploads = append(f.uploads, r.URL.RawQuery)
			json.NewEncoder(w).Encode(gdrive.File{Id: "photo-id"})
		case strings.Contains(r.URL.Path, "/permissions"):
			parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
			f.sharedFolder = parts[len(parts)-2]
			var perm gdrive.Permission
			json.NewDecoder(r.Body).Decode(&perm)
			f.sharedWith = &perm
			json.NewEncoder(w).Encode(gdrive.Permission{Id: "perm-id"})
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(gdrive.FileList{Files: f.existing})
		case r.Method == http.MethodPost:
			var meta gdrive.File
			json.NewDecoder(r.Body).Decode(&meta)
			f.createdFolder = meta.Name
			json.NewEncoder(w).Encode(gdrive.File{Id: "folder-new"})
		default:
			http.Error(w, "unexpected", http.StatusBadRequest)
		}
	})
}

func newTestStore(t *testing.T, fake *fakeDrive) *Store {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	svc, err := gdrive.NewService(context.Background(),
		option.WithEndpoint(srv.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return NewStore(slog.Default(), svc, "parent-id")
}

func photoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png-bytes"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpload_CreatesFolderWhenAbsent(t *testing.T) {
	t.Parallel()

	fake := &fakeDrive{}
	store := newTestStore(t, fake)
	photos := photoServer(t)

	link, err := store.Upload(context.Background(), "Cafe Luna",
		[]string{photos.URL + "/1.jpg", photos.URL + "/2.jpg"})

	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/drive/folders/folder-new?usp=drive_link", link)
	assert.Equal(t, "Cafe Luna", fake.createdFolder)
	assert.Len(t, fake.uploads, 2)
}

func TestUpload_SharesFolderWithAnyone(t *testing.T) {
	t.Parallel()

	fake := &fakeDrive{existing: []*gdrive.File{{Id: "folder-old", Name: "Cafe Luna"}}}
	store := newTestStore(t, fake)
	photos := photoServer(t)

	_, err := store.Upload(context.Background(), "Cafe Luna", []string{photos.URL + "/1.jpg"})

	require.NoError(t, err)
	assert.Equal(t, "folder-old", fake.sharedFolder)
	require.NotNil(t, fake.sharedWith)
	assert.Equal(t, "anyone", fake.sharedWith.Type)
	assert.Equal(t, "reader", fake.sharedWith.Role)
}

func TestUpload_ReusesExistingFolder(t *testing.T) {
	t.Parallel()

	fake := &fakeDrive{existing: []*gdrive.File{{Id: "folder-old", Name: "Cafe Luna"}}}
	store := newTestStore(t, fake)
	photos := photoServer(t)

	link, err := store.Upload(context.Background(), "Cafe Luna", []string{photos.URL + "/1.jpg"})

	require.NoError(t, err)
	assert.Contains(t, link, "folder-old")
	assert.Empty(t, fake.createdFolder, "no second folder for the same card")
}

func TestUpload_DownloadFailureAborts(t *testing.T) {
	t.Parallel()

	fake := &fakeDrive{existing: []*gdrive.File{{Id: "folder-old"}}}
	store := newTestStore(t, fake)

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(broken.Close)

	_, err := store.Upload(context.Background(), "Cafe Luna", []string{broken.URL + "/1.jpg"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Empty(t, fake.uploads)
}
