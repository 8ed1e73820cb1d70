package cdn

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCDN keeps one version per folder/public id and only replaces an
// existing asset when overwrite is requested.
type fakeCDN struct {
	mu       sync.Mutex
	assets   map[string]int
	requests []UploadRequest
	failOn   string
}

func newFakeCDN() *fakeCDN {
	return &fakeCDN{assets: make(map[string]int)}
}

func (f *fakeCDN) Upload(ctx context.Context, file interface{}, req UploadRequest) (*UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if f.failOn != "" && req.PublicID == f.failOn {
		return nil, errors.New("boom")
	}

	key := req.Folder + "/" + req.PublicID
	version, exists := f.assets[key]
	if !exists || req.Overwrite {
		version++
		f.assets[key] = version
	}
	return &UploadResult{PublicID: key, Version: version}, nil
}

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(f), 0o644))
	}
	return root
}

func TestUploadDirWalksRecursively(t *testing.T) {
	root := writeTree(t,
		"golems/1.png",
		"golems/armor/gold.png",
		"videos/intro.mp4",
		".DS_Store",
		".cache/ignored.png",
	)
	cdn := newFakeCDN()

	report, err := UploadDir(context.Background(), cdn, root, "rude", nil)
	require.NoError(t, err)

	assert.Len(t, report.Uploaded, 3)
	assert.Empty(t, report.Failed)
	assert.Len(t, report.Skipped, 2)

	ids := make([]string, 0, len(cdn.requests))
	for _, r := range cdn.requests {
		ids = append(ids, r.PublicID)
		assert.False(t, r.Overwrite)
		assert.Equal(t, "rude", r.Folder)
	}
	assert.ElementsMatch(t, []string{"golems/1", "golems/armor/gold", "videos/intro"}, ids)
}

func TestUploadDirTwiceDoesNotReplace(t *testing.T) {
	root := writeTree(t, "golems/1.png")
	cdn := newFakeCDN()

	var versions []int
	hook := func(path string, res *UploadResult, err error) {
		require.NoError(t, err)
		versions = append(versions, res.Version)
	}

	_, err := UploadDir(context.Background(), cdn, root, "rude", hook)
	require.NoError(t, err)
	_, err = UploadDir(context.Background(), cdn, root, "rude", hook)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1}, versions)
	assert.Equal(t, 1, cdn.assets["rude/golems/1"])
}

func TestUploadDirContinuesAfterFailure(t *testing.T) {
	root := writeTree(t, "a.png", "b.png", "c.png")
	cdn := newFakeCDN()
	cdn.failOn = "b"

	report, err := UploadDir(context.Background(), cdn, root, "", nil)
	require.NoError(t, err)

	assert.Len(t, report.Uploaded, 2)
	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed, filepath.Join(root, "b.png"))
}

func TestUploadDirStopsOnCancel(t *testing.T) {
	root := writeTree(t, "a.png", "b.png")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := UploadDir(ctx, newFakeCDN(), root, "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublicIDFor(t *testing.T) {
	root := filepath.FromSlash("/assets")
	id, err := PublicIDFor(root, filepath.Join(root, "golems", "armor", "gold.final.png"))
	require.NoError(t, err)
	assert.Equal(t, "golems/armor/gold.final", id)
}
