package cdn

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// DirReport summarizes one UploadDir run.
type DirReport struct {
	Uploaded []string
	Skipped  []string
	Failed   map[string]error
}

// ResultHook is called once per visited file.
type ResultHook func(path string, res *UploadResult, err error)

// PublicIDFor derives the remote id from a file's path relative to root:
// slash separated, extension dropped.
func PublicIDFor(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel)), nil
}

// UploadDir walks root and uploads every regular file once with
// overwrite disabled, so re-running over the same tree leaves existing
// remote assets untouched. A failed upload is recorded and the walk goes on.
func UploadDir(ctx context.Context, up Uploader, root, folder string, hook ResultHook) (*DirReport, error) {
	report := &DirReport{Failed: make(map[string]error)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			report.Failed[path] = walkErr
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") && path != root {
			report.Skipped = append(report.Skipped, path)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		publicID, err := PublicIDFor(root, path)
		if err != nil {
			report.Failed[path] = err
			return nil
		}

		res, err := up.Upload(ctx, path, UploadRequest{
			PublicID:     publicID,
			Folder:       folder,
			ResourceType: "auto",
			Overwrite:    false,
		})
		if hook != nil {
			hook(path, res, err)
		}
		if err != nil {
			report.Failed[path] = err
			return nil
		}
		report.Uploaded = append(report.Uploaded, path)
		return nil
	})
	if err != nil {
		return report, err
	}
	return report, nil
}
