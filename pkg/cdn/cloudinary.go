package cdn

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrNotConfigured = errors.New("cdn: cloudinary url not configured")

type UploadRequest struct {
	PublicID     string
	Folder       string
	ResourceType string // image, video, raw or auto
	Overwrite    bool
}

type UploadResult struct {
	PublicID  string
	SecureURL string
	Version   int
}

// Uploader sends one asset to the CDN. file is a local path or an io.Reader.
type Uploader interface {
	Upload(ctx context.Context, file interface{}, req UploadRequest) (*UploadResult, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cdn: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file interface{}, req UploadRequest) (*UploadResult, error) {
	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = "auto"
	}

	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       req.PublicID,
		Folder:         req.Folder,
		ResourceType:   resourceType,
		Overwrite:      api.Bool(req.Overwrite),
		Invalidate:     api.Bool(req.Overwrite),
		UniqueFilename: api.Bool(false),
		UseFilename:    api.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("cdn: upload %s: %w", req.PublicID, err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cdn: upload %s: %s", req.PublicID, res.Error.Message)
	}

	return &UploadResult{
		PublicID:  res.PublicID,
		SecureURL: res.SecureURL,
		Version:   res.Version,
	}, nil
}
