package cloudinary

import (
	"bytes"
	"context"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func boolPtr(b bool) *bool {
	return &b
}

// UploadBytes stores b under folder/filename and returns its https URL.
// Re-uploading the same name replaces the previous image.
func (u *CloudinaryUploader) UploadBytes(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (string, error) {
	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:         folder,
			PublicID:       filename,
			ResourceType:   "image",
			Overwrite:      boolPtr(true),
			Invalidate:     boolPtr(true),
			UniqueFilename: boolPtr(false),
		},
	)
	if err != nil {
		return "", err
	}

	return res.SecureURL, nil
}
