package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// InitCloudinary initializes the Cloudinary client from the environment.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	if os.Getenv("CLOUDINARY_CLOUD_NAME") == "" {
		return nil, fmt.Errorf("cloudinary is not configured")
	}
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
}

// UploadProfileImage uploads a provider or profile image and returns the
// secure URL.
func UploadProfileImage(ctx context.Context, file interface{}, publicID string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "tac-market/profiles",
		Transformation: "c_thumb,w_400,h_400",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
