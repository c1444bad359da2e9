package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/ava1313/Portfolio-sub000/config/database"
	"github.com/ava1313/Portfolio-sub000/config/environment"
	"github.com/ava1313/Portfolio-sub000/utils"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

type StorageService struct {
	Bucket *gcs.BucketHandle
}

// NewStorageService initializes StorageService with the default bucket
func NewStorageService() *StorageService {
	return &StorageService{
		Bucket: database.GetStorageBucket(),
	}
}

// UploadBusinessPhoto streams an uploaded image into the bucket under the
// business's folder and returns its public URL
func (s *StorageService) UploadBusinessPhoto(ctx context.Context, businessID string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", utils.NewCustomError(http.StatusBadRequest, "Failed to read uploaded file")
	}
	defer file.Close()

	objectName := fmt.Sprintf("businesses/%s/%s%s", businessID, uuid.New().String(), filepath.Ext(fileHeader.Filename))

	writer := s.Bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = fileHeader.Header.Get("Content-Type")

	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		log.Printf("Error uploading photo for business %s: %v", businessID, err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to upload photo")
	}
	if err := writer.Close(); err != nil {
		log.Printf("Error finalizing photo upload for business %s: %v", businessID, err)
		return "", utils.NewCustomError(http.StatusInternalServerError, "Failed to upload photo")
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", environment.GetStorageBucket(), objectName), nil
}
