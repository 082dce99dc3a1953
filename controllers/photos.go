package controllers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nfnt/resize"

	"github.com/vd437/quick-cash-control/config"
)

const (
	maxFileSize       = 5 * 1024 * 1024
	compressThreshold = 100 * 1024
	mainImageWidth    = 800
	previewSize       = 300
)

// PhotoStorage saves product photos either to local disk under the uploads
// directory or to S3 when an endpoint is configured. Large images are
// recompressed and every photo gets a square preview thumbnail.
type PhotoStorage struct {
	dir       string
	s3        *minio.Client
	bucket    string
	cdnDomain string
}

func NewPhotoStorage(cfg config.Config) (*PhotoStorage, error) {
	ps := &PhotoStorage{dir: cfg.UploadDir}
	if cfg.S3Endpoint == "" {
		return ps, nil
	}
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client: %v", err)
	}
	ps.s3 = client
	ps.bucket = cfg.S3Bucket
	ps.cdnDomain = cfg.CDNDomain
	return ps, nil
}

// Save stores the uploaded photo and returns the main and preview URLs.
func (ps *PhotoStorage) Save(ctx context.Context, file *multipart.FileHeader, productID int) (string, string, error) {
	if file.Size > maxFileSize {
		return "", "", fmt.Errorf("file size exceeds the 5MB limit")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", "", fmt.Errorf("unsupported file format: %s", contentType)
	}

	srcFile, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer srcFile.Close()

	originalData, err := io.ReadAll(srcFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to read image data: %v", err)
	}

	var img image.Image
	if contentType == "image/png" {
		img, err = png.Decode(bytes.NewReader(originalData))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(originalData))
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %v", err)
	}

	var bufMain bytes.Buffer
	if file.Size >= compressThreshold {
		resized := resize.Resize(mainImageWidth, 0, img, resize.Lanczos3)
		if err := jpeg.Encode(&bufMain, resized, &jpeg.Options{Quality: 80}); err != nil {
			return "", "", fmt.Errorf("failed to encode resized image: %v", err)
		}
	} else {
		bufMain.Write(originalData)
	}

	preview := resize.Thumbnail(previewSize, previewSize, img, resize.Lanczos3)
	var bufPreview bytes.Buffer
	if err := jpeg.Encode(&bufPreview, preview, &jpeg.Options{Quality: 75}); err != nil {
		return "", "", fmt.Errorf("failed to encode preview image: %v", err)
	}

	baseName := fmt.Sprintf("products/%d_%d", productID, time.Now().Unix())
	mainName := baseName + ".jpg"
	previewName := baseName + "_preview.jpg"

	if ps.s3 != nil {
		return ps.saveS3(ctx, mainName, previewName, &bufMain, &bufPreview)
	}
	return ps.saveLocal(mainName, previewName, &bufMain, &bufPreview)
}

func (ps *PhotoStorage) saveS3(ctx context.Context, mainName, previewName string, main, preview *bytes.Buffer) (string, string, error) {
	opts := minio.PutObjectOptions{ContentType: "image/jpeg"}
	if _, err := ps.s3.PutObject(ctx, ps.bucket, mainName, main, int64(main.Len()), opts); err != nil {
		return "", "", fmt.Errorf("failed to upload main image to S3: %v", err)
	}
	if _, err := ps.s3.PutObject(ctx, ps.bucket, previewName, preview, int64(preview.Len()), opts); err != nil {
		return "", "", fmt.Errorf("failed to upload preview image to S3: %v", err)
	}
	return fmt.Sprintf("https://%s/%s", ps.cdnDomain, mainName),
		fmt.Sprintf("https://%s/%s", ps.cdnDomain, previewName), nil
}

func (ps *PhotoStorage) saveLocal(mainName, previewName string, main, preview *bytes.Buffer) (string, string, error) {
	productDir := filepath.Join(ps.dir, "products")
	if err := os.MkdirAll(productDir, os.ModePerm); err != nil {
		return "", "", fmt.Errorf("failed to create product directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(ps.dir, mainName), main.Bytes(), 0644); err != nil {
		return "", "", fmt.Errorf("failed to save product photo: %v", err)
	}
	if err := os.WriteFile(filepath.Join(ps.dir, previewName), preview.Bytes(), 0644); err != nil {
		return "", "", fmt.Errorf("failed to save preview photo: %v", err)
	}
	return "/uploads/" + mainName, "/uploads/" + previewName, nil
}
