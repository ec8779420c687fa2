package businessflow

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	imagedraw "image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PlayWithMagic/PlayWithMagic/models"
	"github.com/PlayWithMagic/PlayWithMagic/repository"
	"github.com/PlayWithMagic/PlayWithMagic/utils"

	"github.com/PlayWithMagic/PlayWithMagic/app/dto"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// PhotoFlow defines operations for profile photo uploads.
type PhotoFlow interface {
	UploadPhoto(ctx context.Context, magicianID uint, filename string, size int64, file io.Reader, metadata *ClientMetadata) (*dto.PhotoUploadResponse, error)
}

// PhotoFlowImpl implements PhotoFlow.
type PhotoFlowImpl struct {
	magicianRepo repository.MagicianRepository
	auditRepo    repository.AuditLogRepository
	uploadDir    string
}

// NewPhotoFlow creates a new photo flow instance.
func NewPhotoFlow(magicianRepo repository.MagicianRepository, auditRepo repository.AuditLogRepository, uploadDir string) PhotoFlow {
	return &PhotoFlowImpl{
		magicianRepo: magicianRepo,
		auditRepo:    auditRepo,
		uploadDir:    uploadDir,
	}
}

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadPhoto stores a profile photo for the magician, generates a square
// thumbnail, and records the photo URL on the profile.
func (f *PhotoFlowImpl) UploadPhoto(ctx context.Context, magicianID uint, filename string, size int64, file io.Reader, metadata *ClientMetadata) (*dto.PhotoUploadResponse, error) {
	magician, err := f.magicianRepo.ByID(ctx, magicianID)
	if err != nil {
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", err)
	}
	if magician == nil {
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", ErrMagicianNotFound)
	}

	if size <= 0 || size > utils.MaxPhotoSizeBytes {
		return nil, NewBusinessError("PHOTO_TOO_LARGE", "Photo upload failed", ErrPhotoTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedPhotoExts[ext] {
		return nil, NewBusinessError("UNSUPPORTED_PHOTO_FORMAT", "Photo upload failed", ErrUnsupportedPhotoFormat)
	}

	data, err := io.ReadAll(io.LimitReader(file, utils.MaxPhotoSizeBytes+1))
	if err != nil {
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", err)
	}
	if int64(len(data)) > utils.MaxPhotoSizeBytes {
		return nil, NewBusinessError("PHOTO_TOO_LARGE", "Photo upload failed", ErrPhotoTooLarge)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, NewBusinessError("UNSUPPORTED_PHOTO_FORMAT", "Photo upload failed", ErrUnsupportedPhotoFormat)
	}

	photoName := uuid.New().String()
	photoPath := filepath.Join(f.uploadDir, photoName+ext)
	thumbPath := filepath.Join(f.uploadDir, photoName+"_thumb.jpg")

	if err := os.MkdirAll(f.uploadDir, 0o755); err != nil {
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", err)
	}

	if err := os.WriteFile(photoPath, data, 0o644); err != nil {
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", err)
	}

	thumb := resizePhoto(img, utils.PhotoThumbnailPx)
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		_ = os.Remove(photoPath)
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", err)
	}
	if err := os.WriteFile(thumbPath, buf.Bytes(), 0o644); err != nil {
		_ = os.Remove(photoPath)
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", err)
	}

	photoURL := "/uploads/" + photoName + ext
	magician.PhotoURL = &photoURL
	magician.UpdatedAt = utils.UTCNow()

	if err := f.magicianRepo.Save(ctx, magician); err != nil {
		_ = os.Remove(photoPath)
		_ = os.Remove(thumbPath)
		return nil, NewBusinessError("PHOTO_UPLOAD_FAILED", "Photo upload failed", err)
	}

	msg := fmt.Sprintf("Photo uploaded for magician %d", magician.ID)
	_ = f.createAuditLog(ctx, magician, models.AuditActionPhotoUploaded, msg, true, nil, metadata)

	bounds := img.Bounds()

	return &dto.PhotoUploadResponse{
		Message:      "Photo uploaded successfully",
		PhotoURL:     photoURL,
		ThumbnailURL: "/uploads/" + photoName + "_thumb.jpg",
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		SizeBytes:    int64(len(data)),
	}, nil
}

// resizePhoto scales the image down so its longer side fits maxDim.
func resizePhoto(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	nw, nh := maxDim, maxDim
	if w > h {
		nh = h * maxDim / w
	} else {
		nw = w * maxDim / h
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	imagedraw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, imagedraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func (f *PhotoFlowImpl) createAuditLog(ctx context.Context, magician *models.Magician, action, description string, success bool, errorMsg *string, metadata *ClientMetadata) error {
	var magicianID *uint
	if magician != nil {
		magicianID = &magician.ID
	}

	ipAddress := "127.0.0.1"
	userAgent := ""
	if metadata != nil {
		ipAddress = metadata.IPAddress
		userAgent = metadata.UserAgent
	}

	audit := &models.AuditLog{
		MagicianID:   magicianID,
		Action:       action,
		Description:  &description,
		Success:      utils.ToPtr(success),
		IPAddress:    &ipAddress,
		UserAgent:    &userAgent,
		ErrorMessage: errorMsg,
	}

	return f.auditRepo.Save(ctx, audit)
}
