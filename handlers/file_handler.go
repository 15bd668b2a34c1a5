package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ops-backend/config/middleware"
	"ops-backend/models"
)

// MaxUploadSize caps a single attachment. The fiber BodyLimit must be above it.
const MaxUploadSize = 10 << 20

type FileStore interface {
	Upload(ctx context.Context, name, contentType, uploadedBy string, src io.Reader) (*models.FileInfo, error)
	Open(ctx context.Context, id string) (*models.FileInfo, []byte, error)
}

type FileHandler struct {
	files FileStore
	log   *zap.Logger
}

func NewFileHandler(files FileStore, log *zap.Logger) *FileHandler {
	return &FileHandler{files: files, log: log}
}

func fileURL(id string) string {
	return "/api/files/" + id
}

// UploadFile godoc
// @Summary Upload an attachment
// @Description Stores the multipart field "file" and returns the reference to put in files, receipt_url or draft_url.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Attachment"
// @Success 201 {object} models.FileInfo
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse
// @Router /files [post]
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return respondError(c, h.log, badRequest("File is required", err))
	}
	if header.Size > MaxUploadSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(models.ErrorResponse{Error: "File is too large"})
	}

	src, err := header.Open()
	if err != nil {
		return respondError(c, h.log, badRequest("Could not read file", err))
	}
	defer src.Close()

	var uploader string
	if claims, ok := middleware.ClaimsFrom(c); ok {
		uploader = claims.UserID
	}

	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	info, err := h.files.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), uploader, src)
	if err != nil {
		return respondError(c, h.log, err)
	}
	info.URL = fileURL(info.ID)

	h.log.Info("file uploaded", zap.String("id", info.ID), zap.Int64("size", info.Size))
	return c.Status(fiber.StatusCreated).JSON(info)
}

// GetFile godoc
// @Summary Download an attachment
// @Tags Files
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse
// @Router /files/{id} [get]
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()

	info, data, err := h.files.Open(ctx, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, notFound("File", err))
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+info.Filename+`"`)
	return c.Send(data)
}
