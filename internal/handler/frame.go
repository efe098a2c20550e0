package handler

import (
	"FrameVault/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UploadFrames stores the multipart payloads from the "frames" field and
// returns the created frame records in input order.
func (h *Handler) UploadFrames(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "no files to upload"})
		return
	}
	fileHeaders := form.File["frames"]

	inputs := make([]service.UploadInput, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			internalError(c)
			return
		}
		defer file.Close()
		inputs = append(inputs, service.UploadInput{
			Reader:      file,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}

	frames, err := h.frames.Upload(c.Request.Context(), inputs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTooManyFiles):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "too many files to upload"})
		case errors.Is(err, service.ErrNoFiles):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "no files to upload"})
		default:
			internalError(c)
		}
		return
	}
	c.JSON(http.StatusCreated, frames)
}

// ListFrames returns the frames matching the id query parameters, each
// with a temporary download URL.
func (h *Handler) ListFrames(c *gin.Context) {
	ids, ok := parseIDs(c)
	if !ok {
		return
	}
	frames, err := h.frames.List(c.Request.Context(), ids)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, frames)
}

// DeleteFrames removes the frames matching the id query parameters.
// Unknown ids are skipped silently.
func (h *Handler) DeleteFrames(c *gin.Context) {
	ids, ok := parseIDs(c)
	if !ok {
		return
	}
	if err := h.frames.Delete(c.Request.Context(), ids); err != nil {
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseIDs(c *gin.Context) ([]uint64, bool) {
	raw := c.QueryArray("id")
	if len(raw) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "query parameter id is required"})
		return nil, false
	}
	ids := make([]uint64, 0, len(raw))
	for _, value := range raw {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid id: " + value})
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
