package devserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/dmitrijs2005/mediavault/internal/client/models"
)

type Handler struct {
	DB      *gorm.DB
	Storage StorageProvider
}

func NewHandler(db *gorm.DB, storage StorageProvider) *Handler {
	return &Handler{
		DB:      db,
		Storage: storage,
	}
}

// ListAllHandler returns every item, deleted ones included; the client
// projects its own views from the flags.
func (h *Handler) ListAllHandler(c echo.Context) error {
	var items []Item
	if err := h.DB.Order("created_at desc").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch items"})
	}
	return c.JSON(http.StatusOK, items)
}

// ListUserMediaHandler returns the media (no folders) owned by one user.
func (h *Handler) ListUserMediaHandler(c echo.Context) error {
	userID := c.Param("userId")

	var items []Item
	q := h.DB.Where("owner_id = ? AND type <> ?", userID, "folder").Order("created_at desc")
	if err := q.Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch items"})
	}
	return c.JSON(http.StatusOK, items)
}

// UploadHandler stores the file and saves its metadata.
func (h *Handler) UploadHandler(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid file"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not open file"})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not read file"})
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimetype.Detect(data).String()
	}

	id := uuid.NewString()
	path, size, err := h.Storage.SaveFile(bytes.NewReader(data), id+"-"+file.Filename)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save file"})
	}

	now := time.Now().UTC()
	item := Item{
		ID:          id,
		Name:        file.Filename,
		Type:        string(models.ClassifyMime(mimeType)),
		OwnerID:     c.FormValue("userId"),
		URL:         "/files/" + id,
		Size:        size,
		MimeType:    mimeType,
		ParentID:    c.FormValue("parentId"),
		CreatedAt:   now,
		UpdatedAt:   now,
		StoragePath: path,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save metadata"})
	}

	return c.JSON(http.StatusOK, item)
}

// CreateAlbumHandler creates a folder item from query parameters.
func (h *Handler) CreateAlbumHandler(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	now := time.Now().UTC()
	item := Item{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      "folder",
		ParentID:  c.QueryParam("parentId"),
		IsPublic:  c.QueryParam("public") == "true",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create album"})
	}

	return c.JSON(http.StatusOK, item)
}

// FavoriteHandler sets the favorite flag and returns the updated item.
func (h *Handler) FavoriteHandler(c echo.Context) error {
	return h.setFlag(c, func(item *Item) {
		item.IsFavorite = c.QueryParam("favorite") == "true"
	})
}

// TrashHandler sets the soft-delete flag and returns the updated item.
func (h *Handler) TrashHandler(c echo.Context) error {
	return h.setFlag(c, func(item *Item) {
		item.IsDeleted = c.QueryParam("trashed") == "true"
	})
}

func (h *Handler) setFlag(c echo.Context, apply func(*Item)) error {
	var item Item
	if err := h.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	apply(&item)
	item.UpdatedAt = time.Now().UTC()
	if err := h.DB.Save(&item).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update item"})
	}
	return c.JSON(http.StatusOK, item)
}

// DownloadHandler streams a stored blob.
func (h *Handler) DownloadHandler(c echo.Context) error {
	var item Item
	if err := h.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	f, err := h.Storage.GetFile(item.StoragePath)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not read file"})
	}

	mimeType := item.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", item.Name))

	return c.Stream(http.StatusOK, mimeType, f)
}
