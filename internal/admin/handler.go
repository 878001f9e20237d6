// Package admin is the authenticated management surface: create, edit
// and delete exhibitor records, including their uploaded images. Every
// successful mutation is announced on the live hub so open management
// views refresh without polling.
package admin

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marketboard/internal/imagestore"
	"marketboard/internal/live"
	"marketboard/pkg/models"
)

// Store is the slice of the exhibitor repository the admin surface
// needs. *exhibitor.Repo satisfies it.
type Store interface {
	List(ctx context.Context, category string) ([]models.Exhibitor, error)
	GetByID(ctx context.Context, id string) (*models.Exhibitor, error)
	Create(ctx context.Context, e models.Exhibitor) error
	Update(ctx context.Context, e models.Exhibitor) error
	Delete(ctx context.Context, id string) (bool, error)
}

type Handler struct {
	Repo   Store
	Images imagestore.Store
	Hub    *live.Hub

	// one mutation at a time; duplicate submits get 409
	inFlight atomic.Bool
}

func NewHandler(repo Store, images imagestore.Store, hub *live.Hub) *Handler {
	return &Handler{Repo: repo, Images: images, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context(), "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

// begin flips the in-flight flag, or reports a save already running.
func (h *Handler) begin(c *gin.Context) bool {
	if !h.inFlight.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "another save is in progress"})
		return false
	}
	return true
}

func (h *Handler) end() {
	h.inFlight.Store(false)
}

// formRecord reads the multipart fields into a record, validating
// before any store or storage I/O happens.
func formRecord(c *gin.Context) (models.Exhibitor, string, bool) {
	e := models.Exhibitor{
		Name:         strings.TrimSpace(c.PostForm("name")),
		ShortDesc:    strings.TrimSpace(c.PostForm("short_desc")),
		LongDesc:     strings.TrimSpace(c.PostForm("long_desc")),
		WebsiteURL:   strings.TrimSpace(c.PostForm("website_url")),
		Address:      strings.TrimSpace(c.PostForm("address")),
		FacebookURL:  strings.TrimSpace(c.PostForm("facebook_url")),
		InstagramURL: strings.TrimSpace(c.PostForm("instagram_url")),
		TwitterURL:   strings.TrimSpace(c.PostForm("twitter_url")),
	}

	if e.Name == "" {
		return e, "name is required", false
	}

	rawCategory := strings.TrimSpace(c.PostForm("category"))
	category, ok := models.ParseCategory(rawCategory)
	if !ok {
		return e, "category must be one of: 農家, 飲食, カフェ, クラフト", false
	}
	e.Category = category

	return e, "", true
}

// saveImage stores a fresh upload, if the form carries one. Returns the
// new storage key, or "" when no file was sent.
func (h *Handler) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil // no upload
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return h.Images.Save(c.Request.Context(), file.Filename, src)
}

func (h *Handler) create(c *gin.Context) {
	if !h.begin(c) {
		return
	}
	defer h.end()

	e, msg, ok := formRecord(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	imageRef, err := h.saveImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return
	}
	e.ImageURL = imageRef
	e.ID = uuid.NewString()

	if err := h.Repo.Create(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	h.broadcast(live.EventCreated, e.ID, &e)
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) update(c *gin.Context) {
	if !h.begin(c) {
		return
	}
	defer h.end()

	id := strings.TrimSpace(c.Param("id"))

	e, msg, ok := formRecord(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	existing, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch failed"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	e.ID = id
	e.ImageURL = existing.ImageURL

	if _, err := c.FormFile("image"); err == nil {
		// replacing: drop the old image first, best-effort
		if existing.ImageURL != "" {
			if err := h.Images.Delete(c.Request.Context(), existing.ImageURL); err != nil {
				log.Printf("[admin] warn: could not delete old image %s: %v", existing.ImageURL, err)
			}
		}
		ref, err := h.saveImage(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			return
		}
		e.ImageURL = ref
	}

	if err := h.Repo.Update(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	h.broadcast(live.EventUpdated, id, &e)
	c.JSON(http.StatusOK, e)
}

func (h *Handler) remove(c *gin.Context) {
	if !h.begin(c) {
		return
	}
	defer h.end()

	id := strings.TrimSpace(c.Param("id"))

	// the API analogue of the confirmation dialog
	if c.Query("confirm") != "true" && c.PostForm("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirm=true required to delete"})
		return
	}

	existing, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "fetch failed"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	// image cleanup never blocks the record delete
	if existing.ImageURL != "" {
		if err := h.Images.Delete(c.Request.Context(), existing.ImageURL); err != nil {
			log.Printf("[admin] warn: could not delete image %s: %v", existing.ImageURL, err)
		}
	}

	h.broadcast(live.EventDeleted, id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) broadcast(eventType, id string, e *models.Exhibitor) {
	if h.Hub == nil {
		return
	}
	h.Hub.Broadcast(live.Event{
		Type:      eventType,
		ID:        id,
		Exhibitor: e,
		At:        time.Now().UTC(),
	})
}
