package exhibitor

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketboard/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)        // GET /exhibitors
	rg.GET("/:id", h.getByID) // GET /exhibitors/:id
}

// RegisterCategoryRoutes exposes the fixed filter choices with their
// presentation styles, ALL first.
func (h *Handler) RegisterCategoryRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.categories)
}

func (h *Handler) list(c *gin.Context) {
	category := c.Query("category")
	if category == string(models.FilterAll) {
		category = ""
	}

	items, err := h.Repo.List(c.Request.Context(), category)
	if err != nil {
		// read failures degrade to an empty catalog, never an error page
		log.Printf("[exhibitor] list failed: %v", err)
		items = []models.Exhibitor{}
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")
	e, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get failed"})
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) categories(c *gin.Context) {
	type choice struct {
		Category models.Category      `json:"category"`
		Style    models.CategoryStyle `json:"style"`
	}

	choices := make([]choice, 0, len(models.FilterChoices))
	for _, cat := range models.FilterChoices {
		choices = append(choices, choice{Category: cat, Style: models.CategoryStyles[cat]})
	}
	c.JSON(http.StatusOK, gin.H{"choices": choices})
}
