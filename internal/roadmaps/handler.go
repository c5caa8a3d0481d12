package roadmaps

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/shared/server/respond"
)

// Handler serves roadmap lookups.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler. A nil catalog uses the built-in one.
func NewHandler(catalog *Catalog) *Handler {
	if catalog == nil {
		catalog = Default()
	}
	return &Handler{Catalog: catalog}
}

// RegisterRoutes attaches roadmap routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roadmaps", h.resolve)
	rg.GET("/roadmaps/labels", h.labels)
	rg.GET("/roadmaps/days/:day", h.resolveDay)
}

func (h *Handler) resolve(c *gin.Context) {
	respond.OK(c, h.Catalog.Resolve(c.Query("label")))
}

func (h *Handler) labels(c *gin.Context) {
	respond.OK(c, gin.H{"labels": h.Catalog.Labels()})
}

func (h *Handler) resolveDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "day must be an integer", []map[string]string{
			{"field": "day", "issue": "must be an integer"},
		})
		return
	}
	respond.OK(c, h.Catalog.ResolveDay(day, c.Query("focus")))
}
