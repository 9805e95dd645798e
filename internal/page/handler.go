package page

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/k-weng/houston-restaurant-week-2023/internal/core"
	"github.com/k-weng/houston-restaurant-week-2023/internal/restaurant"
	"github.com/k-weng/houston-restaurant-week-2023/internal/table"
)

type Handler struct {
	source core.RestaurantSource
	links  table.Links
}

func NewHandler(source core.RestaurantSource, links table.Links) *Handler {
	return &Handler{source: source, links: links}
}

type headerView struct {
	table.Header
	SortHref string
}

type indexView struct {
	Headers []headerView
	Rows    []table.Row
	Shown   int
	Total   int
	Active  bool
	Sort    string
}

// --------------------------------------------------
// GET /
// --------------------------------------------------
func (h *Handler) Index(c *gin.Context) {
	tbl, err := h.load(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		log.Printf("[PAGE] load failed request_id=%s: %v", c.GetString("requestID"), err)
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"RequestID": c.GetString("requestID"),
		})
		return
	}

	headers := tbl.Headers()
	views := make([]headerView, 0, len(headers))
	for _, hd := range headers {
		v := headerView{Header: hd}
		if hd.Sortable {
			v.SortHref = sortHref(c.Request.URL.Query(), hd)
		}
		views = append(views, v)
	}

	c.HTML(http.StatusOK, "index.html", indexView{
		Headers: views,
		Rows:    tbl.Rows(),
		Shown:   len(tbl.Visible()),
		Total:   tbl.Len(),
		Active:  tbl.Filters().Active(),
		Sort:    tbl.Sort().String(),
	})
}

// --------------------------------------------------
// GET /api/restaurants
// --------------------------------------------------
func (h *Handler) ListRestaurants(c *gin.Context) {
	tbl, err := h.load(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.fail(c, err)
		return
	}

	visible := tbl.Visible()
	c.JSON(http.StatusOK, gin.H{
		"count":       len(visible),
		"total":       tbl.Len(),
		"filters":     tbl.Filters(),
		"restaurants": visible,
	})
}

// --------------------------------------------------
// GET /api/restaurants/:id
// --------------------------------------------------
func (h *Handler) GetRestaurant(c *gin.Context) {
	rows, err := h.source.FetchRestaurants(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	r, ok := restaurant.FindByID(rows, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// --------------------------------------------------
// GET /api/facets
// --------------------------------------------------
func (h *Handler) Facets(c *gin.Context) {
	rows, err := h.source.FetchRestaurants(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant.ExtractFacets(rows))
}

// load fetches the dataset once and builds a table from the query string.
func (h *Handler) load(ctx context.Context, query url.Values) (*table.Table, error) {
	rows, err := h.source.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	tbl := table.New(rows, restaurant.ExtractFacets(rows), table.DefaultColumns(h.links))
	tbl.ApplyQuery(query)
	return tbl, nil
}

func (h *Handler) fail(c *gin.Context, err error) {
	log.Printf("[API] load failed request_id=%s: %v", c.GetString("requestID"), err)
	if restaurant.IsFetchError(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load restaurants"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// sortHref cycles a sortable column through ascending, descending and unsorted.
func sortHref(query url.Values, hd table.Header) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}

	switch hd.SortDir {
	case "asc":
		q.Set("sort", "-"+string(hd.ID))
	case "desc":
		q.Del("sort")
	default:
		q.Set("sort", string(hd.ID))
	}

	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
