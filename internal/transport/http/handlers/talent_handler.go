package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smediamanagement84-star/ModelApp/internal/services/catalog"
	"github.com/smediamanagement84-star/ModelApp/internal/services/discovery"
	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

type TalentHandler struct {
	discovery *discovery.Service
	ageMin    int
	ageMax    int
}

func NewTalentHandler(svc *discovery.Service, ageMin, ageMax int) *TalentHandler {
	return &TalentHandler{discovery: svc, ageMin: ageMin, ageMax: ageMax}
}

// List is the discovery endpoint: every filter dimension arrives as a
// query parameter, absent parameters leave their dimension
// unconstrained.
func (h *TalentHandler) List(w http.ResponseWriter, r *http.Request) {
	c := h.parseCriteria(r.URL.Query())

	view, err := h.discovery.Browse(r.Context(), viewerID(r), c)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, view)
}

func (h *TalentHandler) Get(w http.ResponseWriter, r *http.Request) {
	card, err := h.discovery.Detail(r.Context(), viewerID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, card)
}

func (h *TalentHandler) parseCriteria(q url.Values) catalog.Criteria {
	c := catalog.DefaultCriteria(h.ageMin, h.ageMax)

	c.Role = q.Get("role")
	c.Query = q.Get("q")
	c.Category = q.Get("category")
	c.Genders = splitMulti(q.Get("genders"))
	c.Ethnicities = splitMulti(q.Get("ethnicities"))
	c.Location = q.Get("location")
	c.AgeMin = intParam(q, "age_min", c.AgeMin)
	c.AgeMax = intParam(q, "age_max", c.AgeMax)

	c.MinHeightCM = intParam(q, "min_height_cm", 0)
	c.MaxBustCM = intParam(q, "max_bust_cm", 0)
	c.MaxWaistCM = intParam(q, "max_waist_cm", 0)
	c.MaxHipsCM = intParam(q, "max_hips_cm", 0)
	c.DressSize = q.Get("dress_size")
	c.ShoeSizeEU = intParam(q, "shoe_size_eu", 0)
	c.EyeColor = q.Get("eye_color")
	c.HairColor = q.Get("hair_color")
	c.HairTexture = q.Get("hair_texture")

	c.Vibes = splitMulti(q.Get("vibes"))
	c.MinFollowers = intParam(q, "min_followers", 0)
	c.MaxPrice = intParam(q, "max_price", 0)
	c.UnionStatus = q.Get("union_status")

	if sort := q.Get("sort"); sort != "" {
		c.SortKey = sort
	}

	return c
}

func splitMulti(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// intParam falls back to def on absent or malformed values, so a bad
// number behaves like an untouched filter instead of a 400.
func intParam(q url.Values, key string, def int) int {
	raw := q.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
