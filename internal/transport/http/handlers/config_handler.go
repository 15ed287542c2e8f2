package handlers

import (
	"net/http"

	"github.com/smediamanagement84-star/ModelApp/internal/config"
	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

type ConfigHandler struct {
	catalog  config.CatalogConfig
	payments config.PaymentsConfig
}

func NewConfigHandler(catalog config.CatalogConfig, payments config.PaymentsConfig) *ConfigHandler {
	return &ConfigHandler{catalog: catalog, payments: payments}
}

type filterMetadata struct {
	AgeMin         int      `json:"age_min"`
	AgeMax         int      `json:"age_max"`
	Categories     []string `json:"categories"`
	Genders        []string `json:"genders"`
	Ethnicities    []string `json:"ethnicities"`
	Locations      []string `json:"locations"`
	EyeColors      []string `json:"eye_colors"`
	HairColors     []string `json:"hair_colors"`
	HairTextures   []string `json:"hair_textures"`
	DressSizes     []string `json:"dress_sizes"`
	Vibes          []string `json:"vibes"`
	PhotoStyles    []string `json:"photo_styles"`
	MUASpecialties []string `json:"mua_specialties"`
	Currency       string   `json:"currency"`
	PaymentMethods []string `json:"payment_methods"`
}

// Get publishes the enumerations the discovery filters render, so the
// client never hardcodes them.
func (h *ConfigHandler) Get(w http.ResponseWriter, _ *http.Request) {
	httperrors.WriteJSON(w, http.StatusOK, filterMetadata{
		AgeMin:         h.catalog.AgeMin,
		AgeMax:         h.catalog.AgeMax,
		Categories:     h.catalog.Categories,
		Genders:        h.catalog.Genders,
		Ethnicities:    h.catalog.Ethnicities,
		Locations:      h.catalog.Locations,
		EyeColors:      h.catalog.EyeColors,
		HairColors:     h.catalog.HairColors,
		HairTextures:   h.catalog.HairTextures,
		DressSizes:     h.catalog.DressSizes,
		Vibes:          h.catalog.Vibes,
		PhotoStyles:    h.catalog.PhotoStyles,
		MUASpecialties: h.catalog.MUASpecialties,
		Currency:       h.payments.Currency,
		PaymentMethods: []string{"esewa", "khalti"},
	})
}
