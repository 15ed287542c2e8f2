package catalog

import (
	"strings"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/enums"
	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/domain/rules"
)

// matches evaluates the full predicate conjunction for one record.
// Dimensions combine with AND; selections inside a multi-select
// combine with OR.
func matches(rec model.TalentRecord, c Criteria) bool {
	if c.Role != "" && string(rec.Role) != c.Role {
		return false
	}

	if !matchesQuery(rec, c.Query) {
		return false
	}

	if !disabled(c.Category) && !strings.EqualFold(rec.Category, c.Category) {
		return false
	}
	if !matchesAny(rec.Gender, c.Genders) {
		return false
	}
	if !intersects(rec.Ethnicity, c.Ethnicities) {
		return false
	}
	if !disabled(c.Location) && !strings.EqualFold(rec.Location, c.Location) {
		return false
	}

	if rec.Age < c.AgeMin || rec.Age > c.AgeMax {
		return false
	}

	if !matchesVibes(rec.Tags, c.Vibes) {
		return false
	}

	if min := rules.ClampThreshold(c.MinFollowers); min > 0 && rec.MaxFollowers() < min {
		return false
	}
	if max := rules.ClampThreshold(c.MaxPrice); max > 0 && rec.Price > max {
		return false
	}
	if !disabled(c.UnionStatus) && string(rec.UnionStatus) != c.UnionStatus {
		return false
	}

	if c.Role == string(enums.RoleModel) && !matchesMeasurements(rec, c) {
		return false
	}

	return true
}

// matchesQuery does a case-insensitive substring match against the
// name, every tag, and the location.
func matchesQuery(rec model.TalentRecord, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(rec.Name), q) {
		return true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(rec.Location), q)
}

func matchesAny(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if disabled(s) || strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

// intersects reports whether the record's value set shares at least
// one element with the selection. An empty selection never constrains.
func intersects(values []string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if disabled(s) {
			return true
		}
		for _, v := range values {
			if strings.EqualFold(v, s) {
				return true
			}
		}
	}
	return false
}

func matchesVibes(tags []string, vibes []string) bool {
	if len(vibes) == 0 {
		return true
	}
	for _, vibe := range vibes {
		if disabled(vibe) {
			return true
		}
		for _, tag := range tags {
			if strings.EqualFold(tag, vibe) {
				return true
			}
		}
	}
	return false
}

// matchesMeasurements applies the body-spec dimensions. These only
// make sense on the model tab; a model record missing its stats block
// is excluded once any of them is active.
func matchesMeasurements(rec model.TalentRecord, c Criteria) bool {
	minHeight := rules.ClampThreshold(c.MinHeightCM)
	maxBust := rules.ClampThreshold(c.MaxBustCM)
	maxWaist := rules.ClampThreshold(c.MaxWaistCM)
	maxHips := rules.ClampThreshold(c.MaxHipsCM)
	shoeSize := rules.ClampThreshold(c.ShoeSizeEU)

	active := minHeight > 0 || maxBust > 0 || maxWaist > 0 || maxHips > 0 ||
		shoeSize > 0 || !disabled(c.DressSize) || !disabled(c.EyeColor) ||
		!disabled(c.HairColor) || !disabled(c.HairTexture)
	if !active {
		return true
	}

	stats := rec.Model
	if stats == nil {
		return false
	}

	if minHeight > 0 && stats.HeightCM < minHeight {
		return false
	}
	if maxBust > 0 && stats.BustCM > maxBust {
		return false
	}
	if maxWaist > 0 && stats.WaistCM > maxWaist {
		return false
	}
	if maxHips > 0 && stats.HipsCM > maxHips {
		return false
	}
	if shoeSize > 0 && stats.ShoeSizeEU != shoeSize {
		return false
	}
	if !disabled(c.DressSize) && !strings.EqualFold(stats.DressSize, c.DressSize) {
		return false
	}
	if !disabled(c.EyeColor) && !strings.EqualFold(stats.EyeColor, c.EyeColor) {
		return false
	}
	if !disabled(c.HairColor) && !strings.EqualFold(stats.HairColor, c.HairColor) {
		return false
	}
	if !disabled(c.HairTexture) && !strings.EqualFold(stats.HairTexture, c.HairTexture) {
		return false
	}

	return true
}
