package catalog

import (
	"sort"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

const (
	SortFeatured   = "featured"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortHeightAsc  = "height_asc"
	SortHeightDesc = "height_desc"
	SortAgeAsc     = "age_asc"
)

type lessFunc func(a, b model.TalentRecord) bool

// comparators maps sort keys to their ordering. Featured keeps the
// curated roster order, so it has no comparator. Unknown keys fall
// back to featured.
var comparators = map[string]lessFunc{
	SortPriceAsc:  func(a, b model.TalentRecord) bool { return a.Price < b.Price },
	SortPriceDesc: func(a, b model.TalentRecord) bool { return a.Price > b.Price },
	SortHeightAsc: func(a, b model.TalentRecord) bool {
		ha, aok := a.HeightCM()
		hb, bok := b.HeightCM()
		if aok != bok {
			return aok
		}
		return ha < hb
	},
	SortHeightDesc: func(a, b model.TalentRecord) bool {
		ha, aok := a.HeightCM()
		hb, bok := b.HeightCM()
		if aok != bok {
			return aok
		}
		return ha > hb
	},
	SortAgeAsc: func(a, b model.TalentRecord) bool { return a.Age < b.Age },
}

// applySort orders records in place. The sort is stable, so records
// tied on the key keep their filtered order.
func applySort(records []model.TalentRecord, key string) {
	less, ok := comparators[key]
	if !ok {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}
