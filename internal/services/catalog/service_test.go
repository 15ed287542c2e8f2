package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/enums"
	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

type stubTalentStore struct {
	records []model.TalentRecord
}

func (s *stubTalentStore) List(_ context.Context, role string) ([]model.TalentRecord, error) {
	if role == "" {
		return s.records, nil
	}
	var out []model.TalentRecord
	for _, rec := range s.records {
		if string(rec.Role) == role {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubTalentStore) Get(_ context.Context, id string) (model.TalentRecord, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return model.TalentRecord{}, nil
}

func fixtureRoster() []model.TalentRecord {
	return []model.TalentRecord{
		{
			ID: "m1", Name: "Anika Sharma", Role: enums.RoleModel,
			Category: "Editorial", Tags: []string{"High Fashion", "Editorial"},
			Age: 24, Gender: "Female", Ethnicity: []string{"South Asian"}, Location: "New York",
			Model: &model.ModelStats{
				HeightCM: 178, BustCM: 84, WaistCM: 61, HipsCM: 89,
				ShoeSizeEU: 39, DressSize: "S", EyeColor: "Brown",
				HairColor: "Black", HairTexture: "Straight",
			},
			Price: 1200, UnlockPrice: 50, UnionStatus: enums.UnionSAGAFTRA,
			Socials: []model.Social{{Platform: enums.PlatformInstagram, Followers: 250000}},
		},
		{
			ID: "m2", Name: "Lena Fischer", Role: enums.RoleModel,
			Category: "Commercial", Tags: []string{"Commercial", "Girl Next Door"},
			Age: 31, Gender: "Female", Ethnicity: []string{"White", "Latinx"}, Location: "Berlin",
			Model: &model.ModelStats{
				HeightCM: 170, BustCM: 88, WaistCM: 66, HipsCM: 94,
				ShoeSizeEU: 38, DressSize: "M", EyeColor: "Blue",
				HairColor: "Blonde", HairTexture: "Wavy",
			},
			Price: 800, UnlockPrice: 50, UnionStatus: enums.UnionNone,
			Socials: []model.Social{{Platform: enums.PlatformTikTok, Followers: 40000}},
		},
		{
			ID: "m3", Name: "Dario Costa", Role: enums.RoleModel,
			Category: "Runway", Tags: []string{"High Fashion", "Edgy"},
			Age: 27, Gender: "Male", Ethnicity: []string{"Latinx"}, Location: "Milan",
			Price: 1500, UnlockPrice: 50, UnionStatus: enums.UnionEquity,
		},
		{
			ID: "p1", Name: "Maya Chen", Role: enums.RolePhotographer,
			Category: "Editorial", Tags: []string{"Editorial", "Film"},
			Age: 35, Gender: "Female", Ethnicity: []string{"East Asian"}, Location: "New York",
			Craft: &model.CraftStats{Styles: []string{"Editorial", "Film"}},
			Price: 2000, UnlockPrice: 75, UnionStatus: enums.UnionNone,
		},
	}
}

func newTestService() (*Service, *stubTalentStore) {
	store := &stubTalentStore{records: fixtureRoster()}
	return NewService(store, Config{AgeMin: 18, AgeMax: 99}, nil), store
}

func TestDefaultCriteriaReturnsRosterUnchanged(t *testing.T) {
	svc, store := newTestService()

	got, err := svc.Select(context.Background(), DefaultCriteria(18, 99))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != len(store.records) {
		t.Fatalf("expected %d records, got %d", len(store.records), len(got))
	}
	for i := range got {
		if got[i].ID != store.records[i].ID {
			t.Fatalf("featured order broken at %d: %s vs %s", i, got[i].ID, store.records[i].ID)
		}
	}
}

func TestRoleTabScopesRoster(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.Role = string(enums.RolePhotographer)

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("expected only p1, got %v", ids(got))
	}
}

func TestDimensionsCombineWithAND(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.Role = string(enums.RoleModel)
	c.Genders = []string{"Female"}
	c.Location = "New York"
	c.MaxPrice = 1300

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("expected only m1, got %v", ids(got))
	}
}

func TestMultiSelectCombinesWithOR(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.Role = string(enums.RoleModel)
	c.Ethnicities = []string{"South Asian", "Latinx"}

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !equalIDs(got, []string{"m1", "m2", "m3"}) {
		t.Fatalf("expected m1, m2 and m3, got %v", ids(got))
	}
}

func TestEthnicitySetMatchesOnAnyMember(t *testing.T) {
	svc, _ := newTestService()

	// m2 carries {White, Latinx}; selecting either member must keep
	// the record visible.
	for _, selection := range []string{"White", "Latinx"} {
		c := DefaultCriteria(18, 99)
		c.Ethnicities = []string{selection}

		got, err := svc.Select(context.Background(), c)
		if err != nil {
			t.Fatalf("select %q: %v", selection, err)
		}
		found := false
		for _, rec := range got {
			if rec.ID == "m2" {
				found = true
			}
		}
		if !found {
			t.Fatalf("m2 should match ethnicity %q, got %v", selection, ids(got))
		}
	}
}

func TestFreeTextMatchesNameTagsAndLocation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		query string
		want  []string
	}{
		{"anika", []string{"m1"}},
		{"girl next", []string{"m2"}},
		{"new york", []string{"m1", "p1"}},
		{"FILM", []string{"p1"}},
	}
	for _, tc := range cases {
		c := DefaultCriteria(18, 99)
		c.Query = tc.query

		got, err := svc.Select(ctx, c)
		if err != nil {
			t.Fatalf("select %q: %v", tc.query, err)
		}
		if !equalIDs(got, tc.want) {
			t.Fatalf("query %q: expected %v, got %v", tc.query, tc.want, ids(got))
		}
	}
}

func TestSentinelAllDisablesDimension(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.Category = SentinelAll
	c.Location = SentinelAll
	c.UnionStatus = SentinelAll

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("sentinel values should not constrain, got %v", ids(got))
	}
}

func TestMeasurementFilterExcludesModelsWithoutStats(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.Role = string(enums.RoleModel)
	c.MinHeightCM = 160

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	// m3 has no stats block and must drop out once a body dimension
	// is active.
	if !equalIDs(got, []string{"m1", "m2"}) {
		t.Fatalf("expected m1 and m2, got %v", ids(got))
	}
}

func TestMeasurementFilterIgnoredOutsideModelTab(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.Role = string(enums.RolePhotographer)
	c.MinHeightCM = 190

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("height must not constrain photographers, got %v", ids(got))
	}
}

func TestInvertedAgeRangeIsSwapped(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.AgeMin = 30
	c.AgeMax = 20

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !equalIDs(got, []string{"m1", "m3"}) {
		t.Fatalf("expected ages 20-30 after swap, got %v", ids(got))
	}
}

func TestNegativeThresholdDisablesDimension(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.MinFollowers = -5
	c.MaxPrice = -100

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("negative thresholds must disable, got %v", ids(got))
	}
}

func TestMinFollowersUsesLargestAccount(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.MinFollowers = 100000

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !equalIDs(got, []string{"m1"}) {
		t.Fatalf("expected only m1, got %v", ids(got))
	}
}

func TestSortPriceAscendingIsStable(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.SortKey = SortPriceAsc

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !equalIDs(got, []string{"m2", "m1", "m3", "p1"}) {
		t.Fatalf("unexpected price order: %v", ids(got))
	}
}

func TestSortHeightPutsMissingHeightLast(t *testing.T) {
	svc, _ := newTestService()

	c := DefaultCriteria(18, 99)
	c.Role = string(enums.RoleModel)
	c.SortKey = SortHeightDesc

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !equalIDs(got, []string{"m1", "m2", "m3"}) {
		t.Fatalf("unexpected height order: %v", ids(got))
	}
}

func TestUnknownSortKeyKeepsFeaturedOrder(t *testing.T) {
	svc, store := newTestService()

	c := DefaultCriteria(18, 99)
	c.SortKey = "nonsense"

	got, err := svc.Select(context.Background(), c)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	for i := range got {
		if got[i].ID != store.records[i].ID {
			t.Fatalf("featured order broken at %d", i)
		}
	}
}

type deadlineCapturingStore struct {
	deadline    time.Time
	hadDeadline bool
}

func (s *deadlineCapturingStore) List(ctx context.Context, _ string) ([]model.TalentRecord, error) {
	s.deadline, s.hadDeadline = ctx.Deadline()
	return nil, nil
}

func (s *deadlineCapturingStore) Get(ctx context.Context, _ string) (model.TalentRecord, error) {
	s.deadline, s.hadDeadline = ctx.Deadline()
	return model.TalentRecord{}, nil
}

func TestRosterFetchIsDeadlineBounded(t *testing.T) {
	store := &deadlineCapturingStore{}
	svc := NewService(store, Config{AgeMin: 18, AgeMax: 99, FetchTimeout: 3 * time.Second}, nil)
	ctx := context.Background()

	start := time.Now()
	if _, err := svc.Select(ctx, DefaultCriteria(18, 99)); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !store.hadDeadline {
		t.Fatal("roster list should run under a deadline")
	}
	if remaining := store.deadline.Sub(start); remaining > 4*time.Second {
		t.Fatalf("deadline too loose: %s", remaining)
	}

	store.hadDeadline = false
	if _, err := svc.Get(ctx, "t1"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !store.hadDeadline {
		t.Fatal("roster get should run under a deadline")
	}
}

func TestResetKeepsRoleTab(t *testing.T) {
	c := DefaultCriteria(18, 99)
	c.Role = string(enums.RoleModel)
	c.Query = "anika"
	c.MaxPrice = 100

	reset := c.Reset(18, 99)
	if reset.Role != string(enums.RoleModel) {
		t.Fatalf("reset must keep the role tab, got %q", reset.Role)
	}
	if reset.Query != "" || reset.MaxPrice != 0 {
		t.Fatalf("reset must clear dimensions: %+v", reset)
	}
	if reset.AgeMin != 18 || reset.AgeMax != 99 {
		t.Fatalf("reset must restore the full age range: %+v", reset)
	}
}

func ids(records []model.TalentRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.ID)
	}
	return out
}

func equalIDs(records []model.TalentRecord, want []string) bool {
	if len(records) != len(want) {
		return false
	}
	for i := range want {
		if records[i].ID != want[i] {
			return false
		}
	}
	return true
}
