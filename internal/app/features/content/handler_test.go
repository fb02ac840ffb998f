package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/pipewright/internal/app/store/sitecontent"
	"github.com/dalemusser/pipewright/internal/domain/models"
	"github.com/dalemusser/pipewright/internal/testutil"
)

type staticSource struct {
	data []byte
	err  error
}

func (s staticSource) ReadDocument(_ context.Context) ([]byte, error) {
	return s.data, s.err
}

func newTestRouter(t *testing.T, d models.SiteData) http.Handler {
	t.Helper()
	store := sitecontent.New(staticSource{data: testutil.SiteDataJSON(t, d)}, zap.NewNop())
	return Routes(NewHandler(store, zap.NewNop()))
}

func get(t *testing.T, router http.Handler, target string) *testutil.ResponseRecorder {
	t.Helper()
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec.ResponseRecorder, testutil.NewRequest(http.MethodGet, target))
	return rec
}

func decode[T any](t *testing.T, rec *testutil.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestFullDocument(t *testing.T) {
	router := newTestRouter(t, testutil.ValidSiteData())

	rec := get(t, router, "/")
	rec.AssertStatus(t, http.StatusOK)

	doc := decode[models.SiteData](t, rec)
	if doc.BusinessInfo.Name != "Rivertown Plumbing Co." {
		t.Errorf("businessInfo.name: got %q", doc.BusinessInfo.Name)
	}
	if len(doc.Services) != 2 {
		t.Errorf("services: got %d, want 2", len(doc.Services))
	}
}

func TestServiceByID(t *testing.T) {
	router := newTestRouter(t, testutil.ValidSiteData())

	rec := get(t, router, "/services/drain-cleaning")
	rec.AssertStatus(t, http.StatusOK)
	svc := decode[models.Service](t, rec)
	if svc.Name != "Drain Cleaning" {
		t.Errorf("service name: got %q", svc.Name)
	}

	rec = get(t, router, "/services/roofing")
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "service not found")
}

func TestPromotions_AtParam(t *testing.T) {
	d := testutil.ValidSiteData()
	d.Promotions = []models.Promotion{
		{ID: "spring", Title: "Spring", Active: true, Expiration: "2024-05-01"},
		{ID: "evergreen", Title: "Evergreen", Active: true, Expiration: ""},
	}
	router := newTestRouter(t, d)

	rec := get(t, router, "/promotions?at=2024-04-01T00:00:00Z")
	rec.AssertStatus(t, http.StatusOK)
	promos := decode[[]models.Promotion](t, rec)
	if len(promos) != 2 {
		t.Errorf("promotions before expiry: got %d, want 2", len(promos))
	}

	rec = get(t, router, "/promotions?at=2024-06-01T00:00:00Z")
	rec.AssertStatus(t, http.StatusOK)
	promos = decode[[]models.Promotion](t, rec)
	if len(promos) != 1 || promos[0].ID != "evergreen" {
		t.Errorf("promotions after expiry: got %+v", promos)
	}

	rec = get(t, router, "/promotions?at=tomorrow")
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestPromotions_DefaultsToNow(t *testing.T) {
	d := testutil.ValidSiteData()
	d.Promotions = []models.Promotion{
		{ID: "past", Title: "Past", Active: true, Expiration: "2020-01-01"},
	}
	store := sitecontent.New(staticSource{data: testutil.SiteDataJSON(t, d)}, zap.NewNop())
	h := NewHandler(store, zap.NewNop())
	h.now = func() time.Time { return time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC) }
	router := Routes(h)

	rec := get(t, router, "/promotions")
	rec.AssertStatus(t, http.StatusOK)
	promos := decode[[]models.Promotion](t, rec)
	if len(promos) != 1 {
		t.Errorf("promotion should be active at injected clock, got %d", len(promos))
	}
}

func TestTestimonials_IncludesAverage(t *testing.T) {
	router := newTestRouter(t, testutil.ValidSiteData())

	rec := get(t, router, "/testimonials")
	rec.AssertStatus(t, http.StatusOK)
	resp := decode[TestimonialsResponse](t, rec)
	if len(resp.Testimonials) != 2 {
		t.Errorf("testimonials: got %d, want 2", len(resp.Testimonials))
	}
	if resp.AverageRating != 4.5 {
		t.Errorf("averageRating: got %v, want 4.5", resp.AverageRating)
	}
}

func TestFAQ_Grouped(t *testing.T) {
	router := newTestRouter(t, testutil.ValidSiteData())

	rec := get(t, router, "/faq")
	rec.AssertStatus(t, http.StatusOK)
	groups := decode[[]sitecontent.FAQGroup](t, rec)
	if len(groups) != 2 {
		t.Fatalf("groups: got %d, want 2", len(groups))
	}
	if groups[0].Category != "Billing" {
		t.Errorf("first category: got %q", groups[0].Category)
	}
}

func TestCheckZip(t *testing.T) {
	router := newTestRouter(t, testutil.ValidSiteData())

	rec := get(t, router, "/service-areas/check?zip=65101")
	rec.AssertStatus(t, http.StatusOK)
	resp := decode[ZipCheckResponse](t, rec)
	if !resp.Serviced {
		t.Error("65101 should be serviced")
	}

	rec = get(t, router, "/service-areas/check?zip=90210")
	rec.AssertStatus(t, http.StatusOK)
	resp = decode[ZipCheckResponse](t, rec)
	if resp.Serviced {
		t.Error("90210 should not be serviced")
	}

	rec = get(t, router, "/service-areas/check")
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestContentUnavailable(t *testing.T) {
	store := sitecontent.New(staticSource{err: errors.New("disk gone")}, zap.NewNop())
	router := Routes(NewHandler(store, zap.NewNop()))

	for _, target := range []string{"/", "/services", "/faq", "/service-areas/check?zip=1"} {
		rec := get(t, router, target)
		rec.AssertStatus(t, http.StatusServiceUnavailable)
	}
}
