// Package sitecontent loads, validates, and serves the site content
// document.
//
// The document is read from a Source exactly once per process; after a
// successful load every accessor is served from the cached copy. A failed
// load is never cached, so a corrected data.json is picked up by the next
// request without a restart.
package sitecontent

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dalemusser/pipewright/internal/app/system/schema"
	"github.com/dalemusser/pipewright/internal/domain/models"
)

// Source supplies the raw content document bytes.
type Source interface {
	ReadDocument(ctx context.Context) ([]byte, error)
}

// FileSource reads the content document from a file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) ReadDocument(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read content document %s: %w", s.Path, err)
	}
	return data, nil
}

// Store caches the validated content document and answers content queries.
// All methods are safe for concurrent use.
type Store struct {
	src    Source
	logger *zap.Logger

	group singleflight.Group

	// doc is set once on successful load and never replaced, so readers
	// share one immutable snapshot without copying.
	doc atomic.Pointer[models.SiteData]
}

// New creates a Store over the given source. No I/O happens until Load or
// the first accessor call.
func New(src Source, logger *zap.Logger) *Store {
	return &Store{src: src, logger: logger}
}

// Load reads and validates the document, priming the cache. Called at
// startup so a broken document fails the boot instead of the first
// request.
func (s *Store) Load(ctx context.Context) error {
	_, err := s.document(ctx)
	return err
}

// document returns the cached document, loading it on first use.
// Concurrent cold-start callers share one load via singleflight; exactly
// one read and one validation happen no matter how many requests race.
func (s *Store) document(ctx context.Context) (*models.SiteData, error) {
	if d := s.doc.Load(); d != nil {
		return d, nil
	}

	v, err, _ := s.group.Do("load", func() (any, error) {
		if d := s.doc.Load(); d != nil {
			return d, nil
		}

		raw, err := s.src.ReadDocument(ctx)
		if err != nil {
			s.logger.Error("content document read failed", zap.Error(err))
			return nil, err
		}

		parsed, err := schema.ParseSiteData(ctx, raw)
		if err != nil {
			s.logger.Error("content document failed validation",
				zap.Int("violations", len(schema.Violations(err))),
				zap.Error(err))
			return nil, fmt.Errorf("validate content document: %w", err)
		}

		s.doc.Store(&parsed)
		s.logger.Info("content document loaded",
			zap.Int("services", len(parsed.Services)),
			zap.Int("testimonials", len(parsed.Testimonials)),
			zap.Int("faqs", len(parsed.FAQ)))
		return &parsed, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.SiteData), nil
}

// Loaded reports whether the document cache is primed. Used by readiness
// checks.
func (s *Store) Loaded() bool {
	return s.doc.Load() != nil
}

// FullDocument returns the entire validated document.
func (s *Store) FullDocument(ctx context.Context) (models.SiteData, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.SiteData{}, err
	}
	return *d, nil
}

// BusinessInfo returns the business facts section.
func (s *Store) BusinessInfo(ctx context.Context) (models.BusinessInfo, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.BusinessInfo{}, err
	}
	return d.BusinessInfo, nil
}

// Contact returns the contact section.
func (s *Store) Contact(ctx context.Context) (models.ContactInfo, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.ContactInfo{}, err
	}
	return d.Contact, nil
}

// Hero returns the hero section.
func (s *Store) Hero(ctx context.Context) (models.HeroSection, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.HeroSection{}, err
	}
	return d.Hero, nil
}

// EmergencyBanner returns the emergency banner section.
func (s *Store) EmergencyBanner(ctx context.Context) (models.EmergencyBanner, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.EmergencyBanner{}, err
	}
	return d.EmergencyBanner, nil
}

// Services returns the service catalog in document order.
func (s *Store) Services(ctx context.Context) ([]models.Service, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return d.Services, nil
}

// ServiceByID looks up a service by its slug. The second return is false
// when no service has that id.
func (s *Store) ServiceByID(ctx context.Context, id string) (models.Service, bool, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.Service{}, false, err
	}
	for _, svc := range d.Services {
		if svc.ID == id {
			return svc, true, nil
		}
	}
	return models.Service{}, false, nil
}

// WhyChooseUs returns the selling points section.
func (s *Store) WhyChooseUs(ctx context.Context) ([]models.WhyChooseUsItem, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return d.WhyChooseUs, nil
}

// ServiceAreas returns the coverage section.
func (s *Store) ServiceAreas(ctx context.Context) (models.ServiceAreas, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.ServiceAreas{}, err
	}
	return d.ServiceAreas, nil
}

// IsZipServiced reports whether zip is in the serviced ZIP list. Matching
// is exact string comparison; "65101-1234" does not match "65101".
func (s *Store) IsZipServiced(ctx context.Context, zip string) (bool, error) {
	d, err := s.document(ctx)
	if err != nil {
		return false, err
	}
	for _, z := range d.ServiceAreas.ZipCodes {
		if z == zip {
			return true, nil
		}
	}
	return false, nil
}

// Testimonials returns the reviews in document order.
func (s *Store) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return d.Testimonials, nil
}

// About returns the company story section.
func (s *Store) About(ctx context.Context) (models.AboutSection, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.AboutSection{}, err
	}
	return d.About, nil
}

// ProcessSteps returns the walkthrough steps ordered by their step number,
// regardless of array order in the document.
func (s *Store) ProcessSteps(ctx context.Context) ([]models.ProcessStep, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	steps := make([]models.ProcessStep, len(d.Process))
	copy(steps, d.Process)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Step < steps[j].Step })
	return steps, nil
}

// Promotions returns all promotions regardless of active state. Most
// callers want ActivePromotions.
func (s *Store) Promotions(ctx context.Context) ([]models.Promotion, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return d.Promotions, nil
}

// FAQs returns the FAQ list in document order, ungrouped.
func (s *Store) FAQs(ctx context.Context) ([]models.FAQ, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return d.FAQ, nil
}

// ActivePromotions returns promotions that are flagged active and whose
// expiration is strictly in the future as of now. A promotion with no
// expiration never expires; one expiring exactly at now is already
// expired.
func (s *Store) ActivePromotions(ctx context.Context, now time.Time) ([]models.Promotion, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Promotion, 0, len(d.Promotions))
	for _, p := range d.Promotions {
		if !p.Active {
			continue
		}
		if p.Expiration != "" {
			exp, err := schema.ParseExpiration(p.Expiration)
			if err != nil {
				// Validation guarantees parseability; treat the impossible
				// case as expired rather than advertising a dead offer.
				continue
			}
			if !exp.After(now) {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// FAQGroup is one FAQ category with its questions in document order.
type FAQGroup struct {
	Category string       `json:"category"`
	FAQs     []models.FAQ `json:"faqs"`
}

// FAQsByCategory groups the FAQ list by category. Categories appear in
// order of first occurrence, and questions keep document order within
// each group.
func (s *Store) FAQsByCategory(ctx context.Context) ([]FAQGroup, error) {
	d, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	groups := make([]FAQGroup, 0)
	for _, f := range d.FAQ {
		i, ok := index[f.Category]
		if !ok {
			i = len(groups)
			index[f.Category] = i
			groups = append(groups, FAQGroup{Category: f.Category})
		}
		groups[i].FAQs = append(groups[i].FAQs, f)
	}
	return groups, nil
}

// SEO returns the SEO section.
func (s *Store) SEO(ctx context.Context) (models.SEOData, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.SEOData{}, err
	}
	return d.SEO, nil
}

// CallToActions returns the site-wide CTA set.
func (s *Store) CallToActions(ctx context.Context) (models.CallToActions, error) {
	d, err := s.document(ctx)
	if err != nil {
		return models.CallToActions{}, err
	}
	return d.CallToActions, nil
}

// AverageRating computes the mean testimonial rating rounded to one
// decimal place. Returns 0 for an empty list.
func AverageRating(ts []models.Testimonial) float64 {
	if len(ts) == 0 {
		return 0
	}
	sum := 0
	for _, t := range ts {
		sum += t.Rating
	}
	avg := float64(sum) / float64(len(ts))
	return math.Round(avg*10) / 10
}
