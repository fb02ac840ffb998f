package schema

import (
	"context"
	"fmt"
	"sync"
	"time"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
	js "github.com/reoring/goskema/jsonschema"
	r "github.com/reoring/goskema/rules"

	"github.com/dalemusser/pipewright/internal/app/system/phone"
	"github.com/dalemusser/pipewright/internal/domain/models"
)

var (
	siteData     goskema.Schema[models.SiteData]
	siteDataOnce sync.Once
)

// SiteData returns the schema for the full content document. The schema is
// built once and reused; it is safe for concurrent use.
func SiteData() goskema.Schema[models.SiteData] {
	siteDataOnce.Do(func() {
		siteData = buildSiteData()
	})
	return siteData
}

// ParseSiteData validates raw document bytes and returns the typed
// document. On failure the error carries one Issue per offending field
// path (see Violations).
func ParseSiteData(ctx context.Context, data []byte) (models.SiteData, error) {
	return goskema.ParseFrom(ctx, SiteData(), goskema.JSONBytes(data))
}

func buildSiteData() goskema.Schema[models.SiteData] {
	address := g.ObjectOf[models.Address]().
		Field("street", g.StringOf[string]()).Required().
		Field("city", g.StringOf[string]()).Required().
		Field("state", g.StringOf[string]()).Required().
		Field("zip", g.StringOf[string]()).Required().
		Field("country", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	hours := g.ObjectOf[models.BusinessHours]().
		Field("monday", g.StringOf[string]()).Required().
		Field("tuesday", g.StringOf[string]()).Required().
		Field("wednesday", g.StringOf[string]()).Required().
		Field("thursday", g.StringOf[string]()).Required().
		Field("friday", g.StringOf[string]()).Required().
		Field("saturday", g.StringOf[string]()).Required().
		Field("sunday", g.StringOf[string]()).Required().
		Field("emergency", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	social := g.ObjectOf[models.SocialLinks]().
		Field("facebook", g.StringOf[string]()).Required().
		Field("instagram", g.StringOf[string]()).Required().
		Field("linkedin", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	businessInfo := g.ObjectOf[models.BusinessInfo]().
		Field("name", g.StringOf[string]()).Required().
		Field("shortNameLine1", g.StringOf[string]()).Required().
		Field("shortNameLine2", g.StringOf[string]()).Required().
		Field("tagline", g.StringOf[string]()).Required().
		Field("description", g.StringOf[string]()).Required().
		Field("established", g.StringOf[string]()).Required().
		Field("license", g.StringOf[string]()).Required().
		Field("insured", g.BoolOf[bool]()).Required().
		Field("emergency24_7", g.BoolOf[bool]()).Required().
		UnknownStrip().
		MustBind()

	contact := g.ObjectOf[models.ContactInfo]().
		Field("phone", g.StringOf[string]()).Required().
		Field("phoneRaw", g.StringOf[string]()).Required().
		Field("email", g.StringOf[string]()).Required().
		Field("address", g.SchemaOf(address)).Required().
		Field("hours", g.SchemaOf(hours)).Required().
		Field("social", g.SchemaOf(social)).Required().
		UnknownStrip().
		MustBind()

	heroBadge := g.ObjectOf[models.HeroBadge]().
		Field("text", g.StringOf[string]()).Required().
		Field("icon", g.StringOf[models.IconName]()).Required().
		UnknownStrip().
		MustBind()

	hero := g.ObjectOf[models.HeroSection]().
		Field("headline", g.StringOf[string]()).Required().
		Field("subheadline", g.StringOf[string]()).Required().
		Field("ctaPrimary", g.StringOf[string]()).Required().
		Field("ctaSecondary", g.StringOf[string]()).Required().
		Field("backgroundImage", g.StringOf[string]()).Required().
		Field("badges", g.ArrayOf(heroBadge)).Required().
		UnknownStrip().
		MustBind()

	emergencyBanner := g.ObjectOf[models.EmergencyBanner]().
		Field("text", g.StringOf[string]()).Required().
		Field("phone", g.StringOf[string]()).Required().
		Field("backgroundColor", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	service := g.ObjectOf[models.Service]().
		Field("id", g.StringOf[string]()).Required().
		Field("name", g.StringOf[string]()).Required().
		Field("icon", g.StringOf[models.IconName]()).Required().
		Field("shortDescription", g.StringOf[string]()).Required().
		Field("fullDescription", g.StringOf[string]()).Required().
		Field("features", g.ArrayOf(g.String())).Required().
		Field("image", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	whyChooseUs := g.ObjectOf[models.WhyChooseUsItem]().
		Field("title", g.StringOf[string]()).Required().
		Field("description", g.StringOf[string]()).Required().
		Field("icon", g.StringOf[models.IconName]()).Required().
		Field("stat", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	serviceAreas := g.ObjectOf[models.ServiceAreas]().
		Field("mainArea", g.StringOf[string]()).Required().
		Field("description", g.StringOf[string]()).Required().
		Field("cities", g.ArrayOf(g.String())).Required().
		Field("zipCodes", g.ArrayOf(g.String())).Required().
		UnknownStrip().
		MustBind()

	testimonial := g.ObjectOf[models.Testimonial]().
		Field("id", g.IntOf[int]()).Required().
		Field("name", g.StringOf[string]()).Required().
		Field("location", g.StringOf[string]()).Required().
		Field("rating", g.IntOf[int]()).Required().
		Field("date", g.StringOf[string]()).Required().
		Field("text", g.StringOf[string]()).Required().
		Field("service", g.StringOf[string]()).Required().
		Field("avatar", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	team := g.ObjectOf[models.TeamInfo]().
		Field("description", g.StringOf[string]()).Required().
		Field("size", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	about := g.ObjectOf[models.AboutSection]().
		Field("headline", g.StringOf[string]()).Required().
		Field("story", g.StringOf[string]()).Required().
		Field("mission", g.StringOf[string]()).Required().
		Field("values", g.ArrayOf(g.String())).Required().
		Field("certifications", g.ArrayOf(g.String())).Required().
		Field("team", g.SchemaOf(team)).Required().
		UnknownStrip().
		MustBind()

	processStep := g.ObjectOf[models.ProcessStep]().
		Field("step", g.IntOf[int]()).Required().
		Field("title", g.StringOf[string]()).Required().
		Field("description", g.StringOf[string]()).Required().
		Field("icon", g.StringOf[models.IconName]()).Required().
		UnknownStrip().
		MustBind()

	promotion := g.ObjectOf[models.Promotion]().
		Field("id", g.StringOf[string]()).Required().
		Field("title", g.StringOf[string]()).Required().
		Field("description", g.StringOf[string]()).Required().
		Field("code", g.StringOf[string]()).Required().
		Field("terms", g.StringOf[string]()).Required().
		Field("expiration", g.StringOf[string]().Nullable()).Required().
		Field("active", g.BoolOf[bool]()).Required().
		UnknownStrip().
		MustBind()

	faq := g.ObjectOf[models.FAQ]().
		Field("question", g.StringOf[string]()).Required().
		Field("answer", g.StringOf[string]()).Required().
		Field("category", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	seoMeta := g.ObjectOf[models.SEOMeta]().
		Field("title", g.StringOf[string]()).Required().
		Field("description", g.StringOf[string]()).Required().
		Field("keywords", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	geo := g.ObjectOf[models.GeoCoordinates]().
		Field("@type", g.StringOf[string]()).Required().
		Field("latitude", g.StringOf[string]()).Required().
		Field("longitude", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	postalAddress := g.ObjectOf[models.PostalAddress]().
		Field("@type", g.StringOf[string]()).Required().
		Field("streetAddress", g.StringOf[string]()).Required().
		Field("addressLocality", g.StringOf[string]()).Required().
		Field("addressRegion", g.StringOf[string]()).Required().
		Field("postalCode", g.StringOf[string]()).Required().
		Field("addressCountry", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	openingHours := g.ObjectOf[models.OpeningHoursSpecification]().
		Field("@type", g.StringOf[string]()).Required().
		Field("dayOfWeek", g.SchemaOf[[]string](dayOfWeekSchema{})).Required().
		Field("opens", g.StringOf[string]()).Required().
		Field("closes", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	schemaOrg := g.ObjectOf[models.SchemaOrg]().
		Field("@context", g.StringOf[string]()).Required().
		Field("@type", g.StringOf[string]()).Required().
		Field("name", g.StringOf[string]()).Required().
		Field("image", g.StringOf[string]()).Required().
		Field("telephone", g.StringOf[string]()).Required().
		Field("email", g.StringOf[string]()).Required().
		Field("address", g.SchemaOf(postalAddress)).Required().
		Field("geo", g.SchemaOf(geo)).Required().
		Field("priceRange", g.StringOf[string]()).Required().
		Field("openingHoursSpecification", g.ArrayOf(openingHours)).Required().
		Field("areaServed", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	seo := g.ObjectOf[models.SEOData]().
		Field("meta", g.SchemaOf(seoMeta)).Required().
		Field("schema", g.SchemaOf(schemaOrg)).Required().
		UnknownStrip().
		MustBind()

	cta := g.ObjectOf[models.CallToAction]().
		Field("text", g.StringOf[string]()).Required().
		Field("action", g.StringOf[string]()).Required().
		UnknownStrip().
		MustBind()

	ctas := g.ObjectOf[models.CallToActions]().
		Field("primary", g.SchemaOf(cta)).Required().
		Field("secondary", g.SchemaOf(cta)).Required().
		Field("emergency", g.SchemaOf(cta)).Required().
		UnknownStrip().
		MustBind()

	return g.ObjectOf[models.SiteData]().
		Field("businessInfo", g.SchemaOf(businessInfo)).Required().
		Field("contact", g.SchemaOf(contact)).Required().
		Field("hero", g.SchemaOf(hero)).Required().
		Field("emergencyBanner", g.SchemaOf(emergencyBanner)).Required().
		Field("services", g.ArrayOf(service)).Required().
		Field("whyChooseUs", g.ArrayOf(whyChooseUs)).Required().
		Field("serviceAreas", g.SchemaOf(serviceAreas)).Required().
		Field("testimonials", g.ArrayOf(testimonial)).Required().
		Field("about", g.SchemaOf(about)).Required().
		Field("process", g.ArrayOf(processStep)).Required().
		Field("promotions", g.ArrayOf(promotion)).Required().
		Field("faq", g.ArrayOf(faq)).Required().
		Field("seo", g.SchemaOf(seo)).Required().
		Field("callToActions", g.SchemaOf(ctas)).Required().
		UnknownStrip().
		RefineT("service_ids_unique", r.UniqueBy[models.SiteData]("/services", "id")).
		RefineT("document_rules", documentRules).
		MustBind()
}

// documentRules enforces the cross-field and bounds invariants the shape
// checks cannot express. All violations are collected in one pass.
func documentRules(dc goskema.DomainCtx[models.SiteData], d models.SiteData) []goskema.Issue {
	var out []goskema.Issue

	if !isValidEmail(d.Contact.Email) {
		out = append(out, dc.Ref.At("/contact").Field("email").Issue(
			goskema.CodeInvalidFormat, "not a valid email address"))
	}
	if !phone.IsDialable(d.Contact.PhoneRaw) {
		out = append(out, dc.Ref.At("/contact").Field("phoneRaw").Issue(
			goskema.CodeInvalidFormat, "must contain only dialable characters (digits, optional leading +)"))
	} else if !phone.IsPossible(d.Contact.PhoneRaw) {
		out = append(out, dc.Ref.At("/contact").Field("phoneRaw").Issue(
			goskema.CodeInvalidFormat, "not a possible phone number", "region", phone.Region()))
	}

	// Licensing claims render from businessInfo; an insured business with no
	// license string would publish an unverifiable claim.
	if d.BusinessInfo.Insured && d.BusinessInfo.License == "" {
		out = append(out, dc.Ref.At("/businessInfo").Field("license").Issue(
			goskema.CodeRequired, "license is required when insured is true"))
	}

	for i, s := range d.Services {
		if s.ID == "" {
			out = append(out, dc.Ref.At("/services").Index(i).Field("id").Issue(
				goskema.CodeRequired, "service id must not be empty"))
		}
		if !s.Icon.IsValid() {
			out = append(out, dc.Ref.At("/services").Index(i).Field("icon").Issue(
				goskema.CodeInvalidEnum, fmt.Sprintf("unknown icon %q", s.Icon)))
		}
	}
	for i, b := range d.Hero.Badges {
		if !b.Icon.IsValid() {
			out = append(out, dc.Ref.At("/hero/badges").Index(i).Field("icon").Issue(
				goskema.CodeInvalidEnum, fmt.Sprintf("unknown icon %q", b.Icon)))
		}
	}
	for i, w := range d.WhyChooseUs {
		if !w.Icon.IsValid() {
			out = append(out, dc.Ref.At("/whyChooseUs").Index(i).Field("icon").Issue(
				goskema.CodeInvalidEnum, fmt.Sprintf("unknown icon %q", w.Icon)))
		}
	}

	for i, t := range d.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			out = append(out, dc.Ref.At("/testimonials").Index(i).Field("rating").Issue(
				goskema.CodeDomainRange, "rating must be between 1 and 5", "min", 1, "max", 5, "got", t.Rating))
		}
	}

	for i, p := range d.Process {
		if p.Step < 1 {
			out = append(out, dc.Ref.At("/process").Index(i).Field("step").Issue(
				goskema.CodeDomainRange, "step must be >= 1", "min", 1, "got", p.Step))
		}
		if !p.Icon.IsValid() {
			out = append(out, dc.Ref.At("/process").Index(i).Field("icon").Issue(
				goskema.CodeInvalidEnum, fmt.Sprintf("unknown icon %q", p.Icon)))
		}
	}

	for i, p := range d.Promotions {
		if p.Expiration == "" {
			continue
		}
		if _, err := ParseExpiration(p.Expiration); err != nil {
			out = append(out, dc.Ref.At("/promotions").Index(i).Field("expiration").Issue(
				goskema.CodeInvalidFormat, "expiration must be RFC 3339 or YYYY-MM-DD"))
		}
	}

	return out
}

// ParseExpiration parses a promotion expiration written either as a full
// RFC 3339 timestamp or a bare date. Bare dates are midnight UTC.
func ParseExpiration(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// dayOfWeekSchema accepts the schema.org dayOfWeek union (a bare string or
// a list of strings) and normalizes it to a list.
type dayOfWeekSchema struct{}

func (dayOfWeekSchema) Parse(ctx context.Context, v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, goskema.Issues{{
					Path:    fmt.Sprintf("/%d", i),
					Code:    goskema.CodeInvalidType,
					Message: "expected string",
				}}
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, goskema.Issues{{
		Path:    "/",
		Code:    goskema.CodeInvalidType,
		Message: "expected string or array of strings",
	}}
}

func (s dayOfWeekSchema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[[]string], error) {
	out, err := s.Parse(ctx, v)
	return goskema.Decoded[[]string]{Value: out, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (s dayOfWeekSchema) TypeCheck(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (dayOfWeekSchema) RuleCheck(ctx context.Context, v any) error { return nil }

func (s dayOfWeekSchema) Validate(ctx context.Context, v any) error {
	return s.TypeCheck(ctx, v)
}

func (dayOfWeekSchema) ValidateValue(ctx context.Context, v []string) error { return nil }

func (dayOfWeekSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{}, nil
}
