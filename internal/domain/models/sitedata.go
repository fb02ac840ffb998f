// Package models defines the site content document and related domain types.
//
// The content document is authored out-of-band as a single JSON file
// (data.json) and treated as immutable input. All types here mirror that
// document field-for-field; they are loaded and validated once by the
// sitecontent store and never mutated afterward.
package models

// BusinessInfo holds descriptive facts about the business.
type BusinessInfo struct {
	Name           string `json:"name"`
	ShortNameLine1 string `json:"shortNameLine1"`
	ShortNameLine2 string `json:"shortNameLine2"`
	Tagline        string `json:"tagline"`
	Description    string `json:"description"`
	Established    string `json:"established"`
	License        string `json:"license"`
	Insured        bool   `json:"insured"`
	Emergency247   bool   `json:"emergency24_7"`
}

// Address is the business street address as displayed on the site.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// BusinessHours lists display strings for each day plus emergency coverage.
type BusinessHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
	Emergency string `json:"emergency"`
}

// SocialLinks holds the business's social profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// ContactInfo holds how customers reach the business.
//
// Phone is the display form ("(760) 555-0123"); PhoneRaw is the dialable
// form used in tel: links and must contain only dialable characters.
type ContactInfo struct {
	Phone    string        `json:"phone"`
	PhoneRaw string        `json:"phoneRaw"`
	Email    string        `json:"email"`
	Address  Address       `json:"address"`
	Hours    BusinessHours `json:"hours"`
	Social   SocialLinks   `json:"social"`
}

// HeroBadge is one of the trust badges shown under the hero headline.
type HeroBadge struct {
	Text string   `json:"text"`
	Icon IconName `json:"icon"`
}

// HeroSection is the landing page hero content.
type HeroSection struct {
	Headline        string      `json:"headline"`
	Subheadline     string      `json:"subheadline"`
	CTAPrimary      string      `json:"ctaPrimary"`
	CTASecondary    string      `json:"ctaSecondary"`
	BackgroundImage string      `json:"backgroundImage"`
	Badges          []HeroBadge `json:"badges"`
}

// EmergencyBanner is the site-wide emergency call banner.
type EmergencyBanner struct {
	Text            string `json:"text"`
	Phone           string `json:"phone"`
	BackgroundColor string `json:"backgroundColor"`
}

// Service is one catalog entry. ID doubles as the URL slug for the
// per-service page and must be unique across the catalog.
type Service struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Icon             IconName `json:"icon"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Features         []string `json:"features"`
	Image            string   `json:"image"`
}

// WhyChooseUsItem is one selling point with an associated statistic.
type WhyChooseUsItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        IconName `json:"icon"`
	Stat        string   `json:"stat"`
}

// ServiceAreas names the covered region. Cities is for display and
// ZipCodes is the membership list for "do you service my area" checks;
// the two lists are maintained independently.
type ServiceAreas struct {
	MainArea    string   `json:"mainArea"`
	Description string   `json:"description"`
	Cities      []string `json:"cities"`
	ZipCodes    []string `json:"zipCodes"`
}

// Testimonial is one customer review. Rating is an integer from 1 to 5.
type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Text     string `json:"text"`
	Service  string `json:"service"`
	Avatar   string `json:"avatar"`
}

// TeamInfo describes the crew for the about section.
type TeamInfo struct {
	Description string `json:"description"`
	Size        string `json:"size"`
}

// AboutSection is the company story content.
type AboutSection struct {
	Headline       string   `json:"headline"`
	Story          string   `json:"story"`
	Mission        string   `json:"mission"`
	Values         []string `json:"values"`
	Certifications []string `json:"certifications"`
	Team           TeamInfo `json:"team"`
}

// ProcessStep is one step of the "how it works" walkthrough. Ordering is
// by the Step field, not array position.
type ProcessStep struct {
	Step        int      `json:"step"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        IconName `json:"icon"`
}

// Promotion is a discount offer. Expiration is empty when the offer has no
// end date (JSON null); whether a promotion is currently offered is a
// derived, time-dependent predicate (see sitecontent.ActivePromotions),
// not a stored field.
type Promotion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Terms       string `json:"terms"`
	Expiration  string `json:"expiration"`
	Active      bool   `json:"active"`
}

// FAQ is one question/answer pair. Category is a free-form string used
// only for grouping on the page, not a closed enumeration.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// SEOMeta holds the page <head> metadata.
type SEOMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// GeoCoordinates is the schema.org geo sub-record.
type GeoCoordinates struct {
	Type      string `json:"@type"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// PostalAddress is the schema.org address sub-record.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// OpeningHoursSpecification is one schema.org opening-hours entry.
// DayOfWeek may be a single string or a list in the source document;
// the validator normalizes both to a list.
type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

// SchemaOrg is the structured-data record emitted for local-business SEO.
type SchemaOrg struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	Name                      string                      `json:"name"`
	Image                     string                      `json:"image"`
	Telephone                 string                      `json:"telephone"`
	Email                     string                      `json:"email"`
	Address                   PostalAddress               `json:"address"`
	Geo                       GeoCoordinates              `json:"geo"`
	PriceRange                string                      `json:"priceRange"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification"`
	AreaServed                string                      `json:"areaServed"`
}

// SEOData bundles page metadata with the structured-data record.
type SEOData struct {
	Meta   SEOMeta   `json:"meta"`
	Schema SchemaOrg `json:"schema"`
}

// CallToAction is one CTA button's text and action target.
type CallToAction struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// CallToActions holds the three site-wide CTAs.
type CallToActions struct {
	Primary   CallToAction `json:"primary"`
	Secondary CallToAction `json:"secondary"`
	Emergency CallToAction `json:"emergency"`
}

// SiteData is the complete content document. One instance is loaded per
// process by the sitecontent store and shared read-only.
type SiteData struct {
	BusinessInfo    BusinessInfo      `json:"businessInfo"`
	Contact         ContactInfo       `json:"contact"`
	Hero            HeroSection       `json:"hero"`
	EmergencyBanner EmergencyBanner   `json:"emergencyBanner"`
	Services        []Service         `json:"services"`
	WhyChooseUs     []WhyChooseUsItem `json:"whyChooseUs"`
	ServiceAreas    ServiceAreas      `json:"serviceAreas"`
	Testimonials    []Testimonial     `json:"testimonials"`
	About           AboutSection      `json:"about"`
	Process         []ProcessStep     `json:"process"`
	Promotions      []Promotion       `json:"promotions"`
	FAQ             []FAQ             `json:"faq"`
	SEO             SEOData           `json:"seo"`
	CallToActions   CallToActions     `json:"callToActions"`
}
