package testutil

import (
	"encoding/json"

	"github.com/dalemusser/pipewright/internal/domain/models"
)

// ValidSiteData returns a complete content document that passes every
// schema check. Tests mutate a copy to provoke specific violations.
func ValidSiteData() models.SiteData {
	return models.SiteData{
		BusinessInfo: models.BusinessInfo{
			Name:           "Rivertown Plumbing Co.",
			ShortNameLine1: "Rivertown",
			ShortNameLine2: "Plumbing",
			Tagline:        "Fast, honest plumbing",
			Description:    "Family-owned plumbing serving the Rivertown metro since 1998.",
			Established:    "1998",
			License:        "PL-204417",
			Insured:        true,
			Emergency247:   true,
		},
		Contact: models.ContactInfo{
			Phone:    "(555) 204-4100",
			PhoneRaw: "+15552044100",
			Email:    "office@rivertownplumbing.example.com",
			Address: models.Address{
				Street:  "820 Mill Street",
				City:    "Rivertown",
				State:   "MO",
				Zip:     "65101",
				Country: "US",
			},
			Hours: models.BusinessHours{
				Monday:    "7:00 AM - 6:00 PM",
				Tuesday:   "7:00 AM - 6:00 PM",
				Wednesday: "7:00 AM - 6:00 PM",
				Thursday:  "7:00 AM - 6:00 PM",
				Friday:    "7:00 AM - 6:00 PM",
				Saturday:  "8:00 AM - 2:00 PM",
				Sunday:    "Closed",
				Emergency: "24/7",
			},
			Social: models.SocialLinks{
				Facebook:  "https://facebook.com/rivertownplumbing",
				Instagram: "https://instagram.com/rivertownplumbing",
				LinkedIn:  "https://linkedin.com/company/rivertownplumbing",
			},
		},
		Hero: models.HeroSection{
			Headline:        "Plumbing done right the first time",
			Subheadline:     "Licensed, insured, and on time.",
			CTAPrimary:      "Request Service",
			CTASecondary:    "Call Now",
			BackgroundImage: "/images/hero.jpg",
			Badges: []models.HeroBadge{
				{Text: "Licensed & Insured", Icon: models.IconShield},
				{Text: "Same-Day Service", Icon: models.IconClock},
			},
		},
		EmergencyBanner: models.EmergencyBanner{
			Text:            "Burst pipe? We answer 24/7.",
			Phone:           "(555) 204-4100",
			BackgroundColor: "#b91c1c",
		},
		Services: []models.Service{
			{
				ID:               "drain-cleaning",
				Name:             "Drain Cleaning",
				Icon:             models.IconDrain,
				ShortDescription: "Clogged drains cleared fast.",
				FullDescription:  "Hydro-jetting and augering for kitchen, bath, and main lines.",
				Features:         []string{"Camera inspection", "Hydro-jetting"},
				Image:            "/images/services/drain.jpg",
			},
			{
				ID:               "water-heaters",
				Name:             "Water Heaters",
				Icon:             models.IconWaterHeater,
				ShortDescription: "Repair and replacement.",
				FullDescription:  "Tank and tankless installs with same-day hot water.",
				Features:         []string{"Tankless upgrades", "Annual flush"},
				Image:            "/images/services/water-heater.jpg",
			},
		},
		WhyChooseUs: []models.WhyChooseUsItem{
			{Title: "Upfront pricing", Description: "Quote before we start.", Icon: models.IconReceipt, Stat: "0 surprises"},
			{Title: "Fast response", Description: "Most calls same day.", Icon: models.IconClockFast, Stat: "90 min avg"},
		},
		ServiceAreas: models.ServiceAreas{
			MainArea:    "Rivertown Metro",
			Description: "Serving Rivertown and surrounding communities.",
			Cities:      []string{"Rivertown", "Lakeside", "Fairview"},
			ZipCodes:    []string{"65101", "65102", "65109"},
		},
		Testimonials: []models.Testimonial{
			{ID: 1, Name: "Dana M.", Location: "Rivertown", Rating: 5, Date: "2024-03-12", Text: "Fixed our water heater the same afternoon.", Service: "Water Heaters", Avatar: "/images/avatars/1.jpg"},
			{ID: 2, Name: "Chris B.", Location: "Lakeside", Rating: 4, Date: "2024-02-02", Text: "Quick, tidy, and fairly priced.", Service: "Drain Cleaning", Avatar: "/images/avatars/2.jpg"},
		},
		About: models.AboutSection{
			Headline:       "Three decades of pipes and people",
			Story:          "Started with one van and a pager in 1998.",
			Mission:        "Honest plumbing at honest prices.",
			Values:         []string{"Honesty", "Craftsmanship"},
			Certifications: []string{"Missouri Master Plumber"},
			Team: models.TeamInfo{
				Description: "Twelve licensed plumbers and three apprentices.",
				Size:        "15",
			},
		},
		Process: []models.ProcessStep{
			{Step: 1, Title: "Call us", Description: "Describe the problem.", Icon: models.IconPhone},
			{Step: 2, Title: "We arrive", Description: "On time, in uniform.", Icon: models.IconTruck},
			{Step: 3, Title: "Fixed", Description: "Work guaranteed in writing.", Icon: models.IconCheckCircle},
		},
		Promotions: []models.Promotion{
			{ID: "new-customer", Title: "New Customer Special", Description: "$50 off first service call.", Code: "WELCOME50", Terms: "One per household.", Expiration: "2030-12-31", Active: true},
		},
		FAQ: []models.FAQ{
			{Question: "Do you charge for estimates?", Answer: "No, estimates are free.", Category: "Billing"},
			{Question: "Are you licensed?", Answer: "Yes, license PL-204417.", Category: "General"},
		},
		SEO: models.SEOData{
			Meta: models.SEOMeta{
				Title:       "Rivertown Plumbing Co. | Plumber in Rivertown, MO",
				Description: "Licensed plumbers for drains, water heaters, and emergencies.",
				Keywords:    "plumber, drain cleaning, water heater",
			},
			Schema: models.SchemaOrg{
				Context:    "https://schema.org",
				Type:       "Plumber",
				Name:       "Rivertown Plumbing Co.",
				Image:      "/images/storefront.jpg",
				Telephone:  "+15552044100",
				Email:      "office@rivertownplumbing.example.com",
				Address: models.PostalAddress{
					Type:            "PostalAddress",
					StreetAddress:   "820 Mill Street",
					AddressLocality: "Rivertown",
					AddressRegion:   "MO",
					PostalCode:      "65101",
					AddressCountry:  "US",
				},
				Geo: models.GeoCoordinates{
					Type:      "GeoCoordinates",
					Latitude:  "38.5767",
					Longitude: "-92.1735",
				},
				PriceRange: "$$",
				OpeningHoursSpecification: []models.OpeningHoursSpecification{
					{Type: "OpeningHoursSpecification", DayOfWeek: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, Opens: "07:00", Closes: "18:00"},
				},
				AreaServed: "Rivertown Metro",
			},
		},
		CallToActions: models.CallToActions{
			Primary:   models.CallToAction{Text: "Request Service", Action: "/contact"},
			Secondary: models.CallToAction{Text: "View Services", Action: "/services"},
			Emergency: models.CallToAction{Text: "Call 24/7", Action: "tel:+15552044100"},
		},
	}
}

// SiteDataJSON marshals a document for feeding to the validator or a fake
// content source.
func SiteDataJSON(t interface{ Fatalf(string, ...any) }, d models.SiteData) []byte {
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal site data: %v", err)
	}
	return b
}
