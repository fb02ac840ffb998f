package schema

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dalemusser/pipewright/internal/testutil"
)

func mutateJSON(t *testing.T, data []byte, fn func(doc map[string]any)) []byte {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	fn(doc)
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("re-marshal fixture: %v", err)
	}
	return out
}

func violationPaths(err error) []string {
	vs := Violations(err)
	paths := make([]string, 0, len(vs))
	for _, v := range vs {
		paths = append(paths, v.Path)
	}
	return paths
}

func assertHasPath(t *testing.T, paths []string, want string) {
	t.Helper()
	for _, p := range paths {
		if p == want {
			return
		}
	}
	t.Errorf("expected a violation at %s, got %v", want, paths)
}

func TestParseSiteData_ValidDocument(t *testing.T) {
	data := testutil.SiteDataJSON(t, testutil.ValidSiteData())

	got, err := ParseSiteData(context.Background(), data)
	if err != nil {
		t.Fatalf("ParseSiteData: %v", err)
	}
	if got.BusinessInfo.Name != "Rivertown Plumbing Co." {
		t.Errorf("businessInfo.name: got %q", got.BusinessInfo.Name)
	}
	if len(got.Services) != 2 {
		t.Errorf("services: got %d, want 2", len(got.Services))
	}
	if got.Promotions[0].Expiration != "2030-12-31" {
		t.Errorf("promotion expiration: got %q", got.Promotions[0].Expiration)
	}
}

func TestParseSiteData_NullExpiration(t *testing.T) {
	data := testutil.SiteDataJSON(t, testutil.ValidSiteData())
	data = mutateJSON(t, data, func(doc map[string]any) {
		promos := doc["promotions"].([]any)
		promos[0].(map[string]any)["expiration"] = nil
	})

	got, err := ParseSiteData(context.Background(), data)
	if err != nil {
		t.Fatalf("ParseSiteData: %v", err)
	}
	if got.Promotions[0].Expiration != "" {
		t.Errorf("null expiration should bind to empty string, got %q", got.Promotions[0].Expiration)
	}
}

func TestParseSiteData_CollectsAllViolations(t *testing.T) {
	data := testutil.SiteDataJSON(t, testutil.ValidSiteData())
	data = mutateJSON(t, data, func(doc map[string]any) {
		contact := doc["contact"].(map[string]any)
		contact["email"] = "not-an-email"
		contact["phoneRaw"] = "(555) 204-4100"

		biz := doc["businessInfo"].(map[string]any)
		biz["license"] = ""

		services := doc["services"].([]any)
		services[1].(map[string]any)["id"] = services[0].(map[string]any)["id"]
		services[0].(map[string]any)["icon"] = "garden-hose"

		testimonials := doc["testimonials"].([]any)
		testimonials[0].(map[string]any)["rating"] = 6

		process := doc["process"].([]any)
		process[0].(map[string]any)["step"] = 0

		promos := doc["promotions"].([]any)
		promos[0].(map[string]any)["expiration"] = "soon"
	})

	_, err := ParseSiteData(context.Background(), data)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsViolation(err) {
		t.Fatalf("expected schema violations, got %v", err)
	}

	paths := violationPaths(err)
	assertHasPath(t, paths, "/contact/email")
	assertHasPath(t, paths, "/contact/phoneRaw")
	assertHasPath(t, paths, "/businessInfo/license")
	assertHasPath(t, paths, "/services/0/icon")
	assertHasPath(t, paths, "/testimonials/0/rating")
	assertHasPath(t, paths, "/process/0/step")
	assertHasPath(t, paths, "/promotions/0/expiration")

	// Duplicate service ids are reported on the colliding element.
	var sawDup bool
	for _, p := range paths {
		if strings.HasPrefix(p, "/services/1") {
			sawDup = true
		}
	}
	if !sawDup {
		t.Errorf("expected a duplicate-id violation under /services/1, got %v", paths)
	}
}

func TestParseSiteData_MissingSection(t *testing.T) {
	data := testutil.SiteDataJSON(t, testutil.ValidSiteData())
	data = mutateJSON(t, data, func(doc map[string]any) {
		delete(doc, "faq")
	})

	_, err := ParseSiteData(context.Background(), data)
	if err == nil {
		t.Fatal("expected validation error for missing faq section")
	}
	assertHasPath(t, violationPaths(err), "/faq")
}

func TestParseSiteData_NoNumericCoercion(t *testing.T) {
	data := testutil.SiteDataJSON(t, testutil.ValidSiteData())
	data = mutateJSON(t, data, func(doc map[string]any) {
		testimonials := doc["testimonials"].([]any)
		testimonials[0].(map[string]any)["rating"] = "5"
	})

	_, err := ParseSiteData(context.Background(), data)
	if err == nil {
		t.Fatal("expected validation error for string rating")
	}
	assertHasPath(t, violationPaths(err), "/testimonials/0/rating")
}

func TestParseSiteData_UnknownKeysStripped(t *testing.T) {
	data := testutil.SiteDataJSON(t, testutil.ValidSiteData())
	data = mutateJSON(t, data, func(doc map[string]any) {
		doc["draftNotes"] = "remove before launch"
		doc["businessInfo"].(map[string]any)["internalOwner"] = "marketing"
	})

	if _, err := ParseSiteData(context.Background(), data); err != nil {
		t.Fatalf("unknown keys should be stripped, not rejected: %v", err)
	}
}

func TestParseSiteData_DayOfWeekString(t *testing.T) {
	data := testutil.SiteDataJSON(t, testutil.ValidSiteData())
	data = mutateJSON(t, data, func(doc map[string]any) {
		spec := doc["seo"].(map[string]any)["schema"].(map[string]any)["openingHoursSpecification"].([]any)
		spec[0].(map[string]any)["dayOfWeek"] = "Saturday"
	})

	got, err := ParseSiteData(context.Background(), data)
	if err != nil {
		t.Fatalf("ParseSiteData: %v", err)
	}
	days := got.SEO.Schema.OpeningHoursSpecification[0].DayOfWeek
	if len(days) != 1 || days[0] != "Saturday" {
		t.Errorf("dayOfWeek: got %v, want [Saturday]", days)
	}
}

func TestParseExpiration(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2030-12-31", true},
		{"2030-12-31T23:59:59Z", true},
		{"12/31/2030", false},
		{"soon", false},
	}
	for _, c := range cases {
		_, err := ParseExpiration(c.in)
		if c.ok && err != nil {
			t.Errorf("ParseExpiration(%q): unexpected error %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseExpiration(%q): expected error", c.in)
		}
	}
}

func validSubmissionJSON() string {
	return `{
		"name": "Dana Miller",
		"phone": "5552044100",
		"email": "dana@example.com",
		"service": "drain-cleaning",
		"preferredDate": "2026-09-15",
		"preferredTime": "morning",
		"message": "Kitchen sink backs up every evening."
	}`
}

func TestParseSubmission_Valid(t *testing.T) {
	got, err := ParseSubmission(context.Background(), []byte(validSubmissionJSON()))
	if err != nil {
		t.Fatalf("ParseSubmission: %v", err)
	}
	if got.Name != "Dana Miller" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.PreferredDate != "2026-09-15" {
		t.Errorf("preferredDate: got %q", got.PreferredDate)
	}
}

func TestParseSubmission_OptionalFieldsOmitted(t *testing.T) {
	body := `{
		"name": "Dana Miller",
		"phone": "5552044100",
		"email": "dana@example.com",
		"service": "drain-cleaning",
		"message": "Kitchen sink backs up every evening."
	}`
	got, err := ParseSubmission(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("ParseSubmission: %v", err)
	}
	if got.PreferredDate != "" || got.PreferredTime != "" {
		t.Errorf("optional fields should be empty, got %q %q", got.PreferredDate, got.PreferredTime)
	}
}

func TestParseSubmission_MessageLengthBoundary(t *testing.T) {
	at := func(msg string) error {
		body := `{"name":"Dana Miller","phone":"5552044100","email":"dana@example.com","service":"drain-cleaning","message":` + quote(msg) + `}`
		_, err := ParseSubmission(context.Background(), []byte(body))
		return err
	}

	if err := at("123456789"); err == nil {
		t.Error("9-character message should fail")
	}
	if err := at("1234567890"); err != nil {
		t.Errorf("10-character message should pass: %v", err)
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestParseSubmission_CollectsAllViolations(t *testing.T) {
	body := `{
		"name": "D",
		"phone": "555",
		"email": "nope",
		"service": "",
		"message": "short"
	}`
	_, err := ParseSubmission(context.Background(), []byte(body))
	if err == nil {
		t.Fatal("expected validation error")
	}

	paths := violationPaths(err)
	for _, want := range []string{"/name", "/phone", "/email", "/service", "/message"} {
		assertHasPath(t, paths, want)
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"dana@example.com", true},
		{"dana+tag@example.co.uk", true},
		{"", false},
		{"dana", false},
		{"Dana <dana@example.com>", false},
		{"dana@", false},
	}
	for _, c := range cases {
		if got := isValidEmail(c.in); got != c.ok {
			t.Errorf("isValidEmail(%q): got %v, want %v", c.in, got, c.ok)
		}
	}
}
