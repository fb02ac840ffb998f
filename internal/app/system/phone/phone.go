// Package phone provides phone number checks for content validation and
// contact form input.
package phone

import (
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when Configure is not called.
const DefaultRegion = "US"

var (
	mu     sync.RWMutex
	region = DefaultRegion
)

// Configure sets the region used to interpret numbers written without a
// country code. Called once at startup from the loaded config.
func Configure(r string) {
	r = strings.ToUpper(strings.TrimSpace(r))
	if r == "" {
		return
	}
	mu.Lock()
	region = r
	mu.Unlock()
}

// Region returns the configured default region.
func Region() string {
	mu.RLock()
	defer mu.RUnlock()
	return region
}

// IsDialable reports whether s contains only characters a dialer accepts:
// digits, with an optional leading "+". The content document's phoneRaw
// field must satisfy this so tel: links work as-is.
func IsDialable(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '+' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != "+"
}

// IsPossible reports whether s parses as a possible number for the
// configured region. This is a plausibility check (length and prefix),
// deliberately weaker than carrier-level validity.
func IsPossible(s string) bool {
	num, err := phonenumbers.Parse(s, Region())
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}
