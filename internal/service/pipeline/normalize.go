package pipeline

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/dantalabs/leadscout/internal/entity"
	"github.com/dantalabs/leadscout/internal/scraper"
)

const (
	placeholderCompanyType   = "Private"
	placeholderEmployeeCount = "Unknown"
	placeholderRevenueRange  = "Unknown"
)

// normalizeListing turns one raw scraped listing into a company record with
// firmographic placeholders. Tech signals and the qualification verdict are
// layered on afterwards by the scan pipeline.
func normalizeListing(keyword, phoneRegion string, listing scraper.Listing) entity.Company {
	keyword = strings.TrimSpace(keyword)
	website := normalizeWebsite(listing.Website)

	industry := strings.TrimSpace(listing.CategoryName)
	if industry == "" {
		industry = keyword
	}

	company := entity.Company{
		Name:          strings.TrimSpace(listing.Title),
		Industry:      industry,
		HasSSL:        hasTLS(website),
		CompanyType:   placeholderCompanyType,
		EmployeeCount: placeholderEmployeeCount,
		RevenueRange:  placeholderRevenueRange,
		SearchKeyword: &keyword,
	}

	if website != "" {
		company.WebsiteURL = &website
	}
	if mapsURL := strings.TrimSpace(listing.URL); mapsURL != "" {
		company.GoogleMapsURL = &mapsURL
	}
	if address := strings.TrimSpace(listing.Address); address != "" {
		company.Address = &address
	}
	if phone := normalizePhone(listing.Phone, phoneRegion); phone != "" {
		company.Phone = &phone
	}

	return company
}

func hasTLS(websiteURL string) bool {
	return strings.HasPrefix(strings.ToLower(websiteURL), "https://")
}

// normalizeWebsite lowercases the host and converts internationalized domains
// to their ASCII form so probes and TLS detection see a canonical URL. A value
// that does not parse is kept verbatim.
func normalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}

	host := strings.ToLower(parsed.Hostname())
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	if port := parsed.Port(); port != "" {
		host += ":" + port
	}
	parsed.Host = host

	return parsed.String()
}

// normalizePhone formats the scraped phone number as E.164 when it parses for
// the configured default region, otherwise keeps the raw digits as scraped.
func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
