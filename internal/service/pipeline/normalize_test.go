package pipeline

import (
	"testing"

	"github.com/dantalabs/leadscout/internal/scraper"
)

func TestNormalizeListing_FullListing(t *testing.T) {
	listing := scraper.Listing{
		Title:        "  Cafe X  ",
		Website:      "HTTPS://CafeX.Example/menu",
		URL:          "https://maps.google.com/?cid=42",
		CategoryName: "Coffee shop",
		Address:      "12 Nguyen Hue, District 1",
		Phone:        "0912 345 678",
	}

	company := normalizeListing("coffee shop hcmc", "VN", listing)

	if company.Name != "Cafe X" {
		t.Fatalf("unexpected name %q", company.Name)
	}
	if company.WebsiteURL == nil || *company.WebsiteURL != "https://cafex.example/menu" {
		t.Fatalf("unexpected website %v", company.WebsiteURL)
	}
	if !company.HasSSL {
		t.Fatalf("https website must set HasSSL")
	}
	if company.Industry != "Coffee shop" {
		t.Fatalf("unexpected industry %q", company.Industry)
	}
	if company.Phone == nil || *company.Phone != "+84912345678" {
		t.Fatalf("expected E.164 phone, got %v", company.Phone)
	}
	if company.SearchKeyword == nil || *company.SearchKeyword != "coffee shop hcmc" {
		t.Fatalf("expected search keyword recorded")
	}
	if company.CompanyType != "Private" || company.EmployeeCount != "Unknown" || company.RevenueRange != "Unknown" {
		t.Fatalf("unexpected firmographic placeholders: %+v", company)
	}
}

func TestNormalizeListing_SparseListing(t *testing.T) {
	company := normalizeListing("bakery", "VN", scraper.Listing{Title: "Banh Mi 37"})

	if company.WebsiteURL != nil || company.GoogleMapsURL != nil || company.Address != nil || company.Phone != nil {
		t.Fatalf("absent listing fields must stay nil: %+v", company)
	}
	if company.HasSSL {
		t.Fatalf("no website means no TLS")
	}
	if company.Industry != "bakery" {
		t.Fatalf("industry must fall back to keyword, got %q", company.Industry)
	}
}

func TestNormalizeListing_HTTPWebsiteHasNoTLS(t *testing.T) {
	company := normalizeListing("bakery", "VN", scraper.Listing{Title: "Shop", Website: "http://shop.example"})
	if company.HasSSL {
		t.Fatalf("http website must not count as TLS")
	}
}

func TestNormalizeWebsite_InternationalizedHost(t *testing.T) {
	if got := normalizeWebsite("https://bücher.example/shop"); got != "https://xn--bcher-kva.example/shop" {
		t.Fatalf("unexpected normalized url %q", got)
	}
}

func TestNormalizeWebsite_UnparseableKeptVerbatim(t *testing.T) {
	if got := normalizeWebsite("not a url"); got != "not a url" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestNormalizePhone_InvalidKeptRaw(t *testing.T) {
	if got := normalizePhone("call us!", "VN"); got != "call us!" {
		t.Fatalf("unexpected phone %q", got)
	}
}
