package models

import "fmt"

// Section is a page of the storefront navigation
type Section string

const (
	SectionHome     Section = "home"
	SectionCatalog  Section = "catalog"
	SectionDelivery Section = "delivery"
	SectionReviews  Section = "reviews"
	SectionAbout    Section = "about"
	SectionContacts Section = "contacts"
)

// Sections lists the navigation entries in menu order
var Sections = []Section{SectionHome, SectionCatalog, SectionDelivery, SectionReviews, SectionAbout, SectionContacts}

// ParseSection converts a raw value into a known section
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}
