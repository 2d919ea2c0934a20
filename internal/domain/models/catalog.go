// internal/domain/models/catalog.go
package models

// DefaultSiteName is shown in the header and page titles.
const DefaultSiteName = "SafiSpaces"

// DefaultFooterText is the footer tagline.
const DefaultFooterText = "SafiSpaces Cleaning Services, Nairobi, Kenya"

// Service is a catalog entry describing one cleaning service.
type Service struct {
	Key   ServiceKey
	Label string
	Blurb string
}

// Differentiator is a "why choose us" card.
type Differentiator struct {
	Title string
	Body  string
}

// Testimonial is a customer quote shown on the landing page.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

// Stat is a headline number shown on the landing page.
type Stat struct {
	Value string
	Label string
}

// ServiceCatalog returns the services offered, in display order.
// ServiceUnspecified is the form placeholder and has no catalog card.
func ServiceCatalog() []Service {
	return []Service{
		{Key: ServiceOffice, Label: "Office Cleaning", Blurb: "Daily and scheduled cleaning for offices and commercial premises."},
		{Key: ServicePostConstruction, Label: "Post-Construction Cleaning", Blurb: "Dust, debris and paint residue removal after building or renovation work."},
		{Key: ServiceIndustrial, Label: "Industrial Cleaning", Blurb: "Warehouses, factories and plants cleaned to safety standards."},
		{Key: ServiceHome, Label: "Home Cleaning", Blurb: "Thorough residential cleaning, one-off or on a regular schedule."},
		{Key: ServiceUpholstery, Label: "Upholstery Cleaning", Blurb: "Deep cleaning for sofas, chairs, mattresses and curtains."},
		{Key: ServiceCarpet, Label: "Carpet Cleaning", Blurb: "Steam and dry cleaning for carpets and rugs of all sizes."},
		{Key: ServiceOther, Label: "Other Services", Blurb: "Something else? Tell us what you need and we will quote for it."},
	}
}

// ServiceLabel returns the display label for a service key.
func ServiceLabel(key ServiceKey) string {
	if key == ServiceUnspecified {
		return "Not specified"
	}
	for _, s := range ServiceCatalog() {
		if s.Key == key {
			return s.Label
		}
	}
	return string(key)
}

// Differentiators returns the "why choose us" cards.
func Differentiators() []Differentiator {
	return []Differentiator{
		{Title: "Vetted, trained teams", Body: "Every cleaner is background-checked and trained on our standard operating procedures."},
		{Title: "Eco-friendly products", Body: "We use certified, non-toxic cleaning products that are safe for children and pets."},
		{Title: "Insured and bonded", Body: "Full liability cover on every job, commercial or residential."},
		{Title: "Flexible scheduling", Body: "Evenings, weekends and short-notice bookings across Nairobi and its environs."},
	}
}

// Testimonials returns the customer quotes for the landing page.
func Testimonials() []Testimonial {
	return []Testimonial{
		{Quote: "They turned our post-renovation mess around in a single weekend.", Author: "Wanjiru M.", Role: "Property Manager, Westlands"},
		{Quote: "Our offices have never looked better. Reliable, week after week.", Author: "Otieno K.", Role: "Operations Lead, Upper Hill"},
		{Quote: "The carpet came back looking new. Booking was painless.", Author: "Amina H.", Role: "Homeowner, Kilimani"},
	}
}

// Stats returns the headline numbers for the landing page.
func Stats() []Stat {
	return []Stat{
		{Value: "500+", Label: "Jobs completed"},
		{Value: "120", Label: "Commercial clients"},
		{Value: "8", Label: "Years in business"},
		{Value: "24h", Label: "Quote turnaround"},
	}
}
