package generator

import (
	"strings"

	"github.com/Project-Sylos/Mimic/internal/catalog"
)

// SynthesizeName draws a first name then a surname, joined by a space
func SynthesizeName(region catalog.Region, src Source) string {
	first := Pick(src, region.FirstNames)
	last := Pick(src, region.Surnames)
	return first + " " + last
}

// SynthesizeAddress builds "{street}, {city}, {state} {zip}". The street,
// state and zip come from the source's fake-data side; the city comes from the
// region. Draw order is street, city, state, zip.
func SynthesizeAddress(region catalog.Region, src Source) string {
	street := src.Street()
	city := Pick(src, region.Cities)
	state := src.State()
	zip := src.Zip()

	var b strings.Builder
	b.Grow(len(street) + len(city) + len(state) + len(zip) + 5)
	b.WriteString(street)
	b.WriteString(", ")
	b.WriteString(city)
	b.WriteString(", ")
	b.WriteString(state)
	b.WriteByte(' ')
	b.WriteString(zip)
	return b.String()
}

// SynthesizePhone picks one of the region's phone formats and replaces each
// placeholder, left to right, with a random digit.
func SynthesizePhone(region catalog.Region, src Source) string {
	return FillTemplate(Pick(src, region.PhoneFormats), src)
}

// FillTemplate replaces every catalog.PhonePlaceholder in template with a
// digit 0-9. All other characters are copied through unchanged.
func FillTemplate(template string, src Intner) string {
	var b strings.Builder
	b.Grow(len(template))
	for _, c := range template {
		if c == catalog.PhonePlaceholder {
			b.WriteByte(byte('0' + src.IntN(10)))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
