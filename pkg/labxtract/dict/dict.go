// Package dict provides the canonical parameter synonym dictionary used to
// recognize chemical parameter labels in lab sheets.
package dict

import (
	"regexp"
	"strings"
)

// Parameter pairs a canonical parameter name with its ordered list of
// lowercase textual variants.
type Parameter struct {
	// Name is the canonical parameter name.
	Name string
	// Variants lists the lowercase synonyms recognized for the parameter.
	Variants []string
}

// FallbackPattern pairs a canonical parameter name with the compiled regular
// expression used by the text-scan fallback extractor.
type FallbackPattern struct {
	// Name is the canonical parameter name.
	Name string
	// Re matches "<synonym> [:-=] <number>" in flattened sheet text and
	// captures the number.
	Re *regexp.Regexp
}

// Dictionary is an immutable, ordered mapping from canonical parameter names
// to their synonym variants. Construct with Default; iteration order is
// deterministic so repeated extractions are reproducible.
type Dictionary struct {
	params   []Parameter
	fallback []FallbackPattern
}

// Parameters returns the parameters in their fixed dictionary order.
func (d *Dictionary) Parameters() []Parameter {
	return d.params
}

// FallbackPatterns returns the compiled fallback patterns in dictionary order.
func (d *Dictionary) FallbackPatterns() []FallbackPattern {
	return d.fallback
}

// Names returns the canonical parameter names in dictionary order.
func (d *Dictionary) Names() []string {
	names := make([]string, len(d.params))
	for i, p := range d.params {
		names[i] = p.Name
	}
	return names
}

// fallbackSubset names the parameters the text-scan fallback recognizes.
// The trace-element synonyms are too short to match reliably in free text.
var fallbackSubset = map[string]bool{
	"pH":                      true,
	"nitrogen":                true,
	"phosphorus":              true,
	"potassium":               true,
	"calcium":                 true,
	"magnesium":               true,
	"organic_matter":          true,
	"electrical_conductivity": true,
}

// Default returns the built-in dictionary covering the standard soil/leaf
// analysis parameters.
func Default() *Dictionary {
	return build([]Parameter{
		{Name: "pH", Variants: []string{"ph", "ph value", "ph (h2o)", "ph level", "acidity"}},
		{Name: "nitrogen", Variants: []string{"nitrogen", "total nitrogen", "n%", "n (%)", "total n", "nitrate", "no3"}},
		{Name: "phosphorus", Variants: []string{"phosphorus", "phosphorous", "available p", "p%", "p (%)", "p2o5", "phosphate"}},
		{Name: "potassium", Variants: []string{"potassium", "available k", "k%", "k (%)", "k2o", "potash"}},
		{Name: "calcium", Variants: []string{"calcium", "exchangeable ca", "ca%", "ca (%)", "ca++"}},
		{Name: "magnesium", Variants: []string{"magnesium", "exchangeable mg", "mg%", "mg (%)", "mg++"}},
		{Name: "sulfur", Variants: []string{"sulfur", "sulphur", "s%", "s (%)", "sulfate", "so4"}},
		{Name: "iron", Variants: []string{"iron", "fe (ppm)", "fe ppm", "fe"}},
		{Name: "manganese", Variants: []string{"manganese", "mn (ppm)", "mn ppm", "mn"}},
		{Name: "zinc", Variants: []string{"zinc", "zn (ppm)", "zn ppm", "zn"}},
		{Name: "copper", Variants: []string{"copper", "cu (ppm)", "cu ppm", "cu"}},
		{Name: "boron", Variants: []string{"boron", "b (ppm)", "b ppm"}},
		{Name: "organic_matter", Variants: []string{"organic matter", "organic carbon", "om%", "om (%)", "o.m.", "humus"}},
		{Name: "electrical_conductivity", Variants: []string{"electrical conductivity", "conductivity", "e.c.", "ec (ds/m)", "salinity", "ec"}},
		{Name: "cation_exchange_capacity", Variants: []string{"cation exchange capacity", "c.e.c.", "cec"}},
	})
}

// With returns a copy of the dictionary with extra synonyms appended to the
// named parameters. Unknown parameter names are ignored; ordering of the
// built-in variants is preserved.
func (d *Dictionary) With(extra map[string][]string) *Dictionary {
	params := make([]Parameter, len(d.params))
	for i, p := range d.params {
		variants := append([]string(nil), p.Variants...)
		for _, v := range extra[p.Name] {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				variants = append(variants, v)
			}
		}
		params[i] = Parameter{Name: p.Name, Variants: variants}
	}
	return build(params)
}

func build(params []Parameter) *Dictionary {
	d := &Dictionary{params: params}
	for _, p := range params {
		if !fallbackSubset[p.Name] {
			continue
		}
		quoted := make([]string, len(p.Variants))
		for i, v := range p.Variants {
			quoted[i] = regexp.QuoteMeta(v)
		}
		re := regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)\s*[:\-=]?\s*(\d+\.?\d*)`)
		d.fallback = append(d.fallback, FallbackPattern{Name: p.Name, Re: re})
	}
	return d
}
