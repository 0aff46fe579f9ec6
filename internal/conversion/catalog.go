package conversion

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/bytedance/sonic"
)

//go:embed catalog.json
var catalogJSON []byte

type catalogDocument struct {
	Groups []groupDocument `json:"groups"`
}

type groupDocument struct {
	Name       string             `json:"name"`
	Categories []categoryDocument `json:"categories"`
}

type categoryDocument struct {
	Name        string         `json:"name"`
	Kind        Kind           `json:"kind"`
	Reference   string         `json:"reference"`
	DefaultFrom string         `json:"defaultFrom"`
	DefaultTo   string         `json:"defaultTo"`
	Units       []unitDocument `json:"units"`
}

type unitDocument struct {
	Name   string   `json:"name"`
	Factor *float64 `json:"factor,omitempty"`
}

// Group is a titled column of categories on the main menu
type Group struct {
	Name       string
	Categories []string
}

// Catalog is the fixed set of categories the application offers
type Catalog struct {
	groups     []Group
	categories []*Category
	byName     map[string]*Category
}

// LoadCatalog decodes the catalog compiled into the binary
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogJSON)
}

// ParseCatalog decodes and validates a catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	catalog := &Catalog{byName: make(map[string]*Category)}
	for _, g := range doc.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("%w: group without name", ErrInvalidCatalog)
		}

		group := Group{Name: g.Name}
		for _, cd := range g.Categories {
			category, err := buildCategory(g.Name, cd)
			if err != nil {
				return nil, err
			}
			if _, dup := catalog.byName[category.Name]; dup {
				return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, category.Name)
			}
			catalog.byName[category.Name] = category
			catalog.categories = append(catalog.categories, category)
			group.Categories = append(group.Categories, category.Name)
		}
		catalog.groups = append(catalog.groups, group)
	}

	if len(catalog.categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}
	return catalog, nil
}

func buildCategory(group string, cd categoryDocument) (*Category, error) {
	if cd.Name == "" {
		return nil, fmt.Errorf("%w: category without name in %q", ErrInvalidCatalog, group)
	}
	if cd.Kind != KindLinear && cd.Kind != KindTemperature {
		return nil, fmt.Errorf("%w: %s: unsupported kind %q", ErrInvalidCatalog, cd.Name, cd.Kind)
	}
	if len(cd.Units) == 0 {
		return nil, fmt.Errorf("%w: %s: no units", ErrInvalidCatalog, cd.Name)
	}

	c := &Category{
		Name:        cd.Name,
		Group:       group,
		Kind:        cd.Kind,
		Reference:   cd.Reference,
		DefaultFrom: cd.DefaultFrom,
		DefaultTo:   cd.DefaultTo,
		factors:     make(map[string]float64, len(cd.Units)),
	}

	seen := make(map[string]bool, len(cd.Units))
	for _, u := range cd.Units {
		if u.Name == "" || seen[u.Name] {
			return nil, fmt.Errorf("%w: %s: empty or duplicate unit %q", ErrInvalidCatalog, cd.Name, u.Name)
		}
		seen[u.Name] = true
		c.units = append(c.units, u.Name)

		if cd.Kind == KindTemperature {
			if _, err := ConvertTemperature(0, u.Name, Celsius); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, cd.Name, err)
			}
			continue
		}

		if u.Factor == nil {
			return nil, fmt.Errorf("%w: %s: unit %q has no factor", ErrInvalidCatalog, cd.Name, u.Name)
		}
		f := *u.Factor
		if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("%w: %s: unit %q factor %v must be positive", ErrInvalidCatalog, cd.Name, u.Name, f)
		}
		c.factors[u.Name] = f
	}

	for _, name := range []string{cd.Reference, cd.DefaultFrom, cd.DefaultTo} {
		if !seen[name] {
			return nil, fmt.Errorf("%w: %s: %q is not one of its units", ErrInvalidCatalog, cd.Name, name)
		}
	}
	if cd.Kind == KindLinear && c.factors[cd.Reference] != 1 {
		return nil, fmt.Errorf("%w: %s: reference unit %q must have factor 1", ErrInvalidCatalog, cd.Name, cd.Reference)
	}

	return c, nil
}

// Categories returns every category in menu order
func (c *Catalog) Categories() []*Category {
	out := make([]*Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Groups returns the menu sections in display order
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = Group{Name: g.Name, Categories: append([]string(nil), g.Categories...)}
	}
	return out
}

// Category looks up a category by name
func (c *Catalog) Category(name string) (*Category, error) {
	category, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, name)
	}
	return category, nil
}
