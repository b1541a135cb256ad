package catalog

import "strings"

// Ingredient is one purchasable catalog entry. CostPerUnit is either supplied
// directly by the source sheet or derived from UnitCost and PackSize.
type Ingredient struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unitCost"`
	PackSize    float64 `json:"packSize"`
	CostPerUnit float64 `json:"costPerUnit"`
	Supplier    string  `json:"supplier,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// DeriveCostPerUnit computes the unit price of one pack. A zero pack size
// yields 0 instead of dividing by zero.
func DeriveCostPerUnit(unitCost, packSize float64) float64 {
	if packSize == 0 {
		return 0
	}
	return unitCost / packSize
}

// Normalized fills CostPerUnit from UnitCost/PackSize when the source did not
// carry it.
func (i Ingredient) Normalized() Ingredient {
	if i.CostPerUnit == 0 {
		i.CostPerUnit = DeriveCostPerUnit(i.UnitCost, i.PackSize)
	}
	return i
}

// Catalog is an insertion-ordered ingredient collection with a normalised
// name index. Insertion order matters: the substring fallback in Lookup is
// first-match-wins, so iteration has to be deterministic.
type Catalog struct {
	items []Ingredient
	index map[string]int
}

// New builds a catalog from the provided ingredients.
func New(items ...Ingredient) *Catalog {
	c := &Catalog{index: make(map[string]int, len(items))}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Add appends an ingredient, normalising its cost per unit. A later entry
// with the same normalised name replaces the earlier one in the index but
// keeps the original position.
func (c *Catalog) Add(ing Ingredient) {
	ing = ing.Normalized()
	key := normalizeName(ing.Name)
	if pos, ok := c.index[key]; ok {
		c.items[pos] = ing
		return
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, ing)
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns the entries in insertion order.
func (c *Catalog) Items() []Ingredient {
	if c == nil {
		return nil
	}
	out := make([]Ingredient, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup finds an ingredient by name. Exact match on the normalised name is
// the primary path; otherwise it falls back to case-insensitive substring
// containment in either direction, first match in insertion order winning.
// The fallback tolerates slightly inconsistent naming between recipe and
// catalog ("Truffle Mayo" vs "Heinz Truffle Mayo") and is documented as
// order-dependent.
func (c *Catalog) Lookup(name string) (Ingredient, bool) {
	if c == nil {
		return Ingredient{}, false
	}
	key := normalizeName(name)
	if key == "" {
		return Ingredient{}, false
	}
	if pos, ok := c.index[key]; ok {
		return c.items[pos], true
	}
	for _, it := range c.items {
		candidate := normalizeName(it.Name)
		if strings.Contains(candidate, key) || strings.Contains(key, candidate) {
			return it, true
		}
	}
	return Ingredient{}, false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
