package catalog

// Line is one resolved recipe line. Found is false when no catalog entry
// matched; such lines cost 0 and never fail the batch.
type Line struct {
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	Ingredient Ingredient `json:"ingredient"`
	Cost       float64    `json:"cost"`
	Found      bool       `json:"found"`
}

// ResolveLine prices a requested quantity of a named ingredient against the
// catalog. The quantity is converted into the catalog entry's unit before
// multiplying by its cost per unit.
func (c *Catalog) ResolveLine(name string, quantity float64, unit string) Line {
	line := Line{Name: name, Quantity: quantity, Unit: unit}
	ing, ok := c.Lookup(name)
	if !ok {
		return line
	}
	line.Ingredient = ing
	line.Found = true
	line.Cost = quantity * ConversionFactor(unit, ing.Unit) * ing.CostPerUnit
	return line
}
