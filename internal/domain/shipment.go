package domain

// ShippableUnit is the per-physical-item projection handed to the shipment
// aggregator: one unit per individual item, not per cart line. It exists only
// during shipment aggregation and is never persisted.
type ShippableUnit struct {
	Name        string `json:"name"`
	WeightGrams int    `json:"weight_grams"`
}

// UnitsFromLine expands a cart line for the given product into individual
// shippable units. Returns nil for non-shippable products.
func UnitsFromLine(p *Product, quantity int) []ShippableUnit {
	if !p.Shippable {
		return nil
	}
	units := make([]ShippableUnit, quantity)
	for i := range units {
		units[i] = ShippableUnit{Name: p.Name, WeightGrams: p.Weight()}
	}
	return units
}

// ManifestGroup is one named group in a shipment manifest.
type ManifestGroup struct {
	Name             string `json:"name"`
	Count            int    `json:"count"`
	UnitWeightGrams  int    `json:"unit_weight_grams"`
	TotalWeightGrams int    `json:"total_weight_grams"`
}

// Manifest is the grouped-by-name shipment summary produced by a checkout.
type Manifest struct {
	Groups           []ManifestGroup `json:"groups"`
	TotalWeightGrams int             `json:"total_weight_grams"`
}

// TotalWeightKilograms returns the total package weight in kilograms.
func (m *Manifest) TotalWeightKilograms() float64 {
	return float64(m.TotalWeightGrams) / 1000
}
