package service

import (
	"github.com/Ahmed101Noor/Ecommerce-Task/internal/domain"
)

// ShippingService aggregates shippable units into shipment manifests.
type ShippingService struct{}

// NewShippingService creates a new shipping service.
func NewShippingService() *ShippingService {
	return &ShippingService{}
}

// BuildManifest groups shippable units by name, preserving the order in which
// each name first appears. Each group counts its units and carries the weight
// of the first unit seen for that name. An empty input yields a manifest with
// no groups and zero total weight.
func (s *ShippingService) BuildManifest(units []domain.ShippableUnit) *domain.Manifest {
	manifest := &domain.Manifest{}
	index := make(map[string]int)

	for _, unit := range units {
		i, ok := index[unit.Name]
		if !ok {
			i = len(manifest.Groups)
			index[unit.Name] = i
			manifest.Groups = append(manifest.Groups, domain.ManifestGroup{
				Name:            unit.Name,
				UnitWeightGrams: unit.WeightGrams,
			})
		}
		manifest.Groups[i].Count++
		manifest.Groups[i].TotalWeightGrams += unit.WeightGrams
		manifest.TotalWeightGrams += unit.WeightGrams
	}

	return manifest
}
