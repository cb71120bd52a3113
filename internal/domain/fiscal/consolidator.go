package fiscal

import (
	"sort"

	"github.com/zTMike/Desarollo-XML/internal/domain/entity"
)

// mixedRateSchemes esquemas que se consolidan por nombre sin distinguir tasa.
// ADV (impuesto al consumo de licores) aplica varias tasas al mismo cargo y
// el área contable espera una sola línea consolidada, no varias casi iguales.
var mixedRateSchemes = map[string]bool{
	"ADV": true,
}

// Consolidate agrupa las líneas de impuesto de un documento por
// (esquema, tasa) y acumula montos y bases con precisión completa.
// Los esquemas de mixedRateSchemes se agrupan solo por esquema y su tasa
// queda en el sentinela MIXTO. El resultado se ordena por (esquema, tasa)
// para que las filas del reporte sean deterministas.
func Consolidate(lines []entity.TaxLine) []entity.TaxGroup {
	byKey := make(map[string]*entity.TaxGroup)

	for _, line := range lines {
		rate := line.Percent
		key := line.SchemeName + "|" + rate
		if mixedRateSchemes[line.SchemeName] {
			rate = entity.RateMixed
			key = line.SchemeName
		}

		g, ok := byKey[key]
		if !ok {
			g = &entity.TaxGroup{
				SchemeID:   line.SchemeID,
				SchemeName: line.SchemeName,
				Rate:       rate,
			}
			byKey[key] = g
		}
		g.TaxAmount = g.TaxAmount.Add(line.TaxAmount)
		g.TaxableBase = g.TaxableBase.Add(line.TaxableAmount)
		g.MemberCount++
	}

	groups := make([]entity.TaxGroup, 0, len(byKey))
	for _, g := range byKey {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].SchemeName != groups[j].SchemeName {
			return groups[i].SchemeName < groups[j].SchemeName
		}
		return groups[i].Rate < groups[j].Rate
	})
	return groups
}
