package repository

import (
	"fmt"
	"strings"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

// BuildProductFilter maps the closed facet set to a SQL predicate over the
// product table (aliased "p"). It is a pure function: no database access, so
// the facet-to-fragment mapping is testable on its own.
//
// Rules:
//   - absent facets contribute no fragment
//   - all fragments are AND-combined
//   - free-text search ORs name and SKU internally
//   - colours and materials are existential: the product must have at least
//     one matching association
//
// The returned clause is empty when no facet is present; args use $n
// placeholders numbered from 1, so pagination arguments appended by the
// caller continue at len(args)+1.
func BuildProductFilter(f entities.ProductFilter) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	contains := func(s string) string {
		return "%" + strings.TrimSpace(s) + "%"
	}

	if strings.TrimSpace(f.Search) != "" {
		p := arg(contains(f.Search))
		conds = append(conds, fmt.Sprintf("(p.name ILIKE %s OR p.sku ILIKE %s)", p, p))
	}
	if strings.TrimSpace(f.Family) != "" {
		conds = append(conds, fmt.Sprintf(
			"p.family_id IN (SELECT family_id FROM furniture_family WHERE name ILIKE %s)",
			arg(contains(f.Family))))
	}
	if strings.TrimSpace(f.SubFamily) != "" {
		conds = append(conds, fmt.Sprintf(
			"p.subfamily_id IN (SELECT subfamily_id FROM furniture_subfamily WHERE name ILIKE %s)",
			arg(contains(f.SubFamily))))
	}
	if f.PriceMin != nil {
		conds = append(conds, fmt.Sprintf("p.price >= %s", arg(f.PriceMin.String())))
	}
	if f.PriceMax != nil {
		conds = append(conds, fmt.Sprintf("p.price <= %s", arg(f.PriceMax.String())))
	}
	if strings.TrimSpace(f.Colour) != "" {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_colour pc JOIN colour c ON c.colour_id = pc.colour_id"+
				" WHERE pc.product_id = p.product_id AND c.name ILIKE %s)",
			arg(contains(f.Colour))))
	}
	if strings.TrimSpace(f.Material) != "" {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM product_material pm JOIN material m ON m.material_id = pm.material_id"+
				" WHERE pm.product_id = p.product_id AND m.name ILIKE %s)",
			arg(contains(f.Material))))
	}
	if strings.TrimSpace(f.Supplier) != "" {
		conds = append(conds, fmt.Sprintf(
			"p.supplier_id IN (SELECT supplier_id FROM supplier WHERE name ILIKE %s)",
			arg(contains(f.Supplier))))
	}
	if f.HeightMin != nil {
		conds = append(conds, fmt.Sprintf("p.height >= %s", arg(*f.HeightMin)))
	}
	if f.WidthMin != nil {
		conds = append(conds, fmt.Sprintf("p.width >= %s", arg(*f.WidthMin)))
	}
	if f.LengthMax != nil {
		conds = append(conds, fmt.Sprintf("p.length <= %s", arg(*f.LengthMax)))
	}

	return strings.Join(conds, " AND "), args
}
