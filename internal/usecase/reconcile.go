package usecase

import (
	"context"
	"fmt"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

// ProposalLineItemInput is one (product, quantity) pair from a create or
// update request. Duplicate product ids within one request are rejected by
// validation before reconciliation runs.
type ProposalLineItemInput struct {
	ProductID int64
	Quantity  int
}

// reconcileLineItems diffs the desired line-item set against the stored one.
// Product id is the sole matching key.
//
//   - stored items absent from the desired set are removed
//   - desired products absent from the stored set are added with a fresh
//     catalog price snapshot
//   - quantity changes recompute the line total against the stored snapshot;
//     the catalog is not consulted again
//   - equal quantities leave the item untouched
//
// An unresolvable product fails the whole reconciliation; no partial diff is
// returned. The second result is the final item set in desired order.
func reconcileLineItems(
	ctx context.Context,
	catalog interfaces.ICatalogLookup,
	proposalID int64,
	current []entities.ProposalLineItem,
	desired []ProposalLineItemInput,
) (entities.LineItemDiff, []entities.ProposalLineItem, error) {
	currentByProduct := make(map[int64]entities.ProposalLineItem, len(current))
	for _, it := range current {
		currentByProduct[it.ProductID] = it
	}
	desiredProducts := make(map[int64]struct{}, len(desired))
	for _, in := range desired {
		desiredProducts[in.ProductID] = struct{}{}
	}

	var diff entities.LineItemDiff
	for _, it := range current {
		if _, keep := desiredProducts[it.ProductID]; !keep {
			diff.Remove = append(diff.Remove, it.ID)
		}
	}

	final := make([]entities.ProposalLineItem, 0, len(desired))
	for _, in := range desired {
		existing, ok := currentByProduct[in.ProductID]
		if !ok {
			product, err := catalog.ResolveProduct(ctx, in.ProductID)
			if err != nil {
				return entities.LineItemDiff{}, nil, err
			}
			if product.ID == 0 {
				return entities.LineItemDiff{}, nil, fmt.Errorf("product %d: %w", in.ProductID, ErrProductNotFound)
			}
			item := entities.ProposalLineItem{
				ProposalID:  proposalID,
				ProductID:   in.ProductID,
				Quantity:    in.Quantity,
				UnitPrice:   product.Price,
				LineTotal:   LineTotal(product.Price, in.Quantity),
				ProductName: product.Name,
				ProductSKU:  product.SKU,
			}
			diff.Add = append(diff.Add, item)
			final = append(final, item)
			continue
		}

		if existing.Quantity != in.Quantity {
			existing.Quantity = in.Quantity
			existing.LineTotal = LineTotal(existing.UnitPrice, in.Quantity)
			diff.Update = append(diff.Update, existing)
		}
		final = append(final, existing)
	}

	return diff, final, nil
}
