package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tatacoa/vitrina/internal/domain"
)

// sizePattern captures the trailing parenthesized token of a variant
// display name, e.g. "[REF9] Guayo Predator (40)" -> "40".
var sizePattern = regexp.MustCompile(`\(([^)]+)\)$`)

// Aggregate merges raw variants into one display entry per product
// template. Groups keep the first-seen order of templates, and rows
// keep their order within a group; the first row of each group is the
// base row that supplies name fallback, price, image, SKU, category
// and currency. Variants without a template reference are skipped;
// they can never be grouped.
func Aggregate(variants []domain.Variant, taxes map[int64]domain.TaxRecord) []domain.DisplayProduct {
	groups := make(map[int64][]domain.Variant)
	order := make([]int64, 0)

	for _, v := range variants {
		if !v.Template.Valid() {
			continue
		}
		if _, ok := groups[v.Template.ID]; !ok {
			order = append(order, v.Template.ID)
		}
		groups[v.Template.ID] = append(groups[v.Template.ID], v)
	}

	products := make([]domain.DisplayProduct, 0, len(order))
	for _, tmplID := range order {
		products = append(products, buildDisplayProduct(groups[tmplID], taxes))
	}
	return products
}

func buildDisplayProduct(group []domain.Variant, taxes map[int64]domain.TaxRecord) domain.DisplayProduct {
	base := group[0]

	name := base.Template.Name
	if name == "" {
		name = base.DisplayName
	}

	var stock float64
	sizes := make([]string, 0, len(group))
	for _, v := range group {
		stock += v.QtyAvailable
		if m := sizePattern.FindStringSubmatch(v.DisplayName); m != nil {
			sizes = append(sizes, m[1])
		}
	}

	category := "General"
	if base.Category.Valid() {
		category = base.Category.Name
	}

	currency := "COP"
	if base.Currency.Valid() {
		currency = base.Currency.Name
	}

	var images []domain.ProductImage
	if base.Image != "" {
		images = []domain.ProductImage{{
			ID:        "1",
			URL:       "data:image/webp;base64," + base.Image,
			Alt:       name,
			IsPrimary: true,
			Order:     1,
		}}
	}

	id := strconv.FormatInt(base.ID, 10)

	return domain.DisplayProduct{
		ID:          id,
		Name:        name,
		Description: base.Description,
		Price:       taxInclusivePrice(base.ListPrice, primaryTax(base, taxes)),
		Currency:    currency,
		Images:      images,
		Category:    category,
		Stock:       stock,
		SKU:         base.DefaultCode,
		Slug:        "odoo/" + id,
		CreatedAt:   formatDate(base.CreateDate),
		UpdatedAt:   formatDate(base.WriteDate),
		Featured:    false,
		Sizes:       sortSizes(sizes),
	}
}

// primaryTax looks up the tax record for a variant's first tax
// reference. A missing reference or an unresolved id yields a zero
// record, which prices the product tax-free instead of failing the
// aggregation.
func primaryTax(v domain.Variant, taxes map[int64]domain.TaxRecord) domain.TaxRecord {
	if len(v.TaxIDs) == 0 {
		return domain.TaxRecord{}
	}
	return taxes[v.TaxIDs[0]]
}

// taxInclusivePrice computes price + price * amount/100 with exact
// decimal arithmetic.
func taxInclusivePrice(listPrice float64, tax domain.TaxRecord) float64 {
	base := decimal.NewFromFloat(listPrice)
	surcharge := base.Mul(decimal.NewFromFloat(tax.Amount)).Div(decimal.NewFromInt(100))
	price, _ := base.Add(surcharge).Float64()
	return price
}

// sortSizes deduplicates size tokens and sorts them numerically when
// every token parses as a number; a single non-numeric token demotes
// the whole set to lexicographic order. The decision is made once for
// the set, never per comparison.
func sortSizes(sizes []string) []string {
	unique := make([]string, 0, len(sizes))
	seen := make(map[string]struct{}, len(sizes))
	for _, s := range sizes {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}

	numeric := make(map[string]float64, len(unique))
	allNumeric := true
	for _, s := range unique {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			allNumeric = false
			break
		}
		numeric[s] = n
	}

	if allNumeric {
		sort.Slice(unique, func(i, j int) bool {
			return numeric[unique[i]] < numeric[unique[j]]
		})
	} else {
		sort.Strings(unique)
	}
	return unique
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
