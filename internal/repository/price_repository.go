package repository

import (
	"context"
	"database/sql"

	"github.com/jewelpark/attraction-cart/internal/catalog"
	"github.com/jewelpark/attraction-cart/internal/model"
)

// PriceRow is the persistence model for one rate-card override loaded from
// the price_entries table.  Amounts are stored in cents; senior_cents is
// nullable because most entries have no senior tier.
type PriceRow struct {
	Category    string        // price_entries.category ("standard" or "resident")
	Product     string        // price_entries.product
	AdultCents  int64         // price_entries.adult_cents
	ChildCents  int64         // price_entries.child_cents
	SeniorCents sql.NullInt64 // price_entries.senior_cents (nullable)
}

// PriceRepo provides read access to the price_entries table.  The table is
// optional operational tooling: it lets prices be corrected without a
// deploy, while the built-in catalog remains the fallback for every pair
// the table does not mention.
type PriceRepo struct {
	db *sql.DB
}

// NewPriceRepo returns a new PriceRepo bound to the provided database.
func NewPriceRepo(db *sql.DB) *PriceRepo { return &PriceRepo{db: db} }

// LoadAll reads every override row.  Rows with an unknown category are
// skipped by the caller rather than failing the whole load.
func (r *PriceRepo) LoadAll(ctx context.Context) ([]PriceRow, error) {
	const q = `SELECT category, product, adult_cents, child_cents, senior_cents
	           FROM price_entries`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PriceRow
	for rows.Next() {
		var pr PriceRow
		if err := rows.Scan(&pr.Category, &pr.Product, &pr.AdultCents, &pr.ChildCents, &pr.SeniorCents); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyOverrides loads the table and writes each row over the catalog.
// Unknown categories are ignored; the legacy "local" category in a row is
// normalized like any other ingestion point.  Returns the number of entries
// applied.
func (r *PriceRepo) ApplyOverrides(ctx context.Context, cat *catalog.Catalog) (int, error) {
	rows, err := r.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	applied := 0
	for _, row := range rows {
		category, ok := model.NormalizeCategory(row.Category)
		if !ok {
			continue
		}
		entry := catalog.PriceEntry{
			AdultCents: model.Cents(row.AdultCents),
			ChildCents: model.Cents(row.ChildCents),
		}
		if row.SeniorCents.Valid {
			entry.SeniorCents = model.Cents(row.SeniorCents.Int64)
		}
		cat.Override(category, row.Product, entry)
		applied++
	}
	return applied, nil
}
