package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Filter is a set of field/value equality conditions applied to a document
// collection. The reserved key "id" addresses the identifier column; every
// other key addresses the corresponding top-level field of the stored jsonb
// document. Filter keys come from application code, never from client input;
// filter values are always passed as query parameters.
type Filter map[string]any

// filterPredicate converts a Filter into a squirrel equality predicate over
// the collection's columns and jsonb fields.
func filterPredicate(filter Filter) sq.Eq {
	eq := sq.Eq{}
	for field, value := range filter {
		if field == "id" {
			eq["id"] = value
			continue
		}
		eq["doc->>'"+field+"'"] = value
	}

	return eq
}

// firstMatchSubquery selects the identifier of the first document matching
// the filter. "First" is defined by identifier order, which for UUIDv7 keys
// is creation order.
func firstMatchSubquery(collection string, filter Filter) sq.SelectBuilder {
	return sq.Select("id").
		From(collection).
		Where(filterPredicate(filter)).
		OrderBy("id").
		Limit(1)
}

// buildInsertQuery builds the INSERT statement persisting a new document.
// The saved representation is returned via a RETURNING clause so that the
// caller receives the canonical stored form.
func buildInsertQuery(collection, id string, doc []byte) (string, []any, error) {
	return sq.Insert(collection).
		Columns("id", "doc").
		Values(id, sq.Expr("?::jsonb", string(doc))).
		Suffix("RETURNING doc").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildFindOneQuery builds the SELECT returning the first document matching
// the filter.
func buildFindOneQuery(collection string, filter Filter) (string, []any, error) {
	return sq.Select("doc").
		From(collection).
		Where(filterPredicate(filter)).
		OrderBy("id").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildFindAllQuery builds the SELECT returning every document matching the
// filter. An empty filter selects the whole collection.
func buildFindAllQuery(collection string, filter Filter) (string, []any, error) {
	builder := sq.Select("doc").
		From(collection).
		OrderBy("id")

	if len(filter) > 0 {
		builder = builder.Where(filterPredicate(filter))
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

// buildPatchOneQuery builds the UPDATE applying a jsonb field patch to the
// first document matching the filter. Patched fields overwrite the stored
// ones; fields absent from the patch are left untouched.
func buildPatchOneQuery(collection string, filter Filter, patch []byte) (string, []any, error) {
	return sq.Update(collection).
		Set("doc", sq.Expr("doc || ?::jsonb", string(patch))).
		Where(sq.Expr("id IN (?)", firstMatchSubquery(collection, filter))).
		Suffix("RETURNING doc").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildDeleteOneQuery builds the DELETE removing the first document matching
// the filter and returning its pre-deletion state.
func buildDeleteOneQuery(collection string, filter Filter) (string, []any, error) {
	return sq.Delete(collection).
		Where(sq.Expr("id IN (?)", firstMatchSubquery(collection, filter))).
		Suffix("RETURNING doc").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
