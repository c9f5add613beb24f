package qb

// Subquery renders an already built statement as a derived table: "(sql) alias".
func Subquery(sql, alias string) string {
	return "(" + sql + ") " + alias
}

// Lateral renders "lateral (sql) alias on true" for use after a join keyword.
func Lateral(sql, alias string) string {
	return "lateral " + Subquery(sql, alias) + " on true"
}

// InQuery renders "col in (sql)".
func InQuery(col, sql string) string {
	return col + " in (" + sql + ")"
}
