package qb

import "strings"

// Param returns the named placeholder for name, e.g. ":orderId".
func Param(name string) string {
	return ":" + strings.TrimPrefix(name, ":")
}

func Eq(col, param string) string {
	return cmp(col, "=", param)
}

func Neq(col, param string) string {
	return cmp(col, "<>", param)
}

func Gt(col, param string) string {
	return cmp(col, ">", param)
}

func Lt(col, param string) string {
	return cmp(col, "<", param)
}

func Gte(col, param string) string {
	return cmp(col, ">=", param)
}

func Lte(col, param string) string {
	return cmp(col, "<=", param)
}

func Like(col, param string) string {
	return cmp(col, "like", param)
}

func Between(col, from, to string) string {
	return col + " between " + Param(from) + " and " + Param(to)
}

func Null(col string) string {
	return col + " is null"
}

func NotNull(col string) string {
	return col + " is not null"
}

// In renders "col in (:a, :b)". Without params it yields "col in ()", which
// the database rejects.
func In(col string, params ...string) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Param(p))
	}
	return InQuery(col, sb.String())
}

func cmp(col, op, param string) string {
	return col + " " + op + " " + Param(param)
}
