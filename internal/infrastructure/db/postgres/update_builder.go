package postgres

import (
	"fmt"
	"strings"
)

// fieldValue pairs a column name with the value it should be set to. Columns
// are always allow-listed constants chosen by the repository; request-supplied
// keys never reach this type.
type fieldValue struct {
	column string
	value  any
}

// setClause renders a SET clause for the given fields, numbering positional
// parameters from start: setClause(fields, 3) yields "title = $3,
// description = $4" and the values in matching order. Callers append the
// returned args after their fixed leading parameters.
//
// An empty field list yields an empty clause; repositories must guard that
// case before building a statement.
func setClause(fields []fieldValue, start int) (string, []any) {
	var sql strings.Builder
	args := make([]any, 0, len(fields))

	for i, f := range fields {
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString(fmt.Sprintf("%s = $%d", f.column, start+i))
		args = append(args, f.value)
	}

	return sql.String(), args
}
