package repositories

import (
	"fmt"
	"strconv"
	"strings"
)

// SQL dialect of the backing database. Queries are written with "?" placeholders
// and rebound for PostgreSQL.
type Dialect string

const (
	DialectSqlite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectSqlite:
		return DialectSqlite, nil
	case DialectPostgres, "pgx", "postgresql":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unknown sql dialect %q", s)
	}
}

// Rewrite "?" placeholders as $1, $2, ... for PostgreSQL.
func (d Dialect) Rebind(q string) string {
	if d != DialectPostgres {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
