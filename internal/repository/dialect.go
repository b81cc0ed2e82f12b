package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between supported stores. It is
// resolved once per connection and shared by every query the repository
// builds.
type Dialect interface {
	// Name returns the dialect identifier ("sqlite" or "postgres").
	Name() string
	// Placeholder returns the bind marker for the n-th (1-based) argument.
	Placeholder(n int) string
	// ContainsFold returns a case-insensitive substring predicate on column
	// bound to placeholder, and the argument value to bind.
	ContainsFold(column, placeholder, term string) (condition string, arg any)
}

// NewDialect returns the Dialect for a store name.
func NewDialect(name string) (Dialect, error) {
	switch name {
	case "sqlite":
		return SQLiteDialect{}, nil
	case "postgres":
		return PostgresDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", name)
	}
}

// SQLiteDialect has no case-insensitive LIKE for the whole Unicode range,
// so both sides are upper-cased.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return "sqlite" }

func (SQLiteDialect) Placeholder(int) string { return "?" }

func (SQLiteDialect) ContainsFold(column, placeholder, term string) (string, any) {
	return fmt.Sprintf(`UPPER(%s) LIKE %s ESCAPE '\'`, column, placeholder),
		"%" + escapeLike(strings.ToUpper(term)) + "%"
}

// PostgresDialect uses the native ILIKE operator.
type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

func (PostgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (PostgresDialect) ContainsFold(column, placeholder, term string) (string, any) {
	return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, column, placeholder),
		"%" + escapeLike(term) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in a search term match literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// whereBuilder accumulates AND-ed conditions and their bind arguments.
type whereBuilder struct {
	dialect    Dialect
	conditions []string
	args       []any
}

func newWhereBuilder(d Dialect) *whereBuilder {
	return &whereBuilder{dialect: d}
}

// next returns the placeholder for the next argument.
func (w *whereBuilder) next() string {
	return w.dialect.Placeholder(len(w.args) + 1)
}

// Equal adds "column = value".
func (w *whereBuilder) Equal(column string, value any) {
	w.conditions = append(w.conditions, column+" = "+w.next())
	w.args = append(w.args, value)
}

// ContainsFold adds a case-insensitive substring match.
func (w *whereBuilder) ContainsFold(column, term string) {
	cond, arg := w.dialect.ContainsFold(column, w.next(), term)
	w.conditions = append(w.conditions, cond)
	w.args = append(w.args, arg)
}

// Arg binds a value that is not part of the WHERE clause (LIMIT, OFFSET)
// and returns its placeholder.
func (w *whereBuilder) Arg(value any) string {
	p := w.next()
	w.args = append(w.args, value)
	return p
}

// Clause renders " WHERE a AND b", or "" without conditions.
func (w *whereBuilder) Clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (w *whereBuilder) Args() []any {
	return w.args
}
