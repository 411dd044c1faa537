package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder acumula pares (predicado, argumento ligado) y emite una sola
// cláusula WHERE parametrizada. Los valores nunca se concatenan al SQL: cada
// uno se liga como $n, continuando la numeración de los argumentos semilla.
//
// Un criterio omitido (valor vacío) simplemente no se agrega; los agregados se
// combinan con AND.
type whereBuilder struct {
	conds []string
	args  []any
}

// newWhereBuilder crea un builder. Los args semilla ocupan $1..$n y pertenecen
// al cuerpo de la consulta (por ejemplo el user_id del join de calificación propia).
func newWhereBuilder(seed ...any) *whereBuilder {
	return &whereBuilder{args: seed}
}

// bind liga un valor y devuelve su placeholder ($n).
func (b *whereBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Equal agrega col = valor. No hace nada si value está vacío.
func (b *whereBuilder) Equal(col, value string) {
	if value == "" {
		return
	}
	b.conds = append(b.conds, col+" = "+b.bind(value))
}

// Contains agrega una búsqueda de subcadena case-insensitive sobre col.
// El comodín se arma en el argumento, no en el SQL.
func (b *whereBuilder) Contains(col, value string) {
	if value == "" {
		return
	}
	b.conds = append(b.conds, col+" ILIKE "+b.bind("%"+value+"%"))
}

// ContainsAny agrega un único criterio que busca la subcadena en cualquiera de
// las columnas (OR interno); el criterio completo se combina con AND como los demás.
func (b *whereBuilder) ContainsAny(cols []string, value string) {
	if value == "" || len(cols) == 0 {
		return
	}
	ph := b.bind("%" + value + "%")
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = col + " ILIKE " + ph
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
}

// Clause devuelve " WHERE ..." o cadena vacía si no hay criterios.
func (b *whereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args devuelve los argumentos en el orden de sus placeholders.
func (b *whereBuilder) Args() []any {
	return b.args
}
