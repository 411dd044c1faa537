package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Sin criterios no se emite WHERE.
func TestWhereBuilder_SinCriterios(t *testing.T) {
	b := newWhereBuilder()
	assert.Equal(t, "", b.Clause())
	assert.Empty(t, b.Args())
}

// Cada criterio liga su valor como placeholder; nada se concatena al SQL.
func TestWhereBuilder_Parametrizado(t *testing.T) {
	b := newWhereBuilder()
	b.Contains("name", "ali'; DROP TABLE users;--")

	assert.Equal(t, " WHERE name ILIKE $1", b.Clause())
	assert.Equal(t, []any{"%ali'; DROP TABLE users;--%"}, b.Args())
}

// Varios criterios se combinan con AND en orden de agregado.
func TestWhereBuilder_CombinaConAND(t *testing.T) {
	b := newWhereBuilder()
	b.Contains("name", "ali")
	b.Contains("email", "@x.com")
	b.Equal("role", "admin")

	assert.Equal(t, " WHERE name ILIKE $1 AND email ILIKE $2 AND role = $3", b.Clause())
	assert.Equal(t, []any{"%ali%", "%@x.com%", "admin"}, b.Args())
}

// Un criterio con valor vacío se omite sin dejar hueco en la numeración.
func TestWhereBuilder_CriterioVacioSeOmite(t *testing.T) {
	b := newWhereBuilder()
	b.Contains("name", "")
	b.Equal("role", "user")

	assert.Equal(t, " WHERE role = $1", b.Clause())
	assert.Equal(t, []any{"user"}, b.Args())
}

// Los args semilla ocupan los primeros placeholders y los criterios continúan
// la numeración.
func TestWhereBuilder_ArgsSemilla(t *testing.T) {
	b := newWhereBuilder("user-1")
	b.Contains("s.name", "café")

	assert.Equal(t, " WHERE s.name ILIKE $2", b.Clause())
	assert.Equal(t, []any{"user-1", "%café%"}, b.Args())
}

// ContainsAny produce un único criterio con OR interno y un solo placeholder,
// que se combina con AND como cualquier otro.
func TestWhereBuilder_ContainsAny(t *testing.T) {
	b := newWhereBuilder()
	b.ContainsAny([]string{"s.name", "s.address"}, "centro")
	b.Equal("s.email", "tienda@x.com")

	assert.Equal(t, " WHERE (s.name ILIKE $1 OR s.address ILIKE $1) AND s.email = $2", b.Clause())
	assert.Equal(t, []any{"%centro%", "tienda@x.com"}, b.Args())
}

func TestWhereBuilder_ContainsAnyVacio(t *testing.T) {
	b := newWhereBuilder()
	b.ContainsAny([]string{"s.name", "s.address"}, "")
	b.ContainsAny(nil, "algo")

	assert.Equal(t, "", b.Clause())
	assert.Empty(t, b.Args())
}
