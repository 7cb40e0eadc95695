package picker

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refs(names ...string) []Value {
	out := make([]Value, 0, len(names))
	for _, n := range names {
		out = append(out, Ref{ID: uuid.New(), Name: n})
	}
	return out
}

func TestField_CandidatesExcludeSelected(t *testing.T) {
	candidates := refs("Max Verstappen", "Lewis Hamilton", "Fernando Alonso")
	f := New(Config{Mode: ModeAppend}, candidates)

	f.Select(candidates[1])
	f.Select(candidates[0])

	for _, c := range f.Candidates() {
		assert.NotEqual(t, "Lewis Hamilton", c.Label())
		assert.NotEqual(t, "Max Verstappen", c.Label())
	}
	require.Len(t, f.Candidates(), 1)
	assert.Equal(t, "Fernando Alonso", f.Candidates()[0].Label())
}

func TestField_SelectionOrderIrrelevant(t *testing.T) {
	names := []string{"Red Bull", "Ferrari", "McLaren", "Williams"}
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}}
	for _, order := range orders {
		candidates := refs(names...)
		f := New(Config{Mode: ModeAppend}, candidates)
		for _, i := range order {
			f.Select(candidates[i])
		}
		require.Len(t, f.Candidates(), 1)
		assert.Equal(t, "Williams", f.Candidates()[0].Label())
	}
}

func TestField_QueryFiltersCaseInsensitively(t *testing.T) {
	f := New(Config{}, refs("Max Verstappen", "Lewis Hamilton", "Lando Norris"))
	f.SetQuery("max")
	got := f.Candidates()
	require.NotEmpty(t, got)
	assert.Equal(t, "Max Verstappen", got[0].Label())
}

func TestField_AppendModeClearsQuery(t *testing.T) {
	candidates := refs("Monaco", "Monza")
	f := New(Config{Mode: ModeAppend}, candidates)
	f.SetQuery("mon")
	f.Select(candidates[0])

	assert.Empty(t, f.Query())
	require.Len(t, f.Selected(), 1)
	_, ok := f.Single()
	assert.False(t, ok, "append mode must not store a single value")
}

func TestField_SingleModeStoresValue(t *testing.T) {
	candidates := refs("Suzuka", "Spa")
	f := New(Config{Mode: ModeSingle}, candidates)
	f.Select(candidates[1])

	single, ok := f.Single()
	require.True(t, ok)
	assert.Equal(t, "Spa", single.Label())
	assert.Empty(t, f.Selected(), "single mode must not append to the list")
}

func TestField_DuplicateSelectIgnored(t *testing.T) {
	// Two records sharing a display name are the same option.
	a := Ref{ID: uuid.New(), Name: "Ayrton Senna"}
	b := Ref{ID: uuid.New(), Name: "Ayrton Senna"}
	f := New(Config{Mode: ModeAppend}, []Value{a, b})
	f.Select(a)
	f.Select(b)
	assert.Len(t, f.Selected(), 1)
	assert.Empty(t, f.Candidates())
}

func TestField_ShowCreatePolicies(t *testing.T) {
	candidates := refs("Alpine")

	always := New(Config{DisplayNew: DisplayAlways}, candidates)
	assert.True(t, always.ShowCreate(), "always renders even with candidates present")

	never := New(Config{DisplayNew: DisplayNever}, candidates)
	assert.False(t, never.ShowCreate())
	never.Select(candidates[0])
	assert.False(t, never.ShowCreate(), "never renders even with no candidates left")

	whenEmpty := New(Config{Mode: ModeAppend, DisplayNew: DisplayWhenEmpty}, candidates)
	assert.False(t, whenEmpty.ShowCreate())
	whenEmpty.Select(candidates[0])
	assert.True(t, whenEmpty.ShowCreate(), "renders once the filtered list is empty")
}

func TestField_CreateDoesNotMutateSelection(t *testing.T) {
	candidates := refs("Haas", "Sauber")
	created := false
	f := New(Config{
		Mode:       ModeAppend,
		DisplayNew: DisplayAlways,
		OnCreate:   func() { created = true },
	}, candidates)
	f.Select(candidates[0])
	f.SetQuery("sau")

	f.Create()

	assert.True(t, created)
	assert.Len(t, f.Selected(), 1)
	assert.Equal(t, "sau", f.Query())
}

func TestField_BadgeLookup(t *testing.T) {
	f := New(Config{
		Mode: ModeSingle,
		Badges: map[string]Badge{
			"Moustache": {Name: "Moustache", Description: "Grown since karting days", Rarity: "legendary"},
		},
	}, []Value{Raw("Moustache"), Raw("Mullet")})

	badge, ok := f.BadgeFor(Raw("Moustache"))
	require.True(t, ok)
	assert.Equal(t, "legendary", badge.Rarity)

	_, ok = f.BadgeFor(Raw("Mullet"))
	assert.False(t, ok, "lookup miss falls back to plain text rendering")
}

func TestField_Deselect(t *testing.T) {
	candidates := refs("Jenson Button", "Nico Rosberg")
	f := New(Config{Mode: ModeAppend}, candidates)
	f.Select(candidates[0])
	f.Select(candidates[1])

	f.Deselect(Raw("Jenson Button"))

	require.Len(t, f.Selected(), 1)
	assert.Equal(t, "Nico Rosberg", f.Selected()[0].Label())
	assert.Len(t, f.Candidates(), 1)
}
