package multicase

import (
	"testing"

	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_NamedAccessors(t *testing.T) {
	d, err := New(userDoc(), naming.ToSnakeCase)
	require.NoError(t, err)

	tests := []struct {
		name  string
		got   *Map
		outer string
		inner string
		tag   string
	}{
		{name: "snake", got: d.SnakeCase(), outer: "user_info", inner: "first_name", tag: "tag_name"},
		{name: "camel", got: d.CamelCase(), outer: "userInfo", inner: "firstName", tag: "tagName"},
		{name: "pascal", got: d.PascalCase(), outer: "UserInfo", inner: "FirstName", tag: "TagName"},
		{name: "kebab", got: d.KebabCase(), outer: "user-info", inner: "first-name", tag: "tag-name"},
		{name: "constant", got: d.ConstantCase(), outer: "USER_INFO", inner: "FIRST_NAME", tag: "TAG_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := tt.got.Get(tt.outer)
			require.True(t, ok, "keys: %v", tt.got.Keys())
			require.IsType(t, &Map{}, info)
			_, ok = info.(*Map).Get(tt.inner)
			assert.True(t, ok)

			require.Len(t, tt.got.Keys(), 2)
			tags, _ := tt.got.Get(tt.got.Keys()[1])
			require.IsType(t, List{}, tags)
			require.IsType(t, &Map{}, tags.(List)[0])
			assert.Equal(t, []string{tt.tag}, tags.(List)[0].(*Map).Keys())
			assert.Equal(t, ScalarOf("plain"), tags.(List)[1])
		})
	}
}

func TestDict_ReCaseIdempotent(t *testing.T) {
	d, err := New(userDoc(), naming.ToCamelCase)
	require.NoError(t, err)

	for _, style := range naming.Styles() {
		t.Run(style.String(), func(t *testing.T) {
			h := style.Handler()
			once := d.ReCase(h)
			twice, err := once.ReCase(h)
			require.NoError(t, err)
			assert.True(t, Equal(once, twice), "once=%v twice=%v", ToGo(once), ToGo(twice))
		})
	}
}

func TestDict_ReCaseDoesNotUseSource(t *testing.T) {
	src := MapOf(Pair{Key: "someKey", Value: ScalarOf(1)})
	d, err := New(src, naming.ToSnakeCase)
	require.NoError(t, err)

	src.Set("otherKey", ScalarOf(2))
	assert.Equal(t, []string{"some_key"}, d.SnakeCase().Keys())
}

func TestDict_ReCaseCollision(t *testing.T) {
	// Distinct snake keys that meet under constant case.
	src := MapOf(
		Pair{Key: "a_b", Value: ScalarOf(1)},
		Pair{Key: "a-b", Value: ScalarOf(2)},
	)
	d, err := New(src, func(s string) string { return s })
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())

	got := d.ConstantCase()
	assert.True(t, Equal(MapOf(Pair{Key: "A_B", Value: ScalarOf(1)}), got))
}

func TestDict_ReCaseStyle(t *testing.T) {
	d, err := New(userDoc(), naming.ToSnakeCase)
	require.NoError(t, err)

	got, err := d.ReCaseStyle(naming.StyleDot)
	require.NoError(t, err)
	assert.Equal(t, []string{"user.info", "tags"}, got.Keys())

	_, err = d.ReCaseStyle(naming.Style(99))
	assert.ErrorIs(t, err, keyerrors.ErrConfig)
}

func TestDict_ToMap(t *testing.T) {
	d, err := New(userDoc(), naming.ToKebabCase)
	require.NoError(t, err)

	m := d.ToMap()
	assert.True(t, Equal(d, m))
	assert.IsType(t, &Map{}, mustGet(t, m, "user-info"))
}

func TestDict_UserCase(t *testing.T) {
	src := userDoc()
	d, err := New(src, naming.ToSnakeCase)
	require.NoError(t, err)

	assert.True(t, Equal(src, d.UserCase()))

	updated, err := d.Set("first_name_missing", ScalarOf(1))
	require.Error(t, err)
	assert.Nil(t, updated)

	updated, err = d.Set("user_info", MapOf(Pair{Key: "LastName", Value: ScalarOf("Lee")}))
	require.NoError(t, err)
	want := MapOf(
		Pair{Key: "UserInfo", Value: MapOf(Pair{Key: "LastName", Value: ScalarOf("Lee")})},
		Pair{Key: "Tags", Value: List{
			MapOf(Pair{Key: "TagName", Value: ScalarOf("x")}),
			ScalarOf("plain"),
		}},
	)
	assert.True(t, Equal(want, updated.UserCase()), "got %v", ToGo(updated.UserCase()))
}

func TestMap_ReCase(t *testing.T) {
	m := MapOf(
		Pair{Key: "outerKey", Value: List{MapOf(Pair{Key: "innerKey", Value: Null})}},
	)

	got, err := m.ReCase(naming.ToPascalCase)
	require.NoError(t, err)
	want := MapOf(
		Pair{Key: "OuterKey", Value: List{MapOf(Pair{Key: "InnerKey", Value: Null})}},
	)
	assert.True(t, Equal(want, got))

	same, err := m.ReCase(nil)
	require.NoError(t, err)
	assert.True(t, Equal(m, same))
	assert.NotSame(t, m, same)
}

func TestMap_ReCaseRejectsCycle(t *testing.T) {
	m := NewMap(1)
	m.Set("innerKey", List{m})

	got, err := m.ReCase(naming.ToPascalCase)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, keyerrors.ErrCycle)
}

func mustGet(t *testing.T, m *Map, key string) Value {
	t.Helper()
	v, ok := m.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}
