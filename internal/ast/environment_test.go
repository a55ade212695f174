package ast

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"

	"github.com/orizon-lang/j2o/internal/binding"
)

func TestNameTableUniqueNames(t *testing.T) {
	names := NewNameTable()
	assert.Equal(t, "tmp", names.UniqueName("tmp"))
	assert.Equal(t, "tmp_1", names.UniqueName("tmp"))
	assert.Equal(t, "tmp_2", names.UniqueName("tmp"))

	names.Reserve("i_1")
	assert.Equal(t, "i", names.UniqueName("i"))
	assert.Equal(t, "i_2", names.UniqueName("i"))
}

func TestNameTableElementNames(t *testing.T) {
	u := binding.NewUniverse()
	v := binding.NewVariable(binding.ElemLocalVariable, "id", u.Primitive(binding.KindInt), 0, nil)
	names := NewNameTable()
	assert.Equal(t, "id", names.NameOf(v))

	names.SetName(v, "id_")
	assert.Equal(t, "id_", names.NameOf(v))
	assert.Equal(t, "id__1", names.UniqueName("id_"))
}

func TestEnvironmentSourceLevel(t *testing.T) {
	u := binding.NewUniverse()

	assert.True(t, NewEnvironment(u, nil).SupportsLambdas())
	assert.False(t, NewEnvironment(u, semver.MustParse("1.7")).SupportsLambdas())

	env := NewEnvironment(u, semver.MustParse("1.8"))
	assert.True(t, env.SupportsLambdas())
	assert.False(t, env.SupportsPrivateInterfaceMethods())
	assert.True(t, NewEnvironment(u, semver.MustParse("11")).SupportsPrivateInterfaceMethods())
	assert.NotNil(t, env.Names)
	assert.NotNil(t, env.Types)
	assert.Same(t, u, env.Universe)
}
