package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgen-hq/shadowgen/internal/lexer"
)

func classify(source string) []Declaration {
	return Classify(lexer.GroupLines(lexer.Tokenize(source)))
}

func TestClassify_Empty(t *testing.T) {
	assert.Empty(t, classify(""))
}

func TestClassify_ClassAndMembers(t *testing.T) {
	source := `public class EntityRenderer {
    private int frameCount = 0;

    public void render(float partial) {
    }
}
`
	decls := classify(source)
	require.Len(t, decls, 3)

	cls := decls[0]
	assert.Equal(t, KindClass, cls.Kind)
	assert.Equal(t, "EntityRenderer", cls.Name)
	assert.Equal(t, []string{"public"}, cls.Modifiers)
	assert.Empty(t, cls.EnclosingClass)

	field := decls[1]
	assert.Equal(t, KindField, field.Kind)
	assert.Equal(t, "frameCount", field.Name)
	assert.Equal(t, "EntityRenderer", field.EnclosingClass)
	assert.Equal(t, []string{"private"}, field.Modifiers)

	method := decls[2]
	assert.Equal(t, KindMethod, method.Kind)
	assert.Equal(t, "render", method.Name)
	assert.Equal(t, "EntityRenderer", method.EnclosingClass)
}

func TestClassify_FieldIndentBoundary(t *testing.T) {
	// A member is only recognized exactly one indent level inside its
	// class; deeper lines are locals or nested declarations.
	atMemberIndent := "class Foo {\n    int x;\n}\n"
	tooDeep := "class Foo {\n        int x;\n}\n"

	decls := classify(atMemberIndent)
	require.Len(t, decls, 2)
	assert.Equal(t, KindField, decls[1].Kind)
	assert.Equal(t, "x", decls[1].Name)

	decls = classify(tooDeep)
	require.Len(t, decls, 1)
	assert.Equal(t, KindClass, decls[0].Kind)
}

func TestClassify_ConstructorGatesFields(t *testing.T) {
	source := `class Foo {
    int a;
    Foo() {}
    int b;
}
`
	decls := classify(source)
	require.Len(t, decls, 3)

	assert.Equal(t, KindClass, decls[0].Kind)
	assert.Equal(t, KindField, decls[1].Kind)
	assert.Equal(t, "a", decls[1].Name)
	assert.Equal(t, KindConstructor, decls[2].Kind)
	assert.Equal(t, "Foo", decls[2].Name)

	// b sits after the constructor and stays invisible.
	for _, d := range decls {
		assert.NotEqual(t, "b", d.Name)
	}
}

func TestClassify_MethodsSurviveConstructor(t *testing.T) {
	source := `class Foo {
    Foo() {}
    void tick() {}
}
`
	decls := classify(source)
	require.Len(t, decls, 3)
	assert.Equal(t, KindMethod, decls[2].Kind)
	assert.Equal(t, "tick", decls[2].Name)
}

func TestClassify_NextClassResetsGuard(t *testing.T) {
	source := `class Foo {
    Foo() {}
}
class Bar {
    int x;
}
`
	decls := classify(source)
	require.Len(t, decls, 4)
	assert.Equal(t, KindField, decls[3].Kind)
	assert.Equal(t, "x", decls[3].Name)
	assert.Equal(t, "Bar", decls[3].EnclosingClass)
}

func TestClassify_NoEnclosingClass(t *testing.T) {
	// Member patterns cannot match before the first class declaration.
	source := "    int x;\n    void tick() {}\n"
	assert.Empty(t, classify(source))
}

func TestClassify_ModifierRun(t *testing.T) {
	source := "class Foo {\n    private static final int MAX = 64;\n}\n"
	decls := classify(source)
	require.Len(t, decls, 2)
	assert.Equal(t, []string{"private", "static", "final"}, decls[1].Modifiers)
	assert.Equal(t, "MAX", decls[1].Name)
}

func TestClassify_GenericsOnType(t *testing.T) {
	source := "class Foo {\n    private Map<String, Integer> cache = null;\n}\n"
	decls := classify(source)
	require.Len(t, decls, 2)

	field := decls[1]
	assert.Equal(t, KindField, field.Kind)
	assert.Equal(t, "cache", field.Name)
	require.NotEmpty(t, field.TypeGenerics)
	assert.Equal(t, "<", field.TypeGenerics[0].Text)
	assert.Equal(t, ">", field.TypeGenerics[len(field.TypeGenerics)-1].Text)

	// The extracted span is gone from the working tokens.
	assert.Equal(t, "Map", field.Tokens[0].Text)
	assert.Equal(t, "cache", field.Tokens[1].Text)
}

func TestClassify_GenericsOnName(t *testing.T) {
	source := "class Foo {\n    Thing cache<T> = null;\n}\n"
	decls := classify(source)
	require.Len(t, decls, 2)

	field := decls[1]
	assert.Equal(t, "cache", field.Name)
	require.NotEmpty(t, field.NameGenerics)
	assert.Empty(t, field.TypeGenerics)
}

func TestClassify_UnbalancedGenericsDegrades(t *testing.T) {
	// The extractor reports nothing and the line is reconsidered with its
	// tokens untouched; the broken line produces no declaration.
	source := "class Foo {\n    Map<String cache = null;\n}\n"
	decls := classify(source)
	require.Len(t, decls, 1)
	assert.Equal(t, KindClass, decls[0].Kind)
}

func TestClassify_ConstructorRequiresClassName(t *testing.T) {
	source := `class Foo {
    Bar() {}
}
`
	decls := classify(source)
	require.Len(t, decls, 1)
	assert.Equal(t, KindClass, decls[0].Kind)
}

func TestClassify_SampleFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "EntityRenderer.java"))
	require.NoError(t, err)

	decls := classify(string(data))
	require.Len(t, decls, 7)

	assert.Equal(t, KindClass, decls[0].Kind)
	assert.Equal(t, "EntityRenderer", decls[0].Name)

	fields := []string{decls[1].Name, decls[2].Name, decls[3].Name}
	assert.Equal(t, []string{"mc", "farPlaneDistance", "lightmapColors"}, fields)

	assert.Equal(t, KindConstructor, decls[4].Kind)
	assert.Equal(t, KindMethod, decls[5].Kind)
	assert.Equal(t, "updateRenderer", decls[5].Name)
	assert.Equal(t, "getNightVisionBrightness", decls[6].Name)
}

func TestClassify_CommentedLineIgnored(t *testing.T) {
	source := "class Foo {\n    // int x;\n}\n"
	decls := classify(source)
	require.Len(t, decls, 1)
}
