package xmltree

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<root xmlns="urn:default" xmlns:x="urn:ext">
  <child kind="a">one</child>
  <child kind="b">two</child>
  <x:child kind="a">ext</x:child>
  <plain xmlns="">bare</plain>
  <outer><x:inner x:flag="y">deep</x:inner></outer>
</root>`

func mustParse(t *testing.T, data string) *etree.Element {
	t.Helper()
	el, err := Parse([]byte(data))
	require.NoError(t, err)
	return el
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("<unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte(""))
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestClarkTag(t *testing.T) {
	root := mustParse(t, doc)

	assert.Equal(t, "{urn:default}root", ClarkTag(root))

	plain := FindChild(root, "", "plain", nil)
	require.NotNil(t, plain)
	assert.Equal(t, "plain", ClarkTag(plain))
}

func TestFindChildMatchesNamespaceAndAttrs(t *testing.T) {
	root := mustParse(t, doc)

	el := FindChild(root, "urn:default", "child", map[string]string{"kind": "b"})
	require.NotNil(t, el)
	assert.Equal(t, "two", el.Text())

	el = FindChild(root, "urn:ext", "child", nil)
	require.NotNil(t, el)
	assert.Equal(t, "ext", el.Text())

	assert.Nil(t, FindChild(root, "urn:default", "child", map[string]string{"kind": "z"}))
	assert.Nil(t, FindChild(root, "urn:other", "child", nil))
}

func TestFindChildren(t *testing.T) {
	root := mustParse(t, doc)

	children := FindChildren(root, "urn:default", "child")
	require.Len(t, children, 2)
	assert.Equal(t, "one", children[0].Text())
	assert.Equal(t, "two", children[1].Text())
}

func TestFindDescendant(t *testing.T) {
	root := mustParse(t, doc)

	inner := FindDescendant(root, "urn:ext", "inner")
	require.NotNil(t, inner)
	assert.Equal(t, "deep", inner.Text())

	assert.Nil(t, FindDescendant(root, "urn:ext", "missing"))
}

func TestChildText(t *testing.T) {
	root := mustParse(t, doc)

	assert.Equal(t, "one", ChildText(root, "urn:default", "child"))
	assert.Equal(t, "", ChildText(root, "urn:default", "missing"))
}

func TestAttrMap(t *testing.T) {
	root := mustParse(t, doc)

	// xmlns declarations are not attributes of interest
	attrs := AttrMap(root)
	assert.Empty(t, attrs)

	inner := FindDescendant(root, "urn:ext", "inner")
	require.NotNil(t, inner)
	assert.Equal(t, map[string]string{"x:flag": "y"}, AttrMap(inner))
}

func TestDescendantsDepthFirst(t *testing.T) {
	root := mustParse(t, doc)

	var tags []string
	for _, el := range Descendants(root) {
		tags = append(tags, el.Tag)
	}
	assert.Equal(t, []string{"root", "child", "child", "child", "plain", "outer", "inner"}, tags)
}
