package htmlutil

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<html><head><script>var x = "hidden";</script></head><body>
<div id="outer">
	<span class="a">  first
	  value </span>
	<b>second</b>
	<a href="/gp/product/B01">Product  One</a>
	<a href="https://example.com/abs">Absolute</a>
</div>
</body></html>`

func TestJoinedText(t *testing.T) {
	sel, err := Parse(page)
	require.NoError(t, err)

	require.Equal(t, "first\n\t  value second Product  One Absolute", JoinedText(sel.Find("#outer"), " "))
	require.NotContains(t, JoinedText(sel, " "), "hidden")
}

func TestCleanText(t *testing.T) {
	sel, err := Parse(page)
	require.NoError(t, err)

	require.Equal(t, "first value", CleanText(sel.Find("span.a")))
}

func TestSelect(t *testing.T) {
	sel, err := Parse(page)
	require.NoError(t, err)

	require.Equal(t, 0, Select(sel, []string{"div.missing", "[[invalid"}).Length())
	require.Equal(t, "second", Select(sel, []string{"div.missing", "b"}).Text())
	require.Equal(t, 2, Select(sel, []string{"a"}).Length())
	require.Equal(t, "Product  One", SelectOne(sel, "div.missing", "a").Text())
}

func TestRoot(t *testing.T) {
	sel, err := Parse(page)
	require.NoError(t, err)

	root := Root(sel.Find("b"))
	require.Equal(t, 1, root.Find("script").Length())
}

func TestGetAnchors(t *testing.T) {
	sel, err := Parse(page)
	require.NoError(t, err)

	base, err := url.Parse("https://www.amazon.com")
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), base, sel.Find("a"))
	require.Equal(t, []Anchor{
		{Name: "Product One", Href: "https://www.amazon.com/gp/product/B01"},
		{Name: "Absolute", Href: "https://example.com/abs"},
	}, anchors)
}
