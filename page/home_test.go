package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shelteraid/shelteraid/core"
	"github.com/shelteraid/shelteraid/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) NavigateTo(path string) {
	n.paths = append(n.paths, path)
}

func render(t *testing.T, home *Home) string {
	t.Helper()
	var buf = &bytes.Buffer{}
	require.NoError(t, home.Render(buf))
	return buf.String()
}

func TestOnLoginRequestedNavigatesOnce(t *testing.T) {
	nav := &recordingNavigator{}
	NewHome().OnLoginRequested(nav)
	assert.Equal(t, []string{"/login"}, nav.paths)
}

func TestNoActivationNoNavigation(t *testing.T) {
	nav := &recordingNavigator{}
	home := NewHome()
	_ = render(t, home)
	_ = home.Node()
	assert.Empty(t, nav.paths)
}

func TestActivationsAreIndependent(t *testing.T) {
	nav := &recordingNavigator{}
	home := NewHome()
	home.OnLoginRequested(nav)
	home.OnLoginRequested(nav)
	assert.Equal(t, []string{LoginPath, LoginPath}, nav.paths)
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	NewHome().OnLoginRequested(core.NavigatorFunc(func(path string) { got = path }))
	assert.Equal(t, "/login", got)
}

func TestRenderContainsSections(t *testing.T) {
	blocks, err := util.TextBlocks(strings.NewReader(render(t, NewHome())))
	require.NoError(t, err)

	for _, want := range []string{"SHELTERAID", "History", "About us", "Mission", "Login", "MANUAL ANNOTATION"} {
		assert.Contains(t, blocks, want)
	}
	assert.Contains(t, blocks, "ShelterAID's PUBLIC HEALTH RESOURCES MAP")
}

func TestRenderMarkup(t *testing.T) {
	out := render(t, NewHome())

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `<a href="/">SHELTER<span class="text-green-500">AID</span></a>`)
	assert.Contains(t, out, `<form method="post" action="/">`)
	assert.Contains(t, out, `name="action" value="login"`)
	assert.Contains(t, out, `src="/home_manual.png"`)
	assert.Contains(t, out, `src="/home_shelteraid.png"`)
	assert.Contains(t, out, `<strong>ShelterAID</strong>`)
	assert.Contains(t, out, `<strong>PUBLIC HEALTH RESOURCES MAP</strong>`)
}

func TestRenderIsIdempotent(t *testing.T) {
	home := NewHome()
	first := render(t, home)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, render(t, home))
	}
	assert.Equal(t, first, render(t, &Home{}))
}
