package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLoader struct {
	missing map[string]bool
}

func (s *stubLoader) LoadMarkup(name string) (string, error) {
	if s.missing[name] {
		return "", fmt.Errorf("widget markup for %q not found", name)
	}
	return "<div>" + name + "</div>", nil
}

func TestBuild_AllWidgets(t *testing.T) {
	c, err := Build(&stubLoader{}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, c.All(), 6)

	widget, ok := c.Get("huggies-cards")
	require.True(t, ok)
	require.Equal(t, "ui://widget/huggies-cards.html", widget.TemplateURI)
	require.Equal(t, "<div>huggies-cards</div>", widget.HTML)
	require.Equal(t, "Searching FAQs", widget.Invoking)
	require.Equal(t, "Found FAQ results", widget.Invoked)
}

func TestBuild_UniqueIdentifiersAndURIs(t *testing.T) {
	c, err := Build(&stubLoader{}, zap.NewNop())
	require.NoError(t, err)

	ids := make(map[string]bool)
	uris := make(map[string]bool)
	for _, widget := range c.All() {
		require.False(t, ids[widget.Identifier], "duplicate identifier %s", widget.Identifier)
		require.False(t, uris[widget.TemplateURI], "duplicate uri %s", widget.TemplateURI)
		ids[widget.Identifier] = true
		uris[widget.TemplateURI] = true
	}
}

func TestBuild_MissingAssetFails(t *testing.T) {
	_, err := Build(&stubLoader{missing: map[string]bool{"huggies-gender": true}}, zap.NewNop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "huggies-gender")
}

func TestBuild_DuplicateIdentifierFails(t *testing.T) {
	defs := []widgetDefinition{
		{Identifier: "huggies-cards", Title: "A"},
		{Identifier: "huggies-cards", Title: "B"},
	}
	_, err := build(defs, &stubLoader{}, zap.NewNop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate identifier")
}

func TestResolveByURI(t *testing.T) {
	c, err := Build(&stubLoader{}, zap.NewNop())
	require.NoError(t, err)

	widget, ok := c.ResolveByURI("ui://widget/huggies-map.html")
	require.True(t, ok)
	require.Equal(t, "huggies-map", widget.Identifier)

	_, ok = c.ResolveByURI("ui://unknown")
	require.False(t, ok)
}
