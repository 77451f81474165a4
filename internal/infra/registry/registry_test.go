package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"huggiesd/internal/domain"
)

type stubWidgets map[string]domain.Widget

func (s stubWidgets) Get(identifier string) (domain.Widget, bool) {
	w, ok := s[identifier]
	return w, ok
}

func noopHandler(context.Context, json.RawMessage) (domain.ToolResult, error) {
	return domain.ToolResult{Text: "ok"}, nil
}

func testWidgets() stubWidgets {
	return stubWidgets{
		"huggies-cards": {
			Identifier:  "huggies-cards",
			TemplateURI: "ui://widget/huggies-cards.html",
			Invoking:    "Searching FAQs",
			Invoked:     "Found FAQ results",
		},
	}
}

func TestRegister_And_DescribeAll(t *testing.T) {
	r := New(testWidgets(), zap.NewNop())

	require.NoError(t, r.Register(domain.ToolSpec{
		Name:     "get_faq",
		Title:    "Search FAQs",
		WidgetID: "huggies-cards",
		Params: []domain.ParamSpec{
			{Name: "query", Type: domain.ParamString, Required: true},
		},
	}, noopHandler))
	require.NoError(t, r.Register(domain.ToolSpec{
		Name:     "list_faqs",
		WidgetID: "huggies-cards",
	}, noopHandler))

	entries := r.DescribeAll()
	require.Len(t, entries, 2)
	require.Equal(t, "get_faq", entries[0].Spec.Name)
	require.Equal(t, "list_faqs", entries[1].Spec.Name)
	require.Equal(t, []string{"get_faq", "list_faqs"}, r.Names())

	entry, ok := r.Get("get_faq")
	require.True(t, ok)
	require.Equal(t, "huggies-cards", entry.Widget.Identifier)
}

func TestRegister_DuplicateName(t *testing.T) {
	r := New(testWidgets(), zap.NewNop())
	spec := domain.ToolSpec{Name: "get_faq", WidgetID: "huggies-cards"}

	require.NoError(t, r.Register(spec, noopHandler))
	err := r.Register(spec, noopHandler)
	require.ErrorIs(t, err, domain.ErrDuplicateTool)
}

func TestRegister_UnknownWidget(t *testing.T) {
	r := New(testWidgets(), zap.NewNop())
	err := r.Register(domain.ToolSpec{Name: "coupons", WidgetID: "huggies-offers"}, noopHandler)
	require.ErrorIs(t, err, domain.ErrWidgetNotFound)
}

func TestRegister_NilHandler(t *testing.T) {
	r := New(testWidgets(), zap.NewNop())
	err := r.Register(domain.ToolSpec{Name: "get_faq", WidgetID: "huggies-cards"}, nil)
	require.Error(t, err)
}

func TestBuildInputSchema(t *testing.T) {
	r := New(testWidgets(), zap.NewNop())
	require.NoError(t, r.Register(domain.ToolSpec{
		Name:     "diaper_size_calc",
		WidgetID: "huggies-cards",
		Params: []domain.ParamSpec{
			{Name: "weight_kg", Type: domain.ParamNumber},
			{Name: "weight_lb", Type: domain.ParamNumber},
			{Name: "query", Type: domain.ParamString, Required: true},
			{Name: "verbose", Type: domain.ParamBoolean},
		},
	}, noopHandler))

	entry, ok := r.Get("diaper_size_calc")
	require.True(t, ok)

	schema := entry.InputSchema
	require.Equal(t, "object", schema["type"])
	require.Equal(t, false, schema["additionalProperties"])
	require.Equal(t, []string{"query"}, schema["required"])

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, properties, 4)
	weight, ok := properties["weight_kg"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "number", weight["type"])
	require.Equal(t, "weight_kg", weight["description"])
}

func TestRegister_InvalidParams(t *testing.T) {
	r := New(testWidgets(), zap.NewNop())

	err := r.Register(domain.ToolSpec{
		Name:     "bad_type",
		WidgetID: "huggies-cards",
		Params:   []domain.ParamSpec{{Name: "x", Type: "object"}},
	}, noopHandler)
	require.Error(t, err)

	err = r.Register(domain.ToolSpec{
		Name:     "dup_param",
		WidgetID: "huggies-cards",
		Params: []domain.ParamSpec{
			{Name: "x", Type: domain.ParamString},
			{Name: "x", Type: domain.ParamString},
		},
	}, noopHandler)
	require.Error(t, err)
}
