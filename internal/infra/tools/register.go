package tools

import (
	"fmt"

	"huggiesd/internal/domain"
	"huggiesd/internal/infra/knowledge"
	"huggiesd/internal/infra/registry"
)

// RegisterAll declares the full tool set on reg. Call once during startup;
// registration order is the order tools are listed to clients.
func RegisterAll(reg *registry.Registry, store *knowledge.Store) error {
	faq := NewFAQ(store, knowledge.NewSearcher(store))

	specs := []struct {
		spec    domain.ToolSpec
		handler domain.ToolHandler
	}{
		{
			spec: domain.ToolSpec{
				Name:        "get_faq",
				Title:       "Search FAQs and return results with widget cards.",
				Description: "Search FAQs and return results with widget cards.",
				WidgetID:    "huggies-cards",
				Params: []domain.ParamSpec{
					{Name: "query", Type: domain.ParamString, Required: true},
				},
			},
			handler: faq.Search,
		},
		{
			spec: domain.ToolSpec{
				Name:        "list_faqs",
				Title:       "List all available FAQs.",
				Description: "List all available FAQs.",
				WidgetID:    "huggies-cards",
			},
			handler: faq.List,
		},
		{
			spec: domain.ToolSpec{
				Name:        "get_item_by_id",
				Title:       "Get a specific FAQ item by ID.",
				Description: "Get a specific FAQ item by ID.",
				WidgetID:    "huggies-cards",
				Params: []domain.ParamSpec{
					{Name: "item_id", Type: domain.ParamString, Required: true},
				},
			},
			handler: faq.GetByID,
		},
		{
			spec: domain.ToolSpec{
				Name:        "diaper_size_calc",
				Title:       "Calculate recommended diaper size based on baby's weight.",
				Description: "Calculate recommended diaper size based on baby's weight.",
				WidgetID:    "huggies-size-calc",
				Params: []domain.ParamSpec{
					{Name: "weight_kg", Type: domain.ParamNumber},
					{Name: "weight_lb", Type: domain.ParamNumber},
				},
			},
			handler: SizeCalc,
		},
		{
			spec: domain.ToolSpec{
				Name:        "map_widget",
				Title:       "Find retailers near a location and display on a map.",
				Description: "Find retailers near a location and display on a map.",
				WidgetID:    "huggies-map",
				Params: []domain.ParamSpec{
					{Name: "zip_code", Type: domain.ParamString},
					{Name: "location", Type: domain.ParamString},
					{Name: "limit", Type: domain.ParamNumber},
				},
			},
			handler: StoreLocator,
		},
		{
			spec: domain.ToolSpec{
				Name:        "coupons",
				Title:       "Get current Huggies coupons and offers.",
				Description: "Get current Huggies coupons and offers.",
				WidgetID:    "huggies-offers",
			},
			handler: Coupons,
		},
		{
			spec: domain.ToolSpec{
				Name:        "suggest_names",
				Title:       "Suggest unique baby names.",
				Description: "Suggest unique baby names.",
				WidgetID:    "huggies-names",
				Params: []domain.ParamSpec{
					{Name: "prefix", Type: domain.ParamString},
					{Name: "count", Type: domain.ParamNumber},
				},
			},
			handler: SuggestNames,
		},
		{
			spec: domain.ToolSpec{
				Name:        "predict_gender",
				Title:       "Playful gender prediction (not medical).",
				Description: "Playful gender prediction (not medical).",
				WidgetID:    "huggies-gender",
				Params: []domain.ParamSpec{
					{Name: "due_date", Type: domain.ParamString},
					{Name: "conception_date", Type: domain.ParamString},
				},
			},
			handler: PredictGender,
		},
	}

	for _, s := range specs {
		if err := reg.Register(s.spec, s.handler); err != nil {
			return fmt.Errorf("register tools: %w", err)
		}
	}
	return nil
}
