package catalog

// widgetDefinition declares a widget before its markup is attached. The set
// is fixed at startup; there is no dynamic widget loading.
type widgetDefinition struct {
	Identifier   string
	Title        string
	Invoking     string
	Invoked      string
	ResponseText string
}

func builtinWidgets() []widgetDefinition {
	return []widgetDefinition{
		{
			Identifier:   "huggies-cards",
			Title:        "Show FAQ Cards",
			Invoking:     "Searching FAQs",
			Invoked:      "Found FAQ results",
			ResponseText: "Displayed FAQ cards!",
		},
		{
			Identifier:   "huggies-size-calc",
			Title:        "Diaper Size Calculator",
			Invoking:     "Calculating diaper size",
			Invoked:      "Size recommendation ready",
			ResponseText: "Calculated diaper size!",
		},
		{
			Identifier:   "huggies-map",
			Title:        "Store Locator Map",
			Invoking:     "Finding nearby stores",
			Invoked:      "Store locations found",
			ResponseText: "Displayed store map!",
		},
		{
			Identifier:   "huggies-offers",
			Title:        "Coupons & Offers",
			Invoking:     "Loading current offers",
			Invoked:      "Offers displayed",
			ResponseText: "Showed available offers!",
		},
		{
			Identifier:   "huggies-names",
			Title:        "Baby Name Suggestions",
			Invoking:     "Generating name suggestions",
			Invoked:      "Name suggestions ready",
			ResponseText: "Displayed name suggestions!",
		},
		{
			Identifier:   "huggies-gender",
			Title:        "Gender Predictor",
			Invoking:     "Predicting gender",
			Invoked:      "Prediction complete",
			ResponseText: "Showed gender prediction!",
		},
	}
}
