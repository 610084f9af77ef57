package contract

// Reserved context field names merged into every evaluation context.
// Data keys shadow reserved fields when they collide; local data wins.
const (
	FieldApp       = "app"
	FieldPage      = "page"
	FieldVariables = "variables"
	FieldTokens    = "tokens"
	FieldLocale    = "locale"
)

// BuildContext merges a data context with the reserved app context
// fields into a single lookup map for template resolution and
// visibility evaluation. The inputs are not mutated.
func BuildContext(data map[string]any, app *AppContext) map[string]any {
	out := make(map[string]any, len(data)+5)

	if app != nil {
		out[FieldApp] = map[string]any{
			"name":    app.App.Name,
			"favicon": app.App.Favicon,
			"logo": map[string]any{
				"variant": app.App.Logo.Variant,
				"text":    app.App.Logo.Text,
				"icon":    app.App.Logo.Icon,
				"src":     app.App.Logo.Src,
			},
		}
		out[FieldPage] = app.Page
		out[FieldLocale] = app.Locale

		vars := make(map[string]any, len(app.Variables))
		for k, v := range app.Variables {
			vars[k] = v
		}
		out[FieldVariables] = vars

		tokens := make(map[string]any, len(app.Tokens))
		for category, defs := range app.Tokens {
			values := make(map[string]any, len(defs))
			for name, def := range defs {
				values[name] = def.Value + def.Unit
			}
			tokens[category] = values
		}
		out[FieldTokens] = tokens
	}

	for k, v := range data {
		out[k] = v
	}
	return out
}
