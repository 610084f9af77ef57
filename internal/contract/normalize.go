package contract

// Normalization defaults applied to partial or legacy contracts.
const (
	DefaultAppName = "Untitled App"
	DefaultLayout  = LayoutSidebarLeft
)

// Normalize fills per-field defaults so that partial or older-schema
// documents degrade gracefully rather than crash. A partial document
// is valid input, not an error path. The receiver is not mutated; a
// normalized copy is returned.
func Normalize(c Contract) Contract {
	if c.App.Name == "" {
		c.App.Name = DefaultAppName
	}
	if c.App.Logo.Variant == "" {
		c.App.Logo.Variant = "text"
	}
	if c.App.Logo.Variant == "text" && c.App.Logo.Text == "" {
		c.App.Logo.Text = c.App.Name
	}

	if !ValidLayouts[c.Shell.Layout] {
		c.Shell.Layout = DefaultLayout
	}

	if c.Tokens == nil {
		c.Tokens = map[string]map[string]TokenDef{}
	}
	if c.TextStyles == nil {
		c.TextStyles = map[string]TextStyleDef{}
	}
	if c.Navigation == nil {
		c.Navigation = []NavItem{}
	}
	if c.Pages == nil {
		c.Pages = map[string]Page{}
	}

	pages := make(map[string]Page, len(c.Pages))
	for id, p := range c.Pages {
		if p.ID == "" {
			p.ID = id
		}
		if p.Label == "" {
			p.Label = p.ID
		}
		pages[id] = p
	}
	c.Pages = pages

	for i := range c.Navigation {
		c.Navigation[i] = normalizeNavItem(c.Navigation[i])
	}

	if c.Shell.Header != nil {
		for i := range c.Shell.Header.Elements {
			if c.Shell.Header.Elements[i].Zone == "" {
				c.Shell.Header.Elements[i].Zone = ZoneRight
			}
		}
	}

	return c
}

func normalizeNavItem(item NavItem) NavItem {
	if item.Label == "" {
		item.Label = item.ID
	}
	if item.Type == "" {
		item.Type = "page"
	}
	for i := range item.Children {
		item.Children[i] = normalizeNavItem(item.Children[i])
	}
	return item
}
