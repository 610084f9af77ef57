package runtime

import (
	"github.com/orqui/orqui/internal/contract"
	"github.com/orqui/orqui/internal/visibility"
)

// ctaElementID is the reserved id of the header CTA element, shared by
// shell default and page override so the override replaces it.
const ctaElementID = "cta"

// HeaderElements returns the header elements for one zone after
// applying page-level overrides over the shell defaults. Order
// matters: shell defaults, then page hides, then page adds, then the
// CTA override, and the visibility filter last, so an added element
// can itself be hidden by the same rule evaluation.
func (r *Runtime) HeaderElements(zone string, local map[string]any) []contract.HeaderElement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()

	var elements []contract.HeaderElement
	var cta *contract.NodeDef

	if r.contract.Shell.Header != nil {
		elements = append(elements, r.contract.Shell.Header.Elements...)
		cta = r.contract.Shell.Header.CTA
	}

	if page, ok := r.contract.Pages[r.page]; ok && page.Header != nil {
		hidden := map[string]bool{}
		for _, id := range page.Header.Hide {
			hidden[id] = true
		}
		if len(hidden) > 0 {
			kept := elements[:0:0]
			for _, el := range elements {
				if !hidden[el.ID] {
					kept = append(kept, el)
				}
			}
			elements = kept
		}

		elements = append(elements, page.Header.Add...)
		if page.Header.CTA != nil {
			cta = page.Header.CTA
		}
	}

	if cta != nil {
		elements = append(elements, contract.HeaderElement{
			ID:         ctaElementID,
			Zone:       contract.ZoneRight,
			Node:       *cta,
			Visibility: cta.Visibility,
		})
	}

	zoned := elements[:0:0]
	for _, el := range elements {
		elZone := el.Zone
		if elZone == "" {
			elZone = contract.ZoneRight
		}
		if elZone == zone {
			zoned = append(zoned, el)
		}
	}

	return visibility.Filter(zoned,
		func(el contract.HeaderElement) *contract.Rule { return el.Visibility },
		r.page, r.mergedData(local), r.appContext(), r.viewport)
}
