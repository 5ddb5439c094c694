package entity

import (
	"fmt"

	"github.com/milk9111/levelq/ecs"
	"github.com/milk9111/levelq/ecs/component"
	"github.com/milk9111/levelq/prefabs"
)

// NewPortals builds the left and right portals from one spec.
func NewPortals(w *ecs.World, spec *prefabs.PortalSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("portal: nil spec")
	}
	out := make([]ecs.Entity, 0, 2)
	for _, side := range []component.PortalSide{component.PortalLeft, component.PortalRight} {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.PortalComponent.Kind(), portalFromSpec(spec, side)); err != nil {
			return nil, fmt.Errorf("portal: add %s portal: %w", side, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// ApplyPortalSpec updates every portal's layout and look in place.
func ApplyPortalSpec(w *ecs.World, spec *prefabs.PortalSpec) {
	ecs.ForEach(w, component.PortalComponent.Kind(), func(_ ecs.Entity, p *component.Portal) {
		*p = *portalFromSpec(spec, p.Side)
	})
}

func portalFromSpec(spec *prefabs.PortalSpec, side component.PortalSide) *component.Portal {
	return &component.Portal{
		Side:         side,
		Width:        spec.Width,
		Height:       spec.Height,
		InsetX:       spec.InsetX,
		Color:        spec.Color.Color,
		OutlineWidth: spec.OutlineWidth,
		Pulse: component.Pulse{
			Speed:  spec.Pulse.Speed,
			Amount: spec.Pulse.Amount,
			Base:   spec.Pulse.Base,
		},
	}
}
