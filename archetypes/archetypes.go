package archetypes

import (
	"github.com/automoto/puckduel/components"
	"github.com/automoto/puckduel/tags"
	"github.com/yohamta/donburi"
)

var (
	HostPaddle = newArchetype(
		tags.Paddle,
		tags.HostPaddle,
		components.Paddle,
		components.Body,
	)
	ClientPaddle = newArchetype(
		tags.Paddle,
		tags.ClientPaddle,
		components.Paddle,
		components.Body,
	)
	Puck = newArchetype(
		tags.Puck,
		components.Puck,
		components.Body,
	)
	// Match carries every singleton component on one entity.
	Match = newArchetype(
		components.Match,
		components.Authority,
		components.Score,
		components.NetTargets,
		components.Pointer,
		components.Audio,
		components.Flash,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
