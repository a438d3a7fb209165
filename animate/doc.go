// Package animate binds second-order dynamics filters to observable values.
//
// An [Animator] reads a target value, feeds it through a filter and writes
// the filtered output onto a destination property once per tick. The host
// application owns the clock: it calls [Animator.Process] from its
// variable-step frame callback and [Animator.PhysicsProcess] from its
// fixed-step simulation callback; each animator only reacts to the clock
// selected by its [Mode] and only while active.
//
// Typical lifecycle:
//
//	a, _ := animate.NewPosition3D(node.Target, node.Position)
//	_ = a.Ready()         // seed from the observed values
//	a.SetActive(true)
//	// every fixed tick:
//	_ = a.PhysicsProcess(dt)
package animate
