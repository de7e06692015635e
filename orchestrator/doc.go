// Package orchestrator runs one crawler search per catalog entry under
// a control.Supervisor-enforced timeout, sequentially (§5: "multiple
// searches... run sequentially"), and collects the winners into a
// slice returned to the caller rather than any package-level state
// (§9's "global winner collector... passed explicitly").
package orchestrator
