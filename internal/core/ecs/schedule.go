package ecs

// Stage names for the eight fixed points in a tick (spec.md §4.8). Plugins
// and commands register systems against these by name; the schedule runner
// always visits them in this order.
const (
	StageStartup    = "Startup"
	StagePreUpdate  = "PreUpdate"
	StageUpdate     = "Update"
	StagePostUpdate = "PostUpdate"
	StagePreRender  = "PreRender"
	StageRender     = "Render"
	StagePostRender = "PostRender"
	StageShutdown   = "Shutdown"
)

var tickStages = []string{
	StagePreUpdate,
	StageUpdate,
	StagePostUpdate,
	StagePreRender,
	StageRender,
	StagePostRender,
}

// scheduleRunner holds the ordered system list for every named stage.
// Stages run their systems in registration order; a system added mid-tick
// via Commands.AddSystemTo only takes effect once the buffer applies at the
// next boundary, so it never runs within the tick that queued it.
type scheduleRunner struct {
	stages map[string][]System
}

func newScheduleRunner() *scheduleRunner {
	return &scheduleRunner{stages: make(map[string][]System)}
}

func (r *scheduleRunner) add(stage string, sys System) {
	r.stages[stage] = append(r.stages[stage], sys)
}

// run executes every system registered on stage, in order, against w. A
// panicking system aborts the rest of the stage; World.runStage recovers it
// rather than this method, so callers running a single stage directly
// (tests) see the panic.
func (r *scheduleRunner) run(w *World, stage string) {
	for _, sys := range r.stages[stage] {
		sys.run(w)
	}
}
