// Package headless runs scripted browser sessions without a terminal UI.
//
// A scenario is a YAML file listing steps. Each step delivers one browser
// event to the shell and then checks property values, addressed as
// surface.KEY, against what the step expects:
//
//	name: logo follows the search engine
//	steps:
//	  - event: {type: native_ready}
//	  - event: {type: overview, state: homepage}
//	    expect:
//	      toolbar.LOGO_IS_VISIBLE: true
//	  - event: {type: search_engine, engine: bing}
//	    expect:
//	      toolbar.LOGO_IS_VISIBLE: false
//	dump: ["toolbar.*"]
//
// The shell runs on a manual clock: delayed work only happens when a wait
// event moves the clock forward, so a scenario replays the same way every
// time.
//
// Artifacts:
//
// After the last step the artifact writer stores, under a directory named
// by the run id:
// - execution.json: every step, expectation result and the dumped properties
// - summary.md: a human-readable summary
package headless
