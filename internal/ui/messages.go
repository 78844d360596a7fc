package ui

import (
	"ionautocomplete/internal/autocomplete"
)

// lookupDoneMsg carries a settled asynchronous lookup back into the event loop
type lookupDoneMsg struct {
	outcome autocomplete.Outcome
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
