package app

import (
	"fmt"

	"alchemy/internal/alchemy"
)

// eventLog forwards store events to a logger and remembers the latest
// discovery for the status line.
type eventLog struct {
	logger alchemy.Logger
	latest string
}

func newEventLog(logger alchemy.Logger) *eventLog {
	if logger == nil {
		logger = alchemy.NewNopLogger()
	}
	return &eventLog{logger: logger}
}

func (l *eventLog) ElementCreated(e alchemy.Element) {
	l.logger.Debugf("created: id=%d type=%s at=(%.1f, %.1f)", e.ID, e.Type, e.Left, e.Top)
}

func (l *eventLog) ElementMoved(e alchemy.Element) {
	l.logger.Debugf("moved: id=%d at=(%.1f, %.1f)", e.ID, e.Left, e.Top)
}

func (l *eventLog) ElementRemoved(e alchemy.Element) {
	l.logger.Debugf("removed: id=%d type=%s", e.ID, e.Type)
}

func (l *eventLog) ElementDiscovered(t alchemy.ElementType) {
	l.latest = fmt.Sprintf("discovered %s!", t)
	l.logger.Infof("discovered: type=%s", t)
}

// takeLatest returns the pending status message and clears it.
func (l *eventLog) takeLatest() string {
	msg := l.latest
	l.latest = ""
	return msg
}
