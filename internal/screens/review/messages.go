package review

import (
	"github.com/ruslanv/mnemo/internal/session"
)

// initDoneMsg is sent when the session queue has been built.
type initDoneMsg struct {
	Engine *session.Engine
	Err    error
}

// persistedMsg confirms that a rating was written to the store.
type persistedMsg struct {
	Err error
}
