// Package notice implements one-shot user-visible messages carried in the
// session, rendered on the next page and then discarded.
package notice

import (
	"encoding/gob"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Severity levels, matching the styling classes in the templates.
const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// Notice is a single flash message with a severity level.
type Notice struct {
	Level   string
	Message string
}

func init() {
	// The cookie session store gob-encodes its values.
	gob.Register(Notice{})
}

// Add queues a notice for the next rendered page.
func Add(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(Notice{Level: level, Message: message})
	if err := session.Save(); err != nil {
		log.Error("failed to save session flash", "error", err)
	}
}

// Take returns all queued notices and clears them from the session.
func Take(c *gin.Context) []Notice {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	// Reading flashes removes them; persist the removal.
	if err := session.Save(); err != nil {
		log.Error("failed to save session after reading flashes", "error", err)
	}

	notices := make([]Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}
