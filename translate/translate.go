// Package translate formats user facing messages in the user's language.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the environment names no locale.
const DEFAULT_LOCALE = "en-US"

var (
	once    sync.Once
	printer *message.Printer
)

// Printer returns the message printer for the user's locale.
func Printer() *message.Printer {
	once.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			logrus.WithError(err).Debug("translate: locale")
		}

		if len(locales) == 0 {
			locales = []string{DEFAULT_LOCALE}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
