// Package translate localizes the error and diagnostic strings of vmma.
//
// Program output never passes through here; the message printer applies
// locale number formatting, which would change what a program prints.
package translate

import (
	"log"
	"os"
	"slices"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LANG_ENV names the environment variable that overrides the system locale.
const LANG_ENV = "VMMA_LANG"

var printer *message.Printer

func init() {
	SetLanguage(systemLocales()...)
}

// systemLocales returns the preferred locales, most preferred first.
func systemLocales() (locales []string) {
	if lang := os.Getenv(LANG_ENV); len(lang) != 0 {
		locales = []string{lang}
		return
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("vmma: locale: %v", err)
	}

	// The POSIX locales name no language.
	locales = slices.DeleteFunc(locales, func(name string) bool {
		return name == "C" || name == "POSIX"
	})

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// SetLanguage selects the closest supported match of the locales.
func SetLanguage(locales ...string) {
	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
