package launchopts

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	textcatalog "golang.org/x/text/message/catalog"
)

// Catalog keys. They double as the English fallback format strings.
const (
	msgMissingAttribute        = "Required attribute '%[1]s' is missing or empty."
	msgInvalidDirectory        = "The value of attribute '%[1]s' is not a valid directory: '%[2]s'."
	msgInvalidAttribute        = "Invalid value for attribute '%[1]s'."
	msgUnsupportedArchitecture = "Target architecture '%[1]s' is not supported by the Android debug launcher. Supported architectures are x86 and arm."
)

// translations maps each message key to its translations. English uses the
// key itself.
var translations = map[language.Tag]map[string]string{
	language.German: {
		msgMissingAttribute:        "Das erforderliche Attribut '%[1]s' fehlt oder ist leer.",
		msgInvalidDirectory:        "Der Wert des Attributs '%[1]s' ist kein gültiges Verzeichnis: '%[2]s'.",
		msgInvalidAttribute:        "Ungültiger Wert für das Attribut '%[1]s'.",
		msgUnsupportedArchitecture: "Die Zielarchitektur '%[1]s' wird vom Android-Debug-Launcher nicht unterstützt. Unterstützte Architekturen sind x86 und arm.",
	},
}

var messages = buildMessages()

var defaultCatalog = newCatalog(language.English)

func buildMessages() *textcatalog.Builder {
	b := textcatalog.NewBuilder(textcatalog.Fallback(language.English))
	for _, key := range []string{
		msgMissingAttribute,
		msgInvalidDirectory,
		msgInvalidAttribute,
		msgUnsupportedArchitecture,
	} {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Languages lists the languages error messages are translated to.
func Languages() []language.Tag {
	return messages.Languages()
}

// catalog formats validation errors for one language. Languages without
// translations get English.
type catalog struct {
	printer *message.Printer
}

func newCatalog(tag language.Tag) *catalog {
	return &catalog{printer: message.NewPrinter(tag, message.Catalog(messages))}
}

func (c *catalog) newError(kind Kind, attribute, value string) *ValidationError {
	e := &ValidationError{
		Kind:      kind,
		Attribute: attribute,
		Value:     value,
		Code:      FailureCodeNoReport,
	}
	e.msg = c.format(e)
	return e
}

func (c *catalog) format(e *ValidationError) string {
	switch e.Kind {
	case KindMissingAttribute:
		return c.printer.Sprintf(msgMissingAttribute, e.Attribute)
	case KindInvalidDirectory:
		return c.printer.Sprintf(msgInvalidDirectory, e.Attribute, e.Value)
	case KindInvalidAttribute:
		return c.printer.Sprintf(msgInvalidAttribute, e.Attribute)
	case KindUnsupportedArchitecture:
		return c.printer.Sprintf(msgUnsupportedArchitecture, e.Value)
	default:
		return "launch options validation failed"
	}
}
