// Package phpdate renders timestamps with PHP date() format templates in Go.
//
// A format template is walked character by character: recognized single-letter
// specifiers are replaced by a computed calendar or clock component, a backslash
// escapes the following character, and everything else passes through unchanged.
// The supported specifiers are exactly those of PHP's date():
//
//	d D j l N S w z W F m M n t L o Y y a A g G h H i s u v e I O P p T Z c r U
//
// # Basic Usage
//
// Format an instant with the package-level helper:
//
//	out, err := phpdate.Format(time.Now(), "l, jS F Y H:i:s P")
//	// Output: "Wednesday, 2nd September 2026 10:15:42 -04:00"
//
// The default timezone is America/New_York and the default locale is en-US.
// Both are configurable per call:
//
//	out, err := phpdate.Format(t, "l j F Y",
//		phpdate.WithTimezone("Europe/Berlin"),
//		phpdate.WithLocale("de-DE"),
//	)
//	// Output: "Sonntag 5 Mai 2024"
//
// # Reusable Formatter
//
// New validates the timezone and locale once and returns an immutable Formatter
// that is safe for concurrent use:
//
//	f, err := phpdate.New(
//		phpdate.WithTimezone("Asia/Tokyo"),
//		phpdate.WithLocale("ja"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out := f.Format(t, "Y年n月j日 (D)")
//
// Formatter.Format cannot fail: every fallible input (timezone, locale, locale
// data) is checked during construction, and unrecognized template characters are
// literal pass-through by design.
//
// # Instant Coercion
//
// FormatString and ParseInstant accept epoch milliseconds as a decimal string,
// RFC 3339, and common ISO 8601 variants:
//
//	out, err := f.FormatString("2024-02-12T15:19:21Z", "c")
//	// Output: "2024-02-13T00:19:21+09:00"
//
//	out, err = f.FormatString("1700000000000", "U")
//	// Output: "1700000000"
//
// A value that cannot be interpreted as an instant fails with ErrInvalidInstant
// before any formatting work happens.
//
// # Escaping
//
// A backslash emits the next character literally, which is the only way to get
// a specifier letter into the output as text:
//
//	out := f.Format(t, `\T\o\d\a\y: Y-m-d`)
//	// Output: "Today: 2024-05-06"
//
// Punctuation, spaces, and unrecognized letters need no escaping.
//
// # Locales
//
// Textual specifiers (D l F M a A) are resolved through a LocaleProvider. The
// built-in provider ships embedded name tables for en, de, fr, es, and ja, and
// requested tags are matched with language fallback, so en-US and en-GB both
// resolve to the en table. Additional locales can be supplied as YAML files via
// WithProviderFS, or by implementing LocaleProvider directly.
//
// # Timezones
//
// Timezone identifiers are IANA names resolved through the platform timezone
// database. Offset-dependent specifiers (O P p Z T I) reflect the zone's rules
// at the formatted instant, including DST transitions.
package phpdate
