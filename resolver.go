package phpdate

import (
	"strconv"
	"strings"
	"time"
)

// specifierSet is the static table of recognized specifier letters. Membership
// here decides whether a template character is resolved or passed through; the
// per-call memo in render is a separate concern.
const specifierSet = "dDjlNSwzWFmMntLoYyaAgGhHisuveIOPpTZcrU"

func isSpecifier(c byte) bool {
	return strings.IndexByte(specifierSet, c) >= 0
}

const day = 24 * time.Hour

// render is the call-scoped state of one Format invocation: the request
// inputs, the projected local view, and the specifier memo. Resolving one
// letter writes every sibling of its family into the memo, so interdependent
// values stay mutually consistent and nothing is computed twice per call.
type render struct {
	instant  time.Time // the absolute instant as given
	zoned    time.Time // instant in the target location
	local    time.Time // UTC-shifted local view, second precision
	timezone string
	names    LocaleNames
	memo     map[byte]string
}

// resolve computes the value of a recognized specifier letter. Callers must
// check isSpecifier first; resolve itself cannot fail, since every fallible
// input is validated before a render is constructed.
func (r *render) resolve(c byte) string {
	if v, ok := r.memo[c]; ok {
		return v
	}

	switch c {
	case 'Y', 'y':
		ys := strconv.Itoa(r.local.Year())
		r.memo['Y'] = ys
		if len(ys) > 2 {
			ys = ys[len(ys)-2:]
		}
		r.memo['y'] = ys

	case 'n', 'm':
		month := int(r.local.Month())
		r.memo['n'] = strconv.Itoa(month)
		r.memo['m'] = pad2(month)

	case 'j', 'd':
		d := r.local.Day()
		r.memo['j'] = strconv.Itoa(d)
		r.memo['d'] = pad2(d)

	case 'G', 'H':
		h := r.local.Hour()
		r.memo['G'] = strconv.Itoa(h)
		r.memo['H'] = pad2(h)

	case 'i':
		r.memo['i'] = pad2(r.local.Minute())

	case 's':
		r.memo['s'] = pad2(r.local.Second())

	case 'w', 'N':
		w := int(r.local.Weekday())
		n := w
		if n == 0 {
			n = 7
		}
		r.memo['w'] = strconv.Itoa(w)
		r.memo['N'] = strconv.Itoa(n)

	case 'S':
		r.memo['S'] = ordinalSuffix(r.local.Day())

	case 'z', 'L', 'W', 'o':
		r.resolveWeekFamily()

	case 't':
		// Day zero of the next month normalizes to the last valid day of the
		// current one, wrapping December into January of the next year.
		year, month, _ := r.local.Date()
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		r.memo['t'] = strconv.Itoa(last.Day())

	case 'a', 'A', 'g', 'h':
		hour := r.local.Hour()
		g := hour % 12
		if g == 0 {
			g = 12
		}
		period := r.names.AM
		if hour >= 12 {
			period = r.names.PM
		}
		r.memo['a'] = strings.ToLower(period)
		r.memo['A'] = strings.ToUpper(period)
		r.memo['g'] = strconv.Itoa(g)
		r.memo['h'] = pad2(g)

	case 'I':
		if r.zoned.IsDST() {
			r.memo['I'] = "1"
		} else {
			r.memo['I'] = "0"
		}

	case 'Z', 'O', 'P', 'p':
		offset := int(r.local.Unix() - r.instant.Unix())
		sign, abs := "+", offset
		if offset < 0 {
			sign, abs = "-", -offset
		}
		hh, mm := pad2(abs/3600), pad2(abs%3600/60)
		r.memo['Z'] = strconv.Itoa(offset)
		r.memo['O'] = sign + hh + mm
		r.memo['P'] = sign + hh + ":" + mm
		if offset == 0 {
			r.memo['p'] = "Z"
		} else {
			r.memo['p'] = r.memo['P']
		}

	case 'c':
		r.memo['c'] = r.process(`Y-m-d\TH:i:sP`)

	case 'r':
		r.memo['r'] = r.process(`D, j M Y H:i:s O`)

	case 'U':
		r.memo['U'] = strconv.FormatInt(r.instant.Unix(), 10)

	case 'D':
		r.memo['D'] = r.names.WeekdaysShort[r.local.Weekday()]

	case 'l':
		r.memo['l'] = r.names.WeekdaysLong[r.local.Weekday()]

	case 'F':
		r.memo['F'] = r.names.MonthsLong[r.local.Month()-1]

	case 'M':
		r.memo['M'] = r.names.MonthsShort[r.local.Month()-1]

	case 'T':
		r.memo['T'] = r.zoned.Format("MST")

	case 'u':
		r.memo['u'] = "000000"

	case 'v':
		r.memo['v'] = "000"

	case 'e':
		r.memo['e'] = r.timezone
	}

	return r.memo[c]
}

// resolveWeekFamily computes day-of-year, leap flag, ISO week, and ISO
// week-numbering year in one pass. All four derive from whole-day arithmetic
// between the local view's midnight and January 1 of the local year.
func (r *render) resolveWeekFamily() {
	year, month, dom := r.local.Date()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan1Next := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	midnight := time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)

	dayOfYear := int(midnight.Sub(jan1) / day)
	leap := int(jan1Next.Sub(jan1)/day) - 365

	// ISO week by the majority-of-days rule: week one is the first week whose
	// Thursday falls in this year, which reduces to the ceiling division below
	// with a correction when January 1 lands on Friday through Sunday.
	jan1Weekday := isoWeekday(jan1)
	week := (dayOfYear + jan1Weekday + 6) / 7
	if jan1Weekday >= 5 {
		week--
	}

	isoYear := year
	if week == 0 {
		// The date belongs to the final week of the previous ISO year.
		isoYear = year - 1
		switch isoWeekday(r.local) {
		case 5:
			week = 53
		case 7:
			week = 52
		default:
			jan1Prev := time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
			week = 52 + int(jan1.Sub(jan1Prev)/day) - 365
		}
	}

	r.memo['z'] = strconv.Itoa(dayOfYear)
	r.memo['L'] = strconv.Itoa(leap)
	r.memo['W'] = pad2(week)
	r.memo['o'] = strconv.Itoa(isoYear)
}

// ordinalSuffix returns the English suffix for a day of the month. The 4..20
// band is checked first so 11th, 12th, and 13th do not fall through to the
// last-digit rule.
func ordinalSuffix(d int) string {
	if d > 3 && d < 21 {
		return "th"
	}
	switch d % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// isoWeekday maps Go's Sunday-based weekday to ISO 1 (Monday) .. 7 (Sunday).
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
