package toml

import (
	"regexp"
	"strconv"
	"time"
)

// LocalDate is a calendar date with no time-of-day or offset component,
// TOML's local-date type. Grounded on the distinct LocalDate/LocalDateTime
// kinds pelletier/go-toml v2 and kkHAIKE/go-toml carry in their ASTs,
// rather than collapsing every date/time form into time.Time.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

// LocalTime is a time-of-day with no date or offset component, with
// fractional seconds truncated to microsecond precision (tomli's
// _parser.py truncates rather than rounds; see original_source/).
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// LocalDateTime combines a LocalDate and a LocalTime with no offset.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

var (
	dateOnlyRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	timeOnlyRe  = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(\.\d+)?$`)
	dateTimeRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[Tt ](\d{2}):(\d{2}):(\d{2})(\.\d+)?([Zz]|[+-]\d{2}:\d{2})?$`)
	daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// parseDateTime attempts to interpret lexical as one of the four TOML
// date/time forms. ok is false when lexical does not match any of them,
// signalling the caller to fall back to number parsing.
func parseDateTime(src string, offset int, lexical string) (value any, ok bool, perr *ParseError) {
	if m := dateTimeRe.FindStringSubmatch(lexical); m != nil {
		date, derr := buildDate(src, offset, m[1], m[2], m[3])
		if derr != nil {
			return nil, true, derr
		}
		tm, terr := buildTime(src, offset, m[4], m[5], m[6], m[7])
		if terr != nil {
			return nil, true, terr
		}
		if m[8] == "" {
			return LocalDateTime{Date: date, Time: tm}, true, nil
		}
		loc, lerr := buildLocation(src, offset, m[8])
		if lerr != nil {
			return nil, true, lerr
		}
		t := time.Date(date.Year, time.Month(date.Month), date.Day,
			tm.Hour, tm.Minute, tm.Second, tm.Nanosecond, loc)
		return t, true, nil
	}
	if m := dateOnlyRe.FindStringSubmatch(lexical); m != nil {
		date, derr := buildDate(src, offset, m[1], m[2], m[3])
		return date, true, derr
	}
	if m := timeOnlyRe.FindStringSubmatch(lexical); m != nil {
		tm, terr := buildTime(src, offset, m[1], m[2], m[3], m[4])
		return tm, true, terr
	}
	return nil, false, nil
}

func buildDate(src string, offset int, yy, mm, dd string) (LocalDate, *ParseError) {
	year, _ := strconv.Atoi(yy)
	month, _ := strconv.Atoi(mm)
	day, _ := strconv.Atoi(dd)
	if month < 1 || month > 12 {
		return LocalDate{}, errAt(KindSemantic, src, offset, "month %d out of range", month)
	}
	maxDay := daysInMonth[month]
	if month == 2 && !isLeapYear(year) {
		maxDay = 28
	}
	if day < 1 || day > maxDay {
		return LocalDate{}, errAt(KindSemantic, src, offset, "day %d out of range for %04d-%02d", day, year, month)
	}
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func buildTime(src string, offset int, hh, mm, ss, frac string) (LocalTime, *ParseError) {
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	second, _ := strconv.Atoi(ss)
	if hour > 23 {
		return LocalTime{}, errAt(KindSemantic, src, offset, "hour %d out of range", hour)
	}
	if minute > 59 {
		return LocalTime{}, errAt(KindSemantic, src, offset, "minute %d out of range", minute)
	}
	if second > 59 {
		return LocalTime{}, errAt(KindSemantic, src, offset, "second %d out of range", second)
	}
	nanos := 0
	if frac != "" {
		digits := frac[1:]
		if len(digits) > 6 {
			digits = digits[:6] // truncate, not round, past microsecond precision
		}
		micros, _ := strconv.Atoi(digits + zeros(6-len(digits)))
		nanos = micros * 1000
	}
	return LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nanos}, nil
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func buildLocation(src string, offset int, tag string) (*time.Location, *ParseError) {
	if tag == "Z" || tag == "z" {
		return time.UTC, nil
	}
	sign := 1
	if tag[0] == '-' {
		sign = -1
	}
	hh, _ := strconv.Atoi(tag[1:3])
	mm, _ := strconv.Atoi(tag[4:6])
	if hh > 23 || mm > 59 {
		return nil, errAt(KindSemantic, src, offset, "offset %q out of range", tag)
	}
	secs := sign * (hh*3600 + mm*60)
	return time.FixedZone(tag, secs), nil
}
