// Package locale holds the English and Bengali strings of the service and the
// date formatting rules for both languages.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

type Lang string

const (
	EN Lang = "en"
	BN Lang = "bn"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Bengali})

// Negotiate picks the response language. An explicit lang parameter wins over
// the Accept-Language header; anything unsupported falls back to English.
func Negotiate(param, acceptLanguage string) Lang {
	tag, _ := language.MatchStrings(matcher, param, acceptLanguage)
	if base, _ := tag.Base(); base.String() == "bn" {
		return BN
	}
	return EN
}

// Supported reports whether s names one of the two languages.
func Supported(s string) bool {
	return Lang(s) == EN || Lang(s) == BN
}

// T returns the translation of key, or "" when the key is unknown.
func T(lang Lang, key string) string {
	return lookup(lang, key)
}

// Lookup is T with an explicit found flag.
func Lookup(lang Lang, key string) (string, bool) {
	s := lookup(lang, key)
	return s, s != ""
}

func lookup(lang Lang, key string) string {
	p, ok := printers[lang]
	if !ok {
		p = printers[EN]
	}
	return p.Sprintf(message.Key(key, ""))
}

// Digits rewrites ASCII digits into the numbering system of lang.
func Digits(lang Lang, s string) string {
	if r, ok := digitReplacers[lang]; ok {
		return r.Replace(s)
	}
	return s
}

var tags = map[Lang]language.Tag{
	EN: language.English,
	BN: language.Bengali,
}

var (
	printers       = make(map[Lang]*message.Printer, len(tags))
	digitReplacers = make(map[Lang]*strings.Replacer, len(tags))
)

func init() {
	b := catalog.NewBuilder()
	for lang, table := range messages {
		for key, msg := range table {
			if err := b.SetString(tags[lang], key, msg); err != nil {
				panic(err)
			}
		}
	}

	for lang, tag := range tags {
		p := message.NewPrinter(tag, message.Catalog(b))
		printers[lang] = p

		var pairs []string
		for d := 0; d <= 9; d++ {
			ascii := string(rune('0' + d))
			if native := p.Sprint(number.Decimal(d)); native != ascii {
				pairs = append(pairs, ascii, native)
			}
		}
		if len(pairs) > 0 {
			digitReplacers[lang] = strings.NewReplacer(pairs...)
		}
	}
}

var bengaliMonths = [...]string{
	"জানুয়ারী", "ফেব্রুয়ারী", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

// FormatTimestamp renders an activity time in loc, e.g. "Mar 14, 2024, 03:05 PM".
func FormatTimestamp(lang Lang, t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}

	if lang != BN {
		return t.Format("Jan 2, 2006, 03:04 PM")
	}

	return Digits(BN, t.Format("2 ")) + bengaliMonths[t.Month()-1] + Digits(BN, t.Format(", 2006, 03:04 PM"))
}

// FormatDate renders a calendar date the way each locale writes it by hand:
// month first in English, day first in Bengali.
func FormatDate(lang Lang, t time.Time) string {
	if lang == BN {
		return Digits(BN, t.Format("2/1/2006"))
	}
	return t.Format("1/2/2006")
}
