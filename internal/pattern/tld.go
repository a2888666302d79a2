package pattern

import "strings"

// TLDKind classifies a top-level domain.
type TLDKind int

const (
	// NoTLD means no top-level domain matched.
	NoTLD TLDKind = iota
	// GenericTLD e.g. com, org.
	GenericTLD
	// CountryTLD two-letter country codes.
	CountryTLD
	// PunycodeTLD xn-- encoded labels.
	PunycodeTLD
)

var genericTLDs = toSet(`aero asia biz cat com coop edu gov info int jobs mil mobi museum name net org pro tel travel xxx`)

var countryTLDs = toSet(`ac ad ae af ag ai al am an ao aq ar as at au aw ax az ba bb bd be bf bg bh bi bj bm bn bo br bs bt
bv bw by bz ca cc cd cf cg ch ci ck cl cm cn co cr cs cu cv cx cy cz dd de dj dk dm do dz ec ee eg eh
er es et eu fi fj fk fm fo fr ga gb gd ge gf gg gh gi gl gm gn gp gq gr gs gt gu gw gy hk hm hn hr ht
hu id ie il im in io iq ir is it je jm jo jp ke kg kh ki km kn kp kr kw ky kz la lb lc li lk lr ls lt
lu lv ly ma mc md me mg mh mk ml mm mn mo mp mq mr ms mt mu mv mw mx my mz na nc ne nf ng ni nl no np
nr nu nz om pa pe pf pg ph pk pl pm pn pr ps pt pw py qa re ro rs ru rw sa sb sc sd se sg sh si sj sk
sl sm sn so sr ss st su sv sy sz tc td tf tg th tj tk tl tm tn to tp tr tt tv tw tz ua ug uk us uy uz
va vc ve vg vi vn vu wf ws ye yt za zm zw`)

func toSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tld := range strings.Fields(list) {
		set[tld] = struct{}{}
	}
	return set
}

func isASCIIAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// MatchTLD matches a top-level domain at the start of s and returns its kind
// and byte length. A generic or country TLD must be followed by a
// non-alphanumeric character or the end of s.
func MatchTLD(s string) (TLDKind, int) {
	n := 0
	for n < len(s) && isASCIIAlnum(s[n]) {
		n++
	}
	if n > 0 {
		word := strings.ToLower(s[:n])
		if _, ok := genericTLDs[word]; ok {
			return GenericTLD, n
		}
		if _, ok := countryTLDs[word]; ok {
			return CountryTLD, n
		}
	}
	if len(s) > 4 && strings.EqualFold(s[:4], "xn--") {
		m := 4
		for m < len(s) && isASCIIAlnum(s[m]) {
			m++
		}
		if m > 4 {
			return PunycodeTLD, m
		}
	}
	return NoTLD, 0
}

// IsGenericTLD reports whether tld is a known generic TLD, ignoring case.
func IsGenericTLD(tld string) bool {
	_, ok := genericTLDs[strings.ToLower(tld)]
	return ok
}

// IsCountryTLD reports whether tld is a known country-code TLD, ignoring case.
func IsCountryTLD(tld string) bool {
	_, ok := countryTLDs[strings.ToLower(tld)]
	return ok
}
