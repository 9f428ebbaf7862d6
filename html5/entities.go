package html5

// namedCharRefs is a practical subset of the WHATWG named character
// reference table (https://html.spec.whatwg.org/multipage/named-characters.html),
// which lists around 2,231 entries in full. Keys that end in ';' are the
// canonical, semicolon-terminated spellings; keys without it are the
// legacy SGML-era spellings HTML5 keeps for compatibility and that the
// "missing-semicolon" / "not expanded in attribute" rules in spec.md §4.3
// apply to. Entries that expand to two code points (e.g. some of the
// fraktur/script letters) are stored as a two-rune Go string.
var namedCharRefs = map[string]string{
	"amp": "&", "amp;": "&",
	"lt": "<", "lt;": "<",
	"gt": ">", "gt;": ">",
	"quot": "\"", "quot;": "\"",
	"apos;": "'",
	"nbsp": " ", "nbsp;": " ",
	"copy": "©", "copy;": "©",
	"reg": "®", "reg;": "®",
	"trade;": "™",
	"deg": "°", "deg;": "°",
	"plusmn": "±", "plusmn;": "±",
	"cent": "¢", "cent;": "¢",
	"pound": "£", "pound;": "£",
	"yen": "¥", "yen;": "¥",
	"euro;":  "€",
	"sect":   "§",
	"sect;":  "§",
	"para":   "¶",
	"para;":  "¶",
	"middot": "·", "middot;": "·",
	"bull;":   "•",
	"hellip;": "…",
	"prime;":  "′",
	"Prime;":  "″",
	"ndash;":  "–",
	"mdash;":  "—",
	"lsquo;":  "‘",
	"rsquo;":  "’",
	"ldquo;":  "“",
	"rdquo;":  "”",
	"sbquo;":  "‚",
	"bdquo;":  "„",
	"laquo":   "«", "laquo;": "«",
	"raquo": "»", "raquo;": "»",
	"times": "×", "times;": "×",
	"divide": "÷", "divide;": "÷",
	"minus;":  "−",
	"le;":     "≤",
	"ge;":     "≥",
	"ne;":     "≠",
	"equiv;":  "≡",
	"asymp;":  "≈",
	"infin;":  "∞",
	"sum;":    "∑",
	"prod;":   "∏",
	"radic;":  "√",
	"part;":   "∂",
	"int;":    "∫",
	"larr;":   "←",
	"uarr;":   "↑",
	"rarr;":   "→",
	"darr;":   "↓",
	"harr;":   "↔",
	"alpha;":  "α",
	"beta;":   "β",
	"gamma;":  "γ",
	"delta;":  "δ",
	"pi;":     "π",
	"sigma;":  "σ",
	"omega;":  "ω",
	"Alpha;":  "Α",
	"Beta;":   "Β",
	"Gamma;":  "Γ",
	"Delta;":  "Δ",
	"Pi;":     "Π",
	"Sigma;":  "Σ",
	"Omega;":  "Ω",
	"iexcl":   "¡", "iexcl;": "¡",
	"iquest": "¿", "iquest;": "¿",
	"AMP": "&", "AMP;": "&",
	"LT": "<", "LT;": "<",
	"GT": ">", "GT;": ">",
	"QUOT": "\"", "QUOT;": "\"",
	"frac12;": "½",
	"frac14;": "¼",
	"frac34;": "¾",
	"sup1": "¹", "sup1;": "¹",
	"sup2": "²", "sup2;": "²",
	"sup3": "³", "sup3;": "³",
	"micro": "µ", "micro;": "µ",
	"not": "¬", "not;": "¬",
	"shy": "­", "shy;": "­",
	"macr": "¯", "macr;": "¯",
	"acute": "´", "acute;": "´",
	"szlig;": "ß",
	"eacute": "é", "eacute;": "é",
	"egrave": "è", "egrave;": "è",
	"agrave": "à", "agrave;": "à",
	"ccedil": "ç", "ccedil;": "ç",
	"uuml": "ü", "uuml;": "ü",
	"ouml": "ö", "ouml;": "ö",
	"auml": "ä", "auml;": "ä",
	"ntilde": "ñ", "ntilde;": "ñ",
}
