package csslint

import (
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/collections"
)

// isVendorPrefixed reports whether a name starts with -webkit-, -moz- and
// so on. Prefixed names are never reported as unknown.
func isVendorPrefixed(name string) bool {
	return len(name) > 2 && name[0] == '-' && name[1] != '-' && strings.Contains(name[1:], "-")
}

var knownProperties = collections.NewSet(
	"accent-color", "align-content", "align-items", "align-self", "align-tracks",
	"all", "anchor-name", "animation", "animation-composition", "animation-delay",
	"animation-direction", "animation-duration", "animation-fill-mode",
	"animation-iteration-count", "animation-name", "animation-play-state",
	"animation-range", "animation-timeline", "animation-timing-function",
	"appearance", "aspect-ratio", "backdrop-filter", "backface-visibility",
	"background", "background-attachment", "background-blend-mode",
	"background-clip", "background-color", "background-image",
	"background-origin", "background-position", "background-position-x",
	"background-position-y", "background-repeat", "background-size",
	"block-size", "border", "border-block", "border-block-color",
	"border-block-end", "border-block-end-color", "border-block-end-style",
	"border-block-end-width", "border-block-start", "border-block-start-color",
	"border-block-start-style", "border-block-start-width", "border-block-style",
	"border-block-width", "border-bottom", "border-bottom-color",
	"border-bottom-left-radius", "border-bottom-right-radius",
	"border-bottom-style", "border-bottom-width", "border-collapse",
	"border-color", "border-end-end-radius", "border-end-start-radius",
	"border-image", "border-image-outset", "border-image-repeat",
	"border-image-slice", "border-image-source", "border-image-width",
	"border-inline", "border-inline-color", "border-inline-end",
	"border-inline-end-color", "border-inline-end-style",
	"border-inline-end-width", "border-inline-start", "border-inline-start-color",
	"border-inline-start-style", "border-inline-start-width",
	"border-inline-style", "border-inline-width", "border-left",
	"border-left-color", "border-left-style", "border-left-width",
	"border-radius", "border-right", "border-right-color", "border-right-style",
	"border-right-width", "border-spacing", "border-start-end-radius",
	"border-start-start-radius", "border-style", "border-top",
	"border-top-color", "border-top-left-radius", "border-top-right-radius",
	"border-top-style", "border-top-width", "border-width", "bottom",
	"box-decoration-break", "box-shadow", "box-sizing", "break-after",
	"break-before", "break-inside", "caption-side", "caret", "caret-color",
	"clear", "clip", "clip-path", "clip-rule", "color", "color-adjust",
	"color-interpolation", "color-scheme", "column-count", "column-fill",
	"column-gap", "column-rule", "column-rule-color", "column-rule-style",
	"column-rule-width", "column-span", "column-width", "columns", "contain",
	"contain-intrinsic-block-size", "contain-intrinsic-height",
	"contain-intrinsic-inline-size", "contain-intrinsic-size",
	"contain-intrinsic-width", "container", "container-name", "container-type",
	"content", "content-visibility", "counter-increment", "counter-reset",
	"counter-set", "cursor", "cx", "cy", "d", "direction", "display",
	"dominant-baseline", "empty-cells", "fill", "fill-opacity", "fill-rule",
	"filter", "flex", "flex-basis", "flex-direction", "flex-flow", "flex-grow",
	"flex-shrink", "flex-wrap", "float", "flood-color", "flood-opacity", "font",
	"font-family", "font-feature-settings", "font-kerning",
	"font-language-override", "font-optical-sizing", "font-palette",
	"font-size", "font-size-adjust", "font-smooth", "font-stretch", "font-style",
	"font-synthesis", "font-variant", "font-variant-alternates",
	"font-variant-caps", "font-variant-east-asian", "font-variant-emoji",
	"font-variant-ligatures", "font-variant-numeric", "font-variant-position",
	"font-variation-settings", "font-weight", "forced-color-adjust", "gap",
	"grid", "grid-area", "grid-auto-columns", "grid-auto-flow",
	"grid-auto-rows", "grid-column", "grid-column-end", "grid-column-gap",
	"grid-column-start", "grid-gap", "grid-row", "grid-row-end",
	"grid-row-gap", "grid-row-start", "grid-template", "grid-template-areas",
	"grid-template-columns", "grid-template-rows", "hanging-punctuation",
	"height", "hyphenate-character", "hyphens", "image-orientation",
	"image-rendering", "image-resolution", "ime-mode", "initial-letter",
	"inline-size", "inset", "inset-block", "inset-block-end",
	"inset-block-start", "inset-inline", "inset-inline-end",
	"inset-inline-start", "isolation", "justify-content", "justify-items",
	"justify-self", "justify-tracks", "left", "letter-spacing",
	"lighting-color", "line-break", "line-clamp", "line-height",
	"line-height-step", "list-style", "list-style-image",
	"list-style-position", "list-style-type", "margin", "margin-block",
	"margin-block-end", "margin-block-start", "margin-bottom", "margin-inline",
	"margin-inline-end", "margin-inline-start", "margin-left", "margin-right",
	"margin-top", "marker", "marker-end", "marker-mid", "marker-start", "mask",
	"mask-border", "mask-clip", "mask-composite", "mask-image", "mask-mode",
	"mask-origin", "mask-position", "mask-repeat", "mask-size", "mask-type",
	"math-depth", "math-style", "max-block-size", "max-height",
	"max-inline-size", "max-lines", "max-width", "min-block-size",
	"min-height", "min-inline-size", "min-width", "mix-blend-mode",
	"object-fit", "object-position", "offset", "offset-anchor",
	"offset-distance", "offset-path", "offset-position", "offset-rotate",
	"opacity", "order", "orphans", "outline", "outline-color",
	"outline-offset", "outline-style", "outline-width", "overflow",
	"overflow-anchor", "overflow-block", "overflow-clip-margin",
	"overflow-inline", "overflow-wrap", "overflow-x", "overflow-y",
	"overscroll-behavior", "overscroll-behavior-block",
	"overscroll-behavior-inline", "overscroll-behavior-x",
	"overscroll-behavior-y", "padding", "padding-block", "padding-block-end",
	"padding-block-start", "padding-bottom", "padding-inline",
	"padding-inline-end", "padding-inline-start", "padding-left",
	"padding-right", "padding-top", "page", "page-break-after",
	"page-break-before", "page-break-inside", "paint-order", "perspective",
	"perspective-origin", "place-content", "place-items", "place-self",
	"pointer-events", "position", "position-anchor", "print-color-adjust",
	"quotes", "r", "resize", "right", "rotate", "row-gap", "ruby-align",
	"ruby-position", "rx", "ry", "scale", "scroll-behavior", "scroll-margin",
	"scroll-margin-block", "scroll-margin-block-end",
	"scroll-margin-block-start", "scroll-margin-bottom",
	"scroll-margin-inline", "scroll-margin-inline-end",
	"scroll-margin-inline-start", "scroll-margin-left", "scroll-margin-right",
	"scroll-margin-top", "scroll-padding", "scroll-padding-block",
	"scroll-padding-block-end", "scroll-padding-block-start",
	"scroll-padding-bottom", "scroll-padding-inline",
	"scroll-padding-inline-end", "scroll-padding-inline-start",
	"scroll-padding-left", "scroll-padding-right", "scroll-padding-top",
	"scroll-snap-align", "scroll-snap-stop", "scroll-snap-type",
	"scroll-timeline", "scrollbar-color", "scrollbar-gutter",
	"scrollbar-width", "shape-image-threshold", "shape-margin",
	"shape-outside", "shape-rendering", "speak", "stop-color", "stop-opacity",
	"stroke", "stroke-dasharray", "stroke-dashoffset", "stroke-linecap",
	"stroke-linejoin", "stroke-miterlimit", "stroke-opacity", "stroke-width",
	"tab-size", "table-layout", "text-align", "text-align-last",
	"text-anchor", "text-combine-upright", "text-decoration",
	"text-decoration-color", "text-decoration-line", "text-decoration-skip",
	"text-decoration-skip-ink", "text-decoration-style",
	"text-decoration-thickness", "text-emphasis", "text-emphasis-color",
	"text-emphasis-position", "text-emphasis-style", "text-indent",
	"text-justify", "text-orientation", "text-overflow", "text-rendering",
	"text-shadow", "text-size-adjust", "text-transform",
	"text-underline-offset", "text-underline-position", "text-wrap", "top",
	"touch-action", "transform", "transform-box", "transform-origin",
	"transform-style", "transition", "transition-behavior",
	"transition-delay", "transition-duration", "transition-property",
	"transition-timing-function", "translate", "unicode-bidi", "user-select",
	"vector-effect", "vertical-align", "view-timeline", "view-transition-name",
	"visibility", "white-space", "white-space-collapse", "widows", "width",
	"will-change", "word-break", "word-spacing", "word-wrap", "writing-mode",
	"x", "y", "z-index", "zoom",
	// descriptors of @font-face, @page, @property and @counter-style
	"src", "unicode-range", "font-display", "ascent-override",
	"descent-override", "line-gap-override", "size-adjust", "size", "marks",
	"bleed", "syntax", "inherits", "initial-value", "system", "symbols",
	"additive-symbols", "negative", "prefix", "suffix", "range", "pad",
	"speak-as", "fallback",
)

var knownUnits = collections.NewSet(
	"%",
	// lengths
	"em", "rem", "ex", "rex", "cap", "rcap", "ch", "rch", "ic", "ric", "lh",
	"rlh", "vw", "vh", "vi", "vb", "vmin", "vmax", "svw", "svh", "svi", "svb",
	"svmin", "svmax", "lvw", "lvh", "lvi", "lvb", "lvmin", "lvmax", "dvw",
	"dvh", "dvi", "dvb", "dvmin", "dvmax", "cqw", "cqh", "cqi", "cqb",
	"cqmin", "cqmax", "px", "cm", "mm", "q", "in", "pt", "pc",
	// angles, times, frequencies, resolutions, flex
	"deg", "grad", "rad", "turn", "s", "ms", "hz", "khz", "dpi", "dpcm",
	"dppx", "x", "fr",
)

var knownAtRules = collections.NewSet(
	"@charset", "@container", "@counter-style", "@document", "@font-face",
	"@font-feature-values", "@font-palette-values", "@import", "@keyframes",
	"@layer", "@media", "@namespace", "@page", "@property", "@scope",
	"@starting-style", "@supports", "@viewport", "@position-try",
	"@view-transition",
	// nested in @page and @font-feature-values
	"@top-left-corner", "@top-left", "@top-center", "@top-right",
	"@top-right-corner", "@bottom-left-corner", "@bottom-left",
	"@bottom-center", "@bottom-right", "@bottom-right-corner", "@left-top",
	"@left-middle", "@left-bottom", "@right-top", "@right-middle",
	"@right-bottom", "@stylistic", "@historical-forms", "@styleset",
	"@character-variant", "@swash", "@ornaments", "@annotation",
)

var knownMediaFeatures = collections.NewSet(
	"any-hover", "any-pointer", "aspect-ratio", "min-aspect-ratio",
	"max-aspect-ratio", "color", "min-color", "max-color", "color-gamut",
	"color-index", "min-color-index", "max-color-index", "device-aspect-ratio",
	"min-device-aspect-ratio", "max-device-aspect-ratio", "device-height",
	"min-device-height", "max-device-height", "device-posture", "device-width",
	"min-device-width", "max-device-width", "display-mode", "dynamic-range",
	"forced-colors", "grid", "height", "min-height", "max-height", "hover",
	"inverted-colors", "monochrome", "min-monochrome", "max-monochrome",
	"orientation", "overflow-block", "overflow-inline", "pointer",
	"prefers-color-scheme", "prefers-contrast", "prefers-reduced-data",
	"prefers-reduced-motion", "prefers-reduced-transparency", "resolution",
	"min-resolution", "max-resolution", "scan", "scripting", "update",
	"video-dynamic-range", "width", "min-width", "max-width",
)

var knownTypeSelectors = collections.NewSet(
	// HTML
	"a", "abbr", "acronym", "address", "applet", "area", "article", "aside",
	"audio", "b", "base", "basefont", "bdi", "bdo", "bgsound", "big", "blink",
	"blockquote", "body", "br", "button", "canvas", "caption", "center",
	"cite", "code", "col", "colgroup", "command", "content", "data",
	"datalist", "dd", "del", "details", "dfn", "dialog", "dir", "div", "dl",
	"dt", "element", "em", "embed", "fieldset", "figcaption", "figure",
	"font", "footer", "form", "frame", "frameset", "h1", "h2", "h3", "h4",
	"h5", "h6", "head", "header", "hgroup", "hr", "html", "i", "iframe",
	"image", "img", "input", "ins", "isindex", "kbd", "keygen", "label",
	"legend", "li", "link", "listing", "main", "map", "mark", "marquee",
	"math", "menu", "menuitem", "meta", "meter", "multicol", "nav", "nextid",
	"nobr", "noembed", "noframes", "noscript", "object", "ol", "optgroup",
	"option", "output", "p", "param", "picture", "plaintext", "pre",
	"progress", "q", "rb", "rbc", "rp", "rt", "rtc", "ruby", "s", "samp",
	"script", "search", "section", "select", "shadow", "slot", "small",
	"source", "spacer", "span", "strike", "strong", "style", "sub", "summary",
	"sup", "svg", "table", "tbody", "td", "template", "textarea", "tfoot",
	"th", "thead", "time", "title", "tr", "track", "tt", "u", "ul", "var",
	"video", "wbr", "xmp",
	// SVG
	"circle", "clippath", "defs", "desc", "ellipse", "feblend", "fecolormatrix",
	"fecomposite", "feflood", "fegaussianblur", "feimage", "femerge",
	"feoffset", "filter", "foreignobject", "g", "line", "lineargradient",
	"marker", "mask", "path", "pattern", "polygon", "polyline",
	"radialgradient", "rect", "stop", "symbol", "text", "textpath", "tspan",
	"use",
	// MathML
	"mi", "mn", "mo", "mrow", "ms", "mtext", "mfrac", "msqrt", "mroot",
	"msub", "msup", "msubsup", "mtable", "mtr", "mtd",
)

var knownPseudoClasses = collections.NewSet(
	"active", "any-link", "autofill", "blank", "checked", "current",
	"default", "defined", "dir", "disabled", "empty", "enabled", "first",
	"first-child", "first-of-type", "focus", "focus-visible", "focus-within",
	"fullscreen", "future", "has", "host", "host-context", "hover",
	"in-range", "indeterminate", "invalid", "is", "lang", "last-child",
	"last-of-type", "left", "link", "local-link", "modal", "not", "nth-child",
	"nth-col", "nth-last-child", "nth-last-col", "nth-last-of-type",
	"nth-of-type", "only-child", "only-of-type", "optional", "out-of-range",
	"past", "paused", "picture-in-picture", "placeholder-shown", "playing",
	"popover-open", "read-only", "read-write", "required", "right", "root",
	"scope", "state", "target", "target-within", "user-invalid", "user-valid",
	"valid", "visited", "where",
	// legacy single-colon pseudo-elements
	"before", "after", "first-line", "first-letter",
)

var knownPseudoElements = collections.NewSet(
	"after", "backdrop", "before", "cue", "cue-region", "file-selector-button",
	"first-letter", "first-line", "grammar-error", "highlight", "marker",
	"part", "placeholder", "selection", "slotted", "spelling-error",
	"target-text", "view-transition", "view-transition-group",
	"view-transition-image-pair", "view-transition-new",
	"view-transition-old",
)

var genericFontFamilies = collections.NewSet(
	"serif", "sans-serif", "cursive", "fantasy", "monospace", "system-ui",
	"ui-serif", "ui-sans-serif", "ui-monospace", "ui-rounded", "emoji",
	"math", "fangsong",
)

var cssWideKeywords = collections.NewSet(
	"inherit", "initial", "unset", "revert", "revert-layer",
)

// systemFonts are the keywords that make up a whole font shorthand
var systemFonts = collections.NewSet(
	"caption", "icon", "menu", "message-box", "small-caption", "status-bar",
)

// longhands lists, per shorthand, the properties it resets
var longhands = map[string][]string{
	"margin":  {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"padding": {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"border": {
		"border-top", "border-right", "border-bottom", "border-left",
		"border-width", "border-style", "border-color",
		"border-top-width", "border-right-width", "border-bottom-width", "border-left-width",
		"border-top-style", "border-right-style", "border-bottom-style", "border-left-style",
		"border-top-color", "border-right-color", "border-bottom-color", "border-left-color",
	},
	"border-width":  {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-style":  {"border-top-style", "border-right-style", "border-bottom-style", "border-left-style"},
	"border-color":  {"border-top-color", "border-right-color", "border-bottom-color", "border-left-color"},
	"border-top":    {"border-top-width", "border-top-style", "border-top-color"},
	"border-right":  {"border-right-width", "border-right-style", "border-right-color"},
	"border-bottom": {"border-bottom-width", "border-bottom-style", "border-bottom-color"},
	"border-left":   {"border-left-width", "border-left-style", "border-left-color"},
	"border-radius": {
		"border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius",
	},
	"background": {
		"background-image", "background-size", "background-position",
		"background-position-x", "background-position-y", "background-repeat",
		"background-origin", "background-clip", "background-attachment",
		"background-color",
	},
	"font": {
		"font-style", "font-variant", "font-weight", "font-stretch",
		"font-size", "line-height", "font-family",
	},
	"flex":            {"flex-grow", "flex-shrink", "flex-basis"},
	"flex-flow":       {"flex-direction", "flex-wrap"},
	"gap":             {"row-gap", "column-gap"},
	"overflow":        {"overflow-x", "overflow-y"},
	"inset":           {"top", "right", "bottom", "left"},
	"list-style":      {"list-style-type", "list-style-position", "list-style-image"},
	"outline":         {"outline-color", "outline-style", "outline-width"},
	"text-decoration": {"text-decoration-color", "text-decoration-style", "text-decoration-line", "text-decoration-thickness"},
	"transition": {
		"transition-property", "transition-duration",
		"transition-timing-function", "transition-delay",
	},
	"animation": {
		"animation-name", "animation-duration", "animation-timing-function",
		"animation-delay", "animation-iteration-count", "animation-direction",
		"animation-fill-mode", "animation-play-state",
	},
	"grid-area":     {"grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end"},
	"grid-row":      {"grid-row-start", "grid-row-end"},
	"grid-column":   {"grid-column-start", "grid-column-end"},
	"grid-template": {"grid-template-columns", "grid-template-rows", "grid-template-areas"},
	"place-items":   {"align-items", "justify-items"},
	"place-content": {"align-content", "justify-content"},
	"place-self":    {"align-self", "justify-self"},
	"columns":       {"column-width", "column-count"},
}
