package question

// Kind identifies a question type. The set is closed: every Kind has exactly
// one schema builder in the compiler.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindTextboxLarge
	KindUpload
	KindDate
	KindBoolean
	KindCheckboxes
	KindCheckboxTree
	KindRadios
	KindList
	KindBooleanList
	KindPricing
	KindNumber
	KindMultiquestion
	KindDynamicList
)

var kindTags = map[string]Kind{
	"text":          KindText,
	"textbox_large": KindTextboxLarge,
	"upload":        KindUpload,
	"uri":           KindUpload,
	"date":          KindDate,
	"boolean":       KindBoolean,
	"checkboxes":    KindCheckboxes,
	"checkbox_tree": KindCheckboxTree,
	"radios":        KindRadios,
	"list":          KindList,
	"boolean_list":  KindBooleanList,
	"pricing":       KindPricing,
	"number":        KindNumber,
	"multiquestion": KindMultiquestion,
	"dynamic_list":  KindDynamicList,
}

// ParseKind resolves a content type tag. Unknown tags return KindUnknown, false.
func ParseKind(tag string) (Kind, bool) {
	k, ok := kindTags[tag]
	return k, ok
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(KindDynamicList))
	for k := KindText; k <= KindDynamicList; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextboxLarge:
		return "textbox_large"
	case KindUpload:
		return "upload"
	case KindDate:
		return "date"
	case KindBoolean:
		return "boolean"
	case KindCheckboxes:
		return "checkboxes"
	case KindCheckboxTree:
		return "checkbox_tree"
	case KindRadios:
		return "radios"
	case KindList:
		return "list"
	case KindBooleanList:
		return "boolean_list"
	case KindPricing:
		return "pricing"
	case KindNumber:
		return "number"
	case KindMultiquestion:
		return "multiquestion"
	case KindDynamicList:
		return "dynamic_list"
	default:
		return "unknown"
	}
}

// Composite reports whether the kind nests other questions.
func (k Kind) Composite() bool { return k == KindMultiquestion || k == KindDynamicList }

// Flattens reports whether nested questions become top-level properties of the
// enclosing object (flat multiquestions) rather than one property of their own.
func (k Kind) Flattens() bool { return k == KindMultiquestion }
