package field

import "time"

// Kind is the discriminant for the supported question types. Every
// submitted answer declares its kind and is only ever validated against
// a schema carrying the same kind.
type Kind string

const (
	KindShortText     Kind = "textfield"
	KindLongText      Kind = "textarea"
	KindNumber        Kind = "number"
	KindDecimal       Kind = "decimal"
	KindDate          Kind = "date"
	KindNric          Kind = "nric"
	KindUen           Kind = "uen"
	KindEmail         Kind = "email"
	KindMobile        Kind = "mobile"
	KindHomePhone     Kind = "homeno"
	KindDropdown      Kind = "dropdown"
	KindRadio         Kind = "radiobutton"
	KindCheckbox      Kind = "checkbox"
	KindRating        Kind = "rating"
	KindYesNo         Kind = "yes_no"
	KindSection       Kind = "section"
	KindStatement     Kind = "statement"
	KindCountryRegion Kind = "country_region"
	KindAttachment    Kind = "attachment"
	KindTable         Kind = "table"
	KindChildren      Kind = "children"
)

// Kinds lists every supported discriminant. The validator factory is
// exhaustive over this set.
var Kinds = []Kind{
	KindShortText, KindLongText, KindNumber, KindDecimal, KindDate,
	KindNric, KindUen, KindEmail, KindMobile, KindHomePhone,
	KindDropdown, KindRadio, KindCheckbox, KindRating, KindYesNo,
	KindSection, KindStatement, KindCountryRegion, KindAttachment,
	KindTable, KindChildren,
}

// LengthMode selects how a length constraint is interpreted.
type LengthMode string

const (
	LengthModeNone    LengthMode = ""
	LengthModeExact   LengthMode = "exact"
	LengthModeMinimum LengthMode = "minimum"
	LengthModeMaximum LengthMode = "maximum"
)

// LengthConstraint bounds the character count of a text answer, or the
// digit count of a number answer. Value must be positive whenever Mode
// is set; the validators fail closed otherwise.
type LengthConstraint struct {
	Mode  LengthMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	Value int        `json:"value,omitempty" yaml:"value,omitempty"`
}

// ValueRange bounds a numeric answer inclusively. A nil bound is open.
type ValueRange struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// DateRules restricts date answers. NoFuture and NoPast are evaluated
// against "today" with UTC tolerances so that submitters in any
// timezone are not rejected for being ahead of or behind the server.
type DateRules struct {
	NoFuture       bool           `json:"noFuture,omitempty" yaml:"noFuture,omitempty"`
	NoPast         bool           `json:"noPast,omitempty" yaml:"noPast,omitempty"`
	Min            *time.Time     `json:"min,omitempty" yaml:"min,omitempty"`
	Max            *time.Time     `json:"max,omitempty" yaml:"max,omitempty"`
	DisallowedDays []time.Weekday `json:"disallowedDays,omitempty" yaml:"disallowedDays,omitempty"`
}

// SelectionConstraint bounds how many checkbox options may be picked.
// Only consulted when Enabled is true; a zero Min or Max leaves that
// side open.
type SelectionConstraint struct {
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Min     int  `json:"min,omitempty" yaml:"min,omitempty"`
	Max     int  `json:"max,omitempty" yaml:"max,omitempty"`
}

// Column describes one table column. Only text and dropdown columns are
// accepted by the table validator; other kinds fail the containing cell.
type Column struct {
	ID       string   `json:"_id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Kind     Kind     `json:"columnType" yaml:"kind"`
	Required bool     `json:"required" yaml:"required"`
	Options  []string `json:"fieldOptions,omitempty" yaml:"options,omitempty"`
}

// TableConstraints describes the shape of a table field.
type TableConstraints struct {
	MinRows     int      `json:"minimumRows" yaml:"minRows"`
	MaxRows     int      `json:"maximumRows,omitempty" yaml:"maxRows,omitempty"`
	AddMoreRows bool     `json:"addMoreRows,omitempty" yaml:"addMoreRows,omitempty"`
	Columns     []Column `json:"columns" yaml:"columns"`
}

// Schema is the author-configured rule set for a single question,
// supplied once per submission and treated as immutable by the engine.
// Constraint groups are only meaningful for the kinds that use them.
type Schema struct {
	ID       string `json:"_id" yaml:"id"`
	Kind     Kind   `json:"fieldType" yaml:"kind"`
	Title    string `json:"title" yaml:"title"`
	Required bool   `json:"required" yaml:"required"`

	Length         LengthConstraint    `json:"lengthValidation,omitempty" yaml:"length,omitempty"`
	Range          ValueRange          `json:"rangeValidation,omitempty" yaml:"range,omitempty"`
	Date           DateRules           `json:"dateValidation,omitempty" yaml:"date,omitempty"`
	Options        []string            `json:"fieldOptions,omitempty" yaml:"options,omitempty"`
	AllowOthers    bool                `json:"othersRadioButton,omitempty" yaml:"allowOthers,omitempty"`
	Selection      SelectionConstraint `json:"selection,omitempty" yaml:"selection,omitempty"`
	RatingSteps    int                 `json:"ratingSteps,omitempty" yaml:"ratingSteps,omitempty"`
	AttachmentSize int                 `json:"attachmentSize,omitempty" yaml:"attachmentSize,omitempty"` // megabytes
	Table          TableConstraints    `json:"tableConstraints,omitempty" yaml:"table,omitempty"`
	ChildAttrs     []string            `json:"childrenSubFields,omitempty" yaml:"childAttrs,omitempty"`
	IsVerifiable   bool                `json:"isVerifiable,omitempty" yaml:"isVerifiable,omitempty"`
	AllowedDomains []string            `json:"allowedEmailDomains,omitempty" yaml:"allowedDomains,omitempty"`
	AllowIntl      bool                `json:"allowIntlNumbers,omitempty" yaml:"allowIntl,omitempty"`
}

// Form bundles the ordered field schemas for one questionnaire.
type Form struct {
	ID     string   `json:"_id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Fields []Schema `json:"formFields" yaml:"fields"`
}

// SchemaByID indexes the form's fields by identifier.
func (f Form) SchemaByID() map[string]Schema {
	out := make(map[string]Schema, len(f.Fields))
	for _, fs := range f.Fields {
		out[fs.ID] = fs
	}
	return out
}

// Response is one submitted answer. Exactly one of Answer, AnswerArray
// and AnswerRows is populated depending on the kind; attachments
// additionally carry Filename and Content once the multipart receiver
// has reconciled them.
//
// IsVisible and IsUserVerified are trusted flags computed upstream of
// this engine; the validators consume them but never derive them.
type Response struct {
	ID       string `json:"_id"`
	Kind     Kind   `json:"fieldType"`
	Question string `json:"question"`

	Answer      string     `json:"answer,omitempty"`
	AnswerArray []string   `json:"-"`
	AnswerRows  [][]string `json:"-"`

	Filename string `json:"filename,omitempty"`
	Content  []byte `json:"-"`

	// ChildAttrs is the response's own declaration of the compound
	// sub-fields each inner answer slot maps to.
	ChildAttrs []string `json:"childSubFieldsArray,omitempty"`

	IsVisible      bool   `json:"isVisible,omitempty"`
	IsUserVerified bool   `json:"isUserVerified,omitempty"`
	Signature      string `json:"signature,omitempty"`

	// MyInfoAttr tags answers that originated from a verified external
	// record rather than free-form user input.
	MyInfoAttr string `json:"myInfoAttr,omitempty"`
}
