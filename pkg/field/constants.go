package field

// MB is the byte size used for every user-facing megabyte ceiling.
const MB = 1_000_000

// Transport ceilings for one submission. The receiver enforces these
// mid-stream; the attachment validators re-check the per-field and
// aggregate limits after parsing.
const (
	MaxFieldBytes          = 3 * MB
	MaxAttachmentBytes     = 7 * MB
	MaxTotalAttachmentSize = 7 * MB
)

// Stable user-visible prefix tokens applied to question labels in the
// assembled output.
const (
	MyInfoPrefix     = "[MyInfo] "
	VerifiedPrefix   = "[verified] "
	TablePrefix      = "[table] "
	AttachmentPrefix = "[attachment] "
)

// OthersPrefix marks a free-text escape answer on radio and checkbox
// fields; the remainder after the prefix must be non-blank.
const OthersPrefix = "Others: "

// DateAnswerFormat is the calendar layout every date answer must match.
const DateAnswerFormat = "02 Jan 2006"

// Answers accepted by yes/no fields.
const (
	YesAnswer = "Yes"
	NoAnswer  = "No"
)

// ChildAttrs enumerates the compound sub-field attributes a children
// field may declare. Order in a schema is significant; membership here
// is what makes a declared attribute valid.
var ChildAttrs = []string{
	"name",
	"birthcertno",
	"dateofbirth",
	"gender",
	"race",
	"nationality",
	"vaxxstatus",
}

// NoChildSelected is the sentinel value a children response carries in
// its first sub-answer slot when the submitter selected no child. When
// present, blank sub-answers are accepted across the whole response.
const NoChildSelected = ""

// ValidExtensions is the process-wide allow-list for attachment file
// extensions, lower case and dot-prefixed. Archive entries are checked
// against the same list.
var ValidExtensions = []string{
	".asc", ".avi", ".bmp", ".cer", ".class", ".csv", ".dat", ".dgn",
	".doc", ".docx", ".dot", ".dwf", ".dwg", ".dxf", ".ent", ".eps",
	".gif", ".gz", ".htm", ".html", ".jpeg", ".jpg", ".log", ".mov",
	".mpeg", ".mpg", ".mpp", ".msg", ".odb", ".odf", ".odg", ".ods",
	".odt", ".pages", ".pdf", ".png", ".ppt", ".pptx", ".psd", ".rar",
	".rtf", ".sch", ".shp", ".sld", ".tab", ".tif", ".tiff", ".txt",
	".vcf", ".vsd", ".wav", ".xls", ".xlsx", ".xml", ".zip",
}

// EntityTypeIndicators is the fixed set of two-letter entity-type codes
// accepted in the third UEN shape class (issued by the respective
// government agencies).
var EntityTypeIndicators = []string{
	// ACRA
	"BN", "LP", "LL", "LC", "FC", "PF", "VC",
	// ESG
	"RF",
	// Muis
	"MQ", "MM",
	// MCI
	"NB",
	// MCCY
	"CC", "CS", "MB",
	// Mindef
	"FM",
	// MOE
	"GS", "EC",
	// MFA
	"DP", "CP", "NR",
	// MOH
	"CM", "CD", "MD", "HS", "VH", "CH", "MH", "CL", "XL", "CX", "HC",
	// MLAW
	"RP",
	// MOM
	"TU",
	// MND
	"TC",
	// MAS
	"FB", "FN", "FS",
	// PA
	"PA", "PB",
	// ROS
	"SS",
	// SLA
	"MC", "SM",
	// SNDGO
	"GA", "GB",
	// Foreign entities
	"UF",
}
