// Package core defines the domain types and error taxonomy for the FS
// document generator. This package has no transport or UI dependencies and
// can be used by any frontend.
package core

// FieldMapping is one column/field of a data table: the unit of the
// field-mapping table in generated documents and spreadsheet exports.
// DataType and Length are free text; they are never validated against an
// enum because vendor exports disagree on spelling.
type FieldMapping struct {
	FieldName   string `json:"fieldName"`
	DataType    string `json:"dataType"`
	Length      string `json:"length"`
	Description string `json:"description"`
}

// TableInfo is one parsed table definition from a vendor table-export
// workbook. Description is always empty; the export format carries no
// table-level description worth trusting.
type TableInfo struct {
	TableName   string         `json:"tableName"`
	Description string         `json:"description"`
	Fields      []FieldMapping `json:"fields"`
}

// FSDocumentData is the structured Functional Specification document shape
// produced by the AI collaborator and consumed by the exporter.
type FSDocumentData struct {
	Title                  string         `json:"title"`
	Overview               string         `json:"overview"`
	BusinessBackground     string         `json:"businessBackground"`
	FunctionalRequirements string         `json:"functionalRequirements"`
	ProcessFlow            string         `json:"processFlow"`
	InterfaceRequirements  string         `json:"interfaceRequirements"`
	DataRequirements       string         `json:"dataRequirements"`
	ErrorHandling          string         `json:"errorHandling"`
	AcceptanceCriteria     string         `json:"acceptanceCriteria"`
	FieldMappings          []FieldMapping `json:"fieldMappings,omitempty"`
}

// FileType classifies an uploaded file by its declared format.
type FileType string

const (
	FileDocx  FileType = "docx"
	FileXlsx  FileType = "xlsx"
	FileOther FileType = "other"
)

// FileTypeFromExt maps a lowercase file extension (without the dot) to a
// FileType. Legacy .xls exports are treated as spreadsheets.
func FileTypeFromExt(ext string) FileType {
	switch ext {
	case "docx":
		return FileDocx
	case "xlsx", "xls":
		return FileXlsx
	default:
		return FileOther
	}
}

// UploadedFile is the record returned by the upload endpoint and echoed back
// by clients on generation requests. Content is the base64-encoded payload;
// UploadedAt is an epoch-ms timestamp.
type UploadedFile struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       FileType `json:"type"`
	Content    string   `json:"content"`
	UploadedAt int64    `json:"uploadedAt"`
}

// Message is one turn of the generation conversation.
type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// SheetRows is the ordered row dump of a single sheet. Cell values keep
// whatever scalar shape the source recorded: int64, float64, or string.
type SheetRows struct {
	Name string  `json:"name"`
	Rows [][]any `json:"rows"`
}

// TemplateContent is the result of extracting reference content from an
// uploaded file: either plain text (word-processing files) or a structured
// sheet dump (spreadsheets). Callers switch on the concrete type.
type TemplateContent interface {
	templateContent()
}

// TextContent is extracted plain text.
type TextContent string

// SheetDump is a per-sheet row dump of a spreadsheet.
type SheetDump []SheetRows

func (TextContent) templateContent() {}
func (SheetDump) templateContent()   {}
