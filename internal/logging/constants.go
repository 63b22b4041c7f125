package logging

// Field names shared by every component so log output stays filterable.
const (
	FieldFile         = "file_path"
	FieldFormat       = "format"
	FieldSourceFormat = "source_format"
	FieldTargetFormat = "target_format"
	FieldStatementID  = "statement_id"
	FieldAccount      = "account"
	FieldCount        = "count"
	FieldLine         = "line"
	FieldRow          = "row"
	FieldTag          = "tag"
	FieldReason       = "reason"
	FieldDelimiter    = "delimiter"
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
	FieldFailed       = "failed"
)
