package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldKey       = "key"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldEntryID   = "entry_id"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldTheme     = "theme"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStorage  = "storage"
	ComponentLedger   = "ledger"
	ComponentRegistry = "registry"
	ComponentImport   = "import"
	ComponentConfig   = "config"
	ComponentTUI      = "tui"
)

// Operations defines standard operation names
const (
	OpCreate  = "create"
	OpRead    = "read"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpImport  = "import"
	OpExport  = "export"
	OpMigrate = "migrate"
)
