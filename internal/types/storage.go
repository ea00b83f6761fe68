package types

// StorageKind selects where rendered artifacts are written.
type StorageKind string

const (
	StorageKindFS StorageKind = "fs"
	StorageKindS3 StorageKind = "s3"
)

// InvoiceSource selects where invoice records are read from.
type InvoiceSource string

const (
	InvoiceSourceFile     InvoiceSource = "file"
	InvoiceSourceSupabase InvoiceSource = "supabase"
	InvoiceSourcePostgres InvoiceSource = "postgres"
)
