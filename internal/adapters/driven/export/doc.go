// Package export provides ContactSink implementations that write the final
// contact collection to a file using the fixed output column schema.
//
// A ".xlsx" target produces an Excel workbook; any other target produces CSV.
package export
