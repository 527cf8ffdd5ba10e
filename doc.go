// Package jsontable projects the records of semi-structured JSON documents
// into ordered display rows for tabular output.
//
// A document is decoded with DecodeDocument into generic
// map[string]any and []any values. Its records are found
// according to a Shape, either Direct for a document that is
// an array of records, or Wrapped for an object holding the
// records in a field like {"data": [...]}.
//
// Columns configure the projection. Every Column has a dotted
// field Path like "dashboard.nama" resolved with Resolve,
// an optional DefaultContent shown instead of blank values
// and an optional CellRenderer like HandleLinkRenderer or
// ExternalLinkRenderer producing markup.
//
// Project returns one Row of DisplayValue per record,
// ProjectView wraps the rows as View for the writers
// in the sub-packages htmltable, csvtable, texttable,
// exceltable and datatables.
package jsontable
