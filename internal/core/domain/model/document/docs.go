// Package document holds what the document composer consumes and produces:
// the Sections of an invoice or package label, the Handle of a rendered file,
// and the Record kept in the local archive for every issued document.
package document
