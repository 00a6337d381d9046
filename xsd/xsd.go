// Package xsd re-exports the well-known XML Schema datatype IRIs as thin
// wrappers around serd.Node, for callers who want the vocabulary without
// importing the rest of the core package's constructors.
package xsd

import "github.com/knakk/serdgo"

// The XML schema built-in datatypes the serd package's literal constructors
// canonicalise against:
// https://www.w3.org/TR/xmlschema-2/#built-in-datatypes
var (
	String  = serd.XSDString
	Boolean = serd.XSDBoolean
	Decimal = serd.XSDDecimal
	Integer = serd.XSDInteger
	Double  = serd.XSDDouble
	Float   = serd.XSDFloat

	Base64Binary = serd.XSDBase64Binary
	HexBinary    = serd.XSDHexBinary

	Date     = serd.XSDDate
	DateTime = serd.XSDDateTime

	LangString = serd.RDFLangString
)
