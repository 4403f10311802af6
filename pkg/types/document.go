// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentType identifies one of the synthetic document templates.
type DocumentType string

const (
	DocEmployee      DocumentType = "employee_record"
	DocFinancial     DocumentType = "financial_report"
	DocHROnboarding  DocumentType = "hr_onboarding"
	DocMedical       DocumentType = "medical_record"
	DocTax           DocumentType = "tax_form"
	DocCustomerDB    DocumentType = "customer_database"
	DocBankStatement DocumentType = "bank_statement"
	DocPasswords     DocumentType = "password_list"
	DocSSNList       DocumentType = "ssn_list"
	DocCreditCards   DocumentType = "credit_card_batch"
)

// DocumentTypes lists every template in a fixed order. The orchestrator
// picks from this slice; tests iterate it for exhaustive coverage.
var DocumentTypes = []DocumentType{
	DocEmployee,
	DocFinancial,
	DocHROnboarding,
	DocMedical,
	DocTax,
	DocCustomerDB,
	DocBankStatement,
	DocPasswords,
	DocSSNList,
	DocCreditCards,
}

// Classification names the sensitive-data category a document imitates.
// Classifiers key on these labels, so they appear verbatim in banners.
type Classification string

const (
	ClassPII         Classification = "PII"
	ClassPCI         Classification = "PCI"
	ClassPHI         Classification = "PHI"
	ClassCredentials Classification = "CREDENTIALS"
)

// Classification returns the sensitive-data category for a document type.
func (d DocumentType) Classification() Classification {
	switch d {
	case DocMedical:
		return ClassPHI
	case DocFinancial, DocBankStatement, DocCreditCards:
		return ClassPCI
	case DocPasswords:
		return ClassCredentials
	default:
		return ClassPII
	}
}

// ContainerFormat identifies the file-level wrapper applied around a
// rendered document body.
type ContainerFormat string

const (
	FormatTxt  ContainerFormat = "txt"
	FormatCSV  ContainerFormat = "csv"
	FormatLog  ContainerFormat = "log"
	FormatXML  ContainerFormat = "xml"
	FormatJSON ContainerFormat = "json"
	FormatHTML ContainerFormat = "html"
	FormatRTF  ContainerFormat = "rtf"
	FormatMD   ContainerFormat = "md"
	FormatPDF  ContainerFormat = "pdf"
	FormatDOCX ContainerFormat = "docx"
	FormatXLSX ContainerFormat = "xlsx"
)

// ContainerFormats lists every container format in a fixed order.
var ContainerFormats = []ContainerFormat{
	FormatTxt,
	FormatCSV,
	FormatLog,
	FormatXML,
	FormatJSON,
	FormatHTML,
	FormatRTF,
	FormatMD,
	FormatPDF,
	FormatDOCX,
	FormatXLSX,
}

// Extension returns the file extension for the format. The office and PDF
// formats are plain-text simulations, so they carry a compound extension
// that keeps the nominal format visible without claiming to be real
// binary files.
func (f ContainerFormat) Extension() string {
	switch f {
	case FormatPDF, FormatDOCX, FormatXLSX:
		return string(f) + ".txt"
	default:
		return string(f)
	}
}
