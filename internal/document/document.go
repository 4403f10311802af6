// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document composes synthetic values into structured document
// bodies: employee records, financial reports, medical records, tax forms,
// credential lists, and similar DLP bait. Each builder returns a plain
// multi-line text block ending in a classification banner.
package document

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pdiddy/dlpsmith/internal/fake"
	"github.com/pdiddy/dlpsmith/pkg/types"
)

// Builder renders one document type from fresh synthetic values.
type Builder func(f *fake.Faker, now time.Time) string

// builders maps each document type to its template. The map is closed
// over types.DocumentTypes; Render rejects anything outside it.
var builders = map[types.DocumentType]Builder{
	types.DocEmployee:      Employee,
	types.DocFinancial:     Financial,
	types.DocHROnboarding:  HROnboarding,
	types.DocMedical:       Medical,
	types.DocTax:           Tax,
	types.DocCustomerDB:    CustomerDB,
	types.DocBankStatement: BankStatement,
	types.DocPasswords:     Passwords,
	types.DocSSNList:       SSNList,
	types.DocCreditCards:   CreditCards,
}

// Render builds the body for a document type.
func Render(doc types.DocumentType, f *fake.Faker, now time.Time) (string, error) {
	b, ok := builders[doc]
	if !ok {
		return "", fmt.Errorf("unknown document type %q", doc)
	}
	return b(f, now), nil
}

// banner returns the classification footer every document ends with.
// Reviewers and automated classifiers key on these exact labels.
func banner(class types.Classification) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "CLASSIFICATION: %s\n", class)
	b.WriteString("*** TEST DATA - SYNTHETIC - NOT REAL INFORMATION ***\n")
	b.WriteString("Generated for DLP/EDR detection testing only.\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	return b.String()
}

func header(title string, now time.Time) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString(title + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	return b.String()
}

// Employee renders a single-person employee record with full PII,
// employment details, and a direct-deposit block.
func Employee(f *fake.Faker, now time.Time) string {
	first, last := f.FirstName(), f.LastName()

	var b strings.Builder
	b.WriteString(header("CONFIDENTIAL EMPLOYEE RECORD", now))

	b.WriteString("PERSONAL INFORMATION\n")
	fmt.Fprintf(&b, "  Name:            %s %s\n", first, last)
	fmt.Fprintf(&b, "  SSN:             %s\n", f.SSN())
	fmt.Fprintf(&b, "  Date of Birth:   %s\n", f.DateOfBirth())
	fmt.Fprintf(&b, "  Address:         %s\n", f.Address())
	fmt.Fprintf(&b, "  Phone:           %s\n", f.Phone())
	fmt.Fprintf(&b, "  Email:           %s\n", f.EmailFor(first, last))

	b.WriteString("\nEMPLOYMENT\n")
	fmt.Fprintf(&b, "  Employee ID:     EMP-%s\n", f.Digits(6))
	fmt.Fprintf(&b, "  Department:      %s\n", f.Department())
	fmt.Fprintf(&b, "  Title:           %s\n", f.JobTitle())
	fmt.Fprintf(&b, "  Annual Salary:   $%s\n", formatAmount(float64(f.Salary())))

	b.WriteString("\nDIRECT DEPOSIT\n")
	fmt.Fprintf(&b, "  Routing Number:  %s\n", f.RoutingNumber())
	fmt.Fprintf(&b, "  Account Number:  %s\n", f.AccountNumber())

	b.WriteString(banner(types.DocEmployee.Classification()))
	return b.String()
}

// Financial renders a report of five synthetic customers with card
// numbers and amounts, plus a computed total. An empty customer list
// totals $0.00, never a missing value.
func Financial(f *fake.Faker, now time.Time) string {
	return financialWithCount(f, now, 5)
}

func financialWithCount(f *fake.Faker, now time.Time, customers int) string {
	var b strings.Builder
	b.WriteString(header("QUARTERLY FINANCIAL REPORT - CUSTOMER ACCOUNTS", now))

	var total float64
	for i := 0; i < customers; i++ {
		amount := round2(f.Float64Range(100, 10000))
		total += amount
		fmt.Fprintf(&b, "Customer %d:\n", i+1)
		fmt.Fprintf(&b, "  Name:   %s\n", f.FullName())
		fmt.Fprintf(&b, "  Card:   %s\n", f.CreditCard())
		fmt.Fprintf(&b, "  Amount: $%s\n\n", formatAmount(amount))
	}

	fmt.Fprintf(&b, "Total Amount: $%s\n", formatAmount(round2(total)))
	b.WriteString(banner(types.DocFinancial.Classification()))
	return b.String()
}

// HROnboarding renders an onboarding packet. The same SSN appears in
// both the W-4 and I-9 sections; the two sections describe one person.
func HROnboarding(f *fake.Faker, now time.Time) string {
	first, last := f.FirstName(), f.LastName()
	ssn := f.SSN()
	address := f.Address()

	var b strings.Builder
	b.WriteString(header("NEW HIRE ONBOARDING PACKET", now))

	fmt.Fprintf(&b, "Employee: %s %s\n", first, last)
	fmt.Fprintf(&b, "Start Date: %s\n\n", now.AddDate(0, 0, 14).Format("2006-01-02"))

	b.WriteString("SECTION 1: FORM W-4 (Employee's Withholding Certificate)\n")
	fmt.Fprintf(&b, "  Full Name:       %s %s\n", first, last)
	fmt.Fprintf(&b, "  SSN:             %s\n", ssn)
	fmt.Fprintf(&b, "  Address:         %s\n", address)
	fmt.Fprintf(&b, "  Filing Status:   %s\n", []string{"Single", "Married filing jointly", "Head of household"}[f.Intn(3)])

	b.WriteString("\nSECTION 2: FORM I-9 (Employment Eligibility Verification)\n")
	fmt.Fprintf(&b, "  Full Name:       %s %s\n", first, last)
	fmt.Fprintf(&b, "  SSN:             %s\n", ssn)
	fmt.Fprintf(&b, "  Date of Birth:   %s\n", f.DateOfBirth())
	fmt.Fprintf(&b, "  Email:           %s\n", f.EmailFor(first, last))
	fmt.Fprintf(&b, "  Phone:           %s\n", f.Phone())

	b.WriteString("\nSECTION 3: DIRECT DEPOSIT AUTHORIZATION\n")
	fmt.Fprintf(&b, "  Routing Number:  %s\n", f.RoutingNumber())
	fmt.Fprintf(&b, "  Account Number:  %s\n", f.AccountNumber())

	b.WriteString(banner(types.DocHROnboarding.Classification()))
	return b.String()
}

// Medical renders a patient record. The same SSN appears in the
// demographics block and the insurance subscriber field.
func Medical(f *fake.Faker, now time.Time) string {
	name := f.FullName()
	ssn := f.SSN()
	rec := f.Medical()

	var b strings.Builder
	b.WriteString(header("PATIENT MEDICAL RECORD", now))

	b.WriteString("PATIENT DEMOGRAPHICS\n")
	fmt.Fprintf(&b, "  Name:            %s\n", name)
	fmt.Fprintf(&b, "  MRN:             %s\n", rec.MRN)
	fmt.Fprintf(&b, "  SSN:             %s\n", ssn)
	fmt.Fprintf(&b, "  Date of Birth:   %s\n", f.DateOfBirth())
	fmt.Fprintf(&b, "  Address:         %s\n", f.Address())
	fmt.Fprintf(&b, "  Phone:           %s\n", f.Phone())

	b.WriteString("\nCLINICAL SUMMARY\n")
	fmt.Fprintf(&b, "  Diagnosis:       %s\n", rec.Condition)
	fmt.Fprintf(&b, "  Medication:      %s\n", rec.Medication)
	fmt.Fprintf(&b, "  Provider:        %s\n", rec.Provider)
	fmt.Fprintf(&b, "  Last Visit:      %s\n", now.AddDate(0, 0, -f.IntRange(1, 90)).Format("2006-01-02"))

	b.WriteString("\nINSURANCE\n")
	fmt.Fprintf(&b, "  Carrier:         Example Health Plan\n")
	fmt.Fprintf(&b, "  Member ID:       MBR%s\n", f.Digits(9))
	fmt.Fprintf(&b, "  Subscriber:      %s\n", name)
	fmt.Fprintf(&b, "  Subscriber SSN:  %s\n", ssn)

	b.WriteString(banner(types.DocMedical.Classification()))
	return b.String()
}

// Tax renders a W-2 style form. Withholdings are derived from wages:
// federal 22%, social security 6.2%, medicare 1.45%, each rounded to
// two decimal places.
func Tax(f *fake.Faker, now time.Time) string {
	wages := float64(f.Salary())
	federal := round2(wages * 0.22)
	socialSecurity := round2(wages * 0.062)
	medicare := round2(wages * 0.0145)

	var b strings.Builder
	b.WriteString(header(fmt.Sprintf("FORM W-2 WAGE AND TAX STATEMENT - %d", now.Year()-1), now))

	fmt.Fprintf(&b, "Employee:                  %s\n", f.FullName())
	fmt.Fprintf(&b, "Employee SSN:              %s\n", f.SSN())
	fmt.Fprintf(&b, "Address:                   %s\n\n", f.Address())

	fmt.Fprintf(&b, "Employer:                  Example Corp\n")
	fmt.Fprintf(&b, "Employer EIN:              00-%s\n\n", f.Digits(7))

	fmt.Fprintf(&b, "Box 1  Wages:              $%s\n", formatAmount(wages))
	fmt.Fprintf(&b, "Box 2  Federal Withheld:   $%s\n", formatAmount(federal))
	fmt.Fprintf(&b, "Box 4  Social Security:    $%s\n", formatAmount(socialSecurity))
	fmt.Fprintf(&b, "Box 6  Medicare:           $%s\n", formatAmount(medicare))

	b.WriteString(banner(types.DocTax.Classification()))
	return b.String()
}

// CustomerDB renders ten independent customer records, each with its own
// SSN, DOB, contact details, and card number.
func CustomerDB(f *fake.Faker, now time.Time) string {
	var b strings.Builder
	b.WriteString(header("CUSTOMER DATABASE EXPORT", now))

	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "--- Record %d ---\n", i+1)
		fmt.Fprintf(&b, "Name:    %s\n", f.FullName())
		fmt.Fprintf(&b, "SSN:     %s\n", f.SSN())
		fmt.Fprintf(&b, "DOB:     %s\n", f.DateOfBirth())
		fmt.Fprintf(&b, "Email:   %s\n", f.Email())
		fmt.Fprintf(&b, "Phone:   %s\n", f.Phone())
		fmt.Fprintf(&b, "Address: %s\n", f.Address())
		fmt.Fprintf(&b, "Card:    %s\n\n", f.CreditCard())
	}

	b.WriteString(banner(types.DocCustomerDB.Classification()))
	return b.String()
}

// BankStatement renders one account holder with 15 transactions over the
// trailing 15 days. Ending balance = beginning balance + deposits +
// withdrawals (withdrawals negative); an empty transaction list nets 0.
func BankStatement(f *fake.Faker, now time.Time) string {
	return bankStatementWithCount(f, now, 15)
}

func bankStatementWithCount(f *fake.Faker, now time.Time, txCount int) string {
	var b strings.Builder
	b.WriteString(header("MONTHLY BANK STATEMENT", now))

	fmt.Fprintf(&b, "Account Holder:  %s\n", f.FullName())
	fmt.Fprintf(&b, "Routing Number:  %s\n", f.RoutingNumber())
	fmt.Fprintf(&b, "Account Number:  %s\n\n", f.AccountNumber())

	beginning := round2(f.Float64Range(1000, 25000))
	fmt.Fprintf(&b, "Beginning Balance: $%s\n\n", formatAmount(beginning))

	b.WriteString("DATE        DESCRIPTION              AMOUNT\n")
	b.WriteString(strings.Repeat("-", 46) + "\n")

	var net float64
	for i := 0; i < txCount; i++ {
		date := now.AddDate(0, 0, -(txCount - i))
		amount := round2(f.Float64Range(5, 1500))
		if f.Intn(2) == 0 {
			amount = -amount
		}
		net += amount
		desc := f.Merchant()
		if amount > 0 {
			desc = "Deposit"
		}
		fmt.Fprintf(&b, "%s  %-22s %10s\n",
			date.Format("2006-01-02"), desc, signedAmount(amount))
	}

	ending := round2(beginning + net)
	fmt.Fprintf(&b, "\nEnding Balance: $%s\n", formatAmount(ending))

	b.WriteString(banner(types.DocBankStatement.Classification()))
	return b.String()
}

// Passwords renders one credential per system in the vocabulary's system
// list: username with a random suffix and a 16-character password.
func Passwords(f *fake.Faker, now time.Time) string {
	var b strings.Builder
	b.WriteString(header("IT CREDENTIAL INVENTORY - RESTRICTED", now))

	b.WriteString(fmt.Sprintf("%-20s %-24s %s\n", "SYSTEM", "USERNAME", "PASSWORD"))
	b.WriteString(strings.Repeat("-", 62) + "\n")
	for _, system := range f.Vocab().Systems {
		username := fmt.Sprintf("svc_%s%d", strings.ToLower(f.LastName()), f.IntRange(10, 99))
		fmt.Fprintf(&b, "%-20s %-24s %s\n", system, username, f.Password(16))
	}

	b.WriteString(banner(types.DocPasswords.Classification()))
	return b.String()
}

// SSNList renders 25 independent name/SSN pairs in a tabular layout.
func SSNList(f *fake.Faker, now time.Time) string {
	var b strings.Builder
	b.WriteString(header("EMPLOYEE SSN ROSTER", now))

	b.WriteString(fmt.Sprintf("%-4s %-28s %s\n", "#", "NAME", "SSN"))
	b.WriteString(strings.Repeat("-", 46) + "\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "%-4d %-28s %s\n", i+1, f.FullName(), f.SSN())
	}

	b.WriteString(banner(types.DocSSNList.Classification()))
	return b.String()
}

// CreditCards renders 30 comma-separated rows of card number, MM/YY
// expiry (months 01-12, years 25-29), 3-digit CVV, cardholder, amount.
func CreditCards(f *fake.Faker, now time.Time) string {
	var b strings.Builder
	b.WriteString(header("PAYMENT CARD TRANSACTION BATCH", now))

	b.WriteString("card_number,expiry,cvv,cardholder,amount\n")
	for i := 0; i < 30; i++ {
		expiry := fmt.Sprintf("%02d/%d", f.IntRange(1, 12), f.IntRange(25, 29))
		fmt.Fprintf(&b, "%s,%s,%03d,%s,%.2f\n",
			f.CreditCard(), expiry, f.IntRange(0, 999), f.FullName(),
			round2(f.Float64Range(1, 2500)))
	}

	b.WriteString(banner(types.DocCreditCards.Classification()))
	return b.String()
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatAmount renders a non-negative amount with two decimals.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// signedAmount renders a transaction amount with an explicit sign.
func signedAmount(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("+$%.2f", v)
}
