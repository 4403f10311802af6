// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fake generates individually synthetic but pattern-shaped values
// (names, SSNs, card numbers, accounts, addresses) for DLP test documents.
// Every value is guaranteed non-attributable: SSN areas sit in the
// never-allocated 900 block, phone numbers use the fictional 555 exchange,
// routing numbers start with an invalid ABA prefix, and email domains are
// reserved example domains.
package fake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// passwordAlphabet is the character set for generated credentials.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// testCards are published test-card numbers for the four major brands.
// They are safe to emit verbatim; no real account carries them.
var testCards = []string{
	"4111111111111111", // Visa
	"5555555555554444", // Mastercard
	"378282246310005",  // Amex
	"6011111111111117", // Discover
}

// cardPrefixes maps brand leading digits to total number length for
// randomly generated card numbers.
var cardPrefixes = []struct {
	prefix string
	length int
}{
	{"4", 16}, // Visa
	{"5", 16}, // Mastercard
	{"3", 15}, // Amex
	{"6", 16}, // Discover
}

// Faker produces synthetic values from a single random source. It is not
// safe for concurrent use; the pipeline is strictly sequential.
type Faker struct {
	r     *rand.Rand
	vocab *Vocabulary
}

// New returns a Faker with a deterministic seed. Tests use this to make
// generator output reproducible.
func New(seed int64) *Faker {
	return NewWithVocab(seed, DefaultVocabulary())
}

// NewWithVocab returns a seeded Faker drawing from a custom vocabulary.
func NewWithVocab(seed int64, v *Vocabulary) *Faker {
	return &Faker{r: rand.New(rand.NewSource(seed)), vocab: v}
}

// NewRandom returns a Faker seeded from the current time, for normal
// (non-reproducible) runs.
func NewRandom(v *Vocabulary) *Faker {
	if v == nil {
		v = DefaultVocabulary()
	}
	return &Faker{r: rand.New(rand.NewSource(time.Now().UnixNano())), vocab: v}
}

// Vocab exposes the vocabulary in use.
func (f *Faker) Vocab() *Vocabulary { return f.vocab }

// Intn returns a uniform int in [0, n).
func (f *Faker) Intn(n int) int { return f.r.Intn(n) }

// IntRange returns a uniform int in [lo, hi].
func (f *Faker) IntRange(lo, hi int) int {
	return lo + f.r.Intn(hi-lo+1)
}

// Float64Range returns a uniform float64 in [lo, hi).
func (f *Faker) Float64Range(lo, hi float64) float64 {
	return lo + f.r.Float64()*(hi-lo)
}

func (f *Faker) pick(list []string) string {
	return list[f.r.Intn(len(list))]
}

// Digits returns a string of n random decimal digits.
func (f *Faker) Digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + f.r.Intn(10))
	}
	return string(b)
}

// FirstName returns a random first name.
func (f *Faker) FirstName() string { return f.pick(f.vocab.FirstNames) }

// LastName returns a random last name.
func (f *Faker) LastName() string { return f.pick(f.vocab.LastNames) }

// FullName returns a random "First Last" name.
func (f *Faker) FullName() string {
	return f.FirstName() + " " + f.LastName()
}

// SSN returns an AAA-GG-SSSS number with the area in [900, 999], a block
// the SSA has never allocated, so no generated value can match a real
// person.
func (f *Faker) SSN() string {
	area := f.IntRange(900, 999)
	group := f.IntRange(10, 99)
	serial := f.IntRange(1000, 9999)
	return fmt.Sprintf("%03d-%02d-%04d", area, group, serial)
}

// CreditCard returns either a well-known published test-card number or a
// random digit string with a real brand's leading digit and length. No
// checksum is applied; the leading-digit/length heuristic is what DLP
// engines match on.
func (f *Faker) CreditCard() string {
	if f.r.Intn(2) == 0 {
		return testCards[f.r.Intn(len(testCards))]
	}
	p := cardPrefixes[f.r.Intn(len(cardPrefixes))]
	return p.prefix + f.Digits(p.length-len(p.prefix))
}

// RoutingNumber returns a 9-digit routing number starting with 0, an
// invalid ABA prefix.
func (f *Faker) RoutingNumber() string {
	return "0" + f.Digits(8)
}

// AccountNumber returns a random 12-digit account number.
func (f *Faker) AccountNumber() string {
	return f.Digits(12)
}

// Address returns a random street address line.
func (f *Faker) Address() string {
	return fmt.Sprintf("%d %s, %s, %s %05d",
		f.IntRange(100, 9999), f.pick(f.vocab.Streets),
		f.pick(f.vocab.Cities), f.pick(f.vocab.States),
		f.IntRange(10000, 99999))
}

// Email returns an address at a reserved example domain.
func (f *Faker) Email() string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(f.FirstName()), strings.ToLower(f.LastName()),
		f.IntRange(1, 999), f.pick(f.vocab.Domains))
}

// EmailFor returns an address derived from an existing name, so a
// document can show a consistent identity.
func (f *Faker) EmailFor(first, last string) string {
	return fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), f.pick(f.vocab.Domains))
}

// Phone returns a number in the 555 exchange reserved for fictional use.
func (f *Faker) Phone() string {
	return fmt.Sprintf("(%03d) 555-%04d", f.IntRange(200, 999), f.IntRange(0, 9999))
}

// DateOfBirth returns a date for a person aged roughly 18-79.
func (f *Faker) DateOfBirth() string {
	year := time.Now().Year() - f.IntRange(18, 79)
	month := f.IntRange(1, 12)
	day := f.IntRange(1, 28)
	return fmt.Sprintf("%02d/%02d/%d", month, day, year)
}

// Salary returns an annual salary in dollars.
func (f *Faker) Salary() int {
	return f.IntRange(35000, 185000)
}

// MedicalRecord bundles the clinical fields of one synthetic patient.
type MedicalRecord struct {
	MRN        string
	Condition  string
	Medication string
	Provider   string
}

// Medical returns a synthetic medical record.
func (f *Faker) Medical() MedicalRecord {
	return MedicalRecord{
		MRN:        "MRN-" + f.Digits(8),
		Condition:  f.pick(f.vocab.Conditions),
		Medication: f.pick(f.vocab.Medications),
		Provider:   f.pick(f.vocab.Providers),
	}
}

// Password returns an n-character password from the full
// upper/lower/digit alphabet.
func (f *Faker) Password(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = passwordAlphabet[f.r.Intn(len(passwordAlphabet))]
	}
	return string(b)
}

// Department returns a random department name.
func (f *Faker) Department() string { return f.pick(f.vocab.Departments) }

// JobTitle returns a random job title.
func (f *Faker) JobTitle() string { return f.pick(f.vocab.JobTitles) }

// Merchant returns a random merchant name for transactions.
func (f *Faker) Merchant() string { return f.pick(f.vocab.Merchants) }
