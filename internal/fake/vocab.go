// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fake

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Vocabulary holds the fixed word lists the generators draw from. Every
// list must be non-empty; LoadVocabulary keeps the built-in list for any
// field the file leaves out.
type Vocabulary struct {
	FirstNames  []string `yaml:"first_names"`
	LastNames   []string `yaml:"last_names"`
	Streets     []string `yaml:"streets"`
	Cities      []string `yaml:"cities"`
	States      []string `yaml:"states"`
	Domains     []string `yaml:"domains"`
	Conditions  []string `yaml:"conditions"`
	Medications []string `yaml:"medications"`
	Providers   []string `yaml:"providers"`
	Systems     []string `yaml:"systems"`
	Departments []string `yaml:"departments"`
	JobTitles   []string `yaml:"job_titles"`
	Merchants   []string `yaml:"merchants"`
}

// DefaultVocabulary returns the built-in word lists.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		FirstNames: []string{
			"James", "Mary", "Robert", "Patricia", "John", "Jennifer",
			"Michael", "Linda", "David", "Elizabeth", "William", "Barbara",
			"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
			"Carlos", "Maria", "Wei", "Priya", "Ahmed", "Fatima",
		},
		LastNames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
			"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez",
			"Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor",
			"Moore", "Chen", "Patel", "Kim", "Nguyen", "Ali", "Okafor",
		},
		Streets: []string{
			"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Elm St",
			"Washington Blvd", "Park Ave", "Lake Rd", "Hill St",
			"River Dr", "Sunset Blvd", "Highland Ave",
		},
		Cities: []string{
			"Springfield", "Riverside", "Franklin", "Greenville",
			"Bristol", "Clinton", "Fairview", "Salem", "Madison",
			"Georgetown", "Arlington", "Ashland",
		},
		States: []string{
			"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "MA", "MI", "NY",
			"OH", "OR", "PA", "TX", "VA", "WA",
		},
		Domains: []string{
			"example.com", "example.org", "example.net", "test.example",
			"mail.example.com",
		},
		Conditions: []string{
			"Hypertension", "Type 2 Diabetes", "Asthma", "Hyperlipidemia",
			"Hypothyroidism", "Anxiety Disorder", "Migraine",
			"Osteoarthritis", "GERD", "Seasonal Allergies",
		},
		Medications: []string{
			"Lisinopril 10mg", "Metformin 500mg", "Albuterol Inhaler",
			"Atorvastatin 20mg", "Levothyroxine 50mcg", "Sertraline 50mg",
			"Sumatriptan 100mg", "Ibuprofen 600mg", "Omeprazole 20mg",
			"Loratadine 10mg",
		},
		Providers: []string{
			"Dr. Adams", "Dr. Baker", "Dr. Carter", "Dr. Diaz",
			"Dr. Evans", "Dr. Foster", "Dr. Grant", "Dr. Hayes",
		},
		Systems: []string{
			"corporate-vpn", "email-gateway", "payroll-portal",
			"crm-production", "database-admin", "cloud-console",
			"git-server", "wiki-internal", "jira-internal", "backup-system",
		},
		Departments: []string{
			"Engineering", "Finance", "Human Resources", "Marketing",
			"Sales", "Operations", "Legal", "IT Support",
		},
		JobTitles: []string{
			"Software Engineer", "Account Manager", "Financial Analyst",
			"HR Specialist", "Operations Lead", "Sales Representative",
			"Systems Administrator", "Product Manager",
		},
		Merchants: []string{
			"Grocery Mart", "Gas & Go", "Coffee Corner", "Online Retail Co",
			"Utility Power Co", "Streaming Service", "Hardware Depot",
			"Pharmacy Plus", "Restaurant Row", "Transit Authority",
		},
	}
}

// LoadVocabulary reads word-list overrides from a YAML file and merges
// them over the defaults. Fields absent from the file keep their built-in
// lists, so a partial override file is valid.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}

	var override Vocabulary
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}

	v := DefaultVocabulary()
	merge := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	merge(&v.FirstNames, override.FirstNames)
	merge(&v.LastNames, override.LastNames)
	merge(&v.Streets, override.Streets)
	merge(&v.Cities, override.Cities)
	merge(&v.States, override.States)
	merge(&v.Domains, override.Domains)
	merge(&v.Conditions, override.Conditions)
	merge(&v.Medications, override.Medications)
	merge(&v.Providers, override.Providers)
	merge(&v.Systems, override.Systems)
	merge(&v.Departments, override.Departments)
	merge(&v.JobTitles, override.JobTitles)
	merge(&v.Merchants, override.Merchants)
	return v, nil
}
