// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fake

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ssnPattern = regexp.MustCompile(`^(\d{3})-(\d{2})-(\d{4})$`)

func TestSSNShapeAndArea(t *testing.T) {
	f := New(1)
	for i := 0; i < 2000; i++ {
		ssn := f.SSN()
		m := ssnPattern.FindStringSubmatch(ssn)
		require.NotNil(t, m, "SSN %q does not match AAA-GG-SSSS", ssn)

		area, _ := strconv.Atoi(m[1])
		group, _ := strconv.Atoi(m[2])
		serial, _ := strconv.Atoi(m[3])

		// The 900 block is never allocated to real persons.
		assert.GreaterOrEqual(t, area, 900)
		assert.LessOrEqual(t, area, 999)
		assert.GreaterOrEqual(t, group, 10)
		assert.GreaterOrEqual(t, serial, 1000)
	}
}

func TestCreditCardShape(t *testing.T) {
	f := New(2)
	for i := 0; i < 500; i++ {
		card := f.CreditCard()
		assert.Regexp(t, `^\d+$`, card)
		assert.Contains(t, []int{15, 16}, len(card), "card %q has unexpected length", card)
		assert.Contains(t, "3456", card[:1], "card %q has unexpected brand digit", card)
	}
}

func TestBankNumbers(t *testing.T) {
	f := New(3)
	for i := 0; i < 100; i++ {
		routing := f.RoutingNumber()
		require.Len(t, routing, 9)
		// Leading zero is not a valid ABA prefix.
		assert.Equal(t, byte('0'), routing[0])

		account := f.AccountNumber()
		assert.Regexp(t, `^\d{12}$`, account)
	}
}

func TestPhoneUsesFictional555Exchange(t *testing.T) {
	f := New(4)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, `^\(\d{3}\) 555-\d{4}$`, f.Phone())
	}
}

func TestPasswordAlphabetAndLength(t *testing.T) {
	f := New(5)
	for i := 0; i < 100; i++ {
		pw := f.Password(16)
		require.Len(t, pw, 16)
		assert.Regexp(t, `^[A-Za-z0-9]+$`, pw)
	}
}

func TestEmailUsesReservedDomains(t *testing.T) {
	f := New(6)
	for i := 0; i < 100; i++ {
		email := f.Email()
		at := strings.LastIndex(email, "@")
		require.Greater(t, at, 0, "email %q has no domain", email)
		assert.Contains(t, email[at+1:], "example")
	}
}

func TestSeededFakerIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.SSN(), b.SSN())
		assert.Equal(t, a.FullName(), b.FullName())
		assert.Equal(t, a.CreditCard(), b.CreditCard())
	}
}

func TestLoadVocabulary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, v *Vocabulary)
		errMsg  string
	}{
		{
			name:    "partial override keeps defaults elsewhere",
			content: "first_names: [Testfirst]\ncities: [Testville]\n",
			check: func(t *testing.T, v *Vocabulary) {
				assert.Equal(t, []string{"Testfirst"}, v.FirstNames)
				assert.Equal(t, []string{"Testville"}, v.Cities)
				assert.Equal(t, DefaultVocabulary().LastNames, v.LastNames)
				assert.Equal(t, DefaultVocabulary().Systems, v.Systems)
			},
		},
		{
			name:    "empty file keeps all defaults",
			content: "",
			check: func(t *testing.T, v *Vocabulary) {
				assert.Equal(t, DefaultVocabulary(), v)
			},
		},
		{
			name:    "malformed YAML",
			content: "first_names: [unclosed",
			errMsg:  "parsing vocabulary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vocab.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			v, err := LoadVocabulary(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading vocabulary")
}

func TestVocabularyFakerUsesOverrides(t *testing.T) {
	v := DefaultVocabulary()
	v.FirstNames = []string{"Only"}
	v.LastNames = []string{"Name"}
	f := NewWithVocab(7, v)
	assert.Equal(t, "Only Name", f.FullName())
}

func TestIntRangeBounds(t *testing.T) {
	f := New(8)
	for i := 0; i < 1000; i++ {
		v := f.IntRange(10, 12)
		if v < 10 || v > 12 {
			t.Fatalf("IntRange(10, 12) = %d", v)
		}
	}
}

func TestDigitsLength(t *testing.T) {
	f := New(9)
	for _, n := range []int{1, 4, 8, 12} {
		d := f.Digits(n)
		require.Len(t, d, n)
		_, err := strconv.Atoi(d)
		require.NoError(t, err, fmt.Sprintf("Digits(%d) = %q", n, d))
	}
}
