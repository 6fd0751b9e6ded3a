package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BankAccount - where customers pay
type BankAccount struct {
	BankName      string `yaml:"bank_name" json:"bank_name"`
	AccountNumber string `yaml:"account_number" json:"account_number"`
	IFSC          string `yaml:"ifsc" json:"ifsc"`
	Branch        string `yaml:"branch" json:"branch"`
}

// Letterhead is the business identity printed on every invoice.
type Letterhead struct {
	CompanyName         string      `yaml:"company_name" json:"company_name"`
	AddressLines        []string    `yaml:"address_lines" json:"address_lines"`
	Phone               string      `yaml:"phone" json:"phone"`
	GSTIN               string      `yaml:"gstin" json:"gstin"`
	LogoFile            string      `yaml:"logo_file" json:"logo_file,omitempty"`
	CurrencySymbol      string      `yaml:"currency_symbol" json:"currency_symbol"`
	Bank                BankAccount `yaml:"bank" json:"bank"`
	Terms               []string    `yaml:"terms" json:"terms"`
	ReceiverSignature   string      `yaml:"receiver_signature" json:"receiver_signature"`
	AuthorizedSignature string      `yaml:"authorized_signature" json:"authorized_signature"`
}

// DefaultLetterhead is used when no letterhead file is configured.
func DefaultLetterhead() Letterhead {
	return Letterhead{
		CompanyName:    "YOUR COMPANY NAME",
		AddressLines:   []string{"Street address", "City, State - PIN"},
		GSTIN:          "GSTIN NOT SET",
		CurrencySymbol: "Rs.",
		Bank: BankAccount{
			BankName:      "BANK NAME",
			AccountNumber: "0000000000",
			IFSC:          "IFSC0000000",
			Branch:        "BRANCH",
		},
		Terms: []string{
			"Delivery charges will be always charged extra.",
			"Once material delivered will not be taken back or exchanged.",
			"No claim will be admitted after delivery.",
		},
		ReceiverSignature:   "Receiver's Signature",
		AuthorizedSignature: "Authorised Signatory",
	}
}

// LoadLetterhead reads a YAML letterhead. An empty path or a missing file
// gives DefaultLetterhead; fields left out of the file keep their defaults.
func LoadLetterhead(path string) (Letterhead, error) {
	lh := DefaultLetterhead()
	if path == "" {
		return lh, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: letterhead file %s not found, using the default letterhead", path)
			return lh, nil
		}
		return Letterhead{}, err
	}

	if err := yaml.Unmarshal(data, &lh); err != nil {
		return Letterhead{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := lh.Validate(); err != nil {
		return Letterhead{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return lh, nil
}

// Validate rejects a letterhead that cannot head a tax invoice.
func (l Letterhead) Validate() error {
	if strings.TrimSpace(l.CompanyName) == "" {
		return errors.New("company_name is required")
	}
	if strings.TrimSpace(l.CurrencySymbol) == "" {
		return errors.New("currency_symbol is required")
	}
	return nil
}
