package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Storage preference modes
const (
	StorageModeLocal  = "local"
	StorageModeOnline = "online" // placeholder, no backend yet
)

// FlexFloat is a float64 that also unmarshals from a numeric JSON string.
// Settings written by older frontends carry numbers as strings.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	s := strings.Trim(string(data), `"`)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt is an int that also unmarshals from a numeric JSON string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = FlexInt(f)
	return nil
}

// SystemSettings is the singleton configuration record
type SystemSettings struct {
	BusinessType      BusinessType `json:"businessType"`
	Currency          string       `json:"currency"`
	TaxRate           FlexFloat    `json:"taxRate"`
	LowStockThreshold FlexInt      `json:"lowStockThreshold"`
	Notifications     bool         `json:"notifications"`
	Sound             bool         `json:"sound"`
	ReceiptSize       string       `json:"receiptSize"`
	ReceiptFooter     string       `json:"receiptFooter"`
	StorageMode       string       `json:"storageMode"`
	StoragePath       string       `json:"storagePath,omitempty"`
}

// CompanyInfo is the singleton business identity record
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Logo    string `json:"logo,omitempty"` // data URL of the uploaded image
}

// DefaultSettings returns the documented SystemSettings defaults.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		BusinessType:      BusinessRetail,
		Currency:          "USD",
		TaxRate:           0,
		LowStockThreshold: 5,
		Notifications:     true,
		Sound:             true,
		ReceiptSize:       "80mm",
		ReceiptFooter:     "Thank you for your business!",
		StorageMode:       StorageModeLocal,
	}
}

// DefaultCompanyInfo returns the CompanyInfo defaults.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{Name: "My Business"}
}

var _ json.Unmarshaler = (*FlexFloat)(nil)
