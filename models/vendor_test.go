package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVendorHandlesCategory(t *testing.T) {
	vendor := &Vendor{
		Name:         "Jharkhand Road Works",
		Specialities: []IssueCategory{Road, Sanitation},
	}

	assert.True(t, vendor.HandlesCategory(Road))
	assert.True(t, vendor.HandlesCategory(Sanitation))
	assert.False(t, vendor.HandlesCategory(Water))
	assert.False(t, vendor.HandlesCategory(Electricity))
}

func TestVendorAssignable(t *testing.T) {
	vendor := &Vendor{
		Name:         "Ranchi Water Services",
		Specialities: []IssueCategory{Water},
		Verified:     false,
	}

	// unverified vendors never take assignments
	assert.False(t, vendor.Assignable(Water))

	vendor.Verified = true
	assert.True(t, vendor.Assignable(Water))
	assert.False(t, vendor.Assignable(Road))
}

func TestVendorAssignable_NoSpecialities(t *testing.T) {
	vendor := &Vendor{Name: "Empty", Verified: true}
	assert.False(t, vendor.Assignable(Other))
}
