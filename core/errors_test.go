package core_test

import (
	"testing"

	"github.com/katalvlaran/mensa/core"
	"github.com/stretchr/testify/assert"
)

// TestCheckKey_AcceptsExtremes verifies both closed-range endpoints of each
// index are valid.
func TestCheckKey_AcceptsExtremes(t *testing.T) {
	for _, k := range [][2]int{{1, 1}, {1, 100}, {1000, 1}, {1000, 100}} {
		assert.NoError(t, core.CheckKey(k[0], k[1]), "key (%d,%d)", k[0], k[1])
	}
}

// TestCheckKey_RejectsOutOfRange verifies the four canonical misuse cases
// all surface ErrIndexOutOfRange.
func TestCheckKey_RejectsOutOfRange(t *testing.T) {
	for _, k := range [][2]int{{0, 1}, {1001, 1}, {1, 0}, {1, 101}} {
		err := core.CheckKey(k[0], k[1])
		assert.ErrorIs(t, err, core.ErrIndexOutOfRange, "key (%d,%d)", k[0], k[1])
	}
}

// TestCheckBand_RejectsForeignBand ensures a handler given another band's
// index fails exactly like any range misuse.
func TestCheckBand_RejectsForeignBand(t *testing.T) {
	assert.NoError(t, core.CheckBand(1, 15, core.DomainNumeric))
	assert.NoError(t, core.CheckBand(1000, 91, core.DomainSelfRef))

	err := core.CheckBand(1, 16, core.DomainNumeric)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange, "index from the logic band must be rejected by numeric")

	err = core.CheckBand(0, 16, core.DomainLogic)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange, "bad test_id must fail before the band check")
}
