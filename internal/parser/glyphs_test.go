package parser

import (
	"testing"

	"github.com/heartmarshall/signphon/internal/hamnosys"
)

// Glyphs of the default table used across the tests.
const (
	hsFlat     = "\ue001"
	hsFinger2  = "\ue002"
	hsThumbAcr = "\ue00d"
	hsStraight = "\ue010"

	oriExtU  = "\ue020"
	oriExtO  = "\ue029"
	oriPalmU = "\ue038"
	oriPalmD = "\ue03c"
	oriPalmL = "\ue03e"
	oriRel   = "\ue0ed"

	locLips      = "\ue04a"
	locShoulders = "\ue051"
	locChest     = "\ue052"
	locLRAt      = "\ue059"
	locCoref     = "\ue05a"

	ambIndex = "\ue071"
	ambTip   = "\ue075"

	movU       = "\ue080"
	movO       = "\ue089"
	movDO      = "\ue090"
	movReplace = "\ue0aa"
	movNone    = "\ue0af"
	mdWavy     = "\ue0c4"

	ctClose = "\ue0d0"
	ctTouch = "\ue0d1"
	brush   = "\ue0d6"
	rep     = "\ue0d8"

	parOpen  = "\ue0e0"
	parClose = "\ue0e1"
	brOpen   = "\ue0e2"
	brClose  = "\ue0e3"
	fuOpen   = "\ue0e4"
	fuClose  = "\ue0e5"
	plus     = "\ue0e7"
	symPar   = "\ue0e8"

	unmapped = "\ue0ff"
)

func defaultTable(t *testing.T) *hamnosys.Table {
	t.Helper()
	table, err := hamnosys.Default()
	if err != nil {
		t.Fatalf("default table: %v", err)
	}
	return table
}
