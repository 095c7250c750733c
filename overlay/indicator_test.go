package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/compatedit/overlay"
	"github.com/iw2rmb/compatedit/paint"
)

func TestHitTest_FirstRegisteredRangeWins(t *testing.T) {
	r := overlay.New()
	r.AddIndicatorRange(0, 5, 8, "a", 0)
	r.AddIndicatorRange(3, 8, 8, "b", 0)

	hit := r.HitTest(4)
	assert.Equal(t, overlay.HitIndicator, hit.Kind)
	assert.Equal(t, "a", hit.Payload)
	assert.Equal(t, 8, hit.Indicator)
	assert.Equal(t, 0, hit.RangeIndex)

	hit = r.HitTest(6)
	assert.Equal(t, "b", hit.Payload)

	assert.Equal(t, overlay.HitNone, r.HitTest(8).Kind)
}

func TestHitTest_IndicatorIDInsertionOrder(t *testing.T) {
	r := overlay.New()
	r.AddIndicatorRange(0, 10, 9, "nine", 0)
	r.AddIndicatorRange(0, 10, 2, "two", 0)

	assert.Equal(t, []int{9, 2}, r.IndicatorIDs())
	assert.Equal(t, "nine", r.HitTest(3).Payload)
}

func TestHitTest_HotspotBeforeIndicator(t *testing.T) {
	r := overlay.New()
	r.AddIndicatorRange(0, 10, 1, "ind", 0)
	r.AddHotspotRange(2, 4, "link")

	hit := r.HitTest(3)
	assert.Equal(t, overlay.HitHotspot, hit.Kind)
	assert.Equal(t, "link", hit.Payload)
	assert.Equal(t, 0, hit.HotspotIndex)
}

func TestFillIndicatorRange_UsesCurrentIndicatorAndValue(t *testing.T) {
	r := overlay.New()
	r.SetIndicatorCurrent(3)
	r.SetIndicatorValue(42)

	r.FillIndicatorRange(-2, 4)

	got := r.IndicatorRanges(3)
	require.Len(t, got, 1)
	assert.Equal(t, overlay.IndicatorRange{Start: 0, End: 4, Payload: "42", Value: 42}, got[0])
}

func TestAddIndicatorRange_SwapsAndIgnoresEmpty(t *testing.T) {
	r := overlay.New()
	r.AddIndicatorRange(7, 2, 1, "x", 0)
	r.AddIndicatorRange(4, 4, 1, "empty", 0)

	got := r.IndicatorRanges(1)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Start)
	assert.Equal(t, 7, got[0].End)
}

func TestClearIndicatorRange_SplitsStraddlingRanges(t *testing.T) {
	r := overlay.New()
	r.AddIndicatorRange(0, 10, 1, "p", 5)
	r.AddIndicatorRange(20, 30, 2, "q", 0)

	r.ClearIndicatorRange(4, 3)

	assert.Equal(t, []overlay.IndicatorRange{
		{Start: 0, End: 4, Payload: "p", Value: 5},
		{Start: 7, End: 10, Payload: "p", Value: 5},
	}, r.IndicatorRanges(1))
	assert.Len(t, r.IndicatorRanges(2), 1)

	r.ClearIndicatorRange(0, 100)
	assert.Empty(t, r.IndicatorRanges(1))
	assert.Empty(t, r.IndicatorRanges(2))
}

func TestDefineIndicator_DefaultColorOnce(t *testing.T) {
	r := overlay.New()
	red := paint.MustHex("#ff0000")

	r.DefineIndicator(4, overlay.IndicatorBox)
	assert.Equal(t, overlay.DefaultIndicatorColor, r.IndicatorColor(4))

	r.SetIndicatorColor(4, red)
	r.DefineIndicator(4, overlay.IndicatorStrike)
	assert.Equal(t, red, r.IndicatorColor(4))
	assert.Equal(t, overlay.IndicatorStrike, r.IndicatorStyleOf(4))
	assert.Equal(t, overlay.IndicatorPlain, r.IndicatorStyleOf(99))
}

func TestHover_ReportsChangesOnly(t *testing.T) {
	r := overlay.New()
	r.AddHotspotRange(0, 3, "h")
	r.AddIndicatorRange(5, 9, 1, "i", 0)

	_, changed := r.Hover(1)
	assert.True(t, changed)
	assert.Equal(t, 0, r.ActiveHotspot())

	_, changed = r.Hover(2)
	assert.False(t, changed, "same hotspot must not trigger a refresh")

	hit, changed := r.Hover(6)
	assert.True(t, changed)
	assert.Equal(t, overlay.HitIndicator, hit.Kind)
	assert.Equal(t, -1, r.ActiveHotspot())

	_, changed = r.Hover(7)
	assert.False(t, changed)

	_, changed = r.Hover(20)
	assert.True(t, changed)
}

func TestClearHotspots_ResetsActive(t *testing.T) {
	r := overlay.New()
	r.AddHotspotRange(0, 3, "h")
	r.Hover(1)

	r.ClearHotspots()

	assert.Equal(t, -1, r.ActiveHotspot())
	assert.Empty(t, r.Hotspots())
}
