package editor

import (
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/compatedit/internal/grapheme"
)

type completionPopupRender struct {
	View string
}

// completionPopupRender composites the popup over base, below the word
// being completed when it fits and above it otherwise.
func (m Model) completionPopupRender(base string) (completionPopupRender, bool) {
	state := m.popup
	if !state.Visible || len(state.Candidates) == 0 || !m.focused {
		return completionPopupRender{}, false
	}

	viewportWidth := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	viewportHeight := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return completionPopupRender{}, false
	}

	textX, row, ok := m.eng.ScreenOfOffset(state.Start)
	if !ok {
		return completionPopupRender{}, false
	}
	anchorX := m.eng.MarginWidth() + textX
	anchorY := row - m.viewport.YOffset
	if anchorY < 0 || anchorY >= viewportHeight {
		return completionPopupRender{}, false
	}

	targetRows := min(m.cfg.CompletionMaxVisibleRows, len(state.Candidates))
	belowAvail := max(viewportHeight-(anchorY+1), 0)
	aboveAvail := max(anchorY, 0)
	showBelow := true
	rowCount := targetRows
	if rowCount > belowAvail {
		if aboveAvail >= rowCount {
			showBelow = false
		} else if aboveAvail > belowAvail {
			showBelow = false
			rowCount = aboveAvail
		} else {
			rowCount = belowAvail
		}
	}
	if rowCount <= 0 {
		return completionPopupRender{}, false
	}

	// Scroll the window so the selected candidate stays visible.
	first := 0
	if m.popupSelected >= rowCount {
		first = m.popupSelected - rowCount + 1
	}
	items := state.Candidates[first:min(len(state.Candidates), first+rowCount)]

	widthCap := min(m.cfg.CompletionMaxWidth, viewportWidth)
	popupWidth := 0
	for _, item := range items {
		popupWidth = max(popupWidth, grapheme.Width(item))
	}
	popupWidth = min(popupWidth, widthCap)
	if popupWidth <= 0 {
		return completionPopupRender{}, false
	}

	prefixLen := len([]rune(state.Prefix))
	rendered := make([]string, 0, len(items))
	for i, item := range items {
		rendered = append(rendered, m.renderCompletionPopupRow(item, prefixLen, first+i == m.popupSelected, popupWidth))
	}

	y := anchorY + 1
	if !showBelow {
		y = anchorY - len(rendered)
	}
	y = clampInt(y, 0, max(0, viewportHeight-len(rendered)))
	x := clampInt(anchorX, 0, max(0, viewportWidth-popupWidth))

	leftFrame := m.viewport.Style.GetMarginLeft() + m.viewport.Style.GetBorderLeftSize() + m.viewport.Style.GetPaddingLeft()
	topFrame := m.viewport.Style.GetMarginTop() + m.viewport.Style.GetBorderTopSize() + m.viewport.Style.GetPaddingTop()

	return completionPopupRender{
		View: overlay.Composite(
			strings.Join(rendered, "\n"),
			base,
			overlay.Left,
			overlay.Top,
			leftFrame+x,
			topFrame+y,
		),
	}, true
}

// renderCompletionPopupRow draws one candidate padded to width, with the
// typed prefix emphasised.
func (m Model) renderCompletionPopupRow(item string, prefixLen int, selected bool, width int) string {
	st := m.cfg.Style
	base := st.CompletionItem
	if selected {
		base = st.CompletionSelected
	}
	text := grapheme.Pad(item, width)
	runes := []rune(text)
	prefixLen = min(prefixLen, len(runes))
	if prefixLen == 0 {
		return base.Render(text)
	}
	return st.CompletionPrefix.Inherit(base).Render(string(runes[:prefixLen])) + base.Render(string(runes[prefixLen:]))
}
