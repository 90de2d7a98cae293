package tetris

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout, in screen cells. Every board cell is two characters wide so the
// well looks square in a terminal.
const (
	cellW  = 2
	wellW  = core.BoardWidth*cellW + 2
	wellH  = core.BoardHeight + 2
	gapW   = 2
	panelW = 20

	layoutW = wellW + gapW + panelW
)

const (
	blockGlyph = '█'
	ghostGlyph = '░'
	emptyGlyph = '·'
)

// kindColors maps each piece kind to its platform colour.
var kindColors = [core.KindCount + 1]platformcore.Color{
	core.Empty: platformcore.ColorDim,
	core.KindI: platformcore.ColorBrightCyan,
	core.KindJ: platformcore.ColorBlue,
	core.KindL: platformcore.ColorOrange,
	core.KindO: platformcore.ColorBrightYellow,
	core.KindS: platformcore.ColorBrightGreen,
	core.KindT: platformcore.ColorPurple,
	core.KindZ: platformcore.ColorBrightRed,
}

// KindColor returns the colour a kind is drawn with.
func KindColor(k core.Kind) platformcore.Color {
	if !k.Valid() {
		return platformcore.ColorDim
	}
	return kindColors[k]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	area := platformcore.Centered(g.screenW, g.screenH, layoutW, minScreenH)

	wellX := area.X
	wellY := area.Y + 1
	panelX := wellX + wellW + gapW

	g.renderTitle(dst, area.X, area.Y)
	g.renderWell(dst, wellX, wellY)
	g.renderPanel(dst, panelX, wellY)
	g.renderOverlays(dst, wellX+wellW/2, wellY+wellH/2)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minScreenW, minScreenH, g.screenW, g.screenH), platformcore.ColorGray)
}

func (g *Game) renderTitle(dst *platformcore.Screen, x, y int) {
	title := "TETRIS · MARATHON"
	if g.mode == ModeSprint {
		title = "TETRIS · SPRINT"
	}
	dst.DrawTextColored(x+(layoutW-len([]rune(title)))/2, y, title, platformcore.ColorBrightWhite)
}

// setCell draws one board cell at board coordinates (bx, by).
func setCell(dst *platformcore.Screen, wellX, wellY, bx, by int, glyph rune, c platformcore.Color) {
	sx := wellX + 1 + bx*cellW
	sy := wellY + 1 + by
	for i := 0; i < cellW; i++ {
		dst.SetColored(sx+i, sy, glyph, c)
	}
}

func (g *Game) renderWell(dst *platformcore.Screen, x, y int) {
	dst.DrawBox(platformcore.NewRect(x, y, wellW, wellH), platformcore.ColorGray)

	for by := 0; by < core.BoardHeight; by++ {
		for bx := 0; bx < core.BoardWidth; bx++ {
			k := g.engine.Cell(bx, by)
			if k == core.Empty {
				sx := x + 1 + bx*cellW
				dst.SetColored(sx, y+1+by, ' ', platformcore.ColorDefault)
				dst.SetColored(sx+1, y+1+by, emptyGlyph, platformcore.ColorDim)
				continue
			}
			setCell(dst, x, y, bx, by, blockGlyph, KindColor(k))
		}
	}

	if g.engine.GameOver() {
		return
	}

	piece := g.engine.Piece()
	color := KindColor(piece.Kind)

	if g.cfg.Gameplay.Ghost {
		ghost := piece
		ghost.Y = g.engine.GhostY()
		if ghost.Y != piece.Y {
			for _, c := range ghost.Cells() {
				if c.Y >= 0 {
					setCell(dst, x, y, c.X, c.Y, ghostGlyph, color)
				}
			}
		}
	}

	for _, c := range piece.Cells() {
		if c.Y >= 0 {
			setCell(dst, x, y, c.X, c.Y, blockGlyph, color)
		}
	}
}

func (g *Game) renderPanel(dst *platformcore.Screen, x, y int) {
	row := y

	if g.cfg.Gameplay.Preview {
		dst.DrawBox(platformcore.NewRect(x, row, core.ShapeSize*cellW+2, core.ShapeSize+2), platformcore.ColorGray)
		dst.DrawText(x+2, row, " NEXT ")
		next := g.engine.Next()
		for py := 0; py < core.ShapeSize; py++ {
			for px := 0; px < core.ShapeSize; px++ {
				if core.PieceCell(next, 0, px, py) == 1 {
					for i := 0; i < cellW; i++ {
						dst.SetColored(x+1+px*cellW+i, row+1+py, blockGlyph, KindColor(next))
					}
				}
			}
		}
		row += core.ShapeSize + 3
	}

	label := func(name, value string) {
		dst.DrawTextColored(x, row, name, platformcore.ColorGray)
		dst.DrawTextColored(x+7, row, value, platformcore.ColorBrightWhite)
		row++
	}

	label("SCORE", fmt.Sprintf("%d", g.engine.Score()))
	label("LEVEL", fmt.Sprintf("%d", g.engine.Level()))
	if g.mode == ModeSprint {
		label("LINES", fmt.Sprintf("%d/%d", g.engine.Lines(), g.cfg.Gameplay.SprintLines))
		label("TIME", formatElapsed(g.Elapsed()))
	} else {
		label("LINES", fmt.Sprintf("%d", g.engine.Lines()))
	}
	label("PIECES", fmt.Sprintf("%d", g.engine.PiecesLocked()))
	row++

	// Per-kind counts, four to a row.
	for i, k := range core.Kinds() {
		cx := x + (i%4)*5
		cy := row + i/4
		dst.SetColored(cx, cy, blockGlyph, KindColor(k))
		dst.DrawText(cx+1, cy, fmt.Sprintf("%-3d", g.PieceCount(k)))
	}
	row += 3

	if g.flashTicks > 0 && g.flash != "" {
		dst.DrawTextColored(x, row, g.flash, platformcore.ColorBrightYellow)
	}
}

func (g *Game) renderOverlays(dst *platformcore.Screen, centerX, centerY int) {
	switch {
	case g.won:
		drawOverlay(dst, centerX, centerY,
			"SPRINT COMPLETE",
			"Time "+formatElapsed(g.Elapsed()),
			fmt.Sprintf("Score %d", g.engine.Score()),
			"R: restart")
	case g.engine.GameOver():
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score %d", g.engine.Score()),
			fmt.Sprintf("Lines %d", g.engine.Lines()),
			"R: restart")
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a boxed block of centred lines.
func drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := platformcore.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorBrightWhite)

	inner := box.Inset(1)
	for i, line := range lines {
		lx := centerX - len([]rune(line))/2
		c := platformcore.ColorDefault
		if i == 0 {
			c = platformcore.ColorBrightYellow
		}
		dst.DrawTextColored(lx, inner.Y+i, line, c)
	}
}

// formatElapsed renders a duration as m:ss.t.
func formatElapsed(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
