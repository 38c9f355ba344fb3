package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the canvas to terminal cells and draws them on the screen
// inside area. Each terminal row represents 2 canvas rows, so the canvas
// height should be 2x the area height.
func (c *Canvas) Draw(scr uv.Screen, area uv.Rectangle) {
	// ▀ (upper half block) with fg=top colour and bg=bottom colour
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= c.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= c.Width {
				break
			}

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: c.cellColor(x, topY),
					Bg: c.cellColor(x, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor returns the pixel as a terminal colour, or nil below the last
// row so odd heights keep the terminal's default background.
func (c *Canvas) cellColor(x, y int) color.Color {
	if y >= c.Height {
		return nil
	}
	return c.At(x, y).RGBA()
}
