package rain

import "time"

// step is the scheduled frame callback.
func (c *Controller) step(ts time.Duration) {
	if c.ctx == nil || c.canvas == nil {
		c.frame = 0
		return
	}
	if ts-c.lastFrame < minFrameInterval {
		c.frame = c.sched.Schedule(c.step)
		return
	}
	c.lastFrame = ts
	c.draw()
	c.frame = c.sched.Schedule(c.step)
}

// draw renders one pass and advances every lane.
func (c *Controller) draw() {
	w, h := c.viewport.Size()

	c.ctx.FillRect(0, 0, w, h, overlayColor)
	c.ctx.SetFont(c.glyphSize)

	for i := range c.columns {
		col := &c.columns[i]
		x := float64(i) * c.glyphSize
		y := col.Y

		// Lead glyphs past the bottom edge are still drawn; they land off-surface.
		c.ctx.FillText(c.glyph(), x, y, leadColor)

		if trailY := y - c.glyphSize*trailOffset; trailY >= 0 {
			c.ctx.FillText(c.glyph(), x, trailY, trailColor)
		}

		if y > h && c.rnd.Float64() > resetChance {
			col.Y = 0
			col.Speed = c.newSpeed()
		} else {
			col.Y = y + col.Speed
		}
	}
}
