package dockui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tweakdock/dock"
)

const shadowAlphaDivisor = 4

var (
	panelColor    = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xe6}
	backdropColor = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3c, A: 0xd0}
	rowColor      = color.RGBA{R: 0x2c, G: 0x2c, B: 0x2e, A: 0xff}
	trackColor    = color.RGBA{R: 0x48, G: 0x48, B: 0x4a, A: 0xff}
	fillColor     = color.RGBA{R: 0x0a, G: 0x84, B: 0xff, A: 0xff}
	textColor     = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf7, A: 0xff}
	dimTextColor  = color.RGBA{R: 0x98, G: 0x98, B: 0x9d, A: 0xff}
)

type roundRect struct {
	X, Y, W, H float32
	Fillet     float32
	Color      color.RGBA
	Filled     bool
	Border     float32
}

func drawDropShadow(screen *ebiten.Image, rrect roundRect, size float32, opacity float64) {
	if size <= 0 || opacity <= 0 {
		return
	}
	layers := int(math.Ceil(float64(size)))
	step := size / float32(layers)
	for i := layers; i >= 1; i-- {
		expand := step * float32(i)
		alpha := opacity * 255 * float64(layers-i+1) / float64(layers)

		shadow := rrect
		shadow.X -= expand
		shadow.Y -= expand
		shadow.W += expand * 2
		shadow.H += expand * 2
		shadow.Fillet += expand
		shadow.Color = color.RGBA{A: uint8(alpha / shadowAlphaDivisor)}
		shadow.Filled = true
		drawRoundRect(screen, shadow)
	}
}

func drawRoundRect(screen *ebiten.Image, rrect roundRect) {
	x, y, w, h := rrect.X, rrect.Y, rrect.W, rrect.H
	if w <= 0 || h <= 0 {
		return
	}
	if rrect.Fillet <= 0 {
		if rrect.Filled {
			vector.DrawFilledRect(screen, x, y, w, h, rrect.Color, true)
		}
		if rrect.Border > 0 {
			vector.StrokeRect(screen, x, y, w, h, rrect.Border, rrect.Color, true)
		}
		return
	}

	fillet := rrect.Fillet
	if fillet*2 > w {
		fillet = w / 2
	}
	if fillet*2 > h {
		fillet = h / 2
	}

	var path vector.Path
	path.MoveTo(x+fillet, y)
	path.LineTo(x+w-fillet, y)
	path.QuadTo(x+w, y, x+w, y+fillet)
	path.LineTo(x+w, y+h-fillet)
	path.QuadTo(x+w, y+h, x+w-fillet, y+h)
	path.LineTo(x+fillet, y+h)
	path.QuadTo(x, y+h, x, y+h-fillet)
	path.LineTo(x, y+fillet)
	path.QuadTo(x, y, x+fillet, y)
	path.Close()

	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(rrect.Color)
	if rrect.Filled {
		vector.FillPath(screen, &path, nil, drawOp)
		return
	}
	if rrect.Border <= 0 {
		return
	}
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: rrect.Border}, drawOp)
}

func mixColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// drawPanel renders the panel body, its rows and the badge glyph for the
// current chrome.
func (h *Host) drawPanel(screen *ebiten.Image) {
	p := h.Panel
	if !p.Visible() {
		return
	}
	c := p.Chrome()
	f := p.Frame()
	sz := f.Size()
	body := roundRect{
		X: float32(f.X0), Y: float32(f.Y0),
		W: float32(sz.W), H: float32(sz.H),
		Fillet: float32(c.CornerRadius),
		Color:  mixColor(panelColor, backdropColor, c.BackdropOpacity),
		Filled: true,
	}
	shadow := body
	shadow.Y += float32(c.ShadowOffsetY)
	drawDropShadow(screen, shadow, float32(c.ShadowRadius), c.ShadowOpacity)
	drawRoundRect(screen, body)

	if c.ContentAlpha > 0 {
		h.drawContent(screen, f, c)
	}
	if c.Progress > 0.5 {
		drawBadgeGlyph(screen, f, (c.Progress-0.5)*2)
	}
}

// drawContent draws the rows into an offscreen image the size of the
// expanded container, then scales it into the current frame.
func (h *Host) drawContent(screen *ebiten.Image, f dock.Rect, c dock.Chrome) {
	p := h.Panel
	size := p.Layout().Container
	w, ht := int(math.Ceil(size.W)), int(math.Ceil(size.H))
	if w <= 0 || ht <= 0 {
		return
	}
	if h.content == nil || h.content.Bounds().Dx() != w || h.content.Bounds().Dy() != ht {
		if h.content != nil {
			h.content.Deallocate()
		}
		h.content = ebiten.NewImage(w, ht)
	}
	h.content.Clear()

	scroll := p.ScrollOffset()
	pad := p.Metrics().Padding
	bounds := dock.RectAt(0, 0, size.W, size.H)
	for _, row := range p.Registry().Rows() {
		frame := row.Frame.Offset(rowOffset(scroll))
		visible := frame.Intersect(bounds)
		if visible.Empty() {
			continue
		}
		// Rows scrolled past an edge are clipped to the container.
		dst := h.content.SubImage(visible.Image()).(*ebiten.Image)
		drawRow(dst, row, frame, pad)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.ContentScale.X, c.ContentScale.Y)
	op.GeoM.Translate(f.X0, f.Y0)
	op.ColorScale.ScaleAlpha(float32(c.ContentAlpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(h.content, op)
}

func drawRow(dst *ebiten.Image, row *dock.Row, frame dock.Rect, pad float64) {
	drawRoundRect(dst, roundRect{
		X: float32(frame.X0), Y: float32(frame.Y0),
		W: float32(frame.Width()), H: float32(frame.Height()),
		Fillet: 10, Color: rowColor, Filled: true,
	})

	face := boldFace(15)
	top := &text.DrawOptions{}
	top.GeoM.Translate(frame.X0+pad, frame.Y0+pad/2)
	top.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, row.Param.Title(), face, top)

	vface := textFace(14)
	vop := &text.DrawOptions{LayoutOptions: text.LayoutOptions{PrimaryAlign: text.AlignEnd}}
	vop.GeoM.Translate(frame.X1-pad, frame.Y0+pad/2)
	vop.ColorScale.ScaleWithColor(dimTextColor)
	text.Draw(dst, row.Label(), vface, vop)

	track := row.Track(frame, pad)
	const trackH = 6
	ty := float32(frame.Y1 - pad - trackH)
	tw := float32(track.Width())
	drawRoundRect(dst, roundRect{
		X: float32(track.X0), Y: ty, W: tw, H: trackH,
		Fillet: trackH / 2, Color: trackColor, Filled: true,
	})
	filled := tw * float32(row.Param.Fraction())
	drawRoundRect(dst, roundRect{
		X: float32(track.X0), Y: ty, W: filled, H: trackH,
		Fillet: trackH / 2, Color: fillColor, Filled: true,
	})
	const knob = 18
	kx := float32(track.X0) + filled - knob/2
	drawRoundRect(dst, roundRect{
		X: kx, Y: ty + trackH/2 - knob/2, W: knob, H: knob,
		Fillet: knob / 2, Color: textColor, Filled: true,
	})
}

// drawBadgeGlyph draws three slider bars in the middle of the badge.
func drawBadgeGlyph(screen *ebiten.Image, f dock.Rect, alpha float64) {
	col := color.NRGBA{R: textColor.R, G: textColor.G, B: textColor.B, A: uint8(255 * alpha)}
	cx, cy := float32(f.X0+f.Width()/2), float32(f.Y0+f.Height()/2)
	const barW, barH, gap = 24.0, 3.0, 7.0
	for i := -1; i <= 1; i++ {
		y := cy + float32(i)*gap - barH/2
		vector.DrawFilledRect(screen, cx-barW/2, y, barW, barH, col, true)
		knobX := cx - barW/2 + float32(i+1)*barW/3 + 2
		vector.DrawFilledCircle(screen, knobX, y+barH/2, 3, col, true)
	}
}
