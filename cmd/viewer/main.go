package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/1siamBot/variantgen/engine/input"
	"github.com/1siamBot/variantgen/engine/render"
	"github.com/1siamBot/variantgen/engine/tier"
	"github.com/1siamBot/variantgen/engine/variant"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	SidebarWidth = 260
	tileGap      = 4
	listRowH     = 18
)

var frameColor = color.RGBA{255, 255, 0, 150}

type ViewerApp struct {
	manifest string
	registry *variant.Registry
	items    []*variant.Item
	renderer *render.TextureRenderer
	input    *input.InputState
	canvas   *ebiten.Image
	selIdx   int
	scroll   int
}

func NewViewerApp(manifest string) *ViewerApp {
	a := &ViewerApp{
		manifest: manifest,
		registry: variant.NewRegistry(),
		renderer: render.NewTextureRenderer(ScreenWidth-SidebarWidth, ScreenHeight),
		input:    input.NewInputState(),
	}
	a.reload()
	return a
}

func (a *ViewerApp) reload() {
	a.registry.Clear()
	a.renderer.Sprites.Clear()
	if err := a.registry.LoadManifest(a.manifest); err != nil {
		log.Printf("Failed to load manifest: %v", err)
	}
	a.items = a.registry.Items()
	a.renderer.Sprites.Preload(a.registry.All())
	a.selIdx = input.Clamp(a.selIdx, len(a.items))
	a.fit()
	log.Printf("Viewer: %d items, %d variants from %s", len(a.items), a.registry.Len(), a.manifest)
}

func (a *ViewerApp) selected() *variant.Item {
	if len(a.items) == 0 {
		return nil
	}
	return a.items[a.selIdx]
}

// textures returns the source followed by each tier texture of the selection
func (a *ViewerApp) textures() []string {
	it := a.selected()
	if it == nil {
		return nil
	}
	paths := []string{it.Source}
	for _, t := range tier.All[1:] {
		if v := it.Tiers[t]; v != nil {
			paths = append(paths, v.Texture)
		}
	}
	return paths
}

func (a *ViewerApp) tileSize() int {
	paths := a.textures()
	if len(paths) == 0 {
		return 16
	}
	return a.renderer.Sprites.Get(paths[0]).Bounds().Dx()
}

func (a *ViewerApp) fit() {
	size := a.tileSize()
	a.renderer.Camera.Fit(render.RowWidth(len(a.textures()), size, tileGap), size, 40)
}

func (a *ViewerApp) Update() error {
	a.input.Update()
	cam := a.renderer.Camera

	if step := a.input.Step(); step != 0 && len(a.items) > 0 {
		prev := a.selIdx
		a.selIdx = input.Clamp(a.selIdx+step, len(a.items))
		if a.selIdx != prev {
			a.fit()
		}
	}
	if a.input.IsKeyJustPressed(ebiten.KeyHome) {
		a.selIdx = 0
		a.fit()
	}
	if a.input.IsKeyJustPressed(ebiten.KeyEnd) {
		a.selIdx = input.Clamp(len(a.items)-1, len(a.items))
		a.fit()
	}

	// Click an item in the sidebar
	if a.input.LeftJustPressed && a.input.MouseX < SidebarWidth {
		i := a.scroll + (a.input.MouseY-30)/listRowH
		if a.input.MouseY >= 30 && i >= 0 && i < len(a.items) {
			a.selIdx = i
			a.fit()
		}
	}

	// Canvas pan and zoom
	canvasX := a.input.MouseX - SidebarWidth
	if a.input.ScrollY != 0 && canvasX >= 0 {
		cam.ZoomAt(a.input.ScrollY, canvasX, a.input.MouseY)
	}
	if a.input.MiddlePressed || (a.input.Dragging && canvasX >= 0) {
		cam.Pan(float64(-a.input.MouseDX), float64(-a.input.MouseDY))
	}
	speed := cam.Speed / 60.0
	cam.Pan(a.input.PanX()*speed, a.input.PanY()*speed)

	if a.input.IsKeyJustPressed(ebiten.KeyG) {
		a.renderer.ShowGrid = !a.renderer.ShowGrid
	}
	if a.input.IsKeyJustPressed(ebiten.KeyF) {
		a.fit()
	}
	if a.input.IsKeyJustPressed(ebiten.KeyR) {
		a.reload()
	}

	// Keep the selection visible in the list
	visible := (ScreenHeight - 60) / listRowH
	if a.selIdx < a.scroll {
		a.scroll = a.selIdx
	}
	if a.selIdx >= a.scroll+visible {
		a.scroll = a.selIdx - visible + 1
	}
	return nil
}

func (a *ViewerApp) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	a.drawCanvas(screen)
	a.drawSidebar(screen)

	info := fmt.Sprintf("Variant Viewer | %d items | Zoom %.0fx | [W/S]Select [A/D/Q/E]Pan [Scroll]Zoom [Drag]Pan [G]Grid [F]Fit [R]Reload",
		len(a.items), a.renderer.Camera.Zoom)
	ebitenutil.DebugPrintAt(screen, info, SidebarWidth+5, ScreenHeight-20)
}

func (a *ViewerApp) drawCanvas(screen *ebiten.Image) {
	it := a.selected()
	if it == nil {
		ebitenutil.DebugPrintAt(screen, "No variants in "+a.manifest, SidebarWidth+20, 20)
		return
	}

	// The camera viewport starts at the sidebar edge
	if a.canvas == nil {
		a.canvas = ebiten.NewImage(ScreenWidth-SidebarWidth, ScreenHeight)
	}
	canvas := a.canvas
	canvas.Clear()

	paths := a.textures()
	size := a.tileSize()
	xs := render.RowLayout(len(paths), size, tileGap)
	for i, p := range paths {
		a.renderer.DrawTexture(canvas, a.renderer.Sprites.Get(p), xs[i], 0)
	}
	a.renderer.DrawFrame(canvas, xs[0], 0, float64(size), float64(size), frameColor)

	// Tier captions under each tile
	titles := []string{tier.Base.String()}
	for _, t := range tier.All[1:] {
		if it.Tiers[t] != nil {
			titles = append(titles, t.String())
		}
	}
	for i, title := range titles {
		sx, sy := a.renderer.Camera.WorldToScreen(xs[i], float64(size))
		ebitenutil.DebugPrintAt(canvas, title, sx, sy+6)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(SidebarWidth, 0)
	screen.DrawImage(canvas, op)

	a.drawStats(screen, it)
}

func (a *ViewerApp) drawStats(screen *ebiten.Image, it *variant.Item) {
	x := SidebarWidth + 20
	y := 20
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  (%s, %s)", variant.Humanize(it.BaseItem), it.ModID, it.Kind), x, y)
	y += 20
	if it.Kind == variant.KindOther {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-10s %s", tier.Base, it.BaseStats), x, y)
	y += 16
	for _, t := range tier.All[1:] {
		v := it.Tiers[t]
		if v == nil {
			continue
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-10s %s", t, v.Stats), x, y)
		y += 16
	}
}

func (a *ViewerApp) drawSidebar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, SidebarWidth, float32(ScreenHeight), color.RGBA{20, 20, 40, 220}, false)

	ebitenutil.DebugPrintAt(screen, "=== ITEMS ===", 10, 10)
	y := 30
	for i := a.scroll; i < len(a.items) && y < ScreenHeight-30; i++ {
		it := a.items[i]
		if i == a.selIdx {
			vector.DrawFilledRect(screen, 5, float32(y), SidebarWidth-10, listRowH-2, color.RGBA{100, 100, 200, 255}, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s:%s", it.ModID, it.BaseItem), 10, y+1)
		y += listRowH
	}
}

func (a *ViewerApp) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	manifest := flag.String("manifest", "", "Variant manifest written by generate_variants")
	flag.Parse()
	if *manifest == "" {
		fmt.Fprintln(os.Stderr, "Usage: viewer -manifest <variants.json>")
		os.Exit(1)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Variant Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := NewViewerApp(*manifest)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
