//go:build example
// +build example

package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"go.uber.org/zap"

	"github.com/hajimehoshi/go-cdt"
	"github.com/hajimehoshi/go-cdt/render"
)

const (
	screenWidth  = 480
	screenHeight = 480
	scale        = 40.0
)

var (
	mesh   *cdt.Mesh
	flaws  = cdt.NewFlawQueue()
	logger *zap.Logger
	status string
)

func toScreen(p r2.Point) (float64, float64) {
	return p.X * scale, screenHeight - p.Y*scale
}

func fromScreen(x, y int) r2.Point {
	return r2.Point{X: float64(x) / scale, Y: float64(screenHeight-y) / scale}
}

func update(screen *ebiten.Image) error {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p := fromScreen(ebiten.CursorPosition())
		r, _, err := mesh.InsertPoint(p, cdt.Otri{}, true, true)
		if err != nil {
			status = err.Error()
		} else {
			status = fmt.Sprintf("insert (%.2f, %.2f): %s", p.X, p.Y, r)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		p := fromScreen(ebiten.CursorPosition())
		if r, o := mesh.Locate(p, cdt.Otri{}); r == cdt.InTriangle || r == cdt.OnEdge || r == cdt.OnVertex {
			if err := mesh.DeleteVertex(o); err != nil {
				status = err.Error()
			} else {
				status = "deleted a vertex"
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		mesh.UndoVertex()
		status = "undone"
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		f, err := os.Create("mesh.svg")
		if err != nil {
			return err
		}
		if err := render.SVG(f, mesh, render.DefaultOptions()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		status = "wrote mesh.svg"
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	screen.Fill(color.White)
	gray := color.RGBA{0x80, 0x80, 0x80, 0xff}
	for _, t := range mesh.Triangles() {
		vs := t.Vertices()
		for i := 0; i < 3; i++ {
			x1, y1 := toScreen(vs[i].Point)
			x2, y2 := toScreen(vs[(i+1)%3].Point)
			ebitenutil.DrawLine(screen, x1, y1, x2, y2, gray)
		}
	}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	for _, s := range mesh.Subsegs() {
		x1, y1 := toScreen(s.Org().Point)
		x2, y2 := toScreen(s.Dest().Point)
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, blue)
	}

	msg := fmt.Sprintf("vertices: %d, triangles: %d, bad triangles: %d\n%s",
		mesh.NumberOfVertices(), mesh.NumberOfTriangles(), flaws.BadTriangles(), status)
	return ebitenutil.DebugPrint(screen, msg)
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	in := cdt.Input{
		Points: [][]float64{
			{1, 1}, {11, 1}, {11, 11}, {1, 11},
			{4, 4}, {8, 4}, {8, 8}, {4, 8},
		},
		Segments: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
		},
	}
	mesh, err = cdt.Triangulate(in,
		cdt.WithLogger(logger),
		cdt.WithQuality(20),
		cdt.WithFlawSink(flaws))
	if err != nil {
		panic(err)
	}
	if err := ebiten.Run(update, screenWidth, screenHeight, 1, "Constrained Delaunay (go-cdt)"); err != nil {
		panic(err)
	}
}
