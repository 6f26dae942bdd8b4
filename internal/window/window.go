//go:build !tinygo

package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"serial-radar.klederson.com/internal/app"
	"serial-radar.klederson.com/internal/config"
)

// Run opens a desktop window showing loop's frames. It blocks until the
// window closes or the user presses Esc or Q.
func Run(loop *app.Loop, title string, width, height int) error {
	g := &radarGame{loop: loop, width: width, height: height}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(config.TargetFPS)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type radarGame struct {
	loop   *app.Loop
	width  int
	height int
	frame  *ebiten.Image
}

func (g *radarGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		_ = g.loop.Stop()
		return ebiten.Termination
	}
	if g.loop.Phase() != app.Running {
		return ebiten.Termination
	}

	c := g.loop.Frame(time.Now())
	if g.frame == nil {
		g.frame = ebiten.NewImage(c.Width(), c.Height())
	}
	g.frame.WritePixels(c.Pix())
	return nil
}

func (g *radarGame) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	screen.DrawImage(g.frame, nil)
}

func (g *radarGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
