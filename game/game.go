package game

import (
	"github.com/meghashyamc/projection2d/assets"
	"github.com/meghashyamc/projection2d/config"
	"github.com/meghashyamc/projection2d/input"
	"github.com/meghashyamc/projection2d/logger"
	"github.com/meghashyamc/projection2d/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	cfg          *config.Config
	width        int
	height       int
	opts         scene.Options
	pointer      *input.PointerTracker
	surface      *ebiten.Image // last rendered frame, redrawn only on pointer moves
	pendingFrame *scene.Frame
	logger       logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	opts := scene.Options{
		ReferenceLength: cfg.GetReferenceLength(),
		StrokeWidth:     cfg.GetStrokeWidth(),
		ShowReadout:     cfg.GetShowReadout(),
	}

	g := &Game{
		cfg:     cfg,
		width:   cfg.GetWindowWidth(),
		height:  cfg.GetWindowHeight(),
		opts:    opts,
		pointer: input.NewPointerTracker(),
		logger:  logger.New(cfg.GetLogLevel()),
	}

	g.logger.Info("visualization initialized",
		"width", g.width,
		"height", g.height,
		"reference_length", opts.ReferenceLength,
		"stroke_width", opts.StrokeWidth,
	)
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting visualization")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

// Update samples the cursor and queues a redraw when it has moved
func (g *Game) Update() error {
	pos, moved := g.pointer.Poll(ebiten.CursorPosition())
	if !moved {
		return nil
	}

	g.pendingFrame = &scene.Frame{
		Width:   float64(g.width),
		Height:  float64(g.height),
		Pointer: pos,
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = ebiten.NewImage(g.width, g.height)
		g.surface.Fill(scene.BackgroundColor)
	}

	if g.pendingFrame != nil {
		g.onPointerMove(*g.pendingFrame)
		g.pendingFrame = nil
	}

	screen.DrawImage(g.surface, nil)
}

func (g *Game) onPointerMove(frame scene.Frame) {
	canvas := newEbitenCanvas(g.surface, assets.LabelFont)
	layout := scene.Render(canvas, frame, g.opts)

	g.logger.Debug("scene redrawn",
		"pointer", layout.Pointer,
		"projection", layout.Projection,
		"rejection", layout.Rejection,
		"angle", layout.Angle,
	)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
