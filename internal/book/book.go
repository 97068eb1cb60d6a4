// Package book builds the page-turning book: spreads from image ids, page
// geometry and textures, and the hinge animation that follows the current
// page index.
package book

import (
	"Floatbook/internal/behaviour"
	"Floatbook/internal/loader"
	"Floatbook/internal/logger"
	"Floatbook/internal/renderer"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// PageIndex is the read side of the navigation state.
type PageIndex interface {
	Current() int
}

// Scene is what the book needs from the engine: a place for its models and
// texture uploads. Calls happen on the render thread.
type Scene interface {
	AddModel(model *renderer.Model)
	CreateTextureFromImage(img image.Image, name string) (uint32, error)
}

type Options struct {
	AssetRoot     string
	PageWidth     float32
	PageHeight    float32
	PageSpacing   float32
	Easing        float32
	DecodeWorkers int
}

func DefaultOptions() Options {
	return Options{
		AssetRoot:     "public",
		PageWidth:     1.28,
		PageHeight:    1.71,
		PageSpacing:   0.003,
		Easing:        2.5,
		DecodeWorkers: 4,
	}
}

// Page is one spread hinged on the spine.
type Page struct {
	Number int
	Spread Spread
	Angle  float32
	Hinge  *behaviour.Transform
	Front  *renderer.Model
	Back   *renderer.Model
}

type Book struct {
	Root  *behaviour.Transform
	Pages []*Page

	state   PageIndex
	scene   Scene
	opts    Options
	shift   float32
	started bool
}

// New lays out one page per spread. Nothing touches the GPU until Start.
func New(spreads []Spread, state PageIndex, scene Scene, opts Options) (*Book, error) {
	if len(spreads) == 0 {
		return nil, ErrNoImages
	}
	b := &Book{
		Root:  behaviour.NewTransform(),
		state: state,
		scene: scene,
		opts:  opts,
	}

	index := b.index()
	for i, spread := range spreads {
		page := &Page{
			Number: i,
			Spread: spread,
			Angle:  TargetAngle(i, index, len(spreads)),
			Hinge:  behaviour.NewTransform(),
		}
		b.Root.AddChild(page.Hinge)
		b.Pages = append(b.Pages, page)
	}
	b.shift = CenterShift(index, len(spreads), opts.PageWidth)
	b.pose(index)
	return b, nil
}

// PageCount is the number of spreads; the page index ranges over
// [0, PageCount].
func (b *Book) PageCount() int {
	return len(b.Pages)
}

// Start builds the page meshes and textures and hands them to the scene.
func (b *Book) Start() {
	if b.started {
		return
	}
	b.started = true

	for _, page := range b.Pages {
		front, err := loader.LoadPageQuad(b.opts.PageWidth, b.opts.PageHeight, loader.PageFront)
		if err != nil {
			logger.Log.Error("Page mesh failed", zap.Int("page", page.Number), zap.Error(err))
			continue
		}
		back, err := loader.LoadPageQuad(b.opts.PageWidth, b.opts.PageHeight, loader.PageBack)
		if err != nil {
			logger.Log.Error("Page mesh failed", zap.Int("page", page.Number), zap.Error(err))
			continue
		}

		front.Name = fmt.Sprintf("page-%d-front", page.Number)
		back.Name = fmt.Sprintf("page-%d-back", page.Number)
		for _, m := range []*renderer.Model{front, back} {
			m.CastShadow = true
			m.ReceiveShadow = true
			m.SetShininess(16)
			m.SetSpecularColor(0.1, 0.1, 0.1)
		}
		page.Front, page.Back = front, back
	}

	b.applyTextures()
	for _, page := range b.Pages {
		if page.Front == nil {
			continue
		}
		b.scene.AddModel(page.Front)
		b.scene.AddModel(page.Back)
	}
	b.apply()

	logger.Log.Info("Book built", zap.Int("pages", len(b.Pages)))
}

// applyTextures decodes every side image in parallel, then uploads them on
// the calling thread. Sides without a usable image get paper.
func (b *Book) applyTextures() {
	var sides []pageSide
	for _, page := range b.Pages {
		if page.Front == nil {
			continue
		}
		sides = append(sides,
			pageSide{model: page.Front, id: page.Spread.Front},
			pageSide{model: page.Back, id: page.Spread.Back})
	}
	for i := range sides {
		sides[i].path = findImage(b.opts.AssetRoot, sides[i].id)
	}
	decodeSides(sides, b.opts.DecodeWorkers)

	for _, side := range sides {
		side.model.SetTextureID(b.upload(side))
	}
}

func (b *Book) upload(side pageSide) uint32 {
	if side.image != nil {
		id, err := b.scene.CreateTextureFromImage(side.image, side.path)
		if err == nil {
			return id
		}
		logger.Log.Warn("Page texture upload failed", zap.String("path", side.path), zap.Error(err))
	}

	logger.Log.Debug("Using paper texture", zap.String("id", side.id))
	id, err := b.scene.CreateTextureFromImage(PaperTexture(side.id), "paper:"+side.id)
	if err != nil {
		logger.Log.Warn("Paper texture failed", zap.String("id", side.id), zap.Error(err))
		return 0
	}
	return id
}

// Update implements behaviour.Behaviour: pages ease toward the angles
// implied by the current index.
func (b *Book) Update(frame behaviour.Frame) {
	index := b.index()
	dt := float32(frame.Delta)
	for _, page := range b.Pages {
		page.Angle = Ease(page.Angle, TargetAngle(page.Number, index, len(b.Pages)), dt, b.opts.Easing)
	}
	b.shift = Ease(b.shift, CenterShift(index, len(b.Pages), b.opts.PageWidth), dt, b.opts.Easing)
	b.pose(index)
	b.apply()
}

func (b *Book) index() int {
	if b.state == nil {
		return 0
	}
	return b.state.Current()
}

func (b *Book) pose(index int) {
	for _, page := range b.Pages {
		page.Hinge.SetPosition(mgl32.Vec3{b.shift, 0, StackOffset(page.Number, index, b.opts.PageSpacing)})
		page.Hinge.SetRotation(mgl32.QuatRotate(page.Angle, mgl32.Vec3{0, 1, 0}))
	}
}

// apply pushes world matrices into the page models. Call after the parent
// transform moved.
func (b *Book) apply() {
	for _, page := range b.Pages {
		if page.Front == nil {
			continue
		}
		world := page.Hinge.World()
		page.Front.SetModelMatrix(world)
		page.Back.SetModelMatrix(world)
	}
}
