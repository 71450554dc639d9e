package renderer

import (
	"context"
	"math"
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/user/go-whitted-raytracer/pkg/core"
	"github.com/user/go-whitted-raytracer/pkg/world"
)

// Camera projects the world onto a canvas. The field of view spans the
// larger canvas dimension; pixel size follows from it so pixels are always
// square.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	Transform   core.Matrix
	PixelSize   float64

	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for the given canvas size and field of view,
// looking down the negative z axis from the origin until a view transform is
// assigned.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		Transform:   core.Identity,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.PixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// RayForPixel returns the world-space ray through the center of the given
// canvas pixel.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// Canvas x grows rightward but camera x grows leftward, since the
	// untransformed camera looks toward negative z.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv := c.Transform.Inverse()
	pixel := inv.MulPoint(core.NewPoint(worldX, worldY, -1))
	origin := inv.MulPoint(core.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel serially and returns the finished canvas. depth
// is the recursion budget for secondary rays.
func (c *Camera) Render(w *world.World, depth int) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		c.renderRow(w, canvas, y, depth)
	}
	return canvas
}

// RenderParallel traces rows concurrently across the given number of
// workers. The world is only read during rendering and each worker writes
// disjoint canvas rows, so no locking is needed. workers <= 0 uses one
// worker per CPU.
func (c *Camera) RenderParallel(ctx context.Context, w *world.World, depth, workers int) (*Canvas, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	glog.V(1).Infof("rendering %dx%d with %d workers, depth %d", c.HSize, c.VSize, workers, depth)

	canvas := NewCanvas(c.HSize, c.VSize)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < c.VSize; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.renderRow(w, canvas, y, depth)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return canvas, nil
}

func (c *Camera) renderRow(w *world.World, canvas *Canvas, y, depth int) {
	for x := 0; x < c.HSize; x++ {
		ray := c.RayForPixel(x, y)
		canvas.WritePixel(x, y, w.ColorAt(ray, depth))
	}
	if y%50 == 0 {
		glog.V(2).Infof("rendered row %d/%d", y, c.VSize)
	}
}
