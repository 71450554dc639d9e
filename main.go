// Command whitted renders demo scenes and OBJ models with a recursive
// Whitted ray tracer, writing plain PPM images.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/user/go-whitted-raytracer/pkg/renderer"
	"github.com/user/go-whitted-raytracer/pkg/scene"
	"github.com/user/go-whitted-raytracer/pkg/world"
)

var (
	flagScene   string
	flagOBJ     string
	flagWidth   int
	flagHeight  int
	flagDepth   int
	flagOut     string
	flagWorkers int
)

var rootCmd = &cobra.Command{
	Use:   "whitted",
	Short: "A recursive Whitted-style ray tracer",
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to a PPM image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.Context())
	},
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(strings.Join(scene.Names(), "\n"))
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagScene, "scene", "spheres", "built-in scene to render")
	renderCmd.Flags().StringVar(&flagOBJ, "obj", "", "render a Wavefront OBJ file instead of a built-in scene")
	renderCmd.Flags().IntVar(&flagWidth, "width", 800, "image width in pixels")
	renderCmd.Flags().IntVar(&flagHeight, "height", 400, "image height in pixels")
	renderCmd.Flags().IntVar(&flagDepth, "depth", world.DefaultRecursionDepth, "recursion budget for reflection and refraction")
	renderCmd.Flags().StringVar(&flagOut, "out", "render.ppm", "output PPM path")
	renderCmd.Flags().IntVar(&flagWorkers, "workers", 0, "render workers (0 = one per CPU)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scenesCmd)

	// glog registers its flags (-v, -logtostderr, ...) on the standard flag
	// set; surface them on the CLI.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

func runRender(ctx context.Context) error {
	var (
		w   *world.World
		cam *renderer.Camera
		err error
	)
	if flagOBJ != "" {
		w, cam, err = scene.OBJ(flagOBJ, flagWidth, flagHeight)
	} else {
		w, cam, err = scene.Build(flagScene, flagWidth, flagHeight)
	}
	if err != nil {
		return err
	}

	start := time.Now()
	canvas, err := cam.RenderParallel(ctx, w, flagDepth, flagWorkers)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	glog.Infof("rendered %dx%d in %v", flagWidth, flagHeight, time.Since(start))

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := canvas.WritePPM(f); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	glog.Infof("wrote %s", flagOut)
	return nil
}

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
