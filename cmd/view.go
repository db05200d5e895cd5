package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/mazeball/infrastruture/physics"
	"github.com/beka-birhanu/mazeball/layout"
	"github.com/beka-birhanu/mazeball/render"
	"github.com/spf13/cobra"
)

var (
	viewRows          int
	viewCols          int
	viewSeed          int64
	viewUnit          float64
	viewWall          float64
	viewGravity       float64
	viewCollapseAfter time.Duration

	sandboxShapes int
	sandboxWidth  float64
	sandboxHeight float64
	sandboxSeed   int64
)

func init() {
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window simulating a maze level",
		Long: `Generate a maze, project it into walls and simulate it in a window.
The ball starts in the carve start cell. Reaching the goal collapses the walls.

Examples:
  mazeball view --rows 8 --cols 8
  mazeball view --rows 12 --cols 16 --unit 40 --collapse-after 30s`,
		RunE: runView,
	}

	viewCmd.Flags().IntVarP(&viewRows, "rows", "r", 8, "Number of rows")
	viewCmd.Flags().IntVarP(&viewCols, "cols", "c", 8, "Number of columns")
	viewCmd.Flags().Int64Var(&viewSeed, "seed", 0, "Seed of the random source (random when unset)")
	viewCmd.Flags().Float64Var(&viewUnit, "unit", 60, "Side of one cell in pixels")
	viewCmd.Flags().Float64Var(&viewWall, "wall", 6, "Wall thickness in pixels")
	viewCmd.Flags().Float64Var(&viewGravity, "gravity", 300, "Downward gravity applied to the ball")
	viewCmd.Flags().DurationVar(&viewCollapseAfter, "collapse-after", 0, "Collapse the walls after this long (never when 0)")

	sandboxCmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Drop random shapes into a box",
		Long: `Open a window dropping random rectangles and circles into a box.

Examples:
  mazeball sandbox
  mazeball sandbox --shapes 80 --seed 3`,
		RunE: runSandbox,
	}

	sandboxCmd.Flags().IntVarP(&sandboxShapes, "shapes", "n", 40, "Number of shapes to drop")
	sandboxCmd.Flags().Float64Var(&sandboxWidth, "width", 800, "Box width in pixels")
	sandboxCmd.Flags().Float64Var(&sandboxHeight, "height", 600, "Box height in pixels")
	sandboxCmd.Flags().Int64Var(&sandboxSeed, "seed", 0, "Seed of the random source (random when unset)")

	rootCmd.AddCommand(viewCmd, sandboxCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	m, err := generateFromFlags(cmd, viewRows, viewCols, viewSeed, 0, 0)
	if err != nil {
		return err
	}

	g, err := layout.Project(m, viewUnit, viewUnit, viewWall)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	world := physics.NewWorld(
		physics.WithGravity(0, viewGravity),
		physics.WithCollapseOnGoal(),
	)
	if err := g.Instantiate(world); err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	v := render.NewViewer(world, g.Width, g.Height, render.WithCollapseAfter(viewCollapseAfter))
	return render.Run(v, fmt.Sprintf("mazeball %dx%d", m.Rows(), m.Cols()))
}

func runSandbox(cmd *cobra.Command, args []string) error {
	seed := sandboxSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	world, err := physics.NewSandbox(sandboxWidth, sandboxHeight, sandboxShapes, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("building sandbox: %w", err)
	}

	v := render.NewViewer(world, sandboxWidth, sandboxHeight)
	return render.Run(v, "mazeball sandbox")
}
