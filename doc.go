// Package markup generates the geometry of road-surface markup: lane lines,
// stop lines, and crosswalks. Given a trajectory and a style, it lays out a
// sequence of oriented rectangular dashes and groups them into batches ready
// for instanced drawing.
//
// # Trajectories
//
// A [Trajectory] is a path parametrized by t ∈ [0, 1]. The package provides
// [StraightTrajectory] and the cubic [BezierTrajectory]; [NewTrajectory]
// builds a smooth one between two oriented points. Other implementations
// can be supplied by the caller, as long as they report [Straight] or
// [Curved] from Kind.
//
// # Dashes
//
// Solid lines are drawn one dash per leaf of an adaptive subdivision (see
// [Subdivide]), which halves a trajectory until its pieces are short or
// straight enough to be drawn as rectangles. Dashed lines are laid out by
// [PlanDashes]: in closed form on straight trajectories and by walking the
// arc length on curved ones, re-balancing the spaces at both ends so that
// the pattern appears centred.
//
// [DashBuilder] turns planned intervals and subdivision leaves into [Dash]
// values, shifting them sideways for double lines and skipping anything
// degenerate.
//
// # Styles
//
// A [Style] is a plain value describing how a [MarkupLine] is painted. Its
// [StyleKind] selects the algorithm; each kind belongs to one
// [StyleFamily] and only draws on lines of the matching [LineKind]. Fresh
// styles are obtained from [DefaultStyle].
//
// # Batches
//
// [BuildBatches] groups dashes whose lengths round to the same tenth (see
// [RoundLength]) into batches of at most [MaxBatchInstances]. Every
// [RenderBatch] carries one box per instance in its [Mesh] and the
// per-instance data in the layout the markup shader expects.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to observe skipped
// dashes and batch assembly.
package markup
