package scalar

import (
	"io"
	"log/slog"
)

// DefaultMuSquared is the default renormalization scale μ².
const DefaultMuSquared = 1.0

// DefaultOnShellThreshold is the default relative tolerance below
// which kinematic quantities are snapped onto their degenerate values
// (zero masses, on-shell legs, equal masses). Zero disables snapping
// entirely: only exact degeneracies dispatch to degenerate branches.
const DefaultOnShellThreshold = 1e-10

// Config carries the state shared by all evaluators: the
// renormalization scale, the degeneracy threshold and the diagnostic
// sink. The zero value is not ready for use; start from
// DefaultConfig.
//
// A Config is safe for concurrent evaluation as long as it is not
// mutated while evaluations are in flight; the setters are plain
// field writes, not synchronized.
//
// Fields:
//   - MuSquared        — renormalization scale μ² entering every
//     logarithm ln(μ²/...). Any finite value is accepted and
//     propagated; non-positive values simply produce complex logs.
//   - OnShellThreshold — relative snapping tolerance (see
//     DefaultOnShellThreshold).
//   - DiagLevel        — minimum Unit severity that reaches Logger.
//   - Logger           — structured diagnostic sink. Never nil after
//     DefaultConfig; diagnostics are purely observational and do not
//     alter results.
type Config struct {
	MuSquared        float64
	OnShellThreshold float64
	DiagLevel        Unit
	Logger           *slog.Logger
}

// DefaultConfig returns a Config with μ² = 1, the default on-shell
// threshold and warnings-and-up routed to a discarding logger.
func DefaultConfig() Config {
	return Config{
		MuSquared:        DefaultMuSquared,
		OnShellThreshold: DefaultOnShellThreshold,
		DiagLevel:        UnitWarning,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetRenormalizationScale replaces μ² unconditionally; the value
// applies to every subsequent evaluation through this Config.
func (c *Config) SetRenormalizationScale(mu2 float64) {
	c.MuSquared = mu2
}

// SetOnShellThreshold replaces the degeneracy-snapping tolerance.
// Zero disables snapping; larger values trade accuracy near
// degenerate limits for stability on them.
func (c *Config) SetOnShellThreshold(t float64) {
	c.OnShellThreshold = t
}

// SetDiagnosticLevel sets the minimum severity emitted and,
// optionally, redirects diagnostics to a new logger (nil keeps the
// current sink).
func (c *Config) SetDiagnosticLevel(u Unit, logger *slog.Logger) {
	c.DiagLevel = u
	if logger != nil {
		c.Logger = logger
	}
}

// diag emits a structured diagnostic if its severity clears the
// configured level.
func (c *Config) diag(u Unit, msg string, args ...any) {
	if u < c.DiagLevel || c.Logger == nil {
		return
	}
	switch u {
	case UnitPrintAll:
		c.Logger.Debug(msg, args...)
	case UnitMessage:
		c.Logger.Info(msg, args...)
	case UnitWarning:
		c.Logger.Warn(msg, args...)
	default:
		c.Logger.Error(msg, args...)
	}
}

// std is the process-wide configuration behind the package-level
// evaluators and setters.
var std = DefaultConfig()

// Default exposes the package-level configuration used by OnePoint,
// TwoPoint, ThreePoint and FourPoint.
func Default() *Config { return &std }

// SetRenormalizationScale sets μ² on the package-level configuration.
func SetRenormalizationScale(mu2 float64) { std.SetRenormalizationScale(mu2) }

// SetOnShellThreshold sets the snapping tolerance on the package-level
// configuration.
func SetOnShellThreshold(t float64) { std.SetOnShellThreshold(t) }

// SetDiagnosticLevel sets severity and sink on the package-level
// configuration.
func SetDiagnosticLevel(u Unit, logger *slog.Logger) { std.SetDiagnosticLevel(u, logger) }

// OnePoint evaluates the tadpole A₀ with the package-level Config.
func OnePoint(m complex128) Result { return std.OnePoint(m) }

// TwoPoint evaluates the bubble B₀ with the package-level Config.
func TwoPoint(p float64, m1, m2 complex128) Result { return std.TwoPoint(p, m1, m2) }

// ThreePoint evaluates the triangle C₀ with the package-level Config.
func ThreePoint(p1, p2, p3 float64, m1, m2, m3 complex128) Result {
	return std.ThreePoint(p1, p2, p3, m1, m2, m3)
}

// FourPoint evaluates the box D₀ with the package-level Config.
func FourPoint(p1, p2, p3, p4, p12, p23 float64, m1, m2, m3, m4 complex128) Result {
	return std.FourPoint(p1, p2, p3, p4, p12, p23, m1, m2, m3, m4)
}
