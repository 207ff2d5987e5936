package logicnet

// Adjustment returns the gradient used to correct a Unit that produced computed when it should have
// produced expected:
//	(expected - computed) * act.Deriv(computed)
//
// This is the local error signal for a Unit trained directly against a target: a lone Unit, or the
// output Unit of a Network.
func Adjustment(expected, computed float64, act Activation) float64 {
	return (expected - computed) * act.Deriv(computed)
}
