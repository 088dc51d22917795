// Package particle reconstructs animated particle properties from an
// inibin store and loads the particle definitions built on them.
//
// A property is stored under a hashed key h with optional companions:
//
//	h             base value, one number per axis ("1 0.5 0.25")
//	h1 .. h9      keyframes, "time v0 .. vN"
//	hXP, hYP, ..  per-axis probability curves (hRP .. hAP for colors)
//	h_flex0 .. 3  indexed overrides (see Flex)
//
// A curve key holds either a constant or the (value, time) pairs
// h1 .. h9. Evaluating a property is two steps: EvalAnim picks the value
// at a point of the particle's lifetime, and ApplyProbability scales each
// axis by its curve at a random sample.
package particle
