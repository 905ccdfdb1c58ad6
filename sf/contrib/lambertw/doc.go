// Package lambertw solves w·exp(w) = x for real x on the two real
// branches of the Lambert W function.
//
// W0 is the principal branch, defined for x >= -1/e with W0 >= -1. Wm1 is
// the lower branch, defined for -1/e <= x < 0 with Wm1 <= -1. SpW0 and
// SpWm1 take a single refinement step instead of iterating to full
// precision and are accurate to about 1e-7 relative.
//
// Each evaluation picks a starting estimate by region (a series in the
// distance to the branch point, a rational or log-rational form, or the
// asymptotic logarithmic expansion) and refines it with the cubically
// convergent Fritsch-Shafer-Crowley update.
package lambertw
