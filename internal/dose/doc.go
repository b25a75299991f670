// Package dose holds the decision and timing rules behind the prayer dose
// indicator: the tick-synchronised pulse phase, the "is a dose worthwhile"
// threshold and the time-remaining countdown.
//
// Everything here is single-threaded and recomputed from fresh inputs on
// every frame. Only TickTracker carries state between frames.
package dose
