package confidence

// Default ramp thresholds for the weighted mean angular error, in degrees.
const (
	DefaultGoodMAE = 1.0
	DefaultBadMAE  = 8.0
)

// maeSentinel stands in for a missing or unparsable error metric; it sits
// far beyond any real ramp so the resulting confidence is zero.
const maeSentinel = 1e9

// Score maps an inlier weight fraction and a weighted mean angular error
// onto [0, 1]: full error confidence at or below goodMAE, zero at or above
// badMAE, linear in between, scaled by the inlier fraction. A degenerate
// ramp (badMAE <= goodMAE) acts as a hard threshold at goodMAE.
func Score(inlierFrac, mae, goodMAE, badMAE float64) float64 {
	var maeConf float64
	if badMAE <= goodMAE {
		if mae <= goodMAE {
			maeConf = 1.0
		}
	} else {
		t := (mae - goodMAE) / (badMAE - goodMAE)
		switch {
		case t < 0:
			maeConf = 1.0
		case t > 1:
			maeConf = 0.0
		default:
			maeConf = 1.0 - t
		}
	}

	conf := inlierFrac * maeConf
	if conf < 0 {
		return 0
	}
	if conf > 1 {
		return 1
	}
	return conf
}
