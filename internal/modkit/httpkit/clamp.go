package httpkit

// ClampInt normalizes a bound list-size parameter
// zero means the caller never sent a usable number, so the default applies;
// anything below one floors to one and anything above max ceilings to max
func ClampInt(v, def, max int) int {
	if v == 0 {
		return def
	}
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}
