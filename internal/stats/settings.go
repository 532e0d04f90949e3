package stats

// Settings are the effective gameplay parameters the firing/movement
// simulation consumes. Derived from a Vector by pure interpolation;
// deriving twice from the same vector gives identical results.
type Settings struct {
	BulletSpeed    float64 `json:"bullet_speed"`
	SpreadAngle    float64 `json:"spread_angle"`
	FireInterval   float64 `json:"fire_interval"`
	RecoilUpward   float64 `json:"recoil_upward"`
	RecoilKickback float64 `json:"recoil_kickback"`
	ReloadTime     float64 `json:"reload_time"`
	AimFOV         float64 `json:"aim_fov"`
	MagazineSize   int     `json:"magazine_size"`
	Damage         float64 `json:"damage"`
}

// t maps an axis value in [1,100] onto [0,1].
func t(axis int) float64 {
	return float64(clampAxis(axis)-AxisMin) / float64(AxisMax-AxisMin)
}

// lerp blends endpoint-exactly: f=0 yields a and f=1 yields b with no
// rounding residue, which the axis-endpoint contract depends on for
// inverted pairs like (6.0, 0.2).
func lerp(a, b, f float64) float64 {
	return a*(1-f) + b*f
}

// Derive maps a resolved stat vector onto gameplay settings. Spread,
// fire interval, reload time and aim FOV run inverted: a better stat
// drives the output toward the pair's minimum.
func Derive(v Vector, tun *Tuning) Settings {
	return Settings{
		BulletSpeed:    lerp(tun.BulletSpeed.Min, tun.BulletSpeed.Max, t(v.Power)),
		SpreadAngle:    lerp(tun.SpreadAngle.Max, tun.SpreadAngle.Min, t(v.Accuracy)),
		FireInterval:   lerp(tun.FireInterval.Max, tun.FireInterval.Min, t(v.Rapidity)),
		RecoilUpward:   lerp(tun.RecoilUpward.Min, tun.RecoilUpward.Max, t(v.Recoil)),
		RecoilKickback: lerp(tun.RecoilKickback.Min, tun.RecoilKickback.Max, t(v.Recoil)),
		ReloadTime:     lerp(tun.ReloadTime.Max, tun.ReloadTime.Min, t(v.ReloadSpeed)),
		AimFOV:         lerp(tun.AimFOV.Max, tun.AimFOV.Min, t(v.Scope)),
		MagazineSize:   v.Ammo,
		Damage:         v.Damage,
	}
}
