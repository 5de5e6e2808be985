package asteroids

// Tuning holds every gameplay constant. Zero values are not meaningful; start
// from DefaultTuning.
type Tuning struct {
	Lives        int     `toml:"lives"`
	GracePeriod  float64 `toml:"grace_period"`  // seconds between two life losses
	RotateSpeed  float64 `toml:"rotate_speed"`  // degrees per second
	Thrust       float64 `toml:"thrust"`        // px/s²
	ShotCooldown float64 `toml:"shot_cooldown"` // seconds
	ShotSpeed    float64 `toml:"shot_speed"`    // px/s
	ShotLifetime float64 `toml:"shot_lifetime"` // seconds
	MeteorSpeed  float64 `toml:"meteor_speed"`  // px/s

	SplitMin int `toml:"split_min"`
	SplitMax int `toml:"split_max"`

	ScoreBig    uint32 `toml:"score_big"`
	ScoreMedium uint32 `toml:"score_medium"`
	ScoreSmall  uint32 `toml:"score_small"`

	ExplosionVolume float64 `toml:"explosion_volume"`

	// LevelMeteors is the number of big meteors spawned at the start of each
	// level. Its length is the highest level.
	LevelMeteors []int `toml:"level_meteors"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Lives:           3,
		GracePeriod:     1.0,
		RotateSpeed:     250,
		Thrust:          300,
		ShotCooldown:    0.5,
		ShotSpeed:       500,
		ShotLifetime:    0.5,
		MeteorSpeed:     30,
		SplitMin:        2,
		SplitMax:        3,
		ScoreBig:        10,
		ScoreMedium:     5,
		ScoreSmall:      1,
		ExplosionVolume: 0.1,
		LevelMeteors:    []int{4, 5, 7, 9, 11},
	}
}

func (t Tuning) Score(size MeteorSize) uint32 {
	switch size {
	case MeteorBig:
		return t.ScoreBig
	case MeteorMedium:
		return t.ScoreMedium
	default:
		return t.ScoreSmall
	}
}
